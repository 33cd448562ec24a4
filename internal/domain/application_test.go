package domain_test

import (
	"testing"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestStatusLifecycle(t *testing.T) {
	t.Run("Should allow applied to reviewing and rejected", func(t *testing.T) {
		assert.True(t, domain.ApplicationStatusApplied.CanTransitionTo(domain.ApplicationStatusReviewing))
		assert.True(t, domain.ApplicationStatusApplied.CanTransitionTo(domain.ApplicationStatusRejected))
		assert.False(t, domain.ApplicationStatusApplied.CanTransitionTo(domain.ApplicationStatusApproved))
	})

	t.Run("Should allow reviewing to approved and rejected", func(t *testing.T) {
		assert.True(t, domain.ApplicationStatusReviewing.CanTransitionTo(domain.ApplicationStatusApproved))
		assert.True(t, domain.ApplicationStatusReviewing.CanTransitionTo(domain.ApplicationStatusRejected))
		assert.False(t, domain.ApplicationStatusReviewing.CanTransitionTo(domain.ApplicationStatusApplied))
	})

	t.Run("Should treat approved and rejected as terminal", func(t *testing.T) {
		for _, terminal := range []domain.ApplicationStatus{domain.ApplicationStatusApproved, domain.ApplicationStatusRejected} {
			assert.True(t, terminal.Terminal())
			for _, next := range []domain.ApplicationStatus{
				domain.ApplicationStatusApplied,
				domain.ApplicationStatusReviewing,
				domain.ApplicationStatusApproved,
				domain.ApplicationStatusRejected,
			} {
				assert.False(t, terminal.CanTransitionTo(next), "%s -> %s must be rejected", terminal, next)
			}
		}
	})

	t.Run("Should reject self transitions", func(t *testing.T) {
		assert.False(t, domain.ApplicationStatusApplied.CanTransitionTo(domain.ApplicationStatusApplied))
		assert.False(t, domain.ApplicationStatusReviewing.CanTransitionTo(domain.ApplicationStatusReviewing))
	})

	t.Run("Should reject unknown statuses", func(t *testing.T) {
		assert.False(t, domain.ApplicationStatus("pending").Valid())
		assert.False(t, domain.ApplicationStatus("pending").CanTransitionTo(domain.ApplicationStatusReviewing))
		assert.False(t, domain.ApplicationStatus("").Terminal())
	})
}

func TestValidateTransition(t *testing.T) {
	t.Run("Should return nil for a legal step", func(t *testing.T) {
		assert.NoError(t, domain.ValidateTransition(domain.ApplicationStatusApplied, domain.ApplicationStatusReviewing))
	})

	t.Run("Should carry both states in the error", func(t *testing.T) {
		err := domain.ValidateTransition(domain.ApplicationStatusApproved, domain.ApplicationStatusRejected)
		assert.Error(t, err)

		var transitionErr *domain.InvalidTransitionError
		assert.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, domain.ApplicationStatusApproved, transitionErr.From)
		assert.Equal(t, domain.ApplicationStatusRejected, transitionErr.To)
		assert.Contains(t, err.Error(), "approved")
		assert.Contains(t, err.Error(), "rejected")
	})

	t.Run("Should reject skipping reviewing", func(t *testing.T) {
		err := domain.ValidateTransition(domain.ApplicationStatusApplied, domain.ApplicationStatusApproved)
		assert.Error(t, err)
	})
}

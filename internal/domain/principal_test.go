package domain_test

import (
	"testing"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanReadApplication(t *testing.T) {
	app := &domain.Application{
		ID:           1,
		JobID:        10,
		CandidateID:  100,
		JobCompanyID: 5,
	}

	t.Run("Should allow the company owning the job", func(t *testing.T) {
		assert.True(t, domain.CanReadApplication(domain.CompanyPrincipal{CompanyID: 5}, app))
	})

	t.Run("Should deny a different company", func(t *testing.T) {
		assert.False(t, domain.CanReadApplication(domain.CompanyPrincipal{CompanyID: 6}, app))
	})

	t.Run("Should allow the applying candidate", func(t *testing.T) {
		assert.True(t, domain.CanReadApplication(domain.CandidatePrincipal{CandidateID: 100}, app))
	})

	t.Run("Should deny a different candidate", func(t *testing.T) {
		assert.False(t, domain.CanReadApplication(domain.CandidatePrincipal{CandidateID: 101}, app))
	})

	t.Run("Should deny admins and other roles", func(t *testing.T) {
		assert.False(t, domain.CanReadApplication(domain.OtherPrincipal{Role: domain.RoleAdmin}, app))
		assert.False(t, domain.CanReadApplication(domain.OtherPrincipal{Role: "support"}, app))
	})
}

func TestCanWriteApplicationStatus(t *testing.T) {
	app := &domain.Application{
		ID:           1,
		JobID:        10,
		CandidateID:  100,
		JobCompanyID: 5,
	}

	t.Run("Should allow only the company owning the job", func(t *testing.T) {
		assert.True(t, domain.CanWriteApplicationStatus(domain.CompanyPrincipal{CompanyID: 5}, app))
		assert.False(t, domain.CanWriteApplicationStatus(domain.CompanyPrincipal{CompanyID: 6}, app))
	})

	t.Run("Should deny the applying candidate", func(t *testing.T) {
		assert.False(t, domain.CanWriteApplicationStatus(domain.CandidatePrincipal{CandidateID: 100}, app))
	})

	t.Run("Should deny admins", func(t *testing.T) {
		assert.False(t, domain.CanWriteApplicationStatus(domain.OtherPrincipal{Role: domain.RoleAdmin}, app))
	})
}

package auth_test

import (
	"testing"
	"time"

	"go-jobboard-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	t.Run("Should parse the user id it signed", func(t *testing.T) {
		token, err := tokens.Generate(42, "candidate")
		assert.NoError(t, err)

		userID, err := tokens.Parse(token)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), userID)
	})

	t.Run("Should reject tokens signed with another secret", func(t *testing.T) {
		other := auth.NewTokenManager("other-secret", time.Hour)
		token, err := other.Generate(42, "candidate")
		assert.NoError(t, err)

		_, err = tokens.Parse(token)
		assert.Error(t, err)
	})

	t.Run("Should reject expired tokens", func(t *testing.T) {
		expired := auth.NewTokenManager("test-secret", -time.Minute)
		token, err := expired.Generate(42, "candidate")
		assert.NoError(t, err)

		_, err = tokens.Parse(token)
		assert.Error(t, err)
	})

	t.Run("Should reject garbage", func(t *testing.T) {
		_, err := tokens.Parse("not.a.token")
		assert.Error(t, err)
	})
}

func TestPasswordHashing(t *testing.T) {
	t.Run("Should verify the original password only", func(t *testing.T) {
		hash, err := auth.HashPassword("hunter2-strong")
		assert.NoError(t, err)
		assert.True(t, auth.CheckPassword("hunter2-strong", hash))
		assert.False(t, auth.CheckPassword("hunter2-wrong", hash))
	})

	t.Run("Should salt hashes", func(t *testing.T) {
		h1, _ := auth.HashPassword("hunter2-strong")
		h2, _ := auth.HashPassword("hunter2-strong")
		assert.NotEqual(t, h1, h2)
	})
}

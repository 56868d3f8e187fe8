package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordAndCheckPassword(t *testing.T) {
	t.Run("Hash verifies with correct password", func(t *testing.T) {
		digest, err := HashPassword("correct horse battery staple")
		require.NoError(t, err)
		assert.NotEqual(t, "correct horse battery staple", digest)

		assert.True(t, CheckPassword("correct horse battery staple", digest))
	})

	t.Run("Wrong password is false, not an error", func(t *testing.T) {
		digest, err := HashPassword("password123")
		require.NoError(t, err)

		assert.False(t, CheckPassword("password124", digest))
	})

	t.Run("Hash uses the fixed cost factor", func(t *testing.T) {
		digest, err := HashPassword("password123")
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(digest))
		require.NoError(t, err)
		assert.Equal(t, PasswordCost, cost)
	})
}

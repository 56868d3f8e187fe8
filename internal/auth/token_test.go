package auth

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueTokenAndParseToken(t *testing.T) {
	originalSecret := os.Getenv("JWT_SECRET")
	os.Setenv("JWT_SECRET", "test_jwt_secret")
	defer os.Setenv("JWT_SECRET", originalSecret)

	t.Run("Token carries user ID and email", func(t *testing.T) {
		tokenString, err := IssueToken(42, "user@example.com", TokenTTL)
		require.NoError(t, err)
		assert.NotEmpty(t, tokenString)

		claims, err := ParseToken(tokenString)
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
		assert.Equal(t, "user@example.com", claims.Email)
	})

	t.Run("Token expires exactly TTL after issue", func(t *testing.T) {
		before := time.Now()
		tokenString, err := IssueToken(42, "user@example.com", time.Hour)
		require.NoError(t, err)
		after := time.Now()

		claims, err := ParseToken(tokenString)
		require.NoError(t, err)

		require.NotNil(t, claims.ExpiresAt)
		require.NotNil(t, claims.IssuedAt)

		// exp = iat + 1 час
		assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))

		// точность NumericDate - секунда
		assert.WithinDuration(t, before.Add(time.Hour), claims.ExpiresAt.Time, after.Sub(before)+time.Second)
	})

	t.Run("Expired token is rejected", func(t *testing.T) {
		tokenString, err := IssueToken(42, "user@example.com", -time.Minute)
		require.NoError(t, err)

		_, err = ParseToken(tokenString)
		assert.Error(t, err)
	})

	t.Run("Tampered token is rejected", func(t *testing.T) {
		tokenString, err := IssueToken(42, "user@example.com", time.Hour)
		require.NoError(t, err)

		_, err = ParseToken(tokenString + "x")
		assert.Error(t, err)
	})

	t.Run("Error when JWT_SECRET is not set", func(t *testing.T) {
		os.Unsetenv("JWT_SECRET")
		defer os.Setenv("JWT_SECRET", "test_jwt_secret")

		_, err := IssueToken(42, "user@example.com", time.Hour)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})
}

package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antonk9218/blogapi/internal/user"
	"github.com/antonk9218/blogapi/models"
)

func TestUserMemoryStorage_CreateUser(t *testing.T) {
	t.Run("Successful user creation", func(t *testing.T) {
		storage := NewUserMemoryStorage()

		u := &models.User{
			Email:    "test@example.com",
			Name:     "Test User",
			Password: "hashed-password",
		}

		err := storage.CreateUser(u)
		require.NoError(t, err)
		assert.NotZero(t, u.ID)
		assert.False(t, u.CreatedAt.IsZero())
	})

	t.Run("Duplicate email", func(t *testing.T) {
		storage := NewUserMemoryStorage()

		first := &models.User{Email: "duplicate@example.com", Name: "First", Password: "hash1"}
		require.NoError(t, storage.CreateUser(first))

		second := &models.User{Email: "duplicate@example.com", Name: "Second", Password: "hash2"}
		err := storage.CreateUser(second)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("IDs are sequential", func(t *testing.T) {
		storage := NewUserMemoryStorage()

		first := &models.User{Email: "first@example.com"}
		second := &models.User{Email: "second@example.com"}
		require.NoError(t, storage.CreateUser(first))
		require.NoError(t, storage.CreateUser(second))

		assert.Equal(t, first.ID+1, second.ID)
	})
}

func TestUserMemoryStorage_GetUserByEmail(t *testing.T) {
	t.Run("Existing user", func(t *testing.T) {
		storage := NewUserMemoryStorage()

		created := &models.User{Email: "lookup@example.com", Name: "Test User", Password: "hash"}
		require.NoError(t, storage.CreateUser(created))

		found, err := storage.GetUserByEmail("lookup@example.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, created.Password, found.Password)
	})

	t.Run("Missing user returns ErrUserNotFound", func(t *testing.T) {
		storage := NewUserMemoryStorage()

		_, err := storage.GetUserByEmail("nobody@example.com")
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("Returned record is a copy", func(t *testing.T) {
		storage := NewUserMemoryStorage()

		created := &models.User{Email: "copy@example.com", Name: "Original"}
		require.NoError(t, storage.CreateUser(created))

		found, err := storage.GetUserByEmail("copy@example.com")
		require.NoError(t, err)
		found.Name = "Mutated"

		again, err := storage.GetUserByEmail("copy@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Original", again.Name)
	})
}

func TestUserMemoryStorage_GetUserByID(t *testing.T) {
	t.Run("Existing user", func(t *testing.T) {
		storage := NewUserMemoryStorage()

		created := &models.User{Email: "byid@example.com", Name: "Test User"}
		require.NoError(t, storage.CreateUser(created))

		found, err := storage.GetUserByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Email, found.Email)
	})

	t.Run("Missing user returns ErrUserNotFound", func(t *testing.T) {
		storage := NewUserMemoryStorage()

		_, err := storage.GetUserByID(9999)
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

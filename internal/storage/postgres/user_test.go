package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antonk9218/blogapi/internal/user"
	"github.com/antonk9218/blogapi/models"
)

func TestUserPostgresStorage_CreateUser(t *testing.T) {
	storage := NewUserPostgresStorage()

	t.Run("Successful user creation", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

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

	t.Run("Duplicate email is rejected by the unique index", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		first := &models.User{Email: "duplicate@example.com", Name: "First", Password: "hash1"}
		require.NoError(t, storage.CreateUser(first))

		second := &models.User{Email: "duplicate@example.com", Name: "Second", Password: "hash2"}
		err := storage.CreateUser(second)
		assert.Error(t, err)
	})
}

func TestUserPostgresStorage_GetUserByEmail(t *testing.T) {
	storage := NewUserPostgresStorage()

	t.Run("Existing user", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		created := createTestUser(t, "lookup@example.com")

		found, err := storage.GetUserByEmail("lookup@example.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, created.Name, found.Name)
		// хеш пароля хранится в записи
		assert.Equal(t, created.Password, found.Password)
	})

	t.Run("Missing user returns ErrUserNotFound", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		_, err := storage.GetUserByEmail("nobody@example.com")
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestUserPostgresStorage_GetUserByID(t *testing.T) {
	storage := NewUserPostgresStorage()

	t.Run("Existing user", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		created := createTestUser(t, "byid@example.com")

		found, err := storage.GetUserByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Email, found.Email)
	})

	t.Run("Missing user returns ErrUserNotFound", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		_, err := storage.GetUserByID(9999)
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

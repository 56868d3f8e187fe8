package postgres

import (
	"fmt"
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite" // Импортируем драйвер SQLite
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antonk9218/blogapi/internal/post"
	"github.com/antonk9218/blogapi/internal/user"
	"github.com/antonk9218/blogapi/models"
)

// setupTestDB создает тестовую БД в памяти и выполняет миграции
func setupTestDB(t *testing.T) *gorm.DB {
	// Сохраняем оригинальное соединение (если оно есть)
	oldDB := GetDB()

	// Создаем SQLite в памяти
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err, "Failed to connect to in-memory SQLite")

	// Включаем foreign keys в SQLite
	db.Exec("PRAGMA foreign_keys = ON")
	// Отключаем логирование запросов для тестов
	db.LogMode(false)
	// Выполняем миграцию схемы базы данных
	err = db.AutoMigrate(&models.User{}, &models.Post{}).Error
	require.NoError(t, err, "Failed to migrate database schema")
	// Устанавливаем SQLite в качестве глобальной DB
	InitDBWithConnection(db)

	return oldDB
}

// teardownTestDB восстанавливает оригинальную базу данных
func teardownTestDB(db *gorm.DB) {
	InitDBWithConnection(db)
}

// createTestUser создает тестового пользователя
func createTestUser(t *testing.T, email string) *models.User {
	u := &models.User{
		Email:    email,
		Name:     "Test User",
		Password: "hashed-password",
	}

	err := DB.Create(u).Error
	require.NoError(t, err, "Failed to create test user")
	return u
}

// createTestPost вставляет пост с заданным временем создания напрямую,
// чтобы тест пагинации контролировал порядок
func createTestPost(t *testing.T, userID uint, title string, createdAt time.Time) *models.Post {
	p := &models.Post{
		Title:   title,
		Content: "content of " + title,
		UserID:  userID,
	}
	p.CreatedAt = createdAt
	p.UpdatedAt = createdAt

	err := DB.Create(p).Error
	require.NoError(t, err, "Failed to create test post")
	return p
}

func TestPostPostgresStorage_CreatePost(t *testing.T) {
	storage := NewPostPostgresStorage()

	t.Run("Successful post creation resolves creator", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		u := createTestUser(t, "author@example.com")

		p := &models.Post{
			Title:    "First Post",
			Content:  "Content",
			ImageURL: "images/first.png",
			UserID:   u.ID,
		}

		err := storage.CreatePost(p)
		require.NoError(t, err)
		assert.NotZero(t, p.ID)
		assert.False(t, p.CreatedAt.IsZero())
		assert.Equal(t, u.ID, p.Creator.ID)
		assert.Equal(t, u.Email, p.Creator.Email)
	})

	t.Run("Missing creator rolls back the insert", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		p := &models.Post{
			Title:   "Orphan Post",
			Content: "Content",
			UserID:  9999,
		}

		err := storage.CreatePost(p)
		assert.ErrorIs(t, err, user.ErrUserNotFound)

		// поста в базе быть не должно
		var count int
		require.NoError(t, DB.Model(&models.Post{}).Count(&count).Error)
		assert.Equal(t, 0, count)
	})
}

func TestPostPostgresStorage_GetPostByID(t *testing.T) {
	storage := NewPostPostgresStorage()

	t.Run("Existing post with creator", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		u := createTestUser(t, "author@example.com")
		created := createTestPost(t, u.ID, "Lookup Post", time.Now())

		found, err := storage.GetPostByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Lookup Post", found.Title)
		assert.Equal(t, u.Email, found.Creator.Email)
	})

	t.Run("Missing post returns ErrPostNotFound", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		_, err := storage.GetPostByID(9999)
		assert.ErrorIs(t, err, post.ErrPostNotFound)
	})
}

func TestPostPostgresStorage_GetPostsPage(t *testing.T) {
	storage := NewPostPostgresStorage()

	t.Run("Page window and total count", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		u := createTestUser(t, "author@example.com")

		// 5 постов; Post 5 самый новый
		base := time.Now().Add(-time.Hour)
		for i := 1; i <= 5; i++ {
			createTestPost(t, u.ID, fmt.Sprintf("Post %d", i), base.Add(time.Duration(i)*time.Minute))
		}

		// вторая страница при размере 2 - третий и четвертый по убыванию даты
		posts, total, err := storage.GetPostsPage(2, 2)
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		require.Len(t, posts, 2)
		assert.Equal(t, "Post 3", posts[0].Title)
		assert.Equal(t, "Post 2", posts[1].Title)
		assert.Equal(t, u.Email, posts[0].Creator.Email)
	})

	t.Run("Past-the-end page yields empty list", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		u := createTestUser(t, "author@example.com")
		createTestPost(t, u.ID, "Only Post", time.Now())

		posts, total, err := storage.GetPostsPage(10, 2)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Empty(t, posts)
	})

	t.Run("Page below 1 is treated as the first page", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		u := createTestUser(t, "author@example.com")
		createTestPost(t, u.ID, "Only Post", time.Now())

		posts, _, err := storage.GetPostsPage(0, 2)
		require.NoError(t, err)
		require.Len(t, posts, 1)
	})
}

func TestPostPostgresStorage_UpdatePost(t *testing.T) {
	storage := NewPostPostgresStorage()

	t.Run("Updates fields and refreshes updated_at", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		u := createTestUser(t, "author@example.com")
		created := createTestPost(t, u.ID, "Old Title", time.Now().Add(-time.Hour))

		created.Title = "New Title"
		created.Content = "New content"
		created.ImageURL = "images/new.png"

		err := storage.UpdatePost(created)
		require.NoError(t, err)

		reloaded, err := storage.GetPostByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "New Title", reloaded.Title)
		assert.Equal(t, "New content", reloaded.Content)
		assert.Equal(t, "images/new.png", reloaded.ImageURL)
		assert.True(t, reloaded.UpdatedAt.After(reloaded.CreatedAt))
		// автор не меняется
		assert.Equal(t, u.ID, reloaded.UserID)
	})

	t.Run("Missing post returns ErrPostNotFound", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		p := &models.Post{Title: "Ghost", Content: "Content"}
		p.ID = 9999

		err := storage.UpdatePost(p)
		assert.ErrorIs(t, err, post.ErrPostNotFound)
	})
}

package memory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antonk9218/blogapi/internal/post"
	"github.com/antonk9218/blogapi/internal/user"
	"github.com/antonk9218/blogapi/models"
)

func newTestStorages(t *testing.T) (*UserMemoryStorage, *PostMemoryStorage, *models.User) {
	userStore := NewUserMemoryStorage()
	postStore := NewPostMemoryStorage(userStore)

	author := &models.User{
		Email:    "author@example.com",
		Name:     "Author",
		Password: "hashed-password",
	}
	require.NoError(t, userStore.CreateUser(author))

	return userStore, postStore, author
}

func TestPostMemoryStorage_CreatePost(t *testing.T) {
	t.Run("Successful post creation resolves creator", func(t *testing.T) {
		_, postStore, author := newTestStorages(t)

		p := &models.Post{
			Title:    "First Post",
			Content:  "Content",
			ImageURL: "images/first.png",
			UserID:   author.ID,
		}

		err := postStore.CreatePost(p)
		require.NoError(t, err)
		assert.NotZero(t, p.ID)
		assert.False(t, p.CreatedAt.IsZero())
		assert.Equal(t, author.Email, p.Creator.Email)
	})

	t.Run("Missing creator", func(t *testing.T) {
		_, postStore, _ := newTestStorages(t)

		p := &models.Post{
			Title:   "Orphan Post",
			Content: "Content",
			UserID:  9999,
		}

		err := postStore.CreatePost(p)
		assert.ErrorIs(t, err, user.ErrUserNotFound)

		// пост не должен был сохраниться
		_, total, err := postStore.GetPostsPage(1, 10)
		require.NoError(t, err)
		assert.Equal(t, 0, total)
	})
}

func TestPostMemoryStorage_GetPostByID(t *testing.T) {
	t.Run("Existing post", func(t *testing.T) {
		_, postStore, author := newTestStorages(t)

		created := &models.Post{Title: "Lookup Post", Content: "Content", UserID: author.ID}
		require.NoError(t, postStore.CreatePost(created))

		found, err := postStore.GetPostByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Lookup Post", found.Title)
		assert.Equal(t, author.Email, found.Creator.Email)
	})

	t.Run("Missing post returns ErrPostNotFound", func(t *testing.T) {
		_, postStore, _ := newTestStorages(t)

		_, err := postStore.GetPostByID(9999)
		assert.ErrorIs(t, err, post.ErrPostNotFound)
	})
}

func TestPostMemoryStorage_GetPostsPage(t *testing.T) {
	t.Run("Page window and total count", func(t *testing.T) {
		_, postStore, author := newTestStorages(t)

		// 5 постов; Post 5 создан последним
		for i := 1; i <= 5; i++ {
			p := &models.Post{Title: fmt.Sprintf("Post %d", i), Content: "Content", UserID: author.ID}
			require.NoError(t, postStore.CreatePost(p))
		}

		// вторая страница при размере 2 - третий и четвертый по убыванию даты
		posts, total, err := postStore.GetPostsPage(2, 2)
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		require.Len(t, posts, 2)
		assert.Equal(t, "Post 3", posts[0].Title)
		assert.Equal(t, "Post 2", posts[1].Title)
	})

	t.Run("Past-the-end page yields empty list", func(t *testing.T) {
		_, postStore, author := newTestStorages(t)

		p := &models.Post{Title: "Only Post", Content: "Content", UserID: author.ID}
		require.NoError(t, postStore.CreatePost(p))

		posts, total, err := postStore.GetPostsPage(10, 2)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Empty(t, posts)
	})
}

func TestPostMemoryStorage_UpdatePost(t *testing.T) {
	t.Run("Updates fields and refreshes updated_at", func(t *testing.T) {
		_, postStore, author := newTestStorages(t)

		created := &models.Post{Title: "Old Title", Content: "Old content", UserID: author.ID}
		require.NoError(t, postStore.CreatePost(created))

		created.Title = "New Title"
		created.Content = "New content"
		created.ImageURL = "images/new.png"

		err := postStore.UpdatePost(created)
		require.NoError(t, err)

		reloaded, err := postStore.GetPostByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "New Title", reloaded.Title)
		assert.Equal(t, "New content", reloaded.Content)
		assert.Equal(t, "images/new.png", reloaded.ImageURL)
		assert.True(t, !reloaded.UpdatedAt.Before(reloaded.CreatedAt))
	})

	t.Run("Missing post returns ErrPostNotFound", func(t *testing.T) {
		_, postStore, _ := newTestStorages(t)

		p := &models.Post{Title: "Ghost", Content: "Content"}
		p.ID = 9999

		err := postStore.UpdatePost(p)
		assert.ErrorIs(t, err, post.ErrPostNotFound)
	})
}

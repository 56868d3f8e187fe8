package graph

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antonk9218/blogapi/graph/model"
	"github.com/antonk9218/blogapi/internal/apperr"
	"github.com/antonk9218/blogapi/internal/auth"
	"github.com/antonk9218/blogapi/internal/mocks"
)

func newTestResolver() *Resolver {
	userStore := mocks.NewMockUserStorage()
	return &Resolver{
		UserStore: userStore,
		PostStore: mocks.NewMockPostStorage(userStore),
	}
}

func createUserContext(userID uint) context.Context {
	ctx := context.Background()
	return auth.WithUserID(ctx, userID)
}

// registerUser регистрирует пользователя через резолвер (с настоящим хешированием)
func registerUser(t *testing.T, resolver *Resolver, email, name, password string) *model.User {
	u, err := resolver.Mutation().CreateUser(context.Background(), model.UserInput{
		Email:    email,
		Name:     name,
		Password: password,
	})
	require.NoError(t, err)
	return u
}

func asAppErr(t *testing.T, err error) *apperr.Error {
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	return appErr
}

func fieldNames(appErr *apperr.Error) []string {
	messages := make([]string, 0, len(appErr.Fields))
	for _, f := range appErr.Fields {
		messages = append(messages, f.Field)
	}
	return messages
}

func TestMutationResolver_CreateUser(t *testing.T) {
	t.Run("Successful registration hides the password digest", func(t *testing.T) {
		resolver := newTestResolver()

		u := registerUser(t, resolver, "new@example.com", "New User", "secret123")
		assert.NotEmpty(t, u.ID)
		assert.Equal(t, "new@example.com", u.Email)
		assert.Equal(t, "New User", u.Name)
	})

	t.Run("Malformed email", func(t *testing.T) {
		resolver := newTestResolver()

		_, err := resolver.Mutation().CreateUser(context.Background(), model.UserInput{
			Email:    "not-an-email",
			Name:     "User",
			Password: "secret123",
		})
		appErr := asAppErr(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.Status)
		assert.Contains(t, fieldNames(appErr), "email")
	})

	t.Run("Empty password", func(t *testing.T) {
		resolver := newTestResolver()

		_, err := resolver.Mutation().CreateUser(context.Background(), model.UserInput{
			Email:    "user@example.com",
			Name:     "User",
			Password: "",
		})
		appErr := asAppErr(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.Status)
		assert.Contains(t, fieldNames(appErr), "password")
	})

	t.Run("Both failures are reported together", func(t *testing.T) {
		resolver := newTestResolver()

		_, err := resolver.Mutation().CreateUser(context.Background(), model.UserInput{
			Email:    "not-an-email",
			Name:     "User",
			Password: "",
		})
		appErr := asAppErr(t, err)
		require.Len(t, appErr.Fields, 2)
		assert.Contains(t, fieldNames(appErr), "email")
		assert.Contains(t, fieldNames(appErr), "password")
	})

	t.Run("Duplicate email is a conflict", func(t *testing.T) {
		resolver := newTestResolver()

		registerUser(t, resolver, "taken@example.com", "First", "secret123")

		_, err := resolver.Mutation().CreateUser(context.Background(), model.UserInput{
			Email:    "taken@example.com",
			Name:     "Second",
			Password: "other456",
		})
		appErr := asAppErr(t, err)
		assert.Equal(t, http.StatusConflict, appErr.Status)
		assert.Equal(t, "User exists", appErr.Message)
	})
}

func TestQueryResolver_Login(t *testing.T) {
	originalSecret := os.Getenv("JWT_SECRET")
	os.Setenv("JWT_SECRET", "test_jwt_secret")
	defer os.Setenv("JWT_SECRET", originalSecret)

	t.Run("Successful login issues an hour-long token", func(t *testing.T) {
		resolver := newTestResolver()
		u := registerUser(t, resolver, "login@example.com", "User", "secret123")

		authData, err := resolver.Query().Login(context.Background(), "login@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, u.ID, authData.UserID)

		claims, err := auth.ParseToken(authData.Token)
		require.NoError(t, err)
		assert.Equal(t, "login@example.com", claims.Email)
		require.NotNil(t, claims.ExpiresAt)
		require.NotNil(t, claims.IssuedAt)
		assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
	})

	t.Run("Wrong password does not reveal whether the account exists", func(t *testing.T) {
		resolver := newTestResolver()
		registerUser(t, resolver, "login@example.com", "User", "secret123")

		_, wrongPassErr := resolver.Query().Login(context.Background(), "login@example.com", "wrong")
		wrongPass := asAppErr(t, wrongPassErr)
		assert.Equal(t, http.StatusUnauthorized, wrongPass.Status)

		_, noUserErr := resolver.Query().Login(context.Background(), "nobody@example.com", "wrong")
		noUser := asAppErr(t, noUserErr)
		assert.Equal(t, http.StatusUnauthorized, noUser.Status)

		// одинаковое сообщение в обоих случаях
		assert.Equal(t, wrongPass.Message, noUser.Message)
	})
}

func TestMutationResolver_CreatePost(t *testing.T) {
	t.Run("Successful post creation", func(t *testing.T) {
		resolver := newTestResolver()
		registerUser(t, resolver, "author@example.com", "Author", "secret123")

		ctx := createUserContext(1)

		p, err := resolver.Mutation().CreatePost(ctx, model.PostInput{
			Title:   "Valid Title",
			Content: "Some content",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "Valid Title", p.Title)
		assert.Equal(t, "author@example.com", p.Creator.Email)

		// временные метки в каноническом виде
		_, err = time.Parse(time.RFC3339, p.CreatedAt)
		assert.NoError(t, err)
		_, err = time.Parse(time.RFC3339, p.UpdatedAt)
		assert.NoError(t, err)
	})

	t.Run("Unauthenticated request fails regardless of input", func(t *testing.T) {
		resolver := newTestResolver()

		_, err := resolver.Mutation().CreatePost(context.Background(), model.PostInput{
			Title:   "Perfectly Valid Title",
			Content: "Content",
		})
		appErr := asAppErr(t, err)
		assert.Equal(t, http.StatusUnauthorized, appErr.Status)
	})

	t.Run("Short title is a validation failure", func(t *testing.T) {
		resolver := newTestResolver()
		registerUser(t, resolver, "author@example.com", "Author", "secret123")

		_, err := resolver.Mutation().CreatePost(createUserContext(1), model.PostInput{
			Title:   "Oops",
			Content: "Content",
		})
		appErr := asAppErr(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.Status)
		assert.Contains(t, fieldNames(appErr), "title")
	})

	t.Run("Authenticated but unknown user", func(t *testing.T) {
		resolver := newTestResolver()

		_, err := resolver.Mutation().CreatePost(createUserContext(42), model.PostInput{
			Title:   "Valid Title",
			Content: "Content",
		})
		appErr := asAppErr(t, err)
		assert.Equal(t, http.StatusUnauthorized, appErr.Status)
	})
}

func TestQueryResolver_Posts(t *testing.T) {
	t.Run("Second page of five posts", func(t *testing.T) {
		resolver := newTestResolver()
		registerUser(t, resolver, "author@example.com", "Author", "secret123")
		ctx := createUserContext(1)

		titles := []string{"Post One!", "Post Two!", "Post Three", "Post Four!", "Post Five!"}
		for _, title := range titles {
			_, err := resolver.Mutation().CreatePost(ctx, model.PostInput{Title: title, Content: "Content"})
			require.NoError(t, err)
		}

		page := 2
		result, err := resolver.Query().Posts(ctx, &page)
		require.NoError(t, err)
		assert.Equal(t, 5, result.TotalPosts)
		require.Len(t, result.Posts, 2)
		// третий и четвертый по убыванию даты создания
		assert.Equal(t, "Post Three", result.Posts[0].Title)
		assert.Equal(t, "Post Two!", result.Posts[1].Title)
	})

	t.Run("Page defaults to 1", func(t *testing.T) {
		resolver := newTestResolver()
		registerUser(t, resolver, "author@example.com", "Author", "secret123")
		ctx := createUserContext(1)

		for _, title := range []string{"Older Post", "Newer Post"} {
			_, err := resolver.Mutation().CreatePost(ctx, model.PostInput{Title: title, Content: "Content"})
			require.NoError(t, err)
		}

		result, err := resolver.Query().Posts(ctx, nil)
		require.NoError(t, err)
		require.Len(t, result.Posts, 2)
		assert.Equal(t, "Newer Post", result.Posts[0].Title)
	})

	t.Run("Unauthenticated request", func(t *testing.T) {
		resolver := newTestResolver()

		_, err := resolver.Query().Posts(context.Background(), nil)
		appErr := asAppErr(t, err)
		assert.Equal(t, http.StatusUnauthorized, appErr.Status)
	})
}

func TestQueryResolver_Post(t *testing.T) {
	t.Run("Existing post", func(t *testing.T) {
		resolver := newTestResolver()
		registerUser(t, resolver, "author@example.com", "Author", "secret123")
		ctx := createUserContext(1)

		created, err := resolver.Mutation().CreatePost(ctx, model.PostInput{Title: "Valid Title", Content: "Content"})
		require.NoError(t, err)

		found, err := resolver.Query().Post(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Title, found.Title)
		assert.Equal(t, "author@example.com", found.Creator.Email)
	})

	t.Run("Missing post is 404", func(t *testing.T) {
		resolver := newTestResolver()

		_, err := resolver.Query().Post(createUserContext(1), "9999")
		appErr := asAppErr(t, err)
		assert.Equal(t, http.StatusNotFound, appErr.Status)
	})

	t.Run("Malformed id is 404", func(t *testing.T) {
		resolver := newTestResolver()

		_, err := resolver.Query().Post(createUserContext(1), "not-a-number")
		appErr := asAppErr(t, err)
		assert.Equal(t, http.StatusNotFound, appErr.Status)
	})

	t.Run("Unauthenticated request", func(t *testing.T) {
		resolver := newTestResolver()

		_, err := resolver.Query().Post(context.Background(), "1")
		appErr := asAppErr(t, err)
		assert.Equal(t, http.StatusUnauthorized, appErr.Status)
	})
}

func TestMutationResolver_UpdatePost(t *testing.T) {
	imageURL := func(s string) *string { return &s }

	setupPost := func(t *testing.T) (*Resolver, *model.Post) {
		resolver := newTestResolver()
		registerUser(t, resolver, "author@example.com", "Author", "secret123")

		created, err := resolver.Mutation().CreatePost(createUserContext(1), model.PostInput{
			Title:    "Original Title",
			Content:  "Original content",
			ImageURL: imageURL("images/original.png"),
		})
		require.NoError(t, err)
		return resolver, created
	}

	t.Run("Owner updates title and content", func(t *testing.T) {
		resolver, created := setupPost(t)

		updated, err := resolver.Mutation().UpdatePost(createUserContext(1), created.ID, model.PostInput{
			Title:   "Updated Title",
			Content: "Updated content",
		})
		require.NoError(t, err)
		assert.Equal(t, "Updated Title", updated.Title)
		assert.Equal(t, "Updated content", updated.Content)
	})

	t.Run("Omitted imageUrl preserves the existing one", func(t *testing.T) {
		resolver, created := setupPost(t)

		updated, err := resolver.Mutation().UpdatePost(createUserContext(1), created.ID, model.PostInput{
			Title:   "Updated Title",
			Content: "Updated content",
		})
		require.NoError(t, err)
		assert.Equal(t, "images/original.png", updated.ImageURL)
	})

	t.Run("Supplied imageUrl replaces the existing one", func(t *testing.T) {
		resolver, created := setupPost(t)

		updated, err := resolver.Mutation().UpdatePost(createUserContext(1), created.ID, model.PostInput{
			Title:    "Updated Title",
			Content:  "Updated content",
			ImageURL: imageURL("images/new.png"),
		})
		require.NoError(t, err)
		assert.Equal(t, "images/new.png", updated.ImageURL)
	})

	t.Run("Non-owner is rejected even when authenticated", func(t *testing.T) {
		resolver, created := setupPost(t)
		registerUser(t, resolver, "other@example.com", "Other", "secret123")

		_, err := resolver.Mutation().UpdatePost(createUserContext(2), created.ID, model.PostInput{
			Title:   "Hijacked Title",
			Content: "Content",
		})
		appErr := asAppErr(t, err)
		assert.Equal(t, http.StatusUnauthorized, appErr.Status)
		assert.Equal(t, "Invalid authentication", appErr.Message)
	})

	t.Run("Missing post is 404", func(t *testing.T) {
		resolver := newTestResolver()

		_, err := resolver.Mutation().UpdatePost(createUserContext(1), "9999", model.PostInput{
			Title:   "Valid Title",
			Content: "Content",
		})
		appErr := asAppErr(t, err)
		assert.Equal(t, http.StatusNotFound, appErr.Status)
	})

	t.Run("Unauthenticated request", func(t *testing.T) {
		resolver := newTestResolver()

		_, err := resolver.Mutation().UpdatePost(context.Background(), "1", model.PostInput{
			Title:   "Valid Title",
			Content: "Content",
		})
		appErr := asAppErr(t, err)
		assert.Equal(t, http.StatusUnauthorized, appErr.Status)
	})
}

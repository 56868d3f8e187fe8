package graph

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.70

import (
	"context"
	"errors"
	"fmt"

	"github.com/antonk9218/blogapi/graph/generated"
	"github.com/antonk9218/blogapi/graph/model"
	"github.com/antonk9218/blogapi/internal/apperr"
	"github.com/antonk9218/blogapi/internal/auth"
	"github.com/antonk9218/blogapi/internal/post"
	"github.com/antonk9218/blogapi/internal/user"
	"github.com/antonk9218/blogapi/internal/validation"
	"github.com/antonk9218/blogapi/models"
)

// CreateUser is the resolver for the createUser field.
func (r *mutationResolver) CreateUser(ctx context.Context, userInput model.UserInput) (*model.User, error) {
	// все ошибки валидации собираются и возвращаются разом (не fail-fast)
	var fields []apperr.FieldError
	if !validation.IsEmail(userInput.Email) {
		fields = append(fields, apperr.FieldError{Field: "email", Message: "Email is invalid"})
	}
	if !validation.NotEmpty(userInput.Password) {
		fields = append(fields, apperr.FieldError{Field: "password", Message: "Password invalid"})
	}
	if len(fields) > 0 {
		return nil, apperr.Validation(fields)
	}

	_, err := r.UserStore.GetUserByEmail(userInput.Email)
	if err == nil {
		return nil, apperr.Conflict("User exists")
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return nil, fmt.Errorf("could not check existing user: %w", err)
	}

	hashed, err := auth.HashPassword(userInput.Password)
	if err != nil {
		return nil, err
	}

	newUser := &models.User{
		Email:    userInput.Email,
		Name:     userInput.Name,
		Password: hashed,
	}
	err = r.UserStore.CreateUser(newUser)
	if err != nil {
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	// хеш пароля наружу не отдается
	return toGraphUser(newUser), nil
}

// CreatePost is the resolver for the createPost field.
func (r *mutationResolver) CreatePost(ctx context.Context, postInput model.PostInput) (*model.Post, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, apperr.Unauthorized("Not authenticated")
	}

	fields := validatePostInput(postInput)
	if len(fields) > 0 {
		return nil, apperr.Validation(fields)
	}

	_, err = r.UserStore.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperr.Unauthorized("Invalid user")
		}
		return nil, fmt.Errorf("could not get user: %w", err)
	}

	imageURL := ""
	if postInput.ImageURL != nil {
		imageURL = *postInput.ImageURL
	}

	newPost := &models.Post{
		Title:    postInput.Title,
		Content:  postInput.Content,
		ImageURL: imageURL,
		UserID:   userID,
	}
	err = r.PostStore.CreatePost(newPost)
	if err != nil {
		// автор мог исчезнуть между проверкой и вставкой
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperr.Unauthorized("Invalid user")
		}
		return nil, fmt.Errorf("could not create post: %w", err)
	}

	return toGraphPost(newPost), nil
}

// UpdatePost is the resolver for the updatePost field.
func (r *mutationResolver) UpdatePost(ctx context.Context, id string, postInput model.PostInput) (*model.Post, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, apperr.Unauthorized("Not authenticated")
	}

	postID, err := parseID(id)
	if err != nil {
		return nil, apperr.NotFound("No post found")
	}

	p, err := r.PostStore.GetPostByID(postID)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return nil, apperr.NotFound("No post found")
		}
		return nil, fmt.Errorf("could not get post: %w", err)
	}

	// авторизация: редактировать пост может только его автор
	if p.UserID != userID {
		return nil, apperr.Unauthorized("Invalid authentication")
	}

	fields := validatePostInput(postInput)
	if len(fields) > 0 {
		return nil, apperr.Validation(fields)
	}

	p.Title = postInput.Title
	p.Content = postInput.Content
	// nil означает "поле не передано" - существующая картинка сохраняется
	if postInput.ImageURL != nil {
		p.ImageURL = *postInput.ImageURL
	}

	err = r.PostStore.UpdatePost(p)
	if err != nil {
		return nil, fmt.Errorf("could not update post: %w", err)
	}

	return toGraphPost(p), nil
}

// Login is the resolver for the login field.
func (r *queryResolver) Login(ctx context.Context, email string, password string) (*model.AuthData, error) {
	// единое сообщение об ошибке: по ответу нельзя понять, существует ли аккаунт
	u, err := r.UserStore.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperr.Unauthorized("Incorrect email or password")
		}
		return nil, fmt.Errorf("could not get user: %w", err)
	}

	if !auth.CheckPassword(password, u.Password) {
		return nil, apperr.Unauthorized("Incorrect email or password")
	}

	token, err := auth.IssueToken(u.ID, u.Email, auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("could not issue token: %w", err)
	}

	return &model.AuthData{
		Token:  token,
		UserID: fmt.Sprint(u.ID),
	}, nil
}

// Posts is the resolver for the posts field.
func (r *queryResolver) Posts(ctx context.Context, page *int) (*model.PostPage, error) {
	_, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, apperr.Unauthorized("Not authenticated")
	}

	currentPage := 1
	if page != nil {
		currentPage = *page
	}

	posts, total, err := r.PostStore.GetPostsPage(currentPage, post.PostsPerPage)
	if err != nil {
		return nil, fmt.Errorf("could not get posts: %w", err)
	}

	results := make([]*model.Post, 0, len(posts))
	for _, p := range posts {
		results = append(results, toGraphPost(p))
	}

	return &model.PostPage{
		Posts:      results,
		TotalPosts: total,
	}, nil
}

// Post is the resolver for the post field.
func (r *queryResolver) Post(ctx context.Context, id string) (*model.Post, error) {
	_, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, apperr.Unauthorized("Not authenticated")
	}

	postID, err := parseID(id)
	if err != nil {
		return nil, apperr.NotFound("No post found")
	}

	p, err := r.PostStore.GetPostByID(postID)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			return nil, apperr.NotFound("No post found")
		}
		return nil, fmt.Errorf("could not get post: %w", err)
	}

	return toGraphPost(p), nil
}

// Mutation returns generated.MutationResolver implementation.
func (r *Resolver) Mutation() generated.MutationResolver { return &mutationResolver{r} }

// Query returns generated.QueryResolver implementation.
func (r *Resolver) Query() generated.QueryResolver { return &queryResolver{r} }

type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }

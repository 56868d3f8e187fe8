package graph

import (
	"fmt"
	"strconv"
	"time"

	"github.com/antonk9218/blogapi/graph/model"
	"github.com/antonk9218/blogapi/internal/apperr"
	"github.com/antonk9218/blogapi/internal/validation"
	"github.com/antonk9218/blogapi/models"
)

const minTitleLength = 5

func validatePostInput(input model.PostInput) []apperr.FieldError {
	var fields []apperr.FieldError
	if !validation.MinLength(input.Title, minTitleLength) {
		fields = append(fields, apperr.FieldError{Field: "title", Message: "Title invalid"})
	}
	return fields
}

func parseID(id string) (uint, error) {
	n, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", id, err)
	}
	return uint(n), nil
}

func toGraphUser(u *models.User) *model.User {
	return &model.User{
		ID:    fmt.Sprint(u.ID),
		Email: u.Email,
		Name:  u.Name,
		Posts: []*model.Post{},
	}
}

// toGraphPost сериализует временные метки в каноническом виде (RFC3339, UTC)
func toGraphPost(p *models.Post) *model.Post {
	return &model.Post{
		ID:        fmt.Sprint(p.ID),
		Title:     p.Title,
		Content:   p.Content,
		ImageURL:  p.ImageURL,
		Creator:   toGraphUser(&p.Creator),
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

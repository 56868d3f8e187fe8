package postgres

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/antonk9218/blogapi/internal/post"
	"github.com/antonk9218/blogapi/internal/user"
	"github.com/antonk9218/blogapi/models"
)

type PostPostgresStorage struct{}

func NewPostPostgresStorage() *PostPostgresStorage {
	return &PostPostgresStorage{}
}

// CreatePost проверяет автора и вставляет пост в одной транзакции -
// "осиротевший" пост без существующего автора появиться не может
func (s *PostPostgresStorage) CreatePost(p *models.Post) error {
	tx := DB.Begin()
	if tx.Error != nil {
		return fmt.Errorf("could not begin transaction: %w", tx.Error)
	}

	var creator models.User
	err := tx.First(&creator, p.UserID).Error
	if err != nil {
		tx.Rollback()
		if gorm.IsRecordNotFoundError(err) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("could not check post creator: %w", err)
	}

	err = tx.Create(p).Error
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("could not create post: %w", err)
	}

	err = tx.Commit().Error
	if err != nil {
		return fmt.Errorf("could not commit post creation: %w", err)
	}

	p.Creator = creator
	return nil
}

func (s *PostPostgresStorage) GetPostByID(id uint) (*models.Post, error) {
	var p models.Post
	err := DB.Preload("Creator").First(&p, id).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, post.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not get post by id: %w", err)
	}
	return &p, nil
}

func (s *PostPostgresStorage) GetPostsPage(page, perPage int) ([]*models.Post, int, error) {
	if page < 1 {
		page = 1
	}

	var posts []*models.Post
	err := DB.Preload("Creator").
		Order("created_at DESC, id DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&posts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("could not get posts: %w", err)
	}

	// общее количество постов (для пагинации на клиенте)
	var total int
	err = DB.Model(&models.Post{}).Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("could not count posts: %w", err)
	}

	return posts, total, nil
}

func (s *PostPostgresStorage) UpdatePost(p *models.Post) error {
	now := time.Now()
	res := DB.Model(&models.Post{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"title":      p.Title,
		"content":    p.Content,
		"image_url":  p.ImageURL,
		"updated_at": now,
	})
	if res.Error != nil {
		return fmt.Errorf("could not update post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return post.ErrPostNotFound
	}

	p.UpdatedAt = now
	return nil
}

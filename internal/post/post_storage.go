package post

import (
	"errors"

	"github.com/antonk9218/blogapi/models"
)

// ErrPostNotFound возвращается хранилищем, если поста нет
var ErrPostNotFound = errors.New("post not found")

// PostsPerPage - фиксированный размер страницы выдачи
const PostsPerPage = 2

type PostStorage interface {
	// CreatePost сохраняет пост; проверка автора и вставка выполняются атомарно
	CreatePost(post *models.Post) error
	// GetPostByID возвращает пост с загруженным автором
	GetPostByID(id uint) (*models.Post, error)
	// GetPostsPage возвращает окно постов (сортировка по дате создания, новые
	// первыми) и общее количество постов
	GetPostsPage(page, perPage int) ([]*models.Post, int, error)
	UpdatePost(post *models.Post) error
}

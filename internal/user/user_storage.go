package user

import (
	"errors"

	"github.com/antonk9218/blogapi/models"
)

// ErrUserNotFound возвращается хранилищем, если пользователя нет
var ErrUserNotFound = errors.New("user not found")

type UserStorage interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
}

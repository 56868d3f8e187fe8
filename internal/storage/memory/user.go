package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/antonk9218/blogapi/internal/user"
	"github.com/antonk9218/blogapi/models"
)

type UserMemoryStorage struct {
	mu      sync.Mutex
	users   map[uint]*models.User
	byEmail map[string]uint
	nextID  uint
}

func NewUserMemoryStorage() *UserMemoryStorage {
	return &UserMemoryStorage{
		users:   make(map[uint]*models.User),
		byEmail: make(map[string]uint),
		nextID:  1,
	}
}

func (s *UserMemoryStorage) CreateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[u.Email]; exists {
		return fmt.Errorf("user with email %s already exists", u.Email)
	}

	u.ID = s.nextID
	s.nextID++

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	// храним копию, чтобы вызывающий не мог менять запись напрямую
	stored := *u
	s.users[stored.ID] = &stored
	s.byEmail[stored.Email] = stored.ID

	return nil
}

func (s *UserMemoryStorage) GetUserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}

	u := *s.users[id]
	return &u, nil
}

func (s *UserMemoryStorage) GetUserByID(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}

	u := *stored
	return &u, nil
}

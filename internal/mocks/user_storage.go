package mocks

import (
	"fmt"
	"sync"
	"time"

	"github.com/antonk9218/blogapi/internal/user"
	"github.com/antonk9218/blogapi/models"
)

type MockUserStorage struct {
	mu     sync.Mutex
	users  map[uint]*models.User
	nextID uint
}

func NewMockUserStorage() *MockUserStorage {
	return &MockUserStorage{
		users:  make(map[uint]*models.User),
		nextID: 1,
	}
}

func (m *MockUserStorage) CreateUser(u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Email == u.Email {
			return fmt.Errorf("user with email %s already exists", u.Email)
		}
	}

	u.ID = m.nextID
	m.nextID++

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	stored := *u
	m.users[stored.ID] = &stored
	return nil
}

func (m *MockUserStorage) GetUserByEmail(email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, stored := range m.users {
		if stored.Email == email {
			u := *stored
			return &u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (m *MockUserStorage) GetUserByID(id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}

	u := *stored
	return &u, nil
}

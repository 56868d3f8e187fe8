package mocks

import (
	"sort"
	"sync"
	"time"

	"github.com/antonk9218/blogapi/internal/post"
	"github.com/antonk9218/blogapi/internal/user"
	"github.com/antonk9218/blogapi/models"
)

type MockPostStorage struct {
	mu     sync.Mutex
	posts  map[uint]*models.Post
	nextID uint
	users  user.UserStorage
}

func NewMockPostStorage(users user.UserStorage) *MockPostStorage {
	return &MockPostStorage{
		posts:  make(map[uint]*models.Post),
		nextID: 1,
		users:  users,
	}
}

func (m *MockPostStorage) CreatePost(p *models.Post) error {
	creator, err := m.users.GetUserByID(p.UserID)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	p.ID = m.nextID
	m.nextID++

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Creator = *creator

	stored := *p
	m.posts[stored.ID] = &stored
	return nil
}

func (m *MockPostStorage) GetPostByID(id uint) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.posts[id]
	if !ok {
		return nil, post.ErrPostNotFound
	}

	p := *stored
	return &p, nil
}

func (m *MockPostStorage) GetPostsPage(page, perPage int) ([]*models.Post, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if page < 1 {
		page = 1
	}

	all := make([]*models.Post, 0, len(m.posts))
	for _, stored := range m.posts {
		p := *stored
		all = append(all, &p)
	}

	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})

	total := len(all)

	start := (page - 1) * perPage
	if start >= total {
		return []*models.Post{}, total, nil
	}

	end := start + perPage
	if end > total {
		end = total
	}

	return all[start:end], total, nil
}

func (m *MockPostStorage) UpdatePost(p *models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.posts[p.ID]
	if !ok {
		return post.ErrPostNotFound
	}

	stored.Title = p.Title
	stored.Content = p.Content
	stored.ImageURL = p.ImageURL
	stored.UpdatedAt = time.Now()

	*p = *stored
	return nil
}

package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/antonk9218/blogapi/internal/post"
	"github.com/antonk9218/blogapi/internal/user"
	"github.com/antonk9218/blogapi/models"
)

type PostMemoryStorage struct {
	mu     sync.Mutex
	posts  map[uint]*models.Post
	nextID uint // Для хранения актуального ID (можно было использовать UUID)
	users  user.UserStorage
}

// NewPostMemoryStorage принимает хранилище пользователей, чтобы
// разрешать автора поста при создании
func NewPostMemoryStorage(users user.UserStorage) *PostMemoryStorage {
	return &PostMemoryStorage{
		posts:  make(map[uint]*models.Post),
		nextID: 1,
		users:  users,
	}
}

func (s *PostMemoryStorage) CreatePost(p *models.Post) error {
	// проверяем автора до вставки - пост без автора появиться не должен
	creator, err := s.users.GetUserByID(p.UserID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID
	s.nextID++

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Creator = *creator

	stored := *p
	s.posts[stored.ID] = &stored

	return nil
}

func (s *PostMemoryStorage) GetPostByID(id uint) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.posts[id]
	if !ok {
		return nil, post.ErrPostNotFound
	}

	p := *stored
	return &p, nil
}

func (s *PostMemoryStorage) GetPostsPage(page, perPage int) ([]*models.Post, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if page < 1 {
		page = 1
	}

	all := make([]*models.Post, 0, len(s.posts))
	for _, stored := range s.posts {
		p := *stored
		all = append(all, &p)
	}

	// новые посты первыми; при равном времени - больший ID первым
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

func (s *PostMemoryStorage) UpdatePost(p *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.posts[p.ID]
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

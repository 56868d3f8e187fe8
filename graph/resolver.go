package graph

import (
	"github.com/antonk9218/blogapi/internal/post"
	"github.com/antonk9218/blogapi/internal/user"
)

// Resolver служит корневой точкой для всех резолверов.
// Здесь можно внедрять зависимости, например хранилище.
type Resolver struct {
	PostStore post.PostStorage
	UserStore user.UserStorage
}

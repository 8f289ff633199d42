package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/service/models"
)

// InMemoryRepository keeps records in a map. Used by tests and by the
// "memory" backend where durability is not wanted.
type InMemoryRepository struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]models.User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return nil, common.ErrorAlreadyExists
	}

	stored := *user
	stored.Salt = append([]byte(nil), user.Salt...)
	r.users[user.Username] = stored
	return user, nil
}

func (r *InMemoryRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[username]
	if !ok {
		return nil, common.ErrorNotFound
	}

	out := stored
	out.Salt = append([]byte(nil), stored.Salt...)
	return &out, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, username)
	return nil
}

package sessions

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/service/models"
)

// InMemoryRepository keeps sessions in maps keyed by token, with a secondary
// index by username to enforce the single-session policy.
type InMemoryRepository struct {
	mu      sync.Mutex
	byToken map[string]models.Session
	byUser  map[string]string // username -> token
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byToken: make(map[string]models.Session),
		byUser:  make(map[string]string),
	}
}

func (r *InMemoryRepository) Save(ctx context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.byUser[session.Username]; ok {
		delete(r.byToken, prev)
	}
	r.byToken[session.Token] = *session
	r.byUser[session.Username] = session.Token
	return nil
}

func (r *InMemoryRepository) Find(ctx context.Context, token string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byToken[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := s
	return &out, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.byToken[token]; ok {
		delete(r.byToken, token)
		if r.byUser[s.Username] == token {
			delete(r.byUser, s.Username)
		}
	}
	return nil
}

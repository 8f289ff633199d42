package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/authkeeper/internal/dbx"
	"github.com/dmitrijs2005/authkeeper/internal/service/repositories/sessions"
	"github.com/dmitrijs2005/authkeeper/internal/service/repositories/users"
)

// InMemoryRepositoryManager vends map-backed repositories. The DBTX argument
// is ignored; there is no database and nothing to migrate.
type InMemoryRepositoryManager struct {
	users    *users.InMemoryRepository
	sessions *sessions.InMemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:    users.NewInMemoryRepository(),
		sessions: sessions.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Sessions(db dbx.DBTX) sessions.Repository {
	return m.sessions
}

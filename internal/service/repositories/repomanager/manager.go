package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/authkeeper/internal/dbx"
	"github.com/dmitrijs2005/authkeeper/internal/service/repositories/sessions"
	"github.com/dmitrijs2005/authkeeper/internal/service/repositories/users"
)

// RepositoryManager vends repository implementations bound to a database
// handle (or transaction) and knows how to prepare the schema.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
}

package sessions

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/internal/dbx"
	"github.com/dmitrijs2005/authkeeper/internal/service/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, session *models.Session) error {
	query :=
		`INSERT INTO sessions (token, username, issued_at, expires_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (username) DO UPDATE
		 SET token = excluded.token,
		     issued_at = excluded.issued_at,
		     expires_at = excluded.expires_at
		 `

	_, err := r.db.ExecContext(ctx, query,
		session.Token, session.Username, session.IssuedAt.Unix(), expiryUnix(session))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Find(ctx context.Context, token string) (*models.Session, error) {
	query :=
		`SELECT token, username, issued_at, expires_at FROM sessions
		 WHERE token = ?
		 `

	return scanSession(r.db.QueryRowContext(ctx, query, token))
}

func (r *SQLiteRepository) Delete(ctx context.Context, token string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

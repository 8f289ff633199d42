package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/dbx"
	"github.com/dmitrijs2005/authkeeper/internal/service/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, session *models.Session) error {
	query :=
		`INSERT INTO sessions (token, username, issued_at, expires_at)
		 VALUES ($1, $2, $3, $4)
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

func (r *PostgresRepository) Find(ctx context.Context, token string) (*models.Session, error) {
	query :=
		`SELECT token, username, issued_at, expires_at FROM sessions
		 WHERE token = $1
		 `

	return scanSession(r.db.QueryRowContext(ctx, query, token))
}

func (r *PostgresRepository) Delete(ctx context.Context, token string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// expiryUnix maps the "no expiry" zero time to 0 for storage.
func expiryUnix(s *models.Session) int64 {
	if s.ExpiresAt.IsZero() {
		return 0
	}
	return s.ExpiresAt.Unix()
}

func scanSession(row rowScanner) (*models.Session, error) {
	s := &models.Session{}
	var issued, expires int64

	err := row.Scan(&s.Token, &s.Username, &issued, &expires)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	s.IssuedAt = time.Unix(issued, 0).UTC()
	if expires != 0 {
		s.ExpiresAt = time.Unix(expires, 0).UTC()
	}
	return s, nil
}

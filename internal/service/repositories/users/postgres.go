package users

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/dbx"
	"github.com/dmitrijs2005/authkeeper/internal/service/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (id, username, role, password_hash, salt, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, string(user.Role), user.PasswordHash,
		hex.EncodeToString(user.Salt), user.CreatedAt.Unix())

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT id, username, role, password_hash, salt, created_at FROM users
		 WHERE username = $1
		 `

	row := r.db.QueryRowContext(ctx, query, username)
	return scanUser(row)
}

func (r *PostgresRepository) Delete(ctx context.Context, username string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE username = $1`, username); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	user := &models.User{}
	var role, saltHex string
	var createdAt int64

	err := row.Scan(&user.ID, &user.Username, &role, &user.PasswordHash, &saltHex, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return nil, fmt.Errorf("corrupt salt for %s: %w", user.Username, err)
	}

	user.Role = models.Role(role)
	user.Salt = salt
	user.CreatedAt = unixTime(createdAt)
	return user, nil
}

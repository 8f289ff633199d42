// Package sessions persists active session records. One session per
// username: Save atomically replaces any previous session owned by the same
// user.
package sessions

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/service/models"
)

type Repository interface {
	// Save stores the session, displacing the username's previous session
	// if one exists.
	Save(ctx context.Context, session *models.Session) error

	// Find returns common.ErrorNotFound for unknown tokens.
	Find(ctx context.Context, token string) (*models.Session, error)

	// Delete removes a session by token. Unknown tokens are not an error.
	Delete(ctx context.Context, token string) error
}

// Package users persists credential records. Implementations must make
// Create atomic: either the full record is written or nothing is, and a
// duplicate username is reported as common.ErrorAlreadyExists.
package users

import (
	"context"

	"github.com/dmitrijs2005/authkeeper/internal/service/models"
)

type Repository interface {
	// Create stores a new user record. Returns common.ErrorAlreadyExists if
	// the username is taken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByUsername returns common.ErrorNotFound when no record exists.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// Delete removes a record by username. Unknown usernames are not an error.
	Delete(ctx context.Context, username string) error
}

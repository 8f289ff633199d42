// Package sessions issues, validates, and revokes session tokens for
// authenticated users.
package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/service/models"
	sessionsrepo "github.com/dmitrijs2005/authkeeper/internal/service/repositories/sessions"
)

// tokenSize is the number of random bytes per token; the hex-encoded token
// is twice as long. 32 bytes (256 bits) makes guessing infeasible.
const tokenSize = 32

// Manager owns session lifetime. One active session per user: issuing a new
// session displaces the previous one.
type Manager struct {
	repo sessionsrepo.Repository
	ttl  time.Duration // 0 means sessions live until logout
}

// NewManager constructs a Manager. ttl of 0 disables expiry.
func NewManager(repo sessionsrepo.Repository, ttl time.Duration) *Manager {
	return &Manager{repo: repo, ttl: ttl}
}

// Issue creates a session for username with a fresh random token.
func (m *Manager) Issue(ctx context.Context, username string, now time.Time) (*models.Session, error) {
	token, err := common.MakeRandHexString(tokenSize)
	if err != nil {
		return nil, common.ErrorInternal
	}

	session := &models.Session{
		Token:    token,
		Username: username,
		IssuedAt: now,
	}
	if m.ttl > 0 {
		session.ExpiresAt = now.Add(m.ttl)
	}

	if err := m.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorStoreUnavailable, err)
	}
	return session, nil
}

// Validate resolves a token to its owning username. Unknown tokens yield
// common.ErrSessionNotFound; expired sessions are removed and yield
// common.ErrSessionExpired.
func (m *Manager) Validate(ctx context.Context, token string, now time.Time) (string, error) {
	session, err := m.repo.Find(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrSessionNotFound
		}
		return "", fmt.Errorf("%w: %v", common.ErrorStoreUnavailable, err)
	}

	if session.Expired(now) {
		_ = m.repo.Delete(ctx, token)
		return "", common.ErrSessionExpired
	}

	return session.Username, nil
}

// Revoke removes a session. Revoking an unknown or already-revoked token is
// not an error.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	if err := m.repo.Delete(ctx, token); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStoreUnavailable, err)
	}
	return nil
}

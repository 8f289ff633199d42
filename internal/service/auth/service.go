// Package auth contains the authentication controller: it orchestrates
// registration and login, composing the password policy, hasher, lockout
// tracker, credential store, and session manager into one state machine.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/dbx"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/service/config"
	"github.com/dmitrijs2005/authkeeper/internal/service/hashing"
	"github.com/dmitrijs2005/authkeeper/internal/service/lockout"
	"github.com/dmitrijs2005/authkeeper/internal/service/models"
	"github.com/dmitrijs2005/authkeeper/internal/service/policy"
	"github.com/dmitrijs2005/authkeeper/internal/service/repositories/repomanager"
	"github.com/dmitrijs2005/authkeeper/internal/service/sessions"
	"github.com/dmitrijs2005/authkeeper/internal/timex"
	"github.com/google/uuid"
)

// Service provides the authentication operations:
//   - Register: validate, hash, and store new credentials
//   - Login: enforce lockout, verify credentials, issue a session
//   - Logout: revoke a session (idempotent)
//   - WhoAmI / AccessToken / DeleteAccount: session-authorized operations
type Service struct {
	db       *sql.DB // nil for the in-memory backend
	repos    repomanager.RepositoryManager
	hasher   *hashing.Hasher
	tracker  *lockout.Tracker
	sessions *sessions.Manager
	clock    timex.Clock
	logger   logging.Logger

	secretKey           []byte
	accessTokenValidity time.Duration

	// mu serializes login's check-then-act sequence (eligibility check,
	// verify, record failure/success) so concurrent attempts for one
	// username cannot race past the lockout. A single lock is enough for
	// the expected contention of a local tool.
	mu sync.Mutex
}

// NewService constructs the controller from its collaborators and config.
// db may be nil when repos is the in-memory manager.
func NewService(db *sql.DB, repos repomanager.RepositoryManager, hasher *hashing.Hasher,
	tracker *lockout.Tracker, sessionManager *sessions.Manager,
	cfg *config.Config, clock timex.Clock, logger logging.Logger) *Service {
	return &Service{
		db:                  db,
		repos:               repos,
		hasher:              hasher,
		tracker:             tracker,
		sessions:            sessionManager,
		clock:               clock,
		logger:              logger,
		secretKey:           []byte(cfg.SecretKey),
		accessTokenValidity: cfg.AccessTokenValidityDuration,
	}
}

// Register validates the username, password, and role, then stores a new
// credential record. Policy and store errors surface unchanged:
// common.ErrInvalidUsername, common.ErrWeakPassword, common.ErrInvalidRole,
// common.ErrorAlreadyExists.
func (s *Service) Register(ctx context.Context, username, password, roleName string) error {
	if err := policy.ValidateUsername(username); err != nil {
		return err
	}
	if err := policy.ValidatePassword(password); err != nil {
		return err
	}
	role, ok := models.ParseRole(roleName)
	if !ok {
		return common.ErrInvalidRole
	}

	digest, salt := s.hasher.Hash(password)
	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Role:         role,
		PasswordHash: digest,
		Salt:         salt,
		CreatedAt:    s.clock.Now().UTC(),
	}

	if _, err := s.repos.Users(s.db).Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return err
		}
		return fmt.Errorf("%w: %v", common.ErrorStoreUnavailable, err)
	}

	s.logger.Info(ctx, "user registered", "username", username, "role", string(role))
	return nil
}

// Login verifies credentials and issues a session.
//
// The sequence is: lockout eligibility check (short-circuits with
// *lockout.LockedError), credential fetch and verify (failures, including
// unknown usernames, record a failed attempt and return
// common.ErrInvalidCredentials), then failure-count reset and session issue.
func (s *Service) Login(ctx context.Context, username, password string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now().UTC()

	if err := s.tracker.CheckEligible(username, now); err != nil {
		s.logger.Warn(ctx, "login rejected, account locked", "username", username)
		return nil, err
	}

	user, err := s.repos.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Unknown usernames behave exactly like wrong passwords so the
			// response does not leak which accounts exist.
			s.recordFailure(ctx, username, now)
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorStoreUnavailable, err)
	}

	if !s.hasher.Verify(password, user.PasswordHash, user.Salt) {
		s.recordFailure(ctx, username, now)
		return nil, common.ErrInvalidCredentials
	}

	s.tracker.RecordSuccess(username)

	session, err := s.sessions.Issue(ctx, username, now)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "login successful", "username", username)
	return session, nil
}

// Logout revokes the session. Idempotent: revoking an unknown token is fine.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

// WhoAmI resolves a session token to its user record. If the account was
// deleted after the session was issued, the session is treated as revoked.
func (s *Service) WhoAmI(ctx context.Context, token string) (*models.User, error) {
	username, err := s.sessions.Validate(ctx, token, s.clock.Now().UTC())
	if err != nil {
		return nil, err
	}

	user, err := s.repos.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorStoreUnavailable, err)
	}
	return user, nil
}

// AccessToken mints a signed, short-lived access token for the owner of a
// valid session.
func (s *Service) AccessToken(ctx context.Context, token string) (string, error) {
	now := s.clock.Now().UTC()

	username, err := s.sessions.Validate(ctx, token, now)
	if err != nil {
		return "", err
	}

	accessToken, err := sessions.GenerateAccessToken(username, s.secretKey, s.accessTokenValidity, now)
	if err != nil {
		return "", common.ErrorInternal
	}
	return accessToken, nil
}

// DeleteAccount removes the credential record and session of the session's
// owner. For SQL backends both writes happen in one transaction.
func (s *Service) DeleteAccount(ctx context.Context, token string) error {
	username, err := s.sessions.Validate(ctx, token, s.clock.Now().UTC())
	if err != nil {
		return err
	}

	if s.db != nil {
		err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
			if err := s.repos.Users(tx).Delete(ctx, username); err != nil {
				return err
			}
			return s.repos.Sessions(tx).Delete(ctx, token)
		})
	} else {
		if err = s.repos.Users(s.db).Delete(ctx, username); err == nil {
			err = s.repos.Sessions(s.db).Delete(ctx, token)
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStoreUnavailable, err)
	}

	s.tracker.RecordSuccess(username)
	s.logger.Info(ctx, "account deleted", "username", username)
	return nil
}

func (s *Service) recordFailure(ctx context.Context, username string, now time.Time) {
	s.tracker.RecordFailure(username, now)
	s.logger.Warn(ctx, "failed login attempt",
		"username", username, "failed_count", s.tracker.FailedCount(username))
}

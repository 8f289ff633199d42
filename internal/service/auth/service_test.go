package auth

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/service/config"
	"github.com/dmitrijs2005/authkeeper/internal/service/hashing"
	"github.com/dmitrijs2005/authkeeper/internal/service/lockout"
	"github.com/dmitrijs2005/authkeeper/internal/service/models"
	"github.com/dmitrijs2005/authkeeper/internal/service/repositories/repomanager"
	"github.com/dmitrijs2005/authkeeper/internal/service/sessions"
	"github.com/stretchr/testify/require"
)

const (
	testUser     = "alice"
	testPassword = "Sup3r!pass"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestService(t *testing.T, sessionTTL time.Duration) (*Service, *fakeClock) {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SessionValidityDuration = sessionTTL

	clock := &fakeClock{now: time.Unix(1700000000, 0).UTC()}
	repos := repomanager.NewInMemoryRepositoryManager()
	hasher := hashing.NewHasherWithParams(hashing.Params{Time: 1, MemoryK: 64, Threads: 1, KeyLen: 16})
	tracker := lockout.NewTracker(cfg.MaxLoginAttempts, cfg.LockoutDuration)
	manager := sessions.NewManager(repos.Sessions(nil), cfg.SessionValidityDuration)

	svc := NewService(nil, repos, hasher, tracker, manager, cfg, clock, &logging.NopLogger{})
	return svc, clock
}

func register(t *testing.T, svc *Service) {
	t.Helper()
	require.NoError(t, svc.Register(context.Background(), testUser, testPassword, "user"))
}

func TestRegisterLogin_RoundTrip(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()
	register(t, svc)

	session, err := svc.Login(ctx, testUser, testPassword)
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)

	user, err := svc.WhoAmI(ctx, session.Token)
	require.NoError(t, err)
	require.Equal(t, testUser, user.Username)
	require.Equal(t, models.RoleUser, user.Role)
}

func TestRegister_PolicyViolations(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
		role     string
		want     error
	}{
		{"username too short", "ab", testPassword, "user", common.ErrInvalidUsername},
		{"username bad chars", "ali ce!", testPassword, "user", common.ErrInvalidUsername},
		{"password too short", testUser, "short", "user", common.ErrWeakPassword},
		{"password missing classes", testUser, "alllowercase1", "user", common.ErrWeakPassword},
		{"unknown role", testUser, testPassword, "root", common.ErrInvalidRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, svc.Register(ctx, tt.username, tt.password, tt.role), tt.want)
		})
	}

	// Nothing was stored: login still reports invalid credentials.
	_, err := svc.Login(ctx, testUser, testPassword)
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestRegister_DuplicateKeepsOriginal(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()
	register(t, svc)

	err := svc.Register(ctx, testUser, "Other1!pass", "admin")
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	// The original credentials still work; the rejected ones do not.
	_, err = svc.Login(ctx, testUser, testPassword)
	require.NoError(t, err)
	_, err = svc.Login(ctx, testUser, "Other1!pass")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := newTestService(t, 0)

	_, err := svc.Login(context.Background(), "ghost", testPassword)
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_LockoutAfterThreeFailures(t *testing.T) {
	svc, clock := newTestService(t, 0)
	ctx := context.Background()
	register(t, svc)

	for i := 0; i < lockout.DefaultMaxAttempts; i++ {
		_, err := svc.Login(ctx, testUser, "Wrong1!pass")
		require.ErrorIs(t, err, common.ErrInvalidCredentials)
	}

	// Locked now, even with the correct password.
	_, err := svc.Login(ctx, testUser, testPassword)
	var locked *lockout.LockedError
	require.ErrorAs(t, err, &locked)
	require.Equal(t, lockout.DefaultCooldown, locked.RetryAfter)

	// Still locked one second before the cooldown ends.
	clock.Advance(lockout.DefaultCooldown - time.Second)
	_, err = svc.Login(ctx, testUser, testPassword)
	require.ErrorAs(t, err, &locked)

	// Cooldown elapsed: the counter resets and login succeeds.
	clock.Advance(2 * time.Second)
	_, err = svc.Login(ctx, testUser, testPassword)
	require.NoError(t, err)
}

func TestLogin_UnknownUserCountsTowardLockout(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()

	for i := 0; i < lockout.DefaultMaxAttempts; i++ {
		_, err := svc.Login(ctx, "ghost", testPassword)
		require.ErrorIs(t, err, common.ErrInvalidCredentials)
	}

	_, err := svc.Login(ctx, "ghost", testPassword)
	var locked *lockout.LockedError
	require.ErrorAs(t, err, &locked)
}

func TestLogin_SuccessResetsFailureCount(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()
	register(t, svc)

	for i := 0; i < lockout.DefaultMaxAttempts-1; i++ {
		_, err := svc.Login(ctx, testUser, "Wrong1!pass")
		require.ErrorIs(t, err, common.ErrInvalidCredentials)
	}

	_, err := svc.Login(ctx, testUser, testPassword)
	require.NoError(t, err)

	// The slate is clean: the next failure is attempt one, not three.
	_, err = svc.Login(ctx, testUser, "Wrong1!pass")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	_, err = svc.Login(ctx, testUser, testPassword)
	require.NoError(t, err)
}

func TestLogout_Idempotent(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()
	register(t, svc)

	session, err := svc.Login(ctx, testUser, testPassword)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, session.Token))
	require.NoError(t, svc.Logout(ctx, session.Token))

	_, err = svc.WhoAmI(ctx, session.Token)
	require.ErrorIs(t, err, common.ErrSessionNotFound)
}

func TestWhoAmI_ExpiredSession(t *testing.T) {
	svc, clock := newTestService(t, time.Hour)
	ctx := context.Background()
	register(t, svc)

	session, err := svc.Login(ctx, testUser, testPassword)
	require.NoError(t, err)

	clock.Advance(time.Hour + time.Second)
	_, err = svc.WhoAmI(ctx, session.Token)
	require.ErrorIs(t, err, common.ErrSessionExpired)

	// Expired sessions are removed, not merely rejected.
	_, err = svc.WhoAmI(ctx, session.Token)
	require.ErrorIs(t, err, common.ErrSessionNotFound)
}

func TestLogin_SecondLoginDisplacesFirstSession(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()
	register(t, svc)

	first, err := svc.Login(ctx, testUser, testPassword)
	require.NoError(t, err)
	second, err := svc.Login(ctx, testUser, testPassword)
	require.NoError(t, err)
	require.NotEqual(t, first.Token, second.Token)

	_, err = svc.WhoAmI(ctx, first.Token)
	require.ErrorIs(t, err, common.ErrSessionNotFound)
	_, err = svc.WhoAmI(ctx, second.Token)
	require.NoError(t, err)
}

func TestAccessToken(t *testing.T) {
	svc, clock := newTestService(t, 0)
	ctx := context.Background()
	register(t, svc)

	// Access tokens are verified against the wall clock when parsed, so
	// they must be minted at the real time rather than the fixture epoch.
	clock.now = time.Now().UTC()

	session, err := svc.Login(ctx, testUser, testPassword)
	require.NoError(t, err)

	accessToken, err := svc.AccessToken(ctx, session.Token)
	require.NoError(t, err)

	username, err := sessions.UsernameFromAccessToken(accessToken, []byte("secretKey"))
	require.NoError(t, err)
	require.Equal(t, testUser, username)

	_, err = svc.AccessToken(ctx, "no-such-token")
	require.ErrorIs(t, err, common.ErrSessionNotFound)
}

func TestDeleteAccount(t *testing.T) {
	svc, _ := newTestService(t, 0)
	ctx := context.Background()
	register(t, svc)

	session, err := svc.Login(ctx, testUser, testPassword)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(ctx, session.Token))

	// The session is gone along with the account.
	_, err = svc.WhoAmI(ctx, session.Token)
	require.ErrorIs(t, err, common.ErrSessionNotFound)

	// The username is free again.
	_, err = svc.Login(ctx, testUser, testPassword)
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	require.NoError(t, svc.Register(ctx, testUser, testPassword, "user"))
}

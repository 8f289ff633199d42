package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

func TestPostgresManager_VendsRepositories(t *testing.T) {
	m := NewPostgresRepositoryManager()
	require.NotNil(t, m.Users(nil))
	require.NotNil(t, m.Sessions(nil))
}

func TestSQLiteManager_VendsRepositories(t *testing.T) {
	m := NewSQLiteRepositoryManager()
	require.NotNil(t, m.Users(nil))
	require.NotNil(t, m.Sessions(nil))
}

func TestInMemoryManager_SharedInstances(t *testing.T) {
	m := NewInMemoryRepositoryManager()
	require.Same(t, m.Users(nil), m.Users(nil))
	require.Same(t, m.Sessions(nil), m.Sessions(nil))
	require.NoError(t, m.RunMigrations(context.Background(), nil))
}

func TestRunMigrations_PropagatesError(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	boom := errors.New("boom")
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return boom
	}

	err := NewPostgresRepositoryManager().RunMigrations(context.Background(), nil)
	require.ErrorIs(t, err, boom)
}

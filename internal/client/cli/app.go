package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/authkeeper/internal/filex"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/service/auth"
	"github.com/dmitrijs2005/authkeeper/internal/service/config"
	"github.com/dmitrijs2005/authkeeper/internal/service/hashing"
	"github.com/dmitrijs2005/authkeeper/internal/service/lockout"
	"github.com/dmitrijs2005/authkeeper/internal/service/repositories/repomanager"
	"github.com/dmitrijs2005/authkeeper/internal/service/sessions"
	"github.com/dmitrijs2005/authkeeper/internal/timex"
)

// dataDirName holds the SQLite database next to the binary's working
// directory, owner-only.
const dataDirName = "data"

// App wires the configuration, storage backend, and authentication service
// together and drives the interactive session.
type App struct {
	config  *config.Config
	service *auth.Service
	db      *sql.DB // nil for the memory backend

	// current session; empty token means not logged in
	token    string
	userName string

	reader *bufio.Reader
}

// NewApp opens the configured storage backend, runs migrations, and builds
// the service stack.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	var (
		db    *sql.DB
		repos repomanager.RepositoryManager
		err   error
	)

	switch cfg.Backend {
	case config.BackendMemory:
		repos = repomanager.NewInMemoryRepositoryManager()

	case config.BackendSQLite:
		dir, dirErr := filex.EnsureDataDir(dataDirName)
		if dirErr != nil {
			return nil, dirErr
		}
		db, err = sql.Open("sqlite", filepath.Join(dir, cfg.DatabaseDSN))
		repos = repomanager.NewSQLiteRepositoryManager()

	case config.BackendPostgres:
		db, err = sql.Open("pgx", cfg.DatabaseDSN)
		repos = repomanager.NewPostgresRepositoryManager()

	default:
		return nil, fmt.Errorf("unknown backend: %s", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := repos.RunMigrations(ctx, db); err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	tracker := lockout.NewTracker(cfg.MaxLoginAttempts, cfg.LockoutDuration)
	manager := sessions.NewManager(repos.Sessions(db), cfg.SessionValidityDuration)
	clock := timex.NewSystemClock()

	service := auth.NewService(db, repos, hashing.NewHasher(), tracker, manager, cfg, clock, logger)

	return &App{
		config:  cfg,
		service: service,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.db != nil {
			_ = a.db.Close()
		}
	}()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.userName
	}
	return "not logged in"
}

package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   storage backend: sqlite | postgres | memory
//	-d string   SQLite file path or PostgreSQL DSN
//	-s string   access-token HMAC secret key
//	-e int      session validity, minutes (0 = until logout)
//	-t int      access token validity, minutes
//	-m int      failed attempts before lockout
//	-l int      lockout duration, minutes
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. Duration
// flags are accepted as integers in minutes.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-d", "-s", "-e", "-t", "-m", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Backend, "b", config.Backend, "storage backend (sqlite|postgres|memory)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN or file path")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionValidity := fs.Int("e", int(config.SessionValidityDuration.Minutes()), "session validity (in minutes, 0 = until logout)")
	accessTokenValidity := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")

	fs.IntVar(&config.MaxLoginAttempts, "m", config.MaxLoginAttempts, "failed attempts before lockout")
	lockout := fs.Int("l", int(config.LockoutDuration.Minutes()), "lockout duration (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Only flags that were actually passed may override: re-applying the
	// minute-granular defaults would truncate finer-grained values set by
	// the environment or JSON layers.
	passed := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { passed[f.Name] = true })

	if passed["e"] {
		config.SessionValidityDuration = time.Duration(*sessionValidity) * time.Minute
	}
	if passed["t"] {
		config.AccessTokenValidityDuration = time.Duration(*accessTokenValidity) * time.Minute
	}
	if passed["l"] {
		config.LockoutDuration = time.Duration(*lockout) * time.Minute
	}
}

// Package config handles configuration for the authentication service,
// including defaults, environment overlay, JSON overlay, and command-line
// flags.
package config

import "time"

// Backend selects the storage engine for users and sessions.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config holds runtime settings.
//
// Fields:
//   - Backend: storage backend (sqlite | postgres | memory).
//   - DatabaseDSN: SQLite file path or PostgreSQL DSN, depending on Backend.
//   - SecretKey: HMAC secret for signing access tokens (HS256). Do not use
//     the development default outside tests.
//   - SessionValidityDuration: session lifetime; 0 means until logout.
//   - AccessTokenValidityDuration: lifetime of signed access tokens.
//   - MaxLoginAttempts / LockoutDuration: failed-attempt lockout policy.
type Config struct {
	Backend                     string
	DatabaseDSN                 string
	SecretKey                   string
	SessionValidityDuration     time.Duration
	AccessTokenValidityDuration time.Duration
	MaxLoginAttempts            int
	LockoutDuration             time.Duration
}

// LoadDefaults populates Config with sensible local defaults.
// NOTE: SecretKey is insecure and should be overridden.
func (c *Config) LoadDefaults() {
	c.Backend = BackendSQLite
	c.DatabaseDSN = "authkeeper.db"
	c.SecretKey = "secretKey"
	c.SessionValidityDuration = 0
	c.AccessTokenValidityDuration = 15 * time.Minute
	c.MaxLoginAttempts = 3
	c.LockoutDuration = 5 * time.Minute
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (including an optional .env file), an optional JSON
// file, and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

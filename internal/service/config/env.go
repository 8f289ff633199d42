package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from AUTHKEEPER_* environment variables.
// A .env file in the working directory is loaded first if present; variables
// already set in the real environment win over the file.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("AUTHKEEPER_BACKEND"); v != "" {
		config.Backend = v
	}
	if v := os.Getenv("AUTHKEEPER_DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("AUTHKEEPER_SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("AUTHKEEPER_SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.SessionValidityDuration = d
		}
	}
	if v := os.Getenv("AUTHKEEPER_ACCESS_TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
	if v := os.Getenv("AUTHKEEPER_MAX_LOGIN_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.MaxLoginAttempts = n
		}
	}
	if v := os.Getenv("AUTHKEEPER_LOCKOUT_DURATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.LockoutDuration = d
		}
	}
}

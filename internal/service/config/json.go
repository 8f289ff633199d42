package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/authkeeper/internal/flagx"
	"github.com/dmitrijs2005/authkeeper/internal/timex"
)

// JsonConfig is the DTO for reading JSON configuration files. Interval
// fields use timex.Duration, which accepts both strings such as "5m" and
// integer nanoseconds. After unmarshalling, set fields are copied into the
// runtime Config.
type JsonConfig struct {
	Backend                     *string         `json:"backend"`
	DatabaseDSN                 *string         `json:"database_dsn"`
	SecretKey                   *string         `json:"secret_key"`
	SessionValidityDuration     *timex.Duration `json:"session_validity_duration"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	MaxLoginAttempts            *int            `json:"max_login_attempts"`
	LockoutDuration             *timex.Duration `json:"lockout_duration"`
}

// parseJson loads configuration from the JSON file named by the -c/-config
// flag, if any. Absent fields keep their current values. An unreadable or
// invalid file panics: a config file that was explicitly requested must not
// be silently skipped.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Backend != nil {
		config.Backend = *c.Backend
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.SessionValidityDuration != nil {
		config.SessionValidityDuration = c.SessionValidityDuration.Duration
	}
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.MaxLoginAttempts != nil {
		config.MaxLoginAttempts = *c.MaxLoginAttempts
	}
	if c.LockoutDuration != nil {
		config.LockoutDuration = c.LockoutDuration.Duration
	}
}

// ABOUTME: Centralized configuration for corpusprep
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// Store backends understood by storage.Open.
const (
	BackendSQLite = "sqlite"
	BackendCharm  = "charm"
)

// Config holds all configuration for the corpusprep tools. Command-line
// flags take precedence over these values.
type Config struct {
	// Dataset store settings
	StoreBackend string `env:"CORPUSPREP_STORE" envDefault:"sqlite"`
	DBPath       string `env:"CORPUSPREP_DB_PATH"`

	// Charm settings
	CharmHost      string        `env:"CHARM_HOST" envDefault:"cloud.charm.sh"`
	CharmDBName    string        `env:"CHARM_DB" envDefault:"corpusprep"`
	AutoSync       bool          `env:"CHARM_AUTO_SYNC" envDefault:"true"`
	SyncRetries    int           `env:"CORPUSPREP_SYNC_RETRIES" envDefault:"3"`
	SyncRetryDelay time.Duration `env:"CORPUSPREP_SYNC_RETRY_DELAY" envDefault:"500ms"`

	// Formatter settings
	InputPath  string `env:"CORPUSPREP_INPUT" envDefault:"corpusSkills.txt"`
	OutputPath string `env:"CORPUSPREP_OUTPUT" envDefault:"corpusSkills.jsonl"`
	Timezone   string `env:"CORPUSPREP_TZ"`

	// Partitioner settings
	Fraction float64 `env:"CORPUSPREP_FRACTION" envDefault:"0.2"`
	Seed     int64   `env:"CORPUSPREP_SEED" envDefault:"0"`

	// Logging
	LogLevel  string `env:"CORPUSPREP_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"CORPUSPREP_LOG_FORMAT" envDefault:"text"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendSQLite, BackendCharm:
	default:
		return fmt.Errorf("CORPUSPREP_STORE must be %q or %q, got %q", BackendSQLite, BackendCharm, c.StoreBackend)
	}
	if c.Fraction <= 0 || c.Fraction >= 1 {
		return fmt.Errorf("CORPUSPREP_FRACTION must be in (0, 1), got %f", c.Fraction)
	}
	if c.SyncRetries < 0 || c.SyncRetries > 10 {
		return fmt.Errorf("CORPUSPREP_SYNC_RETRIES must be 0-10, got %d", c.SyncRetries)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("CORPUSPREP_LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone. An empty value means the local system zone,
// which is how the timestamp bounds were originally interpreted.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("CORPUSPREP_TZ: %w", err)
	}
	return loc, nil
}

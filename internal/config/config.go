// Package config loads process settings from the environment and game
// options from a YAML file.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application
type Config struct {
	Redis RedisConfig `envPrefix:"REDIS_"`

	// OptionsFile is the YAML game options file; logging settings are
	// read from the same file unless LogConfigFile says otherwise.
	OptionsFile   string `env:"TALENTS_OPTIONS_FILE" envDefault:"talents.yaml"`
	LogConfigFile string `env:"LOG_CONFIG_FILE"`

	// Seed fixes the dice; zero picks a random seed
	Seed   int64  `env:"TALENTS_SEED"`
	Sprint bool   `env:"TALENTS_SPRINT"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// URL is a redis:// URL; empty keeps players in memory
	URL string        `env:"URL"`
	TTL time.Duration `env:"TTL" envDefault:"0s"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.LogConfigFile == "" {
		cfg.LogConfigFile = cfg.OptionsFile
	}
	if cfg.Redis.TTL < 0 {
		return nil, fmt.Errorf("REDIS_TTL must not be negative, got %s", cfg.Redis.TTL)
	}

	return cfg, nil
}

package app

import (
	"errors"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the portal.
type Config struct {
	AppEnv string `envconfig:"APP_ENV" default:"development"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// RatesPath points at a JSON rate card overriding the embedded
	// defaults. Empty means use the embedded table.
	RatesPath string `envconfig:"RATES_PATH" default:""`

	Currency string `envconfig:"CURRENCY" default:"KWD"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.Currency == "" {
		return nil, errors.New("currency must be provided")
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

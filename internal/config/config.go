// Package config provides configuration management for the inventory simulator.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Default configuration values.
const (
	DefaultLogLevel       = "info"
	DefaultDays           = 2
	DefaultMetricsEnabled = true
)

// Environment variable names.
const (
	EnvLogLevel       = "APP_LOG_LEVEL"
	EnvDays           = "APP_DAYS"
	EnvInventoryPath  = "APP_INVENTORY_PATH"
	EnvMetricsEnabled = "APP_METRICS_ENABLED"
)

// Config holds the application configuration.
type Config struct {
	LogLevel string `env:"APP_LOG_LEVEL" envDefault:"info"`
	// Days is the number of days to simulate.
	Days int `env:"APP_DAYS" envDefault:"2"`
	// InventoryPath points at a YAML fixture; empty selects the built-in stock.
	InventoryPath  string `env:"APP_INVENTORY_PATH"`
	MetricsEnabled bool   `env:"APP_METRICS_ENABLED" envDefault:"true"`
}

// Validation errors.
var (
	ErrInvalidLogLevel = errors.New("log level must be one of: debug, info, warn, error")
	ErrInvalidDays     = errors.New("days must not be negative")
)

// Load reads configuration from environment variables with defaults.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("loading config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return ErrInvalidLogLevel
	}

	if c.Days < 0 {
		return ErrInvalidDays
	}

	return nil
}

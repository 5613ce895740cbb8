// Package config reads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Motion levels.
const (
	MotionFull    = "full"
	MotionReduced = "reduced"
	MotionOff     = "off"
)

// Config controls runtime behavior for the TUI and CLI.
type Config struct {
	DBPath     string `env:"EDGEFINDER_DB"`
	LogLevel   string `env:"EDGEFINDER_LOG_LEVEL" envDefault:"warn"`
	LogFile    string `env:"EDGEFINDER_LOG_FILE"`
	Motion     string `env:"EDGEFINDER_MOTION" envDefault:"full"`
	CatalogDir string `env:"EDGEFINDER_CATALOG_DIR"`
	NoStore    bool   `env:"EDGEFINDER_NO_STORE"`
}

// DefaultConfig returns the settings used when the environment is empty.
func DefaultConfig() Config {
	return Config{
		LogLevel: "warn",
		Motion:   MotionFull,
	}
}

// Load reads .env (when present) and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse reads the process environment only.
func Parse() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate normalizes empty fields and rejects unknown values.
func (c *Config) Validate() error {
	c.Motion = strings.ToLower(strings.TrimSpace(c.Motion))
	switch c.Motion {
	case "", MotionFull, MotionReduced, MotionOff:
	default:
		return fmt.Errorf("invalid motion level %q", c.Motion)
	}
	if c.Motion == "" {
		c.Motion = MotionFull
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	return nil
}

// Instant reports whether animations should be skipped.
func (c Config) Instant() bool {
	return c.Motion == MotionOff
}

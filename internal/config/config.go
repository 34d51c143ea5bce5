// Package config loads and saves the calculator's configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/codefionn/rechenwerk/internal/consts"
)

// Config represents application configuration
type Config struct {
	AngleUnit    string `json:"angle_unit"` // "degrees" or "radians"
	HistoryLimit int    `json:"history_limit"`
	LogLevel     string `json:"log_level"` // debug, info, warn, error, none
	LogPath      string `json:"-"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		AngleUnit:    "degrees",
		HistoryLimit: consts.DefaultHistoryLimit,
		LogLevel:     "none",
	}
}

// GetConfigPath returns the path of the configuration file, honoring the
// user config directory of the platform.
func GetConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return "rechenwerk.json"
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "rechenwerk", "config.json")
}

// Load reads the configuration from path. A missing file yields the default
// configuration without error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.AngleUnit != "degrees" && cfg.AngleUnit != "radians" {
		cfg.AngleUnit = "degrees"
	}
	if cfg.HistoryLimit < 0 {
		cfg.HistoryLimit = 0
	}

	return cfg, nil
}

// Save writes the configuration to path, creating parent directories as
// needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

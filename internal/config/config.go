// Package config loads tabula's YAML configuration from the user's
// config directory, filling missing values with defaults.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// UndoSeconds is how long an archived card stays undoable.
	UndoSeconds int `yaml:"undo_seconds"`

	Theme       Theme       `yaml:"theme"`
	KeyMappings KeyMappings `yaml:"key_mappings"`
}

// UndoWindow returns the configured undo window as a duration.
func (c *Config) UndoWindow() time.Duration {
	return time.Duration(c.UndoSeconds) * time.Second
}

// Load loads config from the user's config directory. Returns the
// default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return Default(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()
	return &config, nil
}

// Save saves the config to the user's config directory.
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file.
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tabula", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tabula", "config.yaml"), nil
}

// Default returns the configuration with every value at its
// default.
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// applyDefaults fills in missing configuration with defaults.
func (c *Config) applyDefaults() {
	if c.UndoSeconds <= 0 {
		c.UndoSeconds = 5
	}
	c.Theme.applyDefaults()
	c.KeyMappings.applyDefaults()
}

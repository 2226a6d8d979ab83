// Package config provides unified configuration loading for neurots.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// NeuroTSConfig contains all neurots configuration settings.
type NeuroTSConfig struct {
	// Growth contains the defaults of the grow command.
	Growth GrowthConfig `json:"growth" yaml:"growth"`

	// Store selects where grown morphologies are kept.
	Store StoreConfig `json:"store" yaml:"store"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// GrowthConfig holds the defaults applied when grow flags are not set.
type GrowthConfig struct {
	// Seed is used when --seed is not given.
	Seed int64 `json:"seed" yaml:"seed"`
}

// StoreConfig selects the morphology store backend.
type StoreConfig struct {
	// Kind is "fs", "sqlite" or "memory".
	Kind string `json:"kind" yaml:"kind"`

	// Path is the output directory (fs) or database file (sqlite).
	// Supports ${VAR} syntax for env vars.
	Path string `json:"path" yaml:"path"`
}

// LoggingConfig configures the logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" logs every bifurcation of the growth engine.
	Level string `json:"level" yaml:"level"`
}

// Default returns a NeuroTSConfig with sensible defaults.
func Default() *NeuroTSConfig {
	return &NeuroTSConfig{
		Growth: GrowthConfig{
			Seed: 0,
		},
		Store: StoreConfig{
			Kind: "fs",
			Path: "morphologies",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from path, or from ~/.neurots/config.yaml when
// path is empty, then applies environment variables.
// Order: defaults -> config file -> environment variables
func Load(path string) (*NeuroTSConfig, error) {
	config := Default()

	if path == "" {
		if homeDir, err := os.UserHomeDir(); err == nil {
			candidate := filepath.Join(homeDir, ".neurots", "config.yaml")
			if _, statErr := os.Stat(candidate); statErr == nil {
				path = candidate
			}
		}
	}

	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		config = fileConfig
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*NeuroTSConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	config.Store.Path = expandEnvVars(config.Store.Path)

	return config, nil
}

// Validate checks that the configuration is valid.
func (c *NeuroTSConfig) Validate() error {
	validStores := map[string]bool{"fs": true, "sqlite": true, "memory": true}
	if !validStores[c.Store.Kind] {
		return fmt.Errorf("invalid store: %s (valid: fs, sqlite, memory)", c.Store.Kind)
	}

	if c.Store.Kind != "memory" && c.Store.Path == "" {
		return fmt.Errorf("store path is required for the %s store", c.Store.Kind)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *NeuroTSConfig) {
	if v := os.Getenv("NEUROTS_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.Growth.Seed = n
		}
	}

	if v := os.Getenv("NEUROTS_STORE"); v != "" {
		config.Store.Kind = v
	}

	if v := os.Getenv("NEUROTS_STORE_PATH"); v != "" {
		config.Store.Path = expandEnvVars(v)
	}

	if v := os.Getenv("NEUROTS_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
}

// expandEnvVars expands ${VAR} patterns in a string with environment variable values.
func expandEnvVars(s string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	return os.Expand(s, os.Getenv)
}

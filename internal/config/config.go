// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"unitcalc/internal/errors"
	"unitcalc/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Format contains result rendering configuration
	Format FormatConfig `json:"format"`

	// Units contains unit catalog overrides
	Units UnitsConfig `json:"units"`

	// Eval contains evaluation limits
	Eval EvalConfig `json:"eval"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// FormatConfig contains rendering settings
type FormatConfig struct {
	// Default is the formatter name applied to literals (dec, hex, bin, oct, exp, si)
	Default string `json:"default"`

	// Precision is the number of decimal places, -1 for shortest round-trip
	Precision int32 `json:"precision"`

	// NoColor disables ANSI colors in terminal output
	NoColor bool `json:"no_color"`
}

// UnitsConfig contains unit settings
type UnitsConfig struct {
	// UserScales overrides the unscale factor of catalog units by symbol
	UserScales map[string]float64 `json:"user_scales,omitempty"`
}

// EvalConfig contains evaluation settings
type EvalConfig struct {
	// MaxWorkers bounds concurrent evaluation of independent expressions
	MaxWorkers int `json:"max_workers"`

	// TimeoutMillis is the deadline for a batch of evaluations, 0 disables it
	TimeoutMillis int `json:"timeout_ms"`

	// HistorySize is the number of results kept by the repl
	HistorySize int `json:"history_size"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Format: FormatConfig{
			Default:   "dec",
			Precision: -1,
		},
		Units: UnitsConfig{
			UserScales: map[string]float64{},
		},
		Eval: EvalConfig{
			MaxWorkers:    4,
			TimeoutMillis: 5000,
			HistorySize:   100,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns the config location in the user's home directory
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".unitcalc.json")
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Wrapf(errors.TypeConfig, err, "failed to read config %s", path)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "failed to parse config %s", path)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks values that cannot be corrected silently
func (c *Config) Validate() error {
	for symbol, factor := range c.Units.UserScales {
		if factor == 0 {
			return errors.Config("invalid user scale", errors.Input("scale for "+symbol+" must be non-zero"))
		}
	}
	if c.Eval.MaxWorkers <= 0 {
		logging.Warn("max_workers must be positive, evaluating sequentially", zap.Int("max_workers", c.Eval.MaxWorkers))
		c.Eval.MaxWorkers = 1
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}

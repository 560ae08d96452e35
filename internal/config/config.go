// Package config loads the engine's optional configuration file and sets
// up the application logger. Everything has a working default: a host may
// run with no config file at all.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rshade/footprint-engine/internal/engine"
)

// Config is the on-disk configuration shape.
type Config struct {
	// Policy overrides the engine's calculation constants. Zero-valued
	// fields keep their defaults.
	Policy engine.Policy `yaml:"policy"`

	// LogLevel is a zerolog level name ("debug", "info", ...). Empty
	// means info.
	LogLevel string `yaml:"log_level"`
}

// Default returns a config with all defaults applied.
func Default() *Config {
	return &Config{
		Policy:   engine.DefaultPolicy(),
		LogLevel: "info",
	}
}

// Load reads and parses the YAML config at path. An empty path returns
// the defaults; a missing or malformed file is an error so typos in
// deployment do not silently fall back.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Policy.GridFactor < 0 {
		return fmt.Errorf("policy.grid_factor must not be negative, got %v", c.Policy.GridFactor)
	}
	if c.Policy.ReductionRate < 0 || c.Policy.ReductionRate > 1 {
		return fmt.Errorf("policy.reduction_rate must be in [0,1], got %v", c.Policy.ReductionRate)
	}
	if c.Policy.ProjectionMonths < 0 {
		return fmt.Errorf("policy.projection_months must not be negative, got %v", c.Policy.ProjectionMonths)
	}
	return nil
}

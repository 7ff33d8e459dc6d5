// Package config loads the benchmark harness settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/quickwritereader/bytebuffer/compare"
	"github.com/quickwritereader/bytebuffer/logging"
)

type Log struct {
	Backend string `yaml:"backend"`
	Level   string `yaml:"level"`
}

type Config struct {
	// Iterations is the number of reset+write and reset+read cycles.
	Iterations int `yaml:"iterations"`
	// InitialCapacity is the writer's starting buffer size in bytes.
	InitialCapacity int `yaml:"initial_capacity"`
	// Pooled takes writer buffers from the shared pool.
	Pooled bool `yaml:"pooled"`
	// Compare lists the other codecs to run against the same payload.
	Compare []string `yaml:"compare"`
	// PrintDecoded prints every decoded array after the run.
	PrintDecoded bool `yaml:"print_decoded"`
	Log          Log  `yaml:"log"`
}

// Default runs 10000 cycles into a 1 MiB writer.
func Default() Config {
	return Config{
		Iterations:      10000,
		InitialCapacity: 1024 << 10,
		PrintDecoded:    true,
		Log: Log{
			Backend: logging.BackendZap,
			Level:   "info",
		},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping the values of absent keys.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	return cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.Iterations <= 0 {
		errs = append(errs, fmt.Errorf("iterations must be positive, got %d", c.Iterations))
	}
	if c.InitialCapacity < 0 {
		errs = append(errs, fmt.Errorf("initial_capacity must not be negative, got %d", c.InitialCapacity))
	}
	for _, name := range c.Compare {
		if !slices.Contains(compare.Names(), name) {
			errs = append(errs, fmt.Errorf("unknown codec %q (known: %v)", name, compare.Names()))
		}
	}
	if !slices.Contains(logging.Backends, c.Log.Backend) {
		errs = append(errs, fmt.Errorf("unknown log backend %q", c.Log.Backend))
	}
	if !logging.ValidLevel(c.Log.Level) {
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Log.Level))
	}
	return errors.Join(errs...)
}

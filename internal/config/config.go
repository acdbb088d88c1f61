// Package config holds the planner's YAML-backed configuration: search
// limits, verbosity, and watch-mode debounce.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the planner's top-level configuration.
type Config struct {
	// Search bounds a planning run's optional deadline or step budget.
	Search SearchConfig `yaml:"search"`

	// Logging controls the categorized zap loggers (internal/logging).
	Logging LoggingConfig `yaml:"logging"`

	// Watch controls the fsnotify replan loop (cmd/planner watch).
	Watch WatchConfig `yaml:"watch"`
}

// SearchConfig bounds a single PlanForCondition call.
type SearchConfig struct {
	MaxDepth string `yaml:"max_depth_steps"`
	MaxSteps string `yaml:"max_search_steps"`
	Deadline string `yaml:"deadline"`
}

// LoggingConfig controls verbosity and trace rendering.
type LoggingConfig struct {
	Verbose     bool   `yaml:"verbose"`
	TraceFormat string `yaml:"trace_format"` // "text" or "yaml"
}

// WatchConfig controls cmd/planner watch's debounce.
type WatchConfig struct {
	Debounce string `yaml:"debounce"`
}

// DefaultConfig mirrors planner.DefaultLimits and a conservative watch
// debounce.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			MaxDepth: "64",
			MaxSteps: "10000",
			Deadline: "30s",
		},
		Logging: LoggingConfig{
			Verbose:     false,
			TraceFormat: "text",
		},
		Watch: WatchConfig{
			Debounce: "300ms",
		},
	}
}

// Load reads path as YAML, falling back to DefaultConfig when the file does
// not exist — absence means defaults, not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes c to path as YAML, creating parent directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PLANNER_VERBOSE"); v == "1" || v == "true" {
		c.Logging.Verbose = true
	}
	if v := os.Getenv("PLANNER_TRACE_FORMAT"); v != "" {
		c.Logging.TraceFormat = v
	}
	if v := os.Getenv("PLANNER_DEADLINE"); v != "" {
		c.Search.Deadline = v
	}
}

// GetMaxDepth parses Search.MaxDepth, falling back to 64 on a malformed
// value rather than failing the whole config load.
func (c *Config) GetMaxDepth() int {
	n, err := parseIntDefault(c.Search.MaxDepth, 64)
	if err != nil {
		return 64
	}
	return n
}

// GetMaxSteps parses Search.MaxSteps, falling back to 10000.
func (c *Config) GetMaxSteps() int {
	n, err := parseIntDefault(c.Search.MaxSteps, 10000)
	if err != nil {
		return 10000
	}
	return n
}

// GetDeadline returns Search.Deadline as a duration, falling back to 30s.
func (c *Config) GetDeadline() time.Duration {
	d, err := time.ParseDuration(c.Search.Deadline)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// GetDebounce returns Watch.Debounce as a duration, falling back to 300ms.
func (c *Config) GetDebounce() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 300 * time.Millisecond
	}
	return d
}

func parseIntDefault(s string, fallback int) (int, error) {
	if s == "" {
		return fallback, nil
	}
	var n int
	_, err := fmt.Sscanf(s, "%d", &n)
	if err != nil {
		return fallback, err
	}
	return n, nil
}

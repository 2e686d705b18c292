// Package config provides configuration loading and validation for the matcher.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/job-matcher/internal/engine"
	"github.com/jonathan/job-matcher/internal/scoring"
	"github.com/jonathan/job-matcher/internal/weights"
)

// Config is the matcher configuration that can be loaded from a JSON file.
// All fields are optional; missing values use the engine defaults.
type Config struct {
	// Scoring
	Weights    *weights.Snapshot   `json:"weights,omitempty"`    // Startup weight snapshot
	Thresholds *scoring.Thresholds `json:"thresholds,omitempty"` // Quality gate thresholds

	// Batch ranking
	GroupSize      int `json:"group_size,omitempty"`       // Jobs scored concurrently per group
	TopK           int `json:"top_k,omitempty"`            // Results kept after ranking
	GroupTimeoutMS int `json:"group_timeout_ms,omitempty"` // Per-group scoring deadline

	// Collaborators
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL URL for feedback/snapshot storage

	// Behavior
	Verbose  bool `json:"verbose,omitempty"`   // Enable debug logging
	JSONLogs bool `json:"json_logs,omitempty"` // Emit JSON-encoded logs
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Weights != nil {
		for _, w := range c.Weights.Values() {
			if w < 0 {
				return fmt.Errorf("config error: weights must be non-negative")
			}
		}
	}
	if c.Thresholds != nil {
		if c.Thresholds.MinimumScore < 0 || c.Thresholds.MinimumScore > 1 {
			return fmt.Errorf("config error: 'minimum_score' must be in [0,1]")
		}
		if c.Thresholds.SkillsMinimum < 0 || c.Thresholds.SkillsMinimum > 1 {
			return fmt.Errorf("config error: 'skills_minimum' must be in [0,1]")
		}
		if c.Thresholds.SalaryTolerance < 0 {
			return fmt.Errorf("config error: 'salary_tolerance' must be non-negative")
		}
	}
	if c.GroupSize < 0 {
		return fmt.Errorf("config error: 'group_size' must be non-negative")
	}
	if c.TopK < 0 {
		return fmt.Errorf("config error: 'top_k' must be non-negative")
	}
	if c.GroupTimeoutMS < 0 {
		return fmt.Errorf("config error: 'group_timeout_ms' must be non-negative")
	}
	return nil
}

// EngineOptions maps the configuration onto engine options, leaving zero
// values for the engine defaults to fill in.
func (c *Config) EngineOptions() engine.Options {
	opts := engine.Options{
		GroupSize:    c.GroupSize,
		TopK:         c.TopK,
		GroupTimeout: time.Duration(c.GroupTimeoutMS) * time.Millisecond,
	}
	if c.Weights != nil {
		opts.Weights = *c.Weights
	}
	if c.Thresholds != nil {
		opts.Thresholds = *c.Thresholds
	}
	return opts
}

// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Run parameters
	EventID         string  `json:"event_id,omitempty"`         // Event to run matching for
	SessionCount    int     `json:"session_count,omitempty"`    // Number of rotation rounds
	CompanyWeight   float64 `json:"company_weight,omitempty"`   // Weight of the recruiter grade (0.0-1.0)
	CandidateWeight float64 `json:"candidate_weight,omitempty"` // Weight of the candidate stars (0.0-1.0)
	PinsPath        string  `json:"pins,omitempty"`             // Path to a special-interviews JSON file

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
// Required fields are checked by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.SessionCount < 0 {
		return fmt.Errorf("config error: 'session_count' must be non-negative")
	}
	if c.CompanyWeight < 0 || c.CompanyWeight > 1 {
		return fmt.Errorf("config error: 'company_weight' must be within 0.0-1.0")
	}
	if c.CandidateWeight < 0 || c.CandidateWeight > 1 {
		return fmt.Errorf("config error: 'candidate_weight' must be within 0.0-1.0")
	}
	if c.PinsPath != "" {
		if _, err := os.Stat(c.PinsPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: pins file not found: %s", c.PinsPath)
		}
	}
	return nil
}

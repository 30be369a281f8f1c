// Package config provides configuration loading and validation for the server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the server configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or environment
// variables.
type Config struct {
	Port     int    `json:"port,omitempty"`      // HTTP listen port
	Fixtures string `json:"fixtures,omitempty"`  // Path to a fixtures YAML file (embedded defaults when empty)
	TagRules string `json:"tag_rules,omitempty"` // Path to a tag ruleset JSON file (built-in rules when empty)
	Catalog  string `json:"catalog,omitempty"`   // Path to a course-suggestion catalog JSON file
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
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}

	for _, p := range []string{c.Fixtures, c.TagRules, c.Catalog} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return fmt.Errorf("config error: file not found: %s", p)
		}
	}

	return nil
}

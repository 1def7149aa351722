// Package config provides configuration loading and validation for the CLI.
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
	// Inputs
	Profile string `json:"profile,omitempty"` // Path to profile JSON file
	Website string `json:"website,omitempty"` // Portfolio website URL for integration

	// GitHub
	GitHubBaseURL     string `json:"github_base_url,omitempty"`     // Override for the GitHub API base URL
	GitHubToken       string `json:"github_token,omitempty"`        // Token for authenticated API requests
	GitHubTimeoutSecs int    `json:"github_timeout_secs,omitempty"` // GitHub request timeout in seconds

	// Caching
	CacheTTLHours int `json:"cache_ttl_hours,omitempty"` // Freshness window for fetched pages and analyses

	// Behavior
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key
	UseBrowser bool   `json:"use_browser,omitempty"` // Use headless browser for SPA portfolio sites
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed debug information

	// Server
	Port int `json:"port,omitempty"` // HTTP server listen port
}

// DefaultConfig returns the built-in defaults applied when neither the
// config file nor CLI flags set a value.
func DefaultConfig() Config {
	return Config{
		GitHubBaseURL:     "https://api.github.com",
		GitHubTimeoutSecs: 10,
		CacheTTLHours:     24,
		Port:              8080,
	}
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate numeric ranges
	if c.GitHubTimeoutSecs < 0 {
		return fmt.Errorf("config error: 'github_timeout_secs' must be non-negative")
	}
	if c.CacheTTLHours < 0 {
		return fmt.Errorf("config error: 'cache_ttl_hours' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	// Validate file paths exist (if specified)
	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.Website == "" {
		result.Website = defaults.Website
	}
	if result.GitHubBaseURL == "" {
		result.GitHubBaseURL = defaults.GitHubBaseURL
	}
	if result.GitHubToken == "" {
		result.GitHubToken = defaults.GitHubToken
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Int fields: use default if zero
	if result.GitHubTimeoutSecs == 0 {
		result.GitHubTimeoutSecs = defaults.GitHubTimeoutSecs
	}
	if result.CacheTTLHours == 0 {
		result.CacheTTLHours = defaults.CacheTTLHours
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

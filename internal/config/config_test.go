package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"website": "https://samdev.github.io",
		"github_token": "ghp_test",
		"cache_ttl_hours": 6,
		"port": 9090,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://samdev.github.io", cfg.Website)
	assert.Equal(t, "ghp_test", cfg.GitHubToken)
	assert.Equal(t, 6, cfg.CacheTTLHours)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{
		CacheTTLHours: -1,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cache_ttl_hours")
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{Port: 70000}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_MissingProfileFile(t *testing.T) {
	cfg := &Config{Profile: "/nonexistent/profile.json"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "profile file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		GitHubTimeoutSecs: 10,
		CacheTTLHours:     24,
		Port:              8080,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestDefaultConfig(t *testing.T) {
	defaults := DefaultConfig()

	assert.Equal(t, "https://api.github.com", defaults.GitHubBaseURL)
	assert.Equal(t, 10, defaults.GitHubTimeoutSecs)
	assert.Equal(t, 24, defaults.CacheTTLHours)
	assert.Equal(t, 8080, defaults.Port)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := DefaultConfig()

	partial := Config{
		Website: "https://samdev.github.io",
		Port:    9090,
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "https://samdev.github.io", merged.Website)
	assert.Equal(t, 9090, merged.Port)

	// Default values should fill in empty fields
	assert.Equal(t, "https://api.github.com", merged.GitHubBaseURL)
	assert.Equal(t, 10, merged.GitHubTimeoutSecs)
	assert.Equal(t, 24, merged.CacheTTLHours)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Website:     "https://samdev.github.io",
		GitHubToken: "ghp_test",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "https://samdev.github.io", merged.Website)
	assert.Equal(t, "ghp_test", merged.GitHubToken)
}

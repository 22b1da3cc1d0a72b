// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags.
type Config struct {
	// Resolution
	TargetRole string   `json:"target_role,omitempty"` // Role the caller is pursuing; drives contact/job ranking
	PageTypes  []string `json:"page_types,omitempty" validate:"dive,oneof=about careers news team"`
	// ManualURLs maps page type to an exact URL, bypassing discovery.
	ManualURLs map[string]string `json:"manual_urls,omitempty" validate:"dive,url"`
	RenderAll  bool              `json:"render_all,omitempty"` // Browser-render every page type, not just careers

	// Fetching
	NoCache          bool `json:"no_cache,omitempty"`          // Bypass the page cache
	CacheTTLHours    int  `json:"cache_ttl_hours,omitempty"`   // Page cache freshness window
	RequestDelayMS   int  `json:"request_delay_ms,omitempty"`  // Minimum delay between fetches to one host
	BatchConcurrency int  `json:"batch_concurrency,omitempty"` // Parallel companies in batch mode

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
}

var validate = validator.New()

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

// LoadEnv reads a .env file if present and fills API key and database URL
// from the environment when the config leaves them empty. A missing .env file
// is not an error.
func (c *Config) LoadEnv() {
	_ = godotenv.Load()

	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
}

// Validate checks that the configuration has valid values.
// Note: required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.CacheTTLHours < 0 {
		return fmt.Errorf("config error: 'cache_ttl_hours' must be non-negative")
	}
	if c.RequestDelayMS < 0 {
		return fmt.Errorf("config error: 'request_delay_ms' must be non-negative")
	}
	if c.BatchConcurrency < 0 {
		return fmt.Errorf("config error: 'batch_concurrency' must be non-negative")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.TargetRole == "" {
		result.TargetRole = defaults.TargetRole
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if len(result.PageTypes) == 0 {
		result.PageTypes = defaults.PageTypes
	}
	if len(result.ManualURLs) == 0 {
		result.ManualURLs = defaults.ManualURLs
	}

	// Int fields: use default if zero
	if result.CacheTTLHours == 0 {
		result.CacheTTLHours = defaults.CacheTTLHours
	}
	if result.RequestDelayMS == 0 {
		result.RequestDelayMS = defaults.RequestDelayMS
	}
	if result.BatchConcurrency == 0 {
		result.BatchConcurrency = defaults.BatchConcurrency
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// CacheTTL returns the page cache freshness window as a duration; zero means
// the fetcher default applies.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLHours) * time.Hour
}

// RequestDelay returns the per-host fetch delay as a duration; zero means the
// fetcher default applies.
func (c *Config) RequestDelay() time.Duration {
	return time.Duration(c.RequestDelayMS) * time.Millisecond
}

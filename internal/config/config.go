// Package config provides configuration loading and validation for the CLI and services.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Store backends.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Defaults applied by MergeWithDefaults and FromEnv.
const (
	DefaultStore        = StoreSQLite
	DefaultSQLitePath   = ".prep/prep.db"
	DefaultPort         = 8080
	DefaultRequestQueue = "analysis_requests"
	DefaultResultQueue  = "analysis_results"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Storage
	Store       string `json:"store,omitempty"`        // memory, sqlite or postgres
	SQLitePath  string `json:"sqlite_path,omitempty"`  // SQLite database file
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Messaging
	RabbitMQURL  string `json:"rabbitmq_url,omitempty"`
	RequestQueue string `json:"request_queue,omitempty"`
	ResultQueue  string `json:"result_queue,omitempty"`

	// HTTP
	Port int `json:"port,omitempty"`

	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
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

// FromEnv builds a Config from environment variables.
// Unset variables leave the field empty so MergeWithDefaults can fill it.
func FromEnv() Config {
	cfg := Config{
		Store:        os.Getenv("PREP_STORE"),
		SQLitePath:   os.Getenv("PREP_SQLITE_PATH"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RabbitMQURL:  os.Getenv("RABBITMQ_URL"),
		RequestQueue: os.Getenv("PREP_REQUEST_QUEUE"),
		ResultQueue:  os.Getenv("PREP_RESULT_QUEUE"),
	}
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		cfg.Port = port
	}
	return cfg
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	switch c.Store {
	case "", StoreMemory, StoreSQLite, StorePostgres:
	default:
		return fmt.Errorf("config error: unknown store %q (want memory, sqlite or postgres)", c.Store)
	}

	if c.Store == StorePostgres && c.DatabaseURL == "" {
		return fmt.Errorf("config error: 'database_url' is required for the postgres store")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.RequestQueue != "" && c.RequestQueue == c.ResultQueue {
		return fmt.Errorf("config error: 'request_queue' and 'result_queue' must differ")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults,
// then from the built-in defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	result.Store = firstNonEmpty(result.Store, defaults.Store, DefaultStore)
	result.SQLitePath = firstNonEmpty(result.SQLitePath, defaults.SQLitePath, DefaultSQLitePath)
	result.DatabaseURL = firstNonEmpty(result.DatabaseURL, defaults.DatabaseURL)
	result.RabbitMQURL = firstNonEmpty(result.RabbitMQURL, defaults.RabbitMQURL)
	result.RequestQueue = firstNonEmpty(result.RequestQueue, defaults.RequestQueue, DefaultRequestQueue)
	result.ResultQueue = firstNonEmpty(result.ResultQueue, defaults.ResultQueue, DefaultResultQueue)

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

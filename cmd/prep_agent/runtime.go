package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-prep/internal/config"
	"github.com/jonathan/placement-prep/internal/db"
	"github.com/jonathan/placement-prep/internal/storage"
)

// loadConfig resolves the effective configuration: config file first, then
// environment variables, then built-in defaults. Flags that were set win.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var fileCfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		fileCfg = *loaded
	}

	cfg := fileCfg.MergeWithDefaults(config.FromEnv())

	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.Store = storeFlag
	}
	if flags.Changed("sqlite-path") {
		cfg.SQLitePath = sqlitePathFlag
	}
	if flags.Changed("db-url") {
		cfg.DatabaseURL = databaseURL
	}
	if verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	if cfg.Verbose && configPath != "" {
		log.Printf("[config] loaded config from: %s", configPath)
	}
	return cfg, nil
}

// openStore opens the configured backend. The returned func releases it.
func openStore(ctx context.Context, cfg config.Config) (storage.Store, func(), error) {
	switch cfg.Store {
	case config.StoreMemory:
		return storage.NewMemoryStore(), func() {}, nil

	case config.StorePostgres:
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := database.EnsureSchema(ctx); err != nil {
			database.Close()
			return nil, nil, err
		}
		return database, database.Close, nil

	default:
		store, err := storage.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				log.Printf("[store] close failed: %v", err)
			}
		}, nil
	}
}

// withStore loads the config, opens the store and runs fn with both.
func withStore(cmd *cobra.Command, fn func(ctx context.Context, cfg config.Config, store storage.Store) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, release, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Store, err)
	}
	defer release()

	if cfg.Verbose {
		log.Printf("[store] using %s store", cfg.Store)
	}
	return fn(ctx, cfg, store)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

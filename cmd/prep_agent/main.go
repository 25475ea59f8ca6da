// Package main provides the entry point for the placement prep CLI, HTTP API,
// MCP server and queue worker.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "prep_agent",
	Short: "Placement readiness scoring and preparation planning",
	Long: `prep_agent analyzes job descriptions for placement readiness, scores resumes for ATS
friendliness, matches job listings against preferences and generates mock assessments.

Configuration can be loaded from a JSON file using --config. Environment variables fill
unset values, and command-line flags override both.`,
	SilenceUsage: true,
}

var (
	configPath     string
	storeFlag      string
	sqlitePathFlag string
	databaseURL    string
	verbose        bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "Storage backend: memory, sqlite or postgres (default sqlite)")
	rootCmd.PersistentFlags().StringVar(&sqlitePathFlag, "sqlite-path", "", "SQLite database file (default .prep/prep.db)")
	rootCmd.PersistentFlags().StringVar(&databaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.Version = version
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-prep/internal/config"
	"github.com/jonathan/placement-prep/internal/server"
	"github.com/jonathan/placement-prep/internal/storage"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for analyses, history, ATS scoring, job matching and assessments.`,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080, or PORT env var)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	return withStore(cmd, func(_ context.Context, cfg config.Config, store storage.Store) error {
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		srv, err := server.New(server.Config{
			Port:  cfg.Port,
			Store: store,
		})
		if err != nil {
			return fmt.Errorf("failed to create server: %w", err)
		}

		return srv.Start()
	})
}

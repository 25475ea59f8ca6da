package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-prep/internal/analysis"
	"github.com/jonathan/placement-prep/internal/config"
	"github.com/jonathan/placement-prep/internal/queue"
	"github.com/jonathan/placement-prep/internal/storage"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consume analysis requests from RabbitMQ",
	Long: `Consume analysis requests from the request queue, save each analysis to history and
publish the outcome to the result queue. Requires RABBITMQ_URL or --amqp-url.`,
	Args: cobra.NoArgs,
	RunE: runWorker,
}

var (
	workerAMQPURL string
	workerCount   int
)

func init() {
	workerCmd.Flags().StringVar(&workerAMQPURL, "amqp-url", "", "RabbitMQ URL (optional, defaults to RABBITMQ_URL env var)")
	workerCmd.Flags().IntVar(&workerCount, "workers", 3, "Concurrent message handlers")
	rootCmd.AddCommand(workerCmd)
}

func runWorker(cmd *cobra.Command, _ []string) error {
	return withStore(cmd, func(_ context.Context, cfg config.Config, store storage.Store) error {
		if cmd.Flags().Changed("amqp-url") {
			cfg.RabbitMQURL = workerAMQPURL
		}
		if cfg.RabbitMQURL == "" {
			return fmt.Errorf("RABBITMQ_URL environment variable or --amqp-url flag is required")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		processor := queue.NewProcessor(analysis.New(), storage.NewHistory(store))
		worker := queue.NewWorker(queue.Config{
			URL:          cfg.RabbitMQURL,
			RequestQueue: cfg.RequestQueue,
			ResultQueue:  cfg.ResultQueue,
			Workers:      workerCount,
		}, processor, nil)

		return worker.Run(ctx)
	})
}

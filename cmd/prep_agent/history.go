package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-prep/internal/config"
	"github.com/jonathan/placement-prep/internal/observability"
	"github.com/jonathan/placement-prep/internal/report"
	"github.com/jonathan/placement-prep/internal/storage"
	"github.com/jonathan/placement-prep/internal/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List, show, export or clear saved analyses",
	RunE:  runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved analyses, most recent first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <analysis-id|latest>",
	Short: "Show one saved analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyExportCmd = &cobra.Command{
	Use:   "export <analysis-id|latest>",
	Short: "Export an analysis as a plain-text strategy summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryExport,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the whole analysis history",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

var (
	historyJSON      bool
	historyExportDir string
)

func init() {
	historyCmd.PersistentFlags().BoolVar(&historyJSON, "json", false, "Print results as JSON")
	historyExportCmd.Flags().StringVarP(&historyExportDir, "out", "o", "", "Directory to write the export to (default stdout)")

	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyExportCmd, historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	return withStore(cmd, func(ctx context.Context, _ config.Config, store storage.Store) error {
		list, err := storage.NewHistory(store).List(ctx)
		if err != nil {
			return err
		}
		if historyJSON {
			return writeJSON(cmd.OutOrStdout(), list)
		}
		observability.NewPrinter(cmd.OutOrStdout()).PrintHistory(list)
		return nil
	})
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	return withStore(cmd, func(ctx context.Context, _ config.Config, store storage.Store) error {
		a, err := lookupAnalysis(ctx, storage.NewHistory(store), args[0])
		if err != nil {
			return err
		}
		if historyJSON {
			return writeJSON(cmd.OutOrStdout(), a)
		}
		observability.NewPrinter(cmd.OutOrStdout()).PrintAnalysis(a)
		return nil
	})
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	return withStore(cmd, func(ctx context.Context, _ config.Config, store storage.Store) error {
		a, err := lookupAnalysis(ctx, storage.NewHistory(store), args[0])
		if err != nil {
			return err
		}
		text, err := report.PlainText(a)
		if err != nil {
			return err
		}

		if historyExportDir == "" {
			_, err := fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		}
		if err := os.MkdirAll(historyExportDir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		path := filepath.Join(historyExportDir, report.ExportFileName(a.Company))
		if err := os.WriteFile(path, []byte(text), 0600); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported analysis %s to %s\n", a.ID, path)
		return nil
	})
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	return withStore(cmd, func(ctx context.Context, _ config.Config, store storage.Store) error {
		if err := storage.NewHistory(store).Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
		return nil
	})
}

// lookupAnalysis resolves an analysis id, or "latest" for the most recent entry.
func lookupAnalysis(ctx context.Context, history *storage.History, id string) (*types.AnalysisResult, error) {
	if id == "latest" {
		return history.Latest(ctx)
	}
	return history.Get(ctx, id)
}

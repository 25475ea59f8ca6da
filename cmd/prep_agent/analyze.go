package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-prep/internal/analysis"
	"github.com/jonathan/placement-prep/internal/config"
	"github.com/jonathan/placement-prep/internal/observability"
	"github.com/jonathan/placement-prep/internal/pipeline"
	"github.com/jonathan/placement-prep/internal/storage"
	"github.com/jonathan/placement-prep/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [jd-file...]",
	Short: "Analyze job descriptions for placement readiness",
	Long: `Analyze one or more job description files (text, HTML, PDF or DOCX), or inline text
passed with --jd. Each analysis is saved to history unless --no-save is given.`,
	RunE: runAnalyze,
}

var (
	analyzeJD          string
	analyzeCompany     string
	analyzeRole        string
	analyzeJSON        bool
	analyzeNoSave      bool
	analyzeConcurrency int
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeJD, "jd", "", "Job description text (mutually exclusive with file arguments)")
	analyzeCmd.Flags().StringVarP(&analyzeCompany, "company", "c", "", "Company name")
	analyzeCmd.Flags().StringVarP(&analyzeRole, "role", "r", "", "Role title (files default to a role derived from the file name)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print results as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeNoSave, "no-save", false, "Do not save analyses to history")
	analyzeCmd.Flags().IntVar(&analyzeConcurrency, "concurrency", 0, "Files analyzed in parallel (default 4)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeJD == "" && len(args) == 0 {
		return fmt.Errorf("either job description files or --jd must be provided")
	}
	if analyzeJD != "" && len(args) > 0 {
		return fmt.Errorf("--jd and file arguments are mutually exclusive; provide only one")
	}

	return withStore(cmd, func(ctx context.Context, cfg config.Config, store storage.Store) error {
		var history *storage.History
		if !analyzeNoSave {
			history = storage.NewHistory(store)
		}
		if analyzeJD != "" {
			return analyzeText(ctx, cmd, history)
		}
		return analyzeFiles(ctx, cmd, cfg, history, args)
	})
}

func analyzeText(ctx context.Context, cmd *cobra.Command, history *storage.History) error {
	result, err := analysis.New().AnalyzeRequest(&types.AnalyzeRequest{
		Company: strings.TrimSpace(analyzeCompany),
		Role:    strings.TrimSpace(analyzeRole),
		JDText:  analyzeJD,
	})
	if err != nil {
		return err
	}
	if history != nil {
		if err := history.Prepend(ctx, result); err != nil {
			return fmt.Errorf("failed to save analysis: %w", err)
		}
	}

	if analyzeJSON {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintAnalysis(result)
	return nil
}

func analyzeFiles(ctx context.Context, cmd *cobra.Command, cfg config.Config, history *storage.History, paths []string) error {
	opts := pipeline.BatchOptions{
		Paths:       paths,
		Company:     strings.TrimSpace(analyzeCompany),
		Role:        strings.TrimSpace(analyzeRole),
		History:     history,
		Concurrency: analyzeConcurrency,
	}
	if cfg.Verbose {
		opts.OnProgress = func(e pipeline.ProgressEvent) {
			log.Printf("[%s] %s: %s", e.Step, e.Path, e.Message)
		}
	}

	result, err := pipeline.RunBatch(ctx, opts)
	if err != nil {
		return err
	}

	if analyzeJSON {
		if err := writeJSON(cmd.OutOrStdout(), result); err != nil {
			return err
		}
	} else {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		for _, item := range result.Items {
			if item.Err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", item.Path, item.Err)
				continue
			}
			printer.PrintAnalysis(item.Analysis)
		}
	}

	if result.Succeeded == 0 {
		return fmt.Errorf("all %d job descriptions failed", result.Failed)
	}
	return nil
}

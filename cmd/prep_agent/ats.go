package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-prep/internal/config"
	"github.com/jonathan/placement-prep/internal/ingestion"
	"github.com/jonathan/placement-prep/internal/observability"
	"github.com/jonathan/placement-prep/internal/schemas"
	"github.com/jonathan/placement-prep/internal/scoring"
	"github.com/jonathan/placement-prep/internal/storage"
	"github.com/jonathan/placement-prep/internal/types"
)

var atsCmd = &cobra.Command{
	Use:   "ats [resume.json]",
	Short: "Score a resume for ATS friendliness",
	Long: `Score a resume JSON document (0-100) and print an actionable report. Without a file
argument the saved resume draft is scored. Pass --jd to list missing job description keywords.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runATS,
}

var (
	atsJDFile    string
	atsSaveDraft bool
	atsJSON      bool
)

func init() {
	atsCmd.Flags().StringVar(&atsJDFile, "jd", "", "Job description file to match keywords against")
	atsCmd.Flags().BoolVar(&atsSaveDraft, "save-draft", false, "Save the resume as the current draft")
	atsCmd.Flags().BoolVar(&atsJSON, "json", false, "Print results as JSON")

	rootCmd.AddCommand(atsCmd)
}

func runATS(cmd *cobra.Command, args []string) error {
	return withStore(cmd, func(ctx context.Context, _ config.Config, store storage.Store) error {
		drafts := storage.NewDrafts(store)

		var resume *types.ResumeData
		if len(args) == 1 {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}
			if resume, err = schemas.DecodeResume(data); err != nil {
				return err
			}
		} else {
			var err error
			if resume, err = drafts.ResumeDraft(ctx); err != nil {
				return err
			}
		}

		if atsJDFile != "" {
			jd, _, err := ingestion.IngestFromFile(atsJDFile)
			if err != nil {
				return fmt.Errorf("failed to read job description: %w", err)
			}
			resume.JDText = jd
		}

		if atsSaveDraft {
			if err := drafts.SaveResumeDraft(ctx, resume); err != nil {
				return fmt.Errorf("failed to save resume draft: %w", err)
			}
		}

		result := scoring.CalculateATS(resume)
		if atsJSON {
			return writeJSON(cmd.OutOrStdout(), result)
		}
		observability.NewPrinter(cmd.OutOrStdout()).PrintATS(result)
		return nil
	})
}

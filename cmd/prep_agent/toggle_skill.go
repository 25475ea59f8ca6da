package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-prep/internal/config"
	"github.com/jonathan/placement-prep/internal/scoring"
	"github.com/jonathan/placement-prep/internal/storage"
	"github.com/jonathan/placement-prep/internal/types"
)

var toggleSkillCmd = &cobra.Command{
	Use:   "toggle-skill <analysis-id|latest> <skill>",
	Short: "Flip a detected skill between \"practice\" and \"know\"",
	Long: `Flip the self-assessed confidence of one detected skill and recompute the final score.
Each "know" adds 2 points and each "practice" removes 2, clamped to 0-100.`,
	Args: cobra.ExactArgs(2),
	RunE: runToggleSkill,
}

var toggleSet string

func init() {
	toggleSkillCmd.Flags().StringVar(&toggleSet, "set", "", "Set the confidence to know or practice instead of flipping it")
	rootCmd.AddCommand(toggleSkillCmd)
}

func runToggleSkill(cmd *cobra.Command, args []string) error {
	id, skill := args[0], args[1]

	return withStore(cmd, func(ctx context.Context, _ config.Config, store storage.Store) error {
		history := storage.NewHistory(store)
		if id == "latest" {
			latest, err := history.Latest(ctx)
			if err != nil {
				return err
			}
			id = latest.ID
		}

		var confidence types.Confidence
		updated, err := history.Update(ctx, id, func(a *types.AnalysisResult) error {
			if toggleSet != "" {
				confidence = types.Confidence(toggleSet)
				return scoring.SetConfidence(a, skill, confidence)
			}
			var err error
			confidence, err = scoring.ToggleSkill(a, skill)
			return err
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (final score %d/100)\n", skill, confidence, updated.FinalScore)
		return nil
	})
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-prep/internal/config"
	"github.com/jonathan/placement-prep/internal/matching"
	"github.com/jonathan/placement-prep/internal/observability"
	"github.com/jonathan/placement-prep/internal/schemas"
	"github.com/jonathan/placement-prep/internal/storage"
	"github.com/jonathan/placement-prep/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score job listings against your preferences",
	Long: `Score every job in a job list against your preferences and print the filtered dashboard.
Preferences passed with --prefs are saved and reused by later runs.`,
	Args: cobra.NoArgs,
	RunE: runMatch,
}

var (
	matchJobsFile   string
	matchPrefsFile  string
	matchSearch     string
	matchLocation   string
	matchMode       string
	matchExperience string
	matchOnly       bool
	matchJSON       bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchJobsFile, "jobs", "j", "", "Path to job list JSON file (required)")
	matchCmd.Flags().StringVarP(&matchPrefsFile, "prefs", "p", "", "Path to preferences JSON file (default saved preferences)")
	matchCmd.Flags().StringVar(&matchSearch, "search", "", "Filter by title or company")
	matchCmd.Flags().StringVar(&matchLocation, "location", "", "Filter by location")
	matchCmd.Flags().StringVar(&matchMode, "mode", "", "Filter by work mode")
	matchCmd.Flags().StringVar(&matchExperience, "experience", "", "Filter by experience level")
	matchCmd.Flags().BoolVar(&matchOnly, "only-matches", false, "Only show jobs at or above the minimum match score")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Print results as JSON")

	_ = matchCmd.MarkFlagRequired("jobs")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	jobs, err := loadJobs(matchJobsFile)
	if err != nil {
		return err
	}

	return withStore(cmd, func(ctx context.Context, _ config.Config, store storage.Store) error {
		drafts := storage.NewDrafts(store)
		prefs, err := resolvePreferences(ctx, drafts, matchPrefsFile)
		if err != nil {
			return err
		}
		statuses, err := drafts.Statuses(ctx)
		if err != nil {
			return err
		}

		scored := matching.ScoreJobs(jobs, prefs, statuses)
		filtered := matching.Filter(scored, types.JobFilter{
			Search:      matchSearch,
			OnlyMatches: matchOnly,
			Location:    matchLocation,
			Mode:        matchMode,
			Experience:  matchExperience,
		}, prefs)

		if matchJSON {
			return writeJSON(cmd.OutOrStdout(), filtered)
		}
		if prefs == nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "No preferences saved; every job scores 0. Pass --prefs to set them.")
		}
		observability.NewPrinter(cmd.OutOrStdout()).PrintJobs(fmt.Sprintf("Jobs (%d of %d)", len(filtered), len(scored)), filtered)
		return nil
	})
}

func loadJobs(path string) ([]types.Job, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}
	return schemas.DecodeJobs(data)
}

// resolvePreferences reads preferences from path and saves them, or falls back
// to the saved preferences when path is empty.
func resolvePreferences(ctx context.Context, drafts *storage.Drafts, path string) (*types.JobPreferences, error) {
	if path == "" {
		return drafts.Preferences(ctx)
	}
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}
	prefs, err := schemas.DecodePreferences(data)
	if err != nil {
		return nil, err
	}
	if prefs != nil {
		if err := drafts.SavePreferences(ctx, prefs); err != nil {
			return nil, fmt.Errorf("failed to save preferences: %w", err)
		}
	}
	return prefs, nil
}

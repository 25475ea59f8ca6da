package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-prep/internal/config"
	"github.com/jonathan/placement-prep/internal/matching"
	"github.com/jonathan/placement-prep/internal/storage"
	"github.com/jonathan/placement-prep/internal/types"
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Build the daily top-10 job digest",
	Long: `Rank jobs against your preferences and print the top 10 as a daily digest. A digest is
generated once per date and cached; pass --refresh to rebuild it.`,
	Args: cobra.NoArgs,
	RunE: runDigest,
}

var (
	digestJobsFile  string
	digestPrefsFile string
	digestDate      string
	digestRefresh   bool
	digestEmail     bool
	digestJSON      bool
)

func init() {
	digestCmd.Flags().StringVarP(&digestJobsFile, "jobs", "j", "", "Path to job list JSON file (required)")
	digestCmd.Flags().StringVarP(&digestPrefsFile, "prefs", "p", "", "Path to preferences JSON file (default saved preferences)")
	digestCmd.Flags().StringVar(&digestDate, "date", "", "Digest date as YYYY-MM-DD (default today)")
	digestCmd.Flags().BoolVar(&digestRefresh, "refresh", false, "Rebuild the digest even if one is cached")
	digestCmd.Flags().BoolVar(&digestEmail, "email", false, "Print the digest as an email body with apply links")
	digestCmd.Flags().BoolVar(&digestJSON, "json", false, "Print results as JSON")

	_ = digestCmd.MarkFlagRequired("jobs")

	rootCmd.AddCommand(digestCmd)
}

func runDigest(cmd *cobra.Command, _ []string) error {
	date := digestDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid --date %q: want YYYY-MM-DD", date)
	}

	jobs, err := loadJobs(digestJobsFile)
	if err != nil {
		return err
	}

	return withStore(cmd, func(ctx context.Context, _ config.Config, store storage.Store) error {
		drafts := storage.NewDrafts(store)
		prefs, err := resolvePreferences(ctx, drafts, digestPrefsFile)
		if err != nil {
			return err
		}
		if prefs == nil {
			return fmt.Errorf("a digest needs preferences; pass --prefs")
		}

		digest, cached, err := drafts.Digest(ctx, date)
		if err != nil {
			return err
		}
		if !cached || digestRefresh {
			digest = matching.Digest(jobs, prefs)
			if digest == nil {
				digest = []types.ScoredJob{}
			}
			if err := drafts.SaveDigest(ctx, date, digest); err != nil {
				return fmt.Errorf("failed to cache digest: %w", err)
			}
		}

		switch {
		case digestJSON:
			return writeJSON(cmd.OutOrStdout(), digest)
		case digestEmail:
			fmt.Fprintln(cmd.OutOrStdout(), matching.DigestEmailBody(digest))
		default:
			fmt.Fprintln(cmd.OutOrStdout(), matching.DigestText(date, digest))
		}
		return nil
	})
}

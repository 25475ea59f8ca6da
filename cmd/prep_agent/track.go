package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-prep/internal/config"
	"github.com/jonathan/placement-prep/internal/storage"
	"github.com/jonathan/placement-prep/internal/types"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Track job applications and bookmarks",
}

var trackStatusCmd = &cobra.Command{
	Use:   "status <job-id> <status>",
	Short: "Set the application status of a job (Not Applied, Applied, Rejected, Selected)",
	Args:  cobra.ExactArgs(2),
	RunE:  runTrackStatus,
}

var trackSaveCmd = &cobra.Command{
	Use:   "save <job-id>",
	Short: "Bookmark a job, or remove the bookmark",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrackSave,
}

var trackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked statuses and bookmarks",
	Args:  cobra.NoArgs,
	RunE:  runTrackList,
}

func init() {
	trackCmd.AddCommand(trackStatusCmd, trackSaveCmd, trackListCmd)
	rootCmd.AddCommand(trackCmd)
}

func runTrackStatus(cmd *cobra.Command, args []string) error {
	return withStore(cmd, func(ctx context.Context, _ config.Config, store storage.Store) error {
		status := types.ApplicationStatus(args[1])
		if err := storage.NewDrafts(store).SetStatus(ctx, args[0], status); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], status)
		return nil
	})
}

func runTrackSave(cmd *cobra.Command, args []string) error {
	return withStore(cmd, func(ctx context.Context, _ config.Config, store storage.Store) error {
		saved, err := storage.NewDrafts(store).ToggleSavedJob(ctx, args[0])
		if err != nil {
			return err
		}
		if saved {
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", args[0])
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
		}
		return nil
	})
}

func runTrackList(cmd *cobra.Command, _ []string) error {
	return withStore(cmd, func(ctx context.Context, _ config.Config, store storage.Store) error {
		drafts := storage.NewDrafts(store)
		statuses, err := drafts.Statuses(ctx)
		if err != nil {
			return err
		}
		saved, err := drafts.SavedJobs(ctx)
		if err != nil {
			return err
		}

		ids := make([]string, 0, len(statuses))
		for id := range statuses {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Statuses:")
		for _, id := range ids {
			fmt.Fprintf(out, "  %-20s %s\n", id, statuses[id])
		}
		fmt.Fprintln(out, "Saved:")
		for _, id := range saved {
			fmt.Fprintf(out, "  %s\n", id)
		}
		return nil
	})
}

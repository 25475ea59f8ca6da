package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/placement-prep/internal/config"
	"github.com/jonathan/placement-prep/internal/storage"
)

var shipCmd = &cobra.Command{
	Use:   "ship",
	Short: "Show or update the platform ship status",
	Long: `The platform is "Shipped" once all ten verification checklist items pass and the
Lovable, GitHub and deployed links are submitted.`,
	Args: cobra.NoArgs,
	RunE: runShipStatus,
}

var shipCheckCmd = &cobra.Command{
	Use:   "check <item 1-10>",
	Short: "Mark a verification checklist item as passed (use --undo to clear it)",
	Args:  cobra.ExactArgs(1),
	RunE:  runShipCheck,
}

var shipSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Record the final submission links",
	Args:  cobra.NoArgs,
	RunE:  runShipSubmit,
}

var shipResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the verification checklist",
	Args:  cobra.NoArgs,
	RunE:  runShipReset,
}

var (
	shipUndo     bool
	shipLovable  string
	shipGitHub   string
	shipDeployed string
)

func init() {
	shipCheckCmd.Flags().BoolVar(&shipUndo, "undo", false, "Mark the item as not passed")
	shipSubmitCmd.Flags().StringVar(&shipLovable, "lovable", "", "Lovable project link")
	shipSubmitCmd.Flags().StringVar(&shipGitHub, "github", "", "GitHub repository link")
	shipSubmitCmd.Flags().StringVar(&shipDeployed, "deployed", "", "Deployed URL")

	shipCmd.AddCommand(shipCheckCmd, shipSubmitCmd, shipResetCmd)
	rootCmd.AddCommand(shipCmd)
}

func runShipStatus(cmd *cobra.Command, _ []string) error {
	return withStore(cmd, func(ctx context.Context, _ config.Config, store storage.Store) error {
		return printShipStatus(ctx, cmd, storage.NewDrafts(store))
	})
}

func runShipCheck(cmd *cobra.Command, args []string) error {
	item, err := strconv.Atoi(args[0])
	if err != nil || item < 1 || item > 10 {
		return fmt.Errorf("checklist item must be a number from 1 to 10, got %q", args[0])
	}

	return withStore(cmd, func(ctx context.Context, _ config.Config, store storage.Store) error {
		drafts := storage.NewDrafts(store)
		checklist, err := drafts.TestChecklist(ctx)
		if err != nil {
			return err
		}
		checklist[strconv.Itoa(item)] = !shipUndo
		if err := drafts.SaveTestChecklist(ctx, checklist); err != nil {
			return err
		}
		return printShipStatus(ctx, cmd, drafts)
	})
}

func runShipSubmit(cmd *cobra.Command, _ []string) error {
	return withStore(cmd, func(ctx context.Context, _ config.Config, store storage.Store) error {
		drafts := storage.NewDrafts(store)
		submission, err := drafts.Submission(ctx)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("lovable") {
			submission.Lovable = shipLovable
		}
		if cmd.Flags().Changed("github") {
			submission.GitHub = shipGitHub
		}
		if cmd.Flags().Changed("deployed") {
			submission.Deployed = shipDeployed
		}
		if err := drafts.SaveSubmission(ctx, submission); err != nil {
			return err
		}
		return printShipStatus(ctx, cmd, drafts)
	})
}

func runShipReset(cmd *cobra.Command, _ []string) error {
	return withStore(cmd, func(ctx context.Context, _ config.Config, store storage.Store) error {
		drafts := storage.NewDrafts(store)
		if err := drafts.ResetTestChecklist(ctx); err != nil {
			return err
		}
		return printShipStatus(ctx, cmd, drafts)
	})
}

func printShipStatus(ctx context.Context, cmd *cobra.Command, drafts *storage.Drafts) error {
	checklist, err := drafts.TestChecklist(ctx)
	if err != nil {
		return err
	}
	passed := 0
	for _, ok := range checklist {
		if ok {
			passed++
		}
	}
	status, err := drafts.PlatformStatus(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Checklist: %d/10 passed\nStatus: %s\n", passed, status)
	return nil
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/gildedrose/internal/config"
	"github.com/wizzomafizzo/gildedrose/internal/history"
	"github.com/wizzomafizzo/gildedrose/internal/report"
)

// createHistoryCommand creates the run ledger command with subcommands
func createHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded runs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		createHistoryListCommand(),
		createHistoryShowCommand(),
	)

	return cmd
}

func createHistoryListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := initLogging(cmd, config.DefaultConfig(), "")
			if err != nil {
				return err
			}

			recorder, err := openHistory(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = recorder.Close() }()

			runs, err := recorder.Runs(ctx)
			if err != nil {
				return fmt.Errorf("failed to list runs: %w", err)
			}
			return report.WriteRuns(cmd.OutOrStdout(), runs) //nolint:wrapcheck // already wrapped
		},
	}
}

func createHistoryShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Replay a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := initLogging(cmd, config.DefaultConfig(), "")
			if err != nil {
				return err
			}

			recorder, err := openHistory(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = recorder.Close() }()

			snapshots, err := recorder.Snapshots(ctx, args[0])
			if errors.Is(err, history.ErrRunNotFound) {
				return fmt.Errorf("no run with id %s", args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to read run: %w", err)
			}
			return report.WriteSnapshots(cmd.OutOrStdout(), snapshots) //nolint:wrapcheck // already wrapped
		},
	}
}

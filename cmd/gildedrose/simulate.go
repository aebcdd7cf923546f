package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/gildedrose/internal/constants"
	"github.com/wizzomafizzo/gildedrose/internal/inventory"
	"github.com/wizzomafizzo/gildedrose/internal/logging"
	"github.com/wizzomafizzo/gildedrose/internal/simulation"
)

// createSimulateCommand creates the simulate command.
func createSimulateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Age the stock and print every day",
		Long:  "Age the stock day by day, printing the starting stock as day 0 and each following day.",
		Args:  cobra.NoArgs,
		RunE:  runSimulateCommand,
	}

	cmd.Flags().IntP("days", "d", -1, "Days to simulate (default: from config, else 2)")
	cmd.Flags().Bool("no-history", false, "Do not record this run")
	cmd.Flags().StringP("label", "l", "", "Label stored with the recorded run")

	return cmd
}

func runSimulateCommand(cmd *cobra.Command, _ []string) error {
	cfg, configPath, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	days, _ := cmd.Flags().GetInt("days")
	if days < 0 {
		days = cfg.Days
		if days == 0 {
			days = constants.DefaultDays
		}
	}

	ctx, err := initLogging(cmd, cfg, configPath)
	if err != nil {
		return err
	}

	noHistory, _ := cmd.Flags().GetBool("no-history")
	label, _ := cmd.Flags().GetString("label")

	var recorder simulation.Recorder
	if cfg.History.Enabled && !noHistory {
		ledger, err := openHistory(ctx, cmd)
		if err != nil {
			return err
		}
		defer func() { _ = ledger.Close() }()
		recorder = ledger
	}

	shop := inventory.NewShop(cfg.Stock()...)
	runner := simulation.NewRunner(shop, recorder, cmd.OutOrStdout())
	if err := runner.Run(ctx, label, days); err != nil {
		logging.Get(ctx).Error().Err(err).Msg("simulation failed")
		return fmt.Errorf("simulation failed: %w", err)
	}

	if runner.RunID() != "" {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Recorded run %s\n", runner.RunID())
	}
	return nil
}

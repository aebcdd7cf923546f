package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/gildedrose/internal/constants"
	"github.com/wizzomafizzo/gildedrose/internal/inventory"
	"github.com/wizzomafizzo/gildedrose/internal/logging"
	"github.com/wizzomafizzo/gildedrose/internal/prompt"
	"github.com/wizzomafizzo/gildedrose/internal/simulation"
)

const shellHelp = `Commands:
  next [n]  advance n days (default 1)
  show      print the current stock
  help      show this help
  quit      leave the shell
`

// createShellCommand creates the interactive stepping command.
func createShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Step through days interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, configPath, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx, err := initLogging(cmd, cfg, configPath)
			if err != nil {
				return err
			}

			prompter := prompt.NewLinerPrompter([]string{
				constants.ShellNext, constants.ShellShow, constants.ShellHelp, constants.ShellQuit,
			})
			defer func() { _ = prompter.Close() }()

			runner := simulation.NewRunner(inventory.NewShop(cfg.Stock()...), nil, cmd.OutOrStdout())
			return runShell(ctx, prompter, runner, cmd.OutOrStdout())
		},
	}
}

// runShell reads commands until quit or cancellation
func runShell(ctx context.Context, prompter prompt.Prompter, runner *simulation.Runner, out io.Writer) error {
	if err := runner.Begin(ctx, "shell"); err != nil {
		return fmt.Errorf("failed to start shell: %w", err)
	}

	for {
		line, err := prompt.ReadCommand(prompter, fmt.Sprintf("day %d>", runner.Day()))
		if errors.Is(err, prompt.ErrCancelled) {
			return nil
		}
		if err != nil {
			return err //nolint:wrapcheck // already wrapped by prompt
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case constants.ShellNext, "n":
			days, parseErr := parseDays(fields[1:])
			if parseErr != nil {
				_, _ = fmt.Fprintln(out, parseErr)
				continue
			}
			if err := runner.Step(ctx, days); err != nil {
				return fmt.Errorf("failed to advance: %w", err)
			}
		case constants.ShellShow, "s":
			if err := runner.Show(); err != nil {
				return fmt.Errorf("failed to show stock: %w", err)
			}
		case constants.ShellHelp, "?":
			_, _ = fmt.Fprint(out, shellHelp)
		case constants.ShellQuit, "q", "exit":
			logging.Get(ctx).Info().Int("day", runner.Day()).Msg("shell closed")
			return nil
		default:
			_, _ = fmt.Fprintf(out, "Unknown command %q, type help\n", fields[0])
		}
	}
}

func parseDays(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	days, err := strconv.Atoi(args[0])
	if err != nil || days < 1 {
		return 0, fmt.Errorf("invalid day count %q", args[0])
	}
	return days, nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/gildedrose/internal/config"
	"github.com/wizzomafizzo/gildedrose/internal/constants"
	"github.com/wizzomafizzo/gildedrose/internal/history"
	"github.com/wizzomafizzo/gildedrose/internal/logging"
	"github.com/wizzomafizzo/gildedrose/internal/storage"
)

// createNewRootCommand creates the main root command that shows help by default.
func createNewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gildedrose",
		Short:         "Nightly inventory aging for the Gilded Rose",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", constants.ConfigFilename, "Path to stock fixture")
	rootCmd.PersistentFlags().String("data-dir", "", "Directory for logs and run history (default: XDG data home)")

	rootCmd.AddCommand(
		createSimulateCommand(),
		createShellCommand(),
		createInitCommand(),
		createAddCommand(),
		createValidateCommand(),
		createHistoryCommand(),
		createCategoriesCommand(),
	)

	return rootCmd
}

// loadConfig loads the fixture named by --config, falling back to the
// standard stock when the file does not exist.
func loadConfig(cmd *cobra.Command) (cfg *config.Config, configPath string, err error) {
	configPath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("failed to get config flag: %w", err)
	}

	if _, statErr := os.Stat(configPath); errors.Is(statErr, os.ErrNotExist) {
		return config.DefaultConfig(), configPath, nil
	}

	cfg, err = config.Load(configPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, configPath, nil
}

func storageManager(cmd *cobra.Command) (*storage.Manager, error) {
	dataDir, err := cmd.Flags().GetString("data-dir")
	if err != nil {
		return nil, fmt.Errorf("failed to get data-dir flag: %w", err)
	}

	if dataDir == "" {
		return storage.New(afero.NewOsFs()), nil
	}
	return storage.NewWithBaseDir(afero.NewOsFs(), dataDir), nil
}

// initLogging attaches a rotated file logger to the command context
func initLogging(cmd *cobra.Command, cfg *config.Config, configPath string) (context.Context, error) {
	dataDir, err := cmd.Flags().GetString("data-dir")
	if err != nil {
		return nil, fmt.Errorf("failed to get data-dir flag: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, err = logging.New(ctx, afero.NewOsFs(), logging.Config{
		DataDir: dataDir,
		Fixture: configPath,
		Level:   logging.ParseLevel(cfg.Logging.Level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return ctx, nil
}

// openHistory opens the run ledger in the data directory
func openHistory(ctx context.Context, cmd *cobra.Command) (*history.Recorder, error) {
	manager, err := storageManager(cmd)
	if err != nil {
		return nil, err
	}

	path, err := manager.GetHistoryPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get history path: %w", err)
	}

	recorder, err := history.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	return recorder, nil
}

package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/gildedrose/internal/config"
)

// createInitCommand creates the command that writes the standard fixture.
func createInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the standard stock fixture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}

			return writeDefaultConfig(afero.NewOsFs(), configPath, cmd)
		},
	}
}

func writeDefaultConfig(fs afero.Fs, configPath string, cmd *cobra.Command) error {
	exists, err := afero.Exists(fs, configPath)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", configPath, err)
	}
	if exists {
		return fmt.Errorf("%s already exists", configPath)
	}

	if err := config.DefaultConfig().SaveTo(fs, configPath); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configPath)
	return nil
}

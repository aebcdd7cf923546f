package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/gildedrose/internal/config"
	"github.com/wizzomafizzo/gildedrose/internal/inventory"
)

// createValidateCommand creates the validate command.
func createValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the stock fixture",
		Long:  "Validate the stock fixture and show the category each item falls into",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("config flag error: %w", err)
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("validation error: %w", err)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Configuration is valid: %d items\n", len(cfg.Items))
			for _, item := range cfg.Stock() {
				_, _ = fmt.Fprintf(out, "  %-12s %s\n", inventory.CategoryOf(item.Name), item)
			}
			return nil
		},
	}
}

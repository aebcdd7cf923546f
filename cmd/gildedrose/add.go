package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/gildedrose/internal/config"
	"github.com/wizzomafizzo/gildedrose/internal/inventory"
)

// createAddCommand creates the command that appends an item to the fixture.
func createAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to the stock fixture",
		Long: "Append an item to the stock fixture. " +
			"The standard stock is used as the starting point when the fixture does not exist yet.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, err := cmd.Flags().GetString("name")
			if err != nil {
				return fmt.Errorf("failed to get name flag: %w", err)
			}
			sellIn, err := cmd.Flags().GetInt("sell-in")
			if err != nil {
				return fmt.Errorf("failed to get sell-in flag: %w", err)
			}
			quality, err := cmd.Flags().GetInt("quality")
			if err != nil {
				return fmt.Errorf("failed to get quality flag: %w", err)
			}

			cfg, configPath, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			item := config.Item{Name: name, SellIn: sellIn, Quality: quality}
			cfg.AddItem(item)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("validation error: %w", err)
			}

			if err := cfg.Save(configPath); err != nil {
				return err //nolint:wrapcheck // already wrapped
			}

			added := inventory.NewItem(item.Name, item.SellIn, item.Quality)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s) to %s\n",
				added, inventory.CategoryOf(added.Name), configPath)
			return nil
		},
	}

	cmd.Flags().StringP("name", "n", "", "Item name")
	cmd.Flags().Int("sell-in", 0, "Days left to sell the item")
	cmd.Flags().IntP("quality", "q", 0, "Starting quality")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

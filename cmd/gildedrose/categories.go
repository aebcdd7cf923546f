package main

import (
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/gildedrose/internal/report"
)

// createCategoriesCommand creates the command listing the category table.
func createCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List item categories and the names that select them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report.WriteCategories(cmd.OutOrStdout()) //nolint:wrapcheck // already wrapped
		},
	}
}

// Package report renders stock for display. Output is for people, not parsers.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/wizzomafizzo/gildedrose/internal/history"
	"github.com/wizzomafizzo/gildedrose/internal/inventory"
)

const columnHeader = "name, sellIn, quality"

// WriteDay writes one day's block in the classic fixture layout.
func WriteDay(w io.Writer, day int, items []inventory.Item) error {
	var b strings.Builder

	_, _ = fmt.Fprintln(&b, color.CyanString("-------- day %d --------", day))
	_, _ = fmt.Fprintln(&b, columnHeader)
	for _, item := range items {
		_, _ = fmt.Fprintln(&b, item.String())
	}
	_, _ = fmt.Fprintln(&b)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write day %d: %w", day, err)
	}
	return nil
}

// WriteCategories lists how item names map to categories.
func WriteCategories(w io.Writer) error {
	return writeCategories(w, color.New(color.FgYellow))
}

func writeCategories(w io.Writer, tag *color.Color) error {
	var b strings.Builder

	for _, category := range inventory.Categories() {
		match := category.MatchName()
		if match == "" {
			match = "(any other name)"
		}
		// pad before colouring so escape codes don't eat into the column
		_, _ = fmt.Fprintf(&b, "%s %s\n", tag.Sprintf("%-14s", category), match)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write categories: %w", err)
	}
	return nil
}

// WriteRuns lists recorded runs, one per line.
func WriteRuns(w io.Writer, runs []history.Run) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded")
		return err //nolint:wrapcheck // plain write
	}

	var b strings.Builder
	for _, run := range runs {
		label := run.Label
		if label == "" {
			label = "-"
		}
		_, _ = fmt.Fprintf(&b, "%s  %s  days=%d  %s\n",
			run.ID, run.StartedAt.Format("2006-01-02 15:04:05"), run.Days, label)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	return nil
}

// WriteSnapshots replays a recorded run day by day.
func WriteSnapshots(w io.Writer, snapshots []history.Snapshot) error {
	for start := 0; start < len(snapshots); {
		day := snapshots[start].Day
		end := start
		items := make([]inventory.Item, 0)
		for end < len(snapshots) && snapshots[end].Day == day {
			items = append(items, snapshots[end].Item)
			end++
		}
		if err := WriteDay(w, day, items); err != nil {
			return err
		}
		start = end
	}
	return nil
}

// Package simulation drives the shop through a number of days, rendering
// and optionally recording every day including the starting stock.
package simulation

import (
	"context"
	"fmt"
	"io"

	"github.com/wizzomafizzo/gildedrose/internal/inventory"
	"github.com/wizzomafizzo/gildedrose/internal/logging"
	"github.com/wizzomafizzo/gildedrose/internal/report"
)

// Recorder receives a snapshot of the stock after each day.
type Recorder interface {
	Start(ctx context.Context, label string) (string, error)
	Record(ctx context.Context, runID string, day int, items []inventory.Item) error
}

// Runner advances a shop and reports each day.
type Runner struct {
	shop     *inventory.Shop
	recorder Recorder
	out      io.Writer
	runID    string
	day      int
}

// NewRunner creates a runner. recorder may be nil.
func NewRunner(shop *inventory.Shop, recorder Recorder, out io.Writer) *Runner {
	return &Runner{shop: shop, recorder: recorder, out: out}
}

// Day is the number of days simulated so far.
func (r *Runner) Day() int {
	return r.day
}

// RunID is the ledger id of the current run, empty until Begin records one.
func (r *Runner) RunID() string {
	return r.runID
}

// Begin starts a ledger run and renders the starting stock as day 0.
func (r *Runner) Begin(ctx context.Context, label string) error {
	if r.recorder != nil {
		runID, err := r.recorder.Start(ctx, label)
		if err != nil {
			return fmt.Errorf("failed to start run: %w", err)
		}
		r.runID = runID
	}

	logging.Get(ctx).Info().Str("run_id", r.runID).Int("items", len(r.shop.Items)).Msg("simulation started")
	return r.emit(ctx)
}

// Step advances n days, rendering each. Cancellation is honoured between days.
func (r *Runner) Step(ctx context.Context, n int) error {
	for range max(n, 0) {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("simulation stopped at day %d: %w", r.day, err)
		}

		r.shop.AdvanceOneDay()
		r.day++
		logging.Get(ctx).Debug().Int("day", r.day).Msg("day advanced")

		if err := r.emit(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Show renders the current day again without advancing.
func (r *Runner) Show() error {
	return report.WriteDay(r.out, r.day, r.shop.Snapshot())
}

// Run renders day 0 then simulates days more.
func (r *Runner) Run(ctx context.Context, label string, days int) error {
	if err := r.Begin(ctx, label); err != nil {
		return err
	}
	if err := r.Step(ctx, days); err != nil {
		return err
	}

	logging.Get(ctx).Info().Str("run_id", r.runID).Int("days", r.day).Msg("simulation finished")
	return nil
}

func (r *Runner) emit(ctx context.Context) error {
	snapshot := r.shop.Snapshot()

	if err := report.WriteDay(r.out, r.day, snapshot); err != nil {
		return err //nolint:wrapcheck // already carries the day
	}

	if r.recorder != nil && r.runID != "" {
		if err := r.recorder.Record(ctx, r.runID, r.day, snapshot); err != nil {
			return fmt.Errorf("failed to record day %d: %w", r.day, err)
		}
	}
	return nil
}

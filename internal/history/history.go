// Package history records each simulated day's stock so a run can be
// inspected after the fact. The engine never reads it back.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wizzomafizzo/gildedrose/internal/database"
	"github.com/wizzomafizzo/gildedrose/internal/inventory"
	"github.com/wizzomafizzo/gildedrose/internal/logging"
)

// ErrRunNotFound is returned when a run id has no ledger entry.
var ErrRunNotFound = errors.New("run not found")

// Run is a recorded simulation.
type Run struct {
	StartedAt time.Time
	ID        string
	Label     string
	Days      int
}

// Snapshot is one item's state at the end of a day.
type Snapshot struct {
	Item     inventory.Item
	Day      int
	Position int
}

// Recorder writes and reads the run ledger.
type Recorder struct {
	db  *database.Manager
	now func() time.Time
}

// Open opens (or creates) the ledger database at dsn.
func Open(ctx context.Context, dsn string) (*Recorder, error) {
	manager, err := database.NewManager(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	return New(manager), nil
}

// New wraps an already-open database manager.
func New(manager *database.Manager) *Recorder {
	return &Recorder{db: manager, now: time.Now}
}

// Close closes the underlying database.
func (r *Recorder) Close() error {
	return r.db.Close()
}

// Start registers a new run and returns its id.
func (r *Recorder) Start(ctx context.Context, label string) (string, error) {
	id := uuid.NewString()

	_, err := r.db.DB().ExecContext(ctx,
		"INSERT INTO runs (id, label, started_at) VALUES (?, ?, ?)",
		id, label, r.now().UnixNano())
	if err != nil {
		return "", fmt.Errorf("failed to start run: %w", err)
	}

	logging.Get(ctx).Debug().Str("run_id", id).Str("label", label).Msg("history run started")
	return id, nil
}

// Record stores the stock for day of run, replacing any earlier record of
// the same day.
func (r *Recorder) Record(ctx context.Context, runID string, day int, items []inventory.Item) error {
	tx, err := r.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for position, item := range items {
		_, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO snapshots (run_id, day, position, name, sell_in, quality)
			VALUES (?, ?, ?, ?, ?, ?)`,
			runID, day, position, item.Name, item.SellIn, item.Quality)
		if err != nil {
			return fmt.Errorf("failed to record day %d item %d: %w", day, position, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit day %d: %w", day, err)
	}

	logging.Get(ctx).Debug().Str("run_id", runID).Int("day", day).Int("items", len(items)).Msg("snapshot recorded")
	return nil
}

// Runs lists every recorded run, newest first.
func (r *Recorder) Runs(ctx context.Context) ([]Run, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT r.id, r.label, r.started_at, COALESCE(MAX(s.day), -1)
		FROM runs r LEFT JOIN snapshots s ON s.run_id = r.id
		GROUP BY r.id
		ORDER BY r.started_at DESC, r.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var (
			run       Run
			startedAt int64
			lastDay   int
		)
		if err := rows.Scan(&run.ID, &run.Label, &startedAt, &lastDay); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.StartedAt = time.Unix(0, startedAt)
		run.Days = max(lastDay, 0)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return runs, nil
}

// Snapshots returns a run's records ordered by day then collection order.
func (r *Recorder) Snapshots(ctx context.Context, runID string) ([]Snapshot, error) {
	var exists int
	err := r.db.DB().QueryRowContext(ctx, "SELECT 1 FROM runs WHERE id = ?", runID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up run: %w", err)
	}

	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT day, position, name, sell_in, quality
		FROM snapshots WHERE run_id = ?
		ORDER BY day, position`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var snapshots []Snapshot
	for rows.Next() {
		var snapshot Snapshot
		if err := rows.Scan(&snapshot.Day, &snapshot.Position,
			&snapshot.Item.Name, &snapshot.Item.SellIn, &snapshot.Item.Quality); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read snapshots: %w", err)
	}

	return snapshots, nil
}

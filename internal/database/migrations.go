package database

import (
	"context"
	"fmt"
)

type migration struct {
	sql     string
	version int
}

var migrations = []migration{
	{
		version: 1,
		sql: `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			label TEXT NOT NULL DEFAULT '',
			started_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);

		CREATE TABLE IF NOT EXISTS snapshots (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			day INTEGER NOT NULL,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			sell_in INTEGER NOT NULL,
			quality INTEGER NOT NULL,
			PRIMARY KEY (run_id, day, position)
		);
		CREATE INDEX IF NOT EXISTS idx_snapshots_run ON snapshots(run_id);
		`,
	},
}

func currentVersion() int {
	return migrations[len(migrations)-1].version
}

func (m *Manager) runMigrations(ctx context.Context) error {
	var version int
	if err := m.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if version >= currentVersion() {
		return nil
	}

	for _, mig := range migrations {
		if mig.version <= version {
			continue
		}
		if err := m.executeMigration(ctx, mig); err != nil {
			return err
		}
	}

	return nil
}

func (m *Manager) executeMigration(ctx context.Context, mig migration) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration %d: %w", mig.version, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, mig.sql); err != nil {
		return fmt.Errorf("failed to apply migration %d: %w", mig.version, err)
	}

	// PRAGMA does not accept bound parameters
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", mig.version)); err != nil {
		return fmt.Errorf("failed to set schema version %d: %w", mig.version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", mig.version, err)
	}

	return nil
}

package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testutil "github.com/wizzomafizzo/gildedrose/internal/testing"
)

func TestNewManager(t *testing.T) {
	defer testutil.VerifyNoLeaks(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	manager, err := NewManager(ctx, ":memory:")

	require.NoError(t, err)
	require.NotNil(t, manager)
	require.NotNil(t, manager.DB())

	err = manager.Close()
	assert.NoError(t, err)
}

func TestWALModeEnabled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Use file database since :memory: doesn't support WAL
	tempFile := t.TempDir() + "/test.db"
	manager, err := NewManager(ctx, tempFile)
	require.NoError(t, err)
	defer func() { _ = manager.Close() }()

	var journalMode string
	err = manager.DB().QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&journalMode)
	require.NoError(t, err)
	assert.Equal(t, "wal", journalMode)
}

func TestReopenKeepsSchema(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tempFile := t.TempDir() + "/test.db"
	first, err := NewManager(ctx, tempFile)
	require.NoError(t, err)
	_, err = first.DB().ExecContext(ctx, "INSERT INTO runs (id, label, started_at) VALUES ('a', 'x', 1)")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewManager(ctx, tempFile)
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	var count int
	err = second.DB().QueryRowContext(ctx, "SELECT COUNT(*) FROM runs").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewManagerCancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewManager(ctx, ":memory:")
	assert.Error(t, err)
}

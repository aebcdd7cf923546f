package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFixture writes a stock fixture into a fresh temp dir and returns its path
func WriteFixture(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gildedrose.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	return path
}

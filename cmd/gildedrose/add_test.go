package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/gildedrose/internal/config"
	"github.com/wizzomafizzo/gildedrose/internal/inventory"
)

func TestAddAppendsToExistingFixture(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "gildedrose.yml")
	require.NoError(t, (&config.Config{
		Items: []config.Item{{Name: "foo", SellIn: 1, Quality: 1}},
		Days:  3,
	}).Save(configPath))

	stdout, _, err := executeCommand(t, t.TempDir(), "--config", configPath,
		"add", "--name", inventory.BackstagePasses, "--sell-in", "11", "--quality", "0")
	require.NoError(t, err)
	assert.Equal(t, "Added "+inventory.BackstagePasses+", 11, 0 (event-ticket) to "+configPath+"\n", stdout)

	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Days)
	assert.Equal(t, []config.Item{
		{Name: "foo", SellIn: 1, Quality: 1},
		{Name: inventory.BackstagePasses, SellIn: 11, Quality: 0},
	}, cfg.Items)
}

func TestAddStartsFromStandardStock(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "gildedrose.yml")

	_, _, err := executeCommand(t, t.TempDir(), "--config", configPath,
		"add", "-n", "Elven Cloak", "--sell-in", "4", "-q", "12")
	require.NoError(t, err)

	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	require.Len(t, cfg.Items, 10)
	assert.Equal(t, config.Item{Name: "Elven Cloak", SellIn: 4, Quality: 12}, cfg.Items[9])
}

func TestAddRejectsBlankName(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "gildedrose.yml")

	_, _, err := executeCommand(t, t.TempDir(), "--config", configPath, "add", "--name", "  ")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
	assert.NoFileExists(t, configPath)
}

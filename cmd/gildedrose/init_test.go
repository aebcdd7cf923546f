package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/gildedrose/internal/config"
)

func TestWriteDefaultConfig(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	require.NoError(t, writeDefaultConfig(fs, "/shop/gildedrose.yml", cmd))
	assert.Equal(t, "Created /shop/gildedrose.yml\n", out.String())

	data, err := afero.ReadFile(fs, "/shop/gildedrose.yml")
	require.NoError(t, err)

	cfg, err := config.LoadFromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestWriteDefaultConfigRefusesOverwrite(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/gildedrose.yml", []byte("keep"), 0o600))

	err := writeDefaultConfig(fs, "/gildedrose.yml", &cobra.Command{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := afero.ReadFile(fs, "/gildedrose.yml")
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}

func TestInitThenValidate(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "gildedrose.yml")

	stdout, _, err := executeCommand(t, t.TempDir(), "--config", configPath, "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created")

	_, err = os.Stat(configPath)
	require.NoError(t, err)

	stdout, _, err = executeCommand(t, t.TempDir(), "--config", configPath, "validate")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Configuration is valid: 9 items")
	assert.Contains(t, stdout, "legendary    Sulfuras, Hand of Ragnaros, 0, 80")
	assert.Contains(t, stdout, "generic      Conjured Mana Cake, 3, 6")
}

func TestValidateMissingConfig(t *testing.T) {
	t.Parallel()

	_, _, err := executeCommand(t, t.TempDir(), "--config", missingConfig(t), "validate")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation error")
}

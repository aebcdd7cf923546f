// Package storage provides XDG-compliant storage path management for gildedrose.
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/gildedrose/internal/constants"
)

// Manager handles storage operations with filesystem abstraction
type Manager struct {
	fs      afero.Fs
	baseDir string
}

// New creates a new storage manager rooted at the XDG data directory
func New(fs afero.Fs) *Manager {
	return &Manager{fs: fs, baseDir: xdg.DataHome}
}

// NewWithBaseDir creates a storage manager rooted at baseDir instead of XDG data home
func NewWithBaseDir(fs afero.Fs, baseDir string) *Manager {
	return &Manager{fs: fs, baseDir: baseDir}
}

// GetDataDir returns the data directory for gildedrose, creating it if necessary
func (m *Manager) GetDataDir() (string, error) {
	dataDir := filepath.Join(m.baseDir, constants.AppName)
	err := m.fs.MkdirAll(dataDir, 0o750)
	if err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	return dataDir, nil
}

// GetLogPath returns the full path to the gildedrose log file
func (m *Manager) GetLogPath() (string, error) {
	dataDir, err := m.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, constants.LogFilename), nil
}

// GetHistoryPath returns the full path to the run ledger database
func (m *Manager) GetHistoryPath() (string, error) {
	dataDir, err := m.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, constants.HistoryFilename), nil
}

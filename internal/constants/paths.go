// Package constants contains names and defaults shared across gildedrose.
package constants

const (
	// AppName is used for the XDG data directory.
	AppName = "gildedrose"

	// LogFilename is the rotated log file inside the data directory.
	LogFilename = "gildedrose.log"

	// HistoryFilename is the run ledger database inside the data directory.
	HistoryFilename = "history.db"

	// ConfigFilename is the default stock fixture path.
	ConfigFilename = "gildedrose.yml"
)

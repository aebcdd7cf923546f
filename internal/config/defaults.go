package config

import (
	"github.com/wizzomafizzo/gildedrose/internal/constants"
	"github.com/wizzomafizzo/gildedrose/internal/inventory"
)

// DefaultConfig returns the standard shop fixture
func DefaultConfig() *Config {
	return &Config{
		Items: []Item{
			{Name: "+5 Dexterity Vest", SellIn: 10, Quality: 20},
			{Name: inventory.AgedBrie, SellIn: 2, Quality: 0},
			{Name: "Elixir of the Mongoose", SellIn: 5, Quality: 7},
			{Name: inventory.Sulfuras, SellIn: 0, Quality: 80},
			{Name: inventory.Sulfuras, SellIn: -1, Quality: 80},
			{Name: inventory.BackstagePasses, SellIn: 15, Quality: 20},
			{Name: inventory.BackstagePasses, SellIn: 10, Quality: 49},
			{Name: inventory.BackstagePasses, SellIn: 5, Quality: 49},
			{Name: inventory.ConjuredManaCake, SellIn: 3, Quality: 6},
		},
		Days: constants.DefaultDays,
		Logging: LoggingConfig{
			Level: "info",
		},
		History: HistoryConfig{
			Enabled: true,
		},
	}
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/wizzomafizzo/gildedrose/internal/inventory"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Items   []Item        `yaml:"items" mapstructure:"items"`
	Logging LoggingConfig `yaml:"logging,omitempty" mapstructure:"logging"`
	History HistoryConfig `yaml:"history" mapstructure:"history"`
	Days    int           `yaml:"days,omitempty" mapstructure:"days"`
}

// Item is a stock fixture entry. Quality is deliberately unchecked so
// legendary items (quality 80) and odd fixtures load as written.
type Item struct {
	Name    string `yaml:"name" mapstructure:"name"`
	SellIn  int    `yaml:"sell_in" mapstructure:"sell_in"`
	Quality int    `yaml:"quality" mapstructure:"quality"`
}

type LoggingConfig struct {
	Level string `yaml:"level,omitempty" mapstructure:"level"`
}

type HistoryConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

func newViper() *viper.Viper {
	viperInstance := viper.New()
	viperInstance.SetDefault("logging.level", "info")
	viperInstance.SetDefault("history.enabled", true)
	return viperInstance
}

func Load(path string) (*Config, error) {
	viperInstance := newViper()
	viperInstance.SetConfigFile(path)

	if err := viperInstance.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return decode(viperInstance)
}

// LoadFromYAML loads config from YAML bytes - helper for tests
func LoadFromYAML(data []byte) (*Config, error) {
	viperInstance := newViper()
	viperInstance.SetConfigType("yaml")

	if err := viperInstance.ReadConfig(strings.NewReader(string(data))); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return decode(viperInstance)
}

func decode(viperInstance *viper.Viper) (*Config, error) {
	var config Config
	if err := viperInstance.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Validate checks the fixture can seed a simulation
func (c *Config) Validate() error {
	if len(c.Items) == 0 {
		return errors.New("config must contain at least one item")
	}

	if c.Days < 0 {
		return fmt.Errorf("days must not be negative, got %d", c.Days)
	}

	for i, item := range c.Items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("item %d validation failed: name is required and cannot be empty", i+1)
		}
	}

	return nil
}

// AddItem appends an item to the fixture
func (c *Config) AddItem(item Item) {
	c.Items = append(c.Items, item)
}

// Stock builds the engine's items in fixture order
func (c *Config) Stock() []*inventory.Item {
	items := make([]*inventory.Item, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, inventory.NewItem(item.Name, item.SellIn, item.Quality))
	}
	return items
}

// Save writes the config as YAML to the OS filesystem
func (c *Config) Save(path string) error {
	return c.SaveTo(afero.NewOsFs(), path)
}

// SaveTo writes the config as YAML to fs
func (c *Config) SaveTo(fs afero.Fs, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := afero.WriteFile(fs, path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the complete application configuration
type Config struct {
	Service ServiceConfig `toml:"service"`
	Logging LoggingConfig `toml:"logging"`
	Catalog CatalogConfig `toml:"catalog"`
	Roster  RosterConfig  `toml:"roster"`
	TUI     TUIConfig     `toml:"tui"`
}

// ServiceConfig holds general application settings
type ServiceConfig struct {
	Name        string `toml:"name"`
	Environment string `toml:"environment"`
	DataDir     string `toml:"data_dir"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// CatalogConfig holds course catalog file settings
type CatalogConfig struct {
	Directory string   `toml:"directory"`
	Watch     bool     `toml:"watch"`
	Debounce  Duration `toml:"debounce"`
}

// RosterConfig holds roster import/export settings
type RosterConfig struct {
	Sheet      string `toml:"sheet"`
	HeaderRows int    `toml:"header_rows"`
}

// TUIConfig holds terminal UI settings
type TUIConfig struct {
	AccentColor string `toml:"accent_color"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in path fields
	cfg.expandEnvVars()

	return &cfg, nil
}

// LoadFromEnv loads configuration from the MCW_CONFIG environment variable
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("MCW_CONFIG")
	if path == "" {
		// Try default locations
		defaultPaths := []string{
			"./configs/humboldt.toml",
			"./humboldt.toml",
			filepath.Join(os.Getenv("HOME"), ".config/mcw/humboldt.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, fmt.Errorf("no config file found, set MCW_CONFIG or create configs/humboldt.toml")
	}

	return Load(path)
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.expandEnvVars()
	return cfg
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// Service
	if c.Service.Name == "" {
		c.Service.Name = "meinCAMPUSWERK"
	}
	if c.Service.Environment == "" {
		c.Service.Environment = "development"
	}
	if c.Service.DataDir == "" {
		c.Service.DataDir = "./data"
	}

	// Logging
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	// Catalog
	if c.Catalog.Directory == "" {
		c.Catalog.Directory = filepath.Join(c.Service.DataDir, "catalog")
	}
	if c.Catalog.Debounce.Duration == 0 {
		c.Catalog.Debounce.Duration = 500 * time.Millisecond
	}

	// Roster
	if c.Roster.Sheet == "" {
		c.Roster.Sheet = "Roster"
	}
	if c.Roster.HeaderRows == 0 {
		c.Roster.HeaderRows = 1
	}

	// TUI
	if c.TUI.AccentColor == "" {
		c.TUI.AccentColor = "205"
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.Service.DataDir = os.ExpandEnv(c.Service.DataDir)
	c.Catalog.Directory = os.ExpandEnv(c.Catalog.Directory)
}

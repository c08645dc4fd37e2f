package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the ingester configuration. Fields a config file leaves out
// keep their defaults, so a partial file (or none at all) works.
type Config struct {
	API      APIConfig           `yaml:"api"`
	Database DatabaseConfig      `yaml:"database"`
	Blocks   map[string][]string `yaml:"blocks"`
}

// APIConfig points the client at a card-search API.
type APIConfig struct {
	BaseURL     string `yaml:"base_url"`
	PageDelayMS int    `yaml:"page_delay_ms"`
	UserAgent   string `yaml:"user_agent"`
}

// DatabaseConfig names the output file.
type DatabaseConfig struct {
	File string `yaml:"file"`
}

// DefaultConfig returns the built-in configuration: the public Scryfall API
// and the three classic blocks.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:     "https://api.scryfall.com",
			PageDelayMS: 100,
			UserAgent:   "selectmtgdb/1.0",
		},
		Database: DatabaseConfig{File: "mtg.db"},
		Blocks: map[string][]string{
			"urzas":    {"usg", "ulg", "uds"},
			"masques":  {"mmq", "nem", "pcy"},
			"invasion": {"inv", "pls", "apc"},
		},
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults untouched.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	// A file can name keys with empty values; fall back rather than run
	// with an unusable config.
	defaults := DefaultConfig()
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = defaults.API.BaseURL
	}
	if cfg.API.PageDelayMS < 0 {
		cfg.API.PageDelayMS = defaults.API.PageDelayMS
	}
	if cfg.Database.File == "" {
		cfg.Database.File = defaults.Database.File
	}
	if len(cfg.Blocks) == 0 {
		cfg.Blocks = defaults.Blocks
	}
	return cfg, nil
}

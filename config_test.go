package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "https://api.scryfall.com", cfg.API.BaseURL)
	assert.Equal(t, 100, cfg.API.PageDelayMS)
	assert.Equal(t, "mtg.db", cfg.Database.File)
	assert.Equal(t, []string{"usg", "ulg", "uds"}, cfg.Blocks["urzas"])
	assert.Len(t, cfg.Blocks, 3)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
api:
  base_url: http://localhost:9999
  page_delay_ms: 5
database:
  file: other.db
blocks:
  mirage:
    - mir
    - vis
    - wth
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999", cfg.API.BaseURL)
	assert.Equal(t, 5, cfg.API.PageDelayMS)
	assert.Equal(t, "other.db", cfg.Database.File)

	// File blocks merge with the defaults rather than replacing them.
	assert.Equal(t, []string{"mir", "vis", "wth"}, cfg.Blocks["mirage"])
	assert.Equal(t, []string{"inv", "pls", "apc"}, cfg.Blocks["invasion"])

	// Unset keys keep their defaults.
	assert.Equal(t, "selectmtgdb/1.0", cfg.API.UserAgent)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [not a map"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

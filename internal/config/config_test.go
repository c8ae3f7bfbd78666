package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("WELLWATCH_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	cfg := Load()
	assert.Equal(t, ":8000", cfg.ListenAddr)
	assert.Equal(t, "wellwatch.db", cfg.DBPath)
	assert.True(t, cfg.Seed)
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "listen_addr: \":9100\"\ndb_path: /tmp/wells.db\nseed: false\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("WELLWATCH_CONFIG", path)

	cfg := Load()
	assert.Equal(t, ":9100", cfg.ListenAddr)
	assert.Equal(t, "/tmp/wells.db", cfg.DBPath)
	assert.False(t, cfg.Seed)
}

func TestLoadFillsEmptyFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: false\n"), 0o644))
	t.Setenv("WELLWATCH_CONFIG", path)

	cfg := Load()
	assert.Equal(t, ":8000", cfg.ListenAddr)
	assert.Equal(t, "wellwatch.db", cfg.DBPath)
	assert.False(t, cfg.Seed)
}

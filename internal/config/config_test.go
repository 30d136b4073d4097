package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(origDir) })
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t) // no config.yaml present

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Dataset.SkipRows)
	assert.Equal(t, 10, cfg.Comps.TopN)
	assert.InDelta(t, 33.3, cfg.Comps.WSize, 0.001)
	assert.InDelta(t, 33.3, cfg.Comps.WGrowth, 0.001)
	assert.InDelta(t, 33.4, cfg.Comps.WShare, 0.001)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	chdirTemp(t)

	yaml := `
dataset:
  path: data/traffic.xlsx
  sheet: Traffic
comps:
  topn: 5
  w_size: 50
log:
  level: debug
`
	dir, _ := os.Getwd()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/traffic.xlsx", cfg.Dataset.Path)
	assert.Equal(t, "Traffic", cfg.Dataset.Sheet)
	assert.Equal(t, 5, cfg.Comps.TopN)
	assert.InDelta(t, 50.0, cfg.Comps.WSize, 0.001)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Defaults still apply for unset values
	assert.Equal(t, 2, cfg.Dataset.SkipRows)
	assert.InDelta(t, 33.3, cfg.Comps.WGrowth, 0.001)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))
	assert.Error(t, InitLogger(LogConfig{Level: "not-a-level", Format: "json"}))
}

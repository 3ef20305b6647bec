package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zamm-dev/showcase/internal/models"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SHOWCASE_CONFIG_PATH", "SHOWCASE_STORAGE_PATH", "SHOWCASE_LOG_LEVEL", "SHOWCASE_NO_COLOR"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, DirName), cfg.Storage.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 600, cfg.Layout.BreakpointPx)
	assert.Equal(t, 8, cfg.Layout.CellWidthPx)
	assert.Equal(t, "Tool Bar", cfg.Toolbar.Title)
	assert.Equal(t, "table", cfg.CLI.OutputFormat)
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, DirName), 0755))
	content := `storage:
  path: data
layout:
  breakpoint_px: 480
  cell_width_px: 6
toolbar:
  title: Projects
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, DirName, "config.yaml"), []byte(content), 0644))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "data"), cfg.Storage.Path)
	assert.Equal(t, 480, cfg.Layout.BreakpointPx)
	assert.Equal(t, 6, cfg.Layout.CellWidthPx)
	assert.Equal(t, "Projects", cfg.Toolbar.Title)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	storageDir := filepath.Join(dir, "elsewhere")
	t.Setenv("SHOWCASE_STORAGE_PATH", storageDir)
	t.Setenv("SHOWCASE_LOG_LEVEL", "debug")
	t.Setenv("SHOWCASE_NO_COLOR", "1")

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, storageDir, cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "never", cfg.CLI.Color)
}

func TestLoadRejectsBadLayout(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("layout:\n  cell_width_px: 0\n"), 0644))

	_, err := LoadFrom(dir)
	var showcaseErr *models.ShowcaseError
	require.ErrorAs(t, err, &showcaseErr)
	assert.Equal(t, models.ErrTypeValidation, showcaseErr.Type)
}

func TestWriteDefaultConfig(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	path, err := WriteDefaultConfig(dir)
	require.NoError(t, err)
	assert.FileExists(t, path)

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, DirName), cfg.Storage.Path)

	// second call keeps the existing file
	require.NoError(t, os.WriteFile(path, []byte("toolbar:\n  title: Mine\n"), 0644))
	_, err = WriteDefaultConfig(dir)
	require.NoError(t, err)
	cfg, err = LoadFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "Mine", cfg.Toolbar.Title)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "", expandPath("", "/base"))
	assert.Equal(t, filepath.Join("/base", "x"), expandPath("x", "/base"))
	assert.Equal(t, "/abs", expandPath("/abs", "/base"))
	assert.Equal(t, filepath.Join(home, "logs"), expandPath("~/logs", "/base"))
}

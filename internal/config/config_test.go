package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup at a fresh temp dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvBackend, "")
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvThemeFile, "")
	t.Setenv(EnvLogLevel, "")
	return dir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "unitime")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	assert.Equal(t, "q", defaults.Quit)
	assert.Equal(t, "a", defaults.AddTask)
	assert.Equal(t, "space", defaults.Grab)
	assert.Equal(t, "esc", defaults.Cancel)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "q", cfg.KeyMappings.Quit)
	assert.Equal(t, DefaultBackend, cfg.Storage.Backend)
	assert.NotEmpty(t, cfg.Storage.DataDir)
	assert.Equal(t, DefaultDebounce, cfg.Storage.DebounceDelay())
	assert.True(t, cfg.Board.ShouldSeed())
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
	assert.NotEmpty(t, cfg.ColorScheme.DragBorder)
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `storage:
  backend: File
  data_dir: /tmp/board
  debounce: 0s
board:
  seed_columns: false
key_mappings:
  quit: "x"
  add_task: "n"
log_level: debug
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/board", cfg.Storage.DataDir)
	assert.Equal(t, time.Duration(0), cfg.Storage.DebounceDelay())
	assert.False(t, cfg.Board.ShouldSeed())
	assert.Equal(t, "x", cfg.KeyMappings.Quit)
	assert.Equal(t, "n", cfg.KeyMappings.AddTask)
	assert.Equal(t, "debug", cfg.LogLevel)

	// unspecified values fall back to defaults
	assert.Equal(t, "e", cfg.KeyMappings.EditTask)
	assert.Equal(t, DefaultRedisAddr, cfg.Storage.Redis.Addr)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "storage: [unclosed\n")

	_, err := Load()
	assert.Error(t, err)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "storage:\n  backend: sqlite\n")
	t.Setenv(EnvBackend, "memory")
	t.Setenv(EnvDataDir, "/srv/unitime")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, "/srv/unitime", cfg.Storage.DataDir)
}

func TestSaveConfig(t *testing.T) {
	dir := isolate(t)

	cfg := Default()
	cfg.KeyMappings.Quit = "x"
	cfg.Storage.Backend = "file"

	require.NoError(t, cfg.Save())
	assert.FileExists(t, filepath.Join(dir, "unitime", "config.yaml"))

	reloaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "x", reloaded.KeyMappings.Quit)
	assert.Equal(t, "file", reloaded.Storage.Backend)
}

// ============================================================================
// THEME
// ============================================================================

func TestThemeFileLoading(t *testing.T) {
	isolate(t)
	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(themePath, []byte(`theme:
  accent: "#FF0000"
  create: "#00FF00"
  edit: "#0000FF"
`), 0o644))
	t.Setenv(EnvThemeFile, themePath)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "#FF0000", cfg.ColorScheme.Accent)
	assert.Equal(t, "#00FF00", cfg.ColorScheme.Create)
	assert.Equal(t, "#0000FF", cfg.ColorScheme.Edit)
	assert.NotEmpty(t, cfg.ColorScheme.Delete, "other colors keep their defaults")
}

func TestThemePresetFromFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "theme:\n  preset: monochrome\n  accent: \"#123456\"\n")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "#123456", cfg.ColorScheme.Accent)
	assert.Equal(t, "#FFFFFF", cfg.ColorScheme.ColumnBorder)
}

func TestMissingThemeFileIsIgnored(t *testing.T) {
	isolate(t)
	t.Setenv(EnvThemeFile, filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
}

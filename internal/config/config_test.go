package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CNOTEPAD_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, float32(1013), cfg.Window.Width)
	require.Equal(t, float32(628), cfg.Window.Height)
	require.Equal(t, "*new", cfg.Editor.DefaultName)
	require.Equal(t, float32(DefaultTextSize), cfg.Editor.TextSize)
	require.Equal(t, []string{".txt", ".py", ".pyw"}, cfg.Dialogs.Extensions)
	require.Equal(t, "info", cfg.Log.Level)
	require.True(t, cfg.Log.FileStats)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := `
[window]
width = 1400
height = 100

[editor]
text_size = 18
default_name = "untitled"

[dialogs]
extensions = ["md", " .TXT ", ""]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("CNOTEPAD_CONFIG", path)
	t.Setenv("CNOTEPAD_LOG_LEVEL", "debug")
	t.Setenv("CNOTEPAD_LOG_FILE_STATS", "false")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, float32(1400), cfg.Window.Width)
	require.Equal(t, float32(MinWindowHeight), cfg.Window.Height)
	require.Equal(t, float32(18), cfg.Editor.TextSize)
	require.Equal(t, "untitled", cfg.Editor.DefaultName)
	require.Equal(t, []string{".md", ".txt"}, cfg.Dialogs.Extensions)
	require.Equal(t, "debug", cfg.Log.Level)
	require.False(t, cfg.Log.FileStats)
}

func TestLoadClampsBelowMinimums(t *testing.T) {
	t.Setenv("CNOTEPAD_CONFIG", "")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CNOTEPAD_WINDOW_WIDTH", "300")
	t.Setenv("CNOTEPAD_EDITOR_TEXT_SIZE", "2")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, float32(MinWindowWidth), cfg.Window.Width)
	require.Equal(t, float32(MinWindowHeight), cfg.Window.Height)
	require.Equal(t, float32(DefaultTextSize), cfg.Editor.TextSize)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	t.Setenv("CNOTEPAD_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	_, err := Load()
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, "*new", cfg.Editor.DefaultName)
	require.Len(t, cfg.Dialogs.Extensions, 3)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/runoshun/quadrant/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGlobal(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0644))
}

func writeProject(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(domain.ProjectConfigPath(dir), []byte(content), 0644))
}

func TestLoader_Load_ProjectConfigOnly(t *testing.T) {
	// Setup
	projectDir := t.TempDir()
	globalDir := t.TempDir()
	writeProject(t, projectDir, `
[store]
base_url = "http://board.lan:5001"
timeout = "3s"

[board]
default_view = "weekly"

[log]
level = "debug"
`)

	// Execute
	loader := NewLoaderWithGlobalDir(projectDir, globalDir)
	cfg, err := loader.Load()
	require.NoError(t, err)

	// Assert
	assert.Equal(t, "http://board.lan:5001", cfg.Store.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Store.RequestTimeout())
	assert.Equal(t, domain.KindWeekly, cfg.Board.View())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Board.ConfirmDelete, "unset bool keeps default")
	assert.True(t, cfg.TUI.Mouse)
}

func TestLoader_Load_GlobalConfigOnly(t *testing.T) {
	projectDir := t.TempDir()
	globalDir := t.TempDir()
	writeGlobal(t, globalDir, `
[tui]
toast_seconds = 5
mouse = false
`)

	cfg, err := NewLoaderWithGlobalDir(projectDir, globalDir).Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.TUI.ToastDuration())
	assert.False(t, cfg.TUI.Mouse)
	assert.Equal(t, domain.DefaultBaseURL, cfg.Store.BaseURL)
}

func TestLoader_Load_ProjectOverridesGlobal(t *testing.T) {
	projectDir := t.TempDir()
	globalDir := t.TempDir()
	writeGlobal(t, globalDir, `
[store]
base_url = "http://global:5001"

[board]
confirm_delete = false
default_view = "weekly"
`)
	writeProject(t, projectDir, `
[board]
confirm_delete = true
`)

	cfg, err := NewLoaderWithGlobalDir(projectDir, globalDir).Load()
	require.NoError(t, err)

	assert.Equal(t, "http://global:5001", cfg.Store.BaseURL)
	assert.True(t, cfg.Board.ConfirmDelete)
	assert.Equal(t, "weekly", cfg.Board.DefaultView)
}

func TestLoader_Load_NoConfigFiles(t *testing.T) {
	cfg, err := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_EnvOverridesServer(t *testing.T) {
	projectDir := t.TempDir()
	writeProject(t, projectDir, "[store]\nbase_url = \"http://file:5001\"\n")

	loader := NewLoaderWithGlobalDir(projectDir, "").WithEnv(func(key string) string {
		if key == domain.EnvServer {
			return "http://env:5001"
		}
		return ""
	})
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://env:5001", cfg.Store.BaseURL)
}

func TestLoader_Load_Warnings(t *testing.T) {
	projectDir := t.TempDir()
	writeProject(t, projectDir, `
theme = "dark"

[board]
default_view = "weekly"
columns = 3

[tui]
mouse = "yes"

[workers]
default = "x"
`)

	cfg, err := NewLoaderWithGlobalDir(projectDir, "").Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"invalid value for tui.mouse: yes",
		"unknown key in [board]: columns",
		"unknown section: theme",
		"unknown section: workers",
	}, cfg.Warnings)
	assert.True(t, cfg.TUI.Mouse)
	assert.Equal(t, "weekly", cfg.Board.DefaultView)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	projectDir := t.TempDir()
	writeProject(t, projectDir, "[board\n")

	_, err := NewLoaderWithGlobalDir(projectDir, "").Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), ".quadrant.toml")
}

func TestLoader_LoadGlobal(t *testing.T) {
	t.Run("applies global over defaults", func(t *testing.T) {
		globalDir := t.TempDir()
		writeGlobal(t, globalDir, "[log]\nlevel = \"warn\"\n")

		cfg, err := NewLoaderWithGlobalDir("", globalDir).LoadGlobal()
		require.NoError(t, err)

		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Equal(t, domain.DefaultBaseURL, cfg.Store.BaseURL)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoaderWithGlobalDir("", t.TempDir()).LoadGlobal()
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("no global dir", func(t *testing.T) {
		_, err := NewLoaderWithGlobalDir("", "").LoadGlobal()
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := setTestHome(t)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".local", "share", "tally"), cfg.DataDir)
	assert.False(t, cfg.NotifyEnabled)
	assert.Equal(t, defaultWatchIntervalMs, cfg.WatchIntervalMs)
}

func TestLoadWritesDefaultConfigFile(t *testing.T) {
	home := setTestHome(t)

	_, err := Load(viper.New())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(home, ".config", "tally", "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[data]")
	assert.Contains(t, string(data), "[notify]")
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := setTestHome(t)
	configDir := filepath.Join(home, ".config", "tally")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	content := "[data]\ndir = \"/tmp/tally-data\"\n\n[notify]\nenabled = true\n\n[watch]\ninterval_ms = 100\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "/tmp/tally-data", cfg.DataDir)
	assert.True(t, cfg.NotifyEnabled)
	assert.Equal(t, 100, cfg.WatchIntervalMs)
}

func TestWatchIntervalHasFloor(t *testing.T) {
	home := setTestHome(t)
	configDir := filepath.Join(home, ".config", "tally")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("[watch]\ninterval_ms = 1\n"), 0o644))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, minWatchIntervalMs, cfg.WatchIntervalMs)
}

func TestUnreadableConfigFailsOpenToDefaults(t *testing.T) {
	home := setTestHome(t)
	configDir := filepath.Join(home, ".config", "tally")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("= not toml ="), 0o644))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".local", "share", "tally"), cfg.DataDir)
	assert.Equal(t, defaultWatchIntervalMs, cfg.WatchIntervalMs)
}

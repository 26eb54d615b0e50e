package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, FileName), dir)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 15*time.Second, cfg.Timeout())
	assert.Equal(t, filepath.Join(dir, "restart_scheduler.log"), cfg.LogPath)
	assert.Equal(t, filepath.Join(dir, "restart_scheduler_config.json"), cfg.SettingsPath)
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(
		"log_level: debug\ncommand_timeout: 10s\nsettings_path: other.json\nexcluded_users: [kiosk]\n"), 0644))

	cfg, err := Load(path, dir)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	assert.Equal(t, filepath.Join(dir, "other.json"), cfg.SettingsPath)
	assert.Equal(t, []string{"kiosk"}, cfg.ExcludedUsers)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("command_timeout: soon\n"), 0644))

	_, err := Load(path, dir)
	require.Error(t, err)
}

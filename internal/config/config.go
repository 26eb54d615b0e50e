// Package config loads the optional YAML app config kept next to the
// executable. It tunes paths and timeouts; the settings document holding
// the actual schedules is separate (see adapter/jsonfile).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// FileName is looked up in the executable's directory.
	FileName = "screentime.yaml"

	settingsFileName = "restart_scheduler_config.json"
	logFileName      = "restart_scheduler.log"

	defaultCommandTimeout = 15 * time.Second
)

type Config struct {
	LogLevel       string   `yaml:"log_level"`
	LogPath        string   `yaml:"log_path"`
	SettingsPath   string   `yaml:"settings_path"`
	CommandTimeout string   `yaml:"command_timeout"`
	ExcludedUsers  []string `yaml:"excluded_users"`

	commandTimeout time.Duration
}

// Load reads the config file at path; a missing file yields defaults.
// Relative log/settings paths are resolved against baseDir, as is the
// default location of both files.
func Load(path, baseDir string) (*Config, error) {
	cfg := &Config{
		LogLevel:       "info",
		commandTimeout: defaultCommandTimeout,
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if cfg.CommandTimeout != "" {
		d, err := time.ParseDuration(cfg.CommandTimeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("config %s: invalid command_timeout %q", path, cfg.CommandTimeout)
		}
		cfg.commandTimeout = d
	}

	if cfg.LogPath == "" {
		cfg.LogPath = logFileName
	}
	if cfg.SettingsPath == "" {
		cfg.SettingsPath = settingsFileName
	}
	if !filepath.IsAbs(cfg.LogPath) {
		cfg.LogPath = filepath.Join(baseDir, cfg.LogPath)
	}
	if !filepath.IsAbs(cfg.SettingsPath) {
		cfg.SettingsPath = filepath.Join(baseDir, cfg.SettingsPath)
	}
	return cfg, nil
}

// Timeout is the per-command deadline.
func (c *Config) Timeout() time.Duration { return c.commandTimeout }

// Package config is responsible for setting the program config from
// the config file and command-line arguments
package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/ayoisaiah/tally/internal/pathutil"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Storage  StorageConfig  `mapstructure:"storage"`
		AutoSave AutoSaveConfig `mapstructure:"autosave"`
		Settings SettingsConfig `mapstructure:"settings"`
		Display  DisplayConfig  `mapstructure:"display"`
		CLI      CLIConfig      `mapstructure:"-"`
		// prompt holds first-run answers that must be written to the new
		// config file
		prompt *PromptOptions
	}

	// StorageConfig holds the location and format of save files.
	StorageConfig struct {
		Dir          string `mapstructure:"dir"`
		Backend      string `mapstructure:"backend"`
		SaveFile     string `mapstructure:"save_file"`
		AutoSaveFile string `mapstructure:"autosave_file"`
	}

	// AutoSaveConfig holds periodic save settings. Interval is counted in
	// one second ticks.
	AutoSaveConfig struct {
		Enabled  bool `mapstructure:"enabled"`
		Interval int  `mapstructure:"interval"`
	}

	// SettingsConfig holds behavioural settings.
	SettingsConfig struct {
		TaskCmd string `mapstructure:"task_cmd"`
		Restore bool   `mapstructure:"restore"`
		Notify  bool   `mapstructure:"notify"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// CLIConfig holds options that only come from the command line.
	CLIConfig struct {
		Debug   bool
		NoColor bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

const (
	BackendJSON = "json"
	BackendBolt = "bolt"
)

var Backends = []string{BackendJSON, BackendBolt}

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies the options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// DBFilePath is the BoltDB file used by the bolt backend.
func (c *Config) DBFilePath() string {
	return filepath.Join(c.Storage.Dir, pathutil.DBFileName())
}

// AutoSaveEvery returns the auto-save interval in ticks, or zero when
// auto-saving is disabled.
func (c *Config) AutoSaveEvery() int {
	if !c.AutoSave.Enabled {
		return 0
	}

	return c.AutoSave.Interval
}

package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/tally/internal/pathutil"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyStorageDir       = "storage.dir"
	keyStorageBackend   = "storage.backend"
	keySaveFile         = "storage.save_file"
	keyAutoSaveFile     = "storage.autosave_file"
	keyAutoSaveEnabled  = "autosave.enabled"
	keyAutoSaveInterval = "autosave.interval"
	keyRestore          = "settings.restore"
	keyNotify           = "settings.notify"
	keyTaskCmd          = "settings.task_cmd"
	keyDarkTheme        = "display.dark_theme"
)

const (
	defaultSaveFile         = "save.json"
	defaultAutoSaveFile     = "autosave.json"
	defaultAutoSaveInterval = 60
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. The file is created with default values if it does not
// exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and prompt values.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyStorageDir, pathutil.DataDir())
	v.SetDefault(keyStorageBackend, BackendJSON)
	v.SetDefault(keySaveFile, defaultSaveFile)
	v.SetDefault(keyAutoSaveFile, defaultAutoSaveFile)
	v.SetDefault(keyAutoSaveEnabled, true)
	v.SetDefault(keyAutoSaveInterval, defaultAutoSaveInterval)
	v.SetDefault(keyRestore, true)
	v.SetDefault(keyNotify, false)
	v.SetDefault(keyTaskCmd, "")
	v.SetDefault(keyDarkTheme, true)

	if c.prompt != nil {
		v.Set(keyAutoSaveEnabled, c.prompt.AutoSave)
		v.Set(keyAutoSaveInterval, c.prompt.Interval)
		v.Set(keyStorageBackend, c.prompt.Backend)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errDecodeConfig.Wrap(err)
	}

	return nil
}

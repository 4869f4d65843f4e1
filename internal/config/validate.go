package config

import (
	"slices"

	"github.com/ayoisaiah/tally/store"
)

const (
	minAutoSaveInterval = 1
	maxAutoSaveInterval = 24 * 60 * 60
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateStorage(); err != nil {
		return err
	}

	return c.validateAutoSave()
}

func (c *Config) validateStorage() error {
	if c.Storage.Dir == "" {
		return errEmptyDir
	}

	if !slices.Contains(Backends, c.Storage.Backend) {
		return errUnknownBackend.Fmt(c.Storage.Backend, Backends)
	}

	if err := store.ValidName(c.Storage.SaveFile); err != nil {
		return errInvalidFileName.Fmt("save file").Wrap(err)
	}

	if err := store.ValidName(c.Storage.AutoSaveFile); err != nil {
		return errInvalidFileName.Fmt("auto-save file").Wrap(err)
	}

	if c.Storage.SaveFile == c.Storage.AutoSaveFile {
		return errSameFile.Fmt(c.Storage.SaveFile)
	}

	return nil
}

func (c *Config) validateAutoSave() error {
	if !c.AutoSave.Enabled {
		return nil
	}

	if c.AutoSave.Interval < minAutoSaveInterval ||
		c.AutoSave.Interval > maxAutoSaveInterval {
		return errInvalidInterval.Fmt(
			minAutoSaveInterval,
			maxAutoSaveInterval,
			c.AutoSave.Interval,
		)
	}

	return nil
}

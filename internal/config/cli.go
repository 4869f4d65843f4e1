package config

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Dir              string
	Backend          string
	TaskCmd          string
	AutoSaveInterval int
	DisableAutoSave  bool
	DisableRestore   bool
	Notify           bool
	Debug            bool
	NoColor          bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Flags that were not set leave the file configuration untouched.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Dir:              ctx.String("dir"),
			Backend:          ctx.String("backend"),
			TaskCmd:          ctx.String("task-cmd"),
			AutoSaveInterval: ctx.Int("autosave-interval"),
			DisableAutoSave:  ctx.Bool("no-autosave"),
			DisableRestore:   ctx.Bool("no-restore"),
			Notify:           ctx.Bool("notify"),
			Debug:            ctx.Bool("debug"),
			NoColor:          ctx.Bool("no-color"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Dir != "" {
		c.Storage.Dir = opts.Dir
	}

	if opts.Backend != "" {
		c.Storage.Backend = strings.ToLower(strings.TrimSpace(opts.Backend))
	}

	if opts.TaskCmd != "" {
		c.Settings.TaskCmd = opts.TaskCmd
	}

	if opts.AutoSaveInterval != 0 {
		c.AutoSave.Interval = opts.AutoSaveInterval
	}

	if opts.DisableAutoSave {
		c.AutoSave.Enabled = false
	}

	if opts.DisableRestore {
		c.Settings.Restore = false
	}

	if opts.Notify {
		c.Settings.Notify = true
	}

	c.CLI.Debug = opts.Debug
	c.CLI.NoColor = opts.NoColor
}

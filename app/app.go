// Package app wires the command-line interface to the widget and the stores
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tally/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the tally app instance.
func Get() *cli.App {
	tallyApp := &cli.App{
		Name: "tally",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Tally is a to-do list for the command-line that keeps time for you. It
		tracks how long you spend on the current task, the task before it and
		your breaks, and saves everything so you can pick up where you left off.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "status",
				Usage:  "Print a saved task list and its timers",
				Action: statusAction,
				Flags: []cli.Flag{
					statusFileFlag,
					jsonFlag,
					sortFlag,
				},
			},
		},
		Flags: []cli.Flag{
			dirFlag,
			backendFlag,
			taskCmdFlag,
			notifyFlag,
			autoSaveIntervalFlag,
			noAutoSaveFlag,
			noRestoreFlag,
			debugFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return tallyApp
}

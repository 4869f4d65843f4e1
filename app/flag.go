package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug records to the log file",
	}

	dirFlag = &cli.StringFlag{
		Name:  "dir",
		Usage: "Directory that holds the save files (overrides storage.dir)",
	}

	backendFlag = &cli.StringFlag{
		Name:    "backend",
		Aliases: []string{"b"},
		Usage:   "Storage backend: json or bolt (overrides storage.backend)",
	}

	taskCmdFlag = &cli.StringFlag{
		Name:    "task-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each completed task",
	}

	notifyFlag = &cli.BoolFlag{
		Name:  "notify",
		Usage: "Show a desktop notification when a task is completed",
	}

	autoSaveIntervalFlag = &cli.IntFlag{
		Name:    "autosave-interval",
		Aliases: []string{"i"},
		Usage:   "Seconds between automatic saves (default: 60)",
	}

	noAutoSaveFlag = &cli.BoolFlag{
		Name:  "no-autosave",
		Usage: "Disable periodic saving and saving on quit",
	}

	noRestoreFlag = &cli.BoolFlag{
		Name:  "no-restore",
		Usage: "Start with an empty list instead of the last auto-save",
	}

	statusFileFlag = &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "Which document to print: autosave or save",
		Value:   fileAutoSave,
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the raw document as JSON",
	}

	sortFlag = &cli.BoolFlag{
		Name:  "sort",
		Usage: "List tasks in natural order",
	}
)

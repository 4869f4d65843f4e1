package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/tally/internal/config"
	"github.com/ayoisaiah/tally/internal/hook"
	"github.com/ayoisaiah/tally/internal/logging"
	"github.com/ayoisaiah/tally/internal/osutil"
	"github.com/ayoisaiah/tally/internal/pathutil"
	"github.com/ayoisaiah/tally/internal/session"
	"github.com/ayoisaiah/tally/internal/ui"
	"github.com/ayoisaiah/tally/report"
	"github.com/ayoisaiah/tally/store"
	"github.com/ayoisaiah/tally/widget"
)

const (
	envNoColor      = "NO_COLOR"
	envTallyNoColor = "TALLY_NO_COLOR"
)

const (
	fileAutoSave = "autosave"
	fileSave     = "save"
)

const logCloserKey = "log"

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	path := pathutil.ConfigFilePath()

	return config.New(
		config.WithPromptConfig(path),
		config.WithViperConfig(path),
		config.WithCLIConfig(ctx),
	)
}

// newBackend returns the store selected by storage.backend.
func newBackend(cfg *config.Config) store.Backend {
	if cfg.Storage.Backend == config.BackendBolt {
		return store.Bolt{Path: cfg.DBFilePath()}
	}

	return store.Files{Dir: cfg.Storage.Dir}
}

// editConfigAction handles the edit-config command which opens the tally
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	// creates the file with the defaults if it is missing
	if _, err := loadConfig(ctx); err != nil {
		return err
	}

	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// statusAction prints one of the saved documents without starting the
// widget.
func statusAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	var name string

	switch ctx.String("file") {
	case fileAutoSave:
		name = cfg.Storage.AutoSaveFile
	case fileSave:
		name = cfg.Storage.SaveFile
	default:
		return errUnknownFile.Fmt(ctx.String("file"), fileAutoSave, fileSave)
	}

	doc, err := newBackend(cfg).Load(ctx.Context, name)
	if errors.Is(err, store.ErrNotFound) {
		pterm.Info.Printfln("Nothing has been saved to %s yet", name)
		return nil
	}

	if err != nil {
		slog.ErrorContext(
			ctx.Context,
			"status: load failed",
			slog.String("file", name),
			slog.String("kind", store.Kind(err)),
			slog.Any("error", err),
		)

		return err
	}

	if ctx.Bool("json") {
		b, err := store.Encode(doc)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(config.Stdout, string(b))

		return err
	}

	return report.Document(config.Stdout, doc, report.Options{
		Name: name,
		Sort: ctx.Bool("sort"),
	})
}

// defaultAction runs the interactive widget until the user quits.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	queue := store.NewQueue(ctx.Context, newBackend(cfg))
	defer queue.Close()

	sess := session.New(time.Now(), session.Options{
		AutoSaveEvery: cfg.AutoSaveEvery(),
	})

	m := widget.New(sess, widget.Options{
		Context: ctx.Context,
		Queue:   queue,
		Hook: &hook.Hook{
			TaskCmd: cfg.Settings.TaskCmd,
			Notify:  cfg.Settings.Notify,
		},
		Files: widget.Files{
			Save:     cfg.Storage.SaveFile,
			AutoSave: cfg.Storage.AutoSaveFile,
		},
		Theme:      ui.NewTheme(cfg.Display.DarkTheme),
		Restore:    cfg.Settings.Restore,
		SaveOnQuit: cfg.AutoSave.Enabled,
	})

	slog.InfoContext(
		ctx.Context,
		"starting tally",
		slog.String("backend", cfg.Storage.Backend),
		slog.String("dir", cfg.Storage.Dir),
		slog.Int("autosave_every", cfg.AutoSaveEvery()),
	)

	_, err = tea.NewProgram(m, tea.WithContext(ctx.Context)).Run()

	return err
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if TALLY_NO_COLOR is set
	if _, exists := os.LookupEnv(envTallyNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	closer := logging.Setup(logging.Options{
		Path:  pathutil.LogFilePath(),
		Debug: ctx.Bool("debug"),
	})

	if ctx.App.Metadata == nil {
		ctx.App.Metadata = make(map[string]any)
	}

	ctx.App.Metadata[logCloserKey] = closer

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting tally")

	if c, ok := ctx.App.Metadata[logCloserKey].(io.Closer); ok {
		return c.Close()
	}

	return nil
}

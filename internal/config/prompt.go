package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/ayoisaiah/tally/internal/pathutil"
)

const asciiLogo = `
████████╗ █████╗ ██╗     ██╗  ██╗   ██╗
╚══██╔══╝██╔══██╗██║     ██║  ╚██╗ ██╔╝
   ██║   ███████║██║     ██║   ╚████╔╝
   ██║   ██╔══██║██║     ██║    ╚██╔╝
   ██║   ██║  ██║███████╗███████╗██║
   ╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝╚═╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Backend  string
	Interval int
	AutoSave bool
}

// WithPromptConfig returns an Option that asks for the auto-save preferences
// the first time the program runs. It does nothing when the config file
// already exists, in the testing environment, or when stdin is not a terminal.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		if !interactive() {
			return nil
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		c.prompt = &opts

		return nil
	}
}

func interactive() bool {
	if strings.TrimSpace(os.Getenv(pathutil.EnvName)) == "testing" {
		return false
	}

	f, ok := Stdin.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		AutoSave: true,
		Interval: defaultAutoSaveInterval,
		Backend:  BackendJSON,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure Tally for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'tally edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save your tasks automatically?").
				Affirmative("Yes").
				Negative("No").
				Value(&opts.AutoSave),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Auto-save every").
				Options(
					huh.NewOption("30 seconds", 30),
					huh.NewOption("1 minute", 60).Selected(true),
					huh.NewOption("2 minutes", 120),
					huh.NewOption("5 minutes", 300),
				).
				Value(&opts.Interval),
		).WithHideFunc(func() bool {
			return !opts.AutoSave
		}),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Storage format").
				Options(
					huh.NewOption("JSON files", BackendJSON).Selected(true),
					huh.NewOption("Single database file", BackendBolt),
				).
				Value(&opts.Backend),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

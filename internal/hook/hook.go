// Package hook runs the user's side effects after a task is completed
package hook

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/tally/internal/timeutil"
)

const (
	EnvTask     = "TALLY_TASK"
	EnvTaskTime = "TALLY_TASK_TIME"
)

var errParseCmd = errors.New("unable to parse task_cmd option")

// Completion describes a task that was just marked complete.
type Completion struct {
	Task string
	Time time.Duration
}

// Hook holds the configured side effects. The zero value does nothing.
type Hook struct {
	// notify replaces beeep.Notify in tests
	notify  func(title, message string) error
	TaskCmd string
	Notify  bool
}

// Run notifies and runs the task command for c. Both are attempted and their
// errors are joined.
func (h *Hook) Run(ctx context.Context, c Completion) error {
	var errs []error

	if h.Notify {
		errs = append(errs, h.sendNotification(c))
	}

	errs = append(errs, h.runTaskCmd(ctx, c))

	return errors.Join(errs...)
}

func (h *Hook) sendNotification(c Completion) error {
	notify := h.notify
	if notify == nil {
		notify = func(title, message string) error {
			return beeep.Notify(title, message, "")
		}
	}

	msg := fmt.Sprintf("%s (%s)", c.Task, timeutil.HMS(c.Time))

	return notify("Task completed", msg)
}

// Command returns the task command prepared for c, or nil when no command is
// configured.
func (h *Hook) Command(ctx context.Context, c Completion) (*exec.Cmd, error) {
	if h.TaskCmd == "" {
		return nil, nil
	}

	cmdSlice, err := shellquote.Split(h.TaskCmd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errParseCmd, err)
	}

	if len(cmdSlice) == 0 {
		return nil, nil
	}

	cmd := exec.CommandContext(ctx, cmdSlice[0], cmdSlice[1:]...)
	cmd.Env = append(
		os.Environ(),
		EnvTask+"="+c.Task,
		EnvTaskTime+"="+timeutil.HMS(c.Time),
	)

	return cmd, nil
}

func (h *Hook) runTaskCmd(ctx context.Context, c Completion) error {
	cmd, err := h.Command(ctx, c)
	if err != nil || cmd == nil {
		return err
	}

	return cmd.Run()
}

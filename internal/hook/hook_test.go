package hook

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	testCases := []struct {
		name     string
		taskCmd  string
		wantArgs []string
		wantErr  bool
	}{
		{
			name: "no command",
		},
		{
			name:    "whitespace only",
			taskCmd: "   ",
		},
		{
			name:     "quoted arguments",
			taskCmd:  `notify-send "Task done" 'well done'`,
			wantArgs: []string{"notify-send", "Task done", "well done"},
		},
		{
			name:    "unterminated quote",
			taskCmd: `echo "oops`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := &Hook{TaskCmd: tc.taskCmd}

			cmd, err := h.Command(context.Background(), Completion{
				Task: "Write report",
				Time: 90 * time.Second,
			})
			if tc.wantErr {
				assert.ErrorIs(t, err, errParseCmd)
				return
			}

			require.NoError(t, err)

			if tc.wantArgs == nil {
				assert.Nil(t, cmd)
				return
			}

			assert.Equal(t, tc.wantArgs, cmd.Args)
			assert.Contains(t, cmd.Env, "TALLY_TASK=Write report")
			assert.Contains(t, cmd.Env, "TALLY_TASK_TIME=00:01:30")
		})
	}
}

func TestRunNotifies(t *testing.T) {
	var title, message string

	h := &Hook{
		Notify: true,
		notify: func(tt, m string) error {
			title, message = tt, m
			return nil
		},
	}

	err := h.Run(context.Background(), Completion{Task: "Plan", Time: time.Hour})
	require.NoError(t, err)
	assert.Equal(t, "Task completed", title)
	assert.Equal(t, "Plan (01:00:00)", message)
}

func TestRunJoinsErrors(t *testing.T) {
	errNotify := errors.New("no notification daemon")

	h := &Hook{
		Notify:  true,
		TaskCmd: `"unterminated`,
		notify: func(_, _ string) error {
			return errNotify
		},
	}

	err := h.Run(context.Background(), Completion{Task: "Plan"})
	assert.ErrorIs(t, err, errNotify)
	assert.ErrorIs(t, err, errParseCmd)
}

func TestRunTaskCmd(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	h := &Hook{TaskCmd: `sh -c 'test "$TALLY_TASK" = "Ship it"'`}

	err := h.Run(context.Background(), Completion{Task: "Ship it"})
	assert.NoError(t, err)

	h.TaskCmd = `sh -c 'test "$TALLY_TASK" = "Something else"'`

	err = h.Run(context.Background(), Completion{Task: "Ship it"})
	assert.Error(t, err)
}

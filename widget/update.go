package widget

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/tally/internal/session"
	"github.com/ayoisaiah/tally/store"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.handleTick()
	case resultMsg:
		return m.handleResult(msg)
	case hookDoneMsg:
		if msg.err != nil {
			slog.Error(
				"task hook failed",
				slog.String("task", msg.task),
				slog.Any("error", msg.err),
			)
			m.setError(fmt.Errorf("task hook: %w", msg.err))
		}

		return m, nil
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	// cursor blinks and similar
	if m.sess.Adding() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)

		return m, cmd
	}

	slog.Debug("unhandled message", slog.String("msg", spew.Sdump(msg)))

	return m, nil
}

func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	now := m.now()

	if m.sess.Tick(now) {
		return m, tea.Batch(tick(), m.submitSave(m.files.AutoSave, now, false))
	}

	return m, tick()
}

func (m *Model) handleResult(msg resultMsg) (tea.Model, tea.Cmd) {
	res := msg.res

	logAttrs := []any{
		slog.String("op", res.Op.String()),
		slog.String("file", res.Name),
		slog.Uint64("seq", res.Seq),
	}

	if res.Err != nil {
		logAttrs = append(
			logAttrs,
			slog.String("kind", store.Kind(res.Err)),
			slog.Any("error", res.Err),
		)
	}

	// a newer load is in flight; applying this one would undo it
	if res.Op == store.OpLoad && msg.load < m.loads {
		slog.Debug("stale load dropped", logAttrs...)
		return m, nil
	}

	switch {
	case res.Err != nil && msg.boot && errors.Is(res.Err, store.ErrNotFound):
		slog.Debug("nothing to restore", logAttrs...)
	case res.Err != nil:
		slog.Error("persistence request failed", logAttrs...)
		m.setError(fmt.Errorf("%s %s: %w", res.Op, res.Name, res.Err))
	case res.Op == store.OpLoad:
		slog.Info("document loaded", logAttrs...)
		m.sess.Restore(res.Doc, m.now())
		m.input.Blur()
		m.clampCursor()
		m.setStatus("loaded " + res.Name)
	default:
		slog.Debug("document saved", logAttrs...)

		if res.Name != m.files.AutoSave {
			m.setStatus("saved to " + res.Name)
		}
	}

	if msg.quit {
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := m.now()

	if key.Matches(msg, m.keys.forceQuit) {
		return m.quit(now)
	}

	switch m.sess.Mode() {
	case session.Adding:
		return m.handleAddingKey(msg)
	case session.ConfirmingReset:
		return m.handleConfirmKey(msg, now)
	case session.Idle:
	}

	return m.handleIdleKey(msg, now)
}

func (m *Model) handleAddingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.confirm):
		if strings.TrimSpace(m.input.Value()) == "" {
			m.sess.CancelAdd()
		} else {
			m.sess.SetDraft(strings.TrimSpace(m.input.Value()))
			m.sess.CommitAddedTask()
			m.cursor = len(m.sess.Tasks()) - 1
		}

		m.input.Blur()
		m.input.Reset()

		return m, nil
	case key.Matches(msg, m.keys.cancel):
		m.sess.CancelAdd()
		m.input.Blur()
		m.input.Reset()

		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.sess.SetDraft(m.input.Value())

	return m, cmd
}

func (m *Model) handleConfirmKey(
	msg tea.KeyMsg,
	now time.Time,
) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.reset):
		m.sess.ArmReset(false, now)
		m.cursor = 0
		m.setStatus("session reset")
	case key.Matches(msg, m.keys.resetTime):
		m.sess.ArmReset(true, now)
		m.setStatus("timers reset")
	case key.Matches(msg, m.keys.quit):
		return m.quit(now)
	default:
		m.sess.CancelAdd()
	}

	return m, nil
}

func (m *Model) handleIdleKey(
	msg tea.KeyMsg,
	now time.Time,
) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m.quit(now)
	case key.Matches(msg, m.keys.newTask):
		m.sess.StartAddTask()
		m.input.Reset()

		return m, m.input.Focus()
	case key.Matches(msg, m.keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.down):
		if m.cursor < len(m.sess.Tasks())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.complete):
		return m.finishTask(true, now)
	case key.Matches(msg, m.keys.remove):
		return m.finishTask(false, now)
	case key.Matches(msg, m.keys.toggleBrk):
		m.sess.ToggleBreak(now)
	case key.Matches(msg, m.keys.sleep):
		m.sess.ToggleSleep(now)
	case key.Matches(msg, m.keys.reset, m.keys.resetTime):
		m.sess.ArmReset(false, now)
	case key.Matches(msg, m.keys.save):
		return m, m.submitSave(m.files.Save, now, false)
	case key.Matches(msg, m.keys.load):
		return m, m.submitLoad(m.files.Save)
	}

	return m, nil
}

func (m *Model) finishTask(completed bool, now time.Time) (tea.Model, tea.Cmd) {
	task, err := m.sess.CompleteOrRemoveTask(m.cursor, completed, now)
	if err != nil {
		slog.Debug("no task to finish", slog.Any("error", err))
		m.setStatus("no task selected")

		return m, nil
	}

	m.clampCursor()

	if !completed {
		m.setStatus("removed " + task)
		return m, nil
	}

	m.setStatus("completed " + task)

	return m, m.runHook(task, m.sess.LastTotal())
}

// quit saves to the auto-save file first when configured, and exits once
// that save has finished.
func (m *Model) quit(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	m.quitting = true

	if !m.saveOnQuit {
		return m, tea.Quit
	}

	if m.sess.Adding() {
		m.sess.CancelAdd()
	}

	return m, m.submitSave(m.files.AutoSave, now, true)
}

func (m *Model) clampCursor() {
	n := len(m.sess.Tasks())

	switch {
	case n == 0:
		m.cursor = 0
	case m.cursor >= n:
		m.cursor = n - 1
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

// Package widget is the interactive terminal front end of a task session
package widget

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/tally/internal/hook"
	"github.com/ayoisaiah/tally/internal/session"
	"github.com/ayoisaiah/tally/internal/ui"
	"github.com/ayoisaiah/tally/store"
)

const tickInterval = time.Second

type (
	tickMsg struct{}

	// resultMsg carries a finished persistence request back to the event
	// loop.
	resultMsg struct {
		res store.Result
		// load is the generation of a load request; only the newest one
		// is applied
		load uint64
		quit bool
		boot bool
	}

	hookDoneMsg struct {
		err  error
		task string
	}
)

// Files names the documents the widget reads and writes.
type Files struct {
	Save     string
	AutoSave string
}

// Options configures a Model.
type Options struct {
	Context context.Context
	Queue   *store.Queue
	Hook    *hook.Hook
	// Now defaults to time.Now
	Now   func() time.Time
	Files Files
	Theme ui.Theme
	// Restore loads the auto-save file when the widget starts.
	Restore bool
	// SaveOnQuit writes the auto-save file before quitting.
	SaveOnQuit bool
}

// Model is the bubbletea model driving a session.
type Model struct {
	ctx        context.Context
	sess       *session.Session
	queue      *store.Queue
	hook       *hook.Hook
	now        func() time.Time
	files      Files
	theme      ui.Theme
	status     string
	help       help.Model
	input      textinput.Model
	keys       keymap
	cursor     int
	loads      uint64
	statusErr  bool
	restore    bool
	saveOnQuit bool
	quitting   bool
}

// New returns a widget for sess.
func New(sess *session.Session, opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	input := textinput.New()
	input.Placeholder = "What are you working on?"
	input.Prompt = "+ "
	input.CharLimit = 256

	return &Model{
		ctx:        ctx,
		sess:       sess,
		queue:      opts.Queue,
		hook:       opts.Hook,
		now:        now,
		files:      opts.Files,
		theme:      opts.Theme,
		help:       help.New(),
		input:      input,
		keys:       defaultKeymap,
		restore:    opts.Restore,
		saveOnQuit: opts.SaveOnQuit,
	}
}

// Session returns the session driven by the widget.
func (m *Model) Session() *session.Session {
	return m.sess
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tick()}

	if m.restore {
		cmds = append(cmds, m.submitBoot())
	}

	return tea.Batch(cmds...)
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// waitFor delivers the result on ch as msg. Each request gets its own
// command, so results may reach Update in any order.
func waitFor(ch <-chan store.Result, msg resultMsg) tea.Cmd {
	return func() tea.Msg {
		msg.res = <-ch
		return msg
	}
}

// submitSave enqueues a snapshot taken at now. Snapshots are taken on the
// event loop so the queue only ever sees immutable documents.
func (m *Model) submitSave(name string, now time.Time, quit bool) tea.Cmd {
	ch := m.queue.Submit(store.Request{
		Op:   store.OpSave,
		Name: name,
		Doc:  m.sess.Snapshot(now),
	})

	return waitFor(ch, resultMsg{quit: quit})
}

func (m *Model) submitLoad(name string) tea.Cmd {
	ch := m.queue.Submit(store.Request{Op: store.OpLoad, Name: name})
	m.loads++

	return waitFor(ch, resultMsg{load: m.loads})
}

func (m *Model) submitBoot() tea.Cmd {
	ch := m.queue.Submit(store.Request{Op: store.OpLoad, Name: m.files.AutoSave})
	m.loads++

	return waitFor(ch, resultMsg{load: m.loads, boot: true})
}

func (m *Model) runHook(task string, spent time.Duration) tea.Cmd {
	if m.hook == nil {
		return nil
	}

	h, ctx := m.hook, m.ctx

	return func() tea.Msg {
		err := h.Run(ctx, hook.Completion{Task: task, Time: spent})

		return hookDoneMsg{task: task, err: err}
	}
}

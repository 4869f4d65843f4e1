// Package session holds the to-do list and the work/break timers, and
// implements the transitions driven by user actions
package session

import (
	"slices"
	"time"

	"github.com/ayoisaiah/tally/internal/timeutil"
	"github.com/ayoisaiah/tally/internal/tracker"
	"github.com/ayoisaiah/tally/store"
)

// Mode is the editing mode of the session. Adding and ConfirmingReset are
// mutually exclusive.
type Mode int

const (
	Idle Mode = iota
	Adding
	ConfirmingReset
)

func (m Mode) String() string {
	switch m {
	case Adding:
		return "adding"
	case ConfirmingReset:
		return "confirming-reset"
	default:
		return "idle"
	}
}

// BreakState describes which timer is accruing time.
type BreakState int

const (
	// Working accrues time on the current task
	Working BreakState = iota
	// OnBreak accrues time on the break timer
	OnBreak
	// Sleeping is a paused break: nothing accrues
	Sleeping
)

func (b BreakState) String() string {
	switch b {
	case OnBreak:
		return "on-break"
	case Sleeping:
		return "sleeping"
	default:
		return "working"
	}
}

// Options configures a session.
type Options struct {
	// AutoSaveEvery is the number of ticks between auto-saves. Zero disables
	// auto-saving.
	AutoSaveEvery int
}

// Session is the complete in-memory task and timer state. It is not safe for
// concurrent use; all calls are expected to come from one event loop.
type Session struct {
	lastWall   time.Time
	current    *tracker.Tracker
	last       *tracker.Tracker
	brk        *tracker.Tracker
	clock      string
	tasks      []string
	opts       Options
	completed  uint64
	removed    uint64
	ticks      uint64
	mode       Mode
	breakState BreakState
}

// New returns an empty session whose current task timer starts at now.
func New(now time.Time, opts Options) *Session {
	s := &Session{
		opts:    opts,
		current: tracker.New(now),
		last:    tracker.Restore(0, now),
		brk:     tracker.Restore(0, now),
	}

	s.setClock(now)

	return s
}

// StartAddTask appends an empty draft task and enters Adding. Pressing it
// again while Adding commits the draft.
func (s *Session) StartAddTask() {
	switch s.mode {
	case Adding:
		s.CommitAddedTask()
	case Idle:
		s.tasks = append(s.tasks, "")
		s.mode = Adding
	case ConfirmingReset:
	}
}

// CancelAdd discards the draft when Adding, or disarms a pending reset.
func (s *Session) CancelAdd() {
	switch s.mode {
	case Adding:
		s.tasks = s.tasks[:len(s.tasks)-1]
		s.mode = Idle
	case ConfirmingReset:
		s.mode = Idle
	case Idle:
	}
}

// SetDraft overwrites the label of the draft task.
func (s *Session) SetDraft(text string) {
	if s.mode != Adding {
		return
	}

	s.tasks[len(s.tasks)-1] = text
}

// CommitAddedTask keeps the draft as a permanent task and leaves Adding.
func (s *Session) CommitAddedTask() {
	if s.mode != Adding {
		return
	}

	s.mode = Idle
}

// CompleteOrRemoveTask removes the visible task at index, moves the current
// task time to the last task timer and starts the current task timer afresh.
// The removed label is returned.
func (s *Session) CompleteOrRemoveTask(
	index int,
	completed bool,
	now time.Time,
) (string, error) {
	visible := s.visibleLen()

	if index < 0 || index >= visible {
		return "", ErrTaskIndex.Fmt(index, visible)
	}

	label := s.tasks[index]
	s.tasks = slices.Delete(s.tasks, index, index+1)

	s.current.Tick(now)
	s.current.TransferInto(s.last, now)
	s.current.StartFresh(now)

	if s.breakState != Working {
		s.current.Swap(now)
	}

	if completed {
		s.completed++
	} else {
		s.removed++
	}

	return label, nil
}

// ToggleBreak starts or ends a break. Starting a break banks the current task
// time and starts the break timer from zero. Ending it banks the break time
// and resumes the current task timer from its banked value.
func (s *Session) ToggleBreak(now time.Time) {
	switch s.breakState {
	case Working:
		s.current.Swap(now)
		s.brk.StartFresh(now)
		s.breakState = OnBreak
	case OnBreak:
		s.brk.Swap(now)
		s.current.Restart(now)
		s.breakState = Working
	case Sleeping:
		// the break time was banked when sleep began
		s.current.Restart(now)
		s.breakState = Working
	}
}

// ToggleSleep pauses or resumes the break timer. It does nothing outside a
// break.
func (s *Session) ToggleSleep(now time.Time) {
	switch s.breakState {
	case OnBreak:
		s.brk.Swap(now)
		s.breakState = Sleeping
	case Sleeping:
		s.brk.Restart(now)
		s.breakState = OnBreak
	case Working:
	}
}

// ArmReset arms a reset on the first call and performs it on the second.
// A time-only reset zeroes the timers but keeps the tasks, the counters and
// the break state. It does nothing while Adding.
func (s *Session) ArmReset(timeOnly bool, now time.Time) {
	switch s.mode {
	case Idle:
		s.mode = ConfirmingReset
		return
	case Adding:
		return
	case ConfirmingReset:
	}

	if !timeOnly {
		s.tasks = nil
		s.completed = 0
		s.removed = 0
		s.breakState = Working
	}

	s.current.StartFresh(now)
	s.last.StartFresh(now)
	s.brk.StartFresh(now)
	s.last.Swap(now)
	s.settle(now)

	s.mode = Idle
}

// settle stops whichever of the current task and break timers must not be
// accruing in the current break state.
func (s *Session) settle(now time.Time) {
	switch s.breakState {
	case Working:
		s.brk.Swap(now)
	case OnBreak:
		s.current.Swap(now)
	case Sleeping:
		s.current.Swap(now)
		s.brk.Swap(now)
	}
}

// Tick refreshes the calendar clock and the active timer. It reports whether
// an auto-save is due.
func (s *Session) Tick(now time.Time) bool {
	s.setClock(now)
	s.tickActive(now)

	s.ticks++

	every := s.opts.AutoSaveEvery

	return every > 0 && s.ticks%uint64(every) == 0
}

func (s *Session) tickActive(now time.Time) {
	switch s.breakState {
	case Working:
		s.current.Tick(now)
	case OnBreak:
		s.brk.Tick(now)
	case Sleeping:
	}
}

func (s *Session) setClock(now time.Time) {
	sec := now.Truncate(time.Second)
	if s.clock != "" && sec.Equal(s.lastWall) {
		return
	}

	s.lastWall = sec
	s.clock = timeutil.Clock(now)
}

// Snapshot brings the active timer up to date and flattens the session into
// a document. The draft task and the modes are not included.
func (s *Session) Snapshot(now time.Time) *store.Document {
	s.tickActive(now)

	return &store.Document{
		Completed: s.completed,
		Removed:   s.removed,
		Tasks:     s.Tasks(),
		BreakTime: store.Split(s.brk.Total()),
		CurTask:   store.Split(s.current.Total()),
		PrevTask:  store.Split(s.last.Total()),
	}
}

// Restore replaces the tasks, counters and timers with the contents of doc.
// In-memory progress, the draft and the modes are discarded; the current task
// timer resumes from its restored value at now.
func (s *Session) Restore(doc *store.Document, now time.Time) {
	s.tasks = slices.Clone(doc.Tasks)
	s.completed = doc.Completed
	s.removed = doc.Removed

	s.current = tracker.Restore(doc.CurTask.Value(), now)
	s.current.Restart(now)
	s.last = tracker.Restore(doc.PrevTask.Value(), now)
	s.brk = tracker.Restore(doc.BreakTime.Value(), now)

	s.mode = Idle
	s.breakState = Working
}

func (s *Session) visibleLen() int {
	if s.mode == Adding {
		return len(s.tasks) - 1
	}

	return len(s.tasks)
}

// Tasks returns a copy of the committed tasks in display order.
func (s *Session) Tasks() []string {
	tasks := make([]string, s.visibleLen())
	copy(tasks, s.tasks)

	return tasks
}

// Draft returns the label of the task being added, if any.
func (s *Session) Draft() (string, bool) {
	if s.mode != Adding {
		return "", false
	}

	return s.tasks[len(s.tasks)-1], true
}

// Completed is the number of tasks marked complete.
func (s *Session) Completed() uint64 { return s.completed }

// Removed is the number of tasks removed without completing them.
func (s *Session) Removed() uint64 { return s.removed }

// Mode reports whether a task is being added or a reset is armed.
func (s *Session) Mode() Mode { return s.mode }

// BreakState reports whether the user is working, on a break or asleep.
func (s *Session) BreakState() BreakState { return s.breakState }

// Adding reports whether a draft task is being edited.
func (s *Session) Adding() bool { return s.mode == Adding }

// ConfirmingReset reports whether the next reset request will be performed.
func (s *Session) ConfirmingReset() bool { return s.mode == ConfirmingReset }

// OnBreak reports whether a break is in progress, including while asleep.
func (s *Session) OnBreak() bool { return s.breakState != Working }

// Sleeping reports whether the break timer is paused.
func (s *Session) Sleeping() bool { return s.breakState == Sleeping }

// Clock returns the calendar clock as of the last tick.
func (s *Session) Clock() string { return s.clock }

// CurrentTotal returns the time spent on the current task.
func (s *Session) CurrentTotal() time.Duration { return s.current.Total() }

// LastTotal returns the time spent on the previously finished task.
func (s *Session) LastTotal() time.Duration { return s.last.Total() }

// BreakTotal returns the time spent on the current or most recent break.
func (s *Session) BreakTotal() time.Duration { return s.brk.Total() }

// CurrentTime formats the current task time as HH:MM:SS.
func (s *Session) CurrentTime() string { return s.current.String() }

// LastTime formats the last task time as HH:MM:SS.
func (s *Session) LastTime() string { return s.last.String() }

// BreakTime formats the break time as HH:MM:SS.
func (s *Session) BreakTime() string { return s.brk.String() }

// Package tracker accounts for the time spent on one logical timer: the
// current task, the last task, or a break
package tracker

import (
	"time"

	"github.com/ayoisaiah/tally/internal/timeutil"
)

// Tracker is an accumulated duration plus an optional running interval that
// began at anchor. The zero value is a stopped tracker with nothing banked.
type Tracker struct {
	anchor      time.Time
	accumulated time.Duration
	// elapsed caches now - anchor as of the last Tick
	elapsed time.Duration
	running bool
}

// New returns a running tracker that starts counting from now.
func New(now time.Time) *Tracker {
	t := &Tracker{}
	t.StartFresh(now)

	return t
}

// Restore returns a stopped tracker whose banked time is accumulated. Call
// Restart to resume accrual.
func Restore(accumulated time.Duration, now time.Time) *Tracker {
	if accumulated < 0 {
		accumulated = 0
	}

	return &Tracker{
		anchor:      now,
		accumulated: accumulated,
	}
}

// StartFresh discards all banked time and starts a new running interval.
func (t *Tracker) StartFresh(now time.Time) {
	t.accumulated = 0
	t.Restart(now)
}

// Restart begins a new running interval at now without touching the banked
// time.
func (t *Tracker) Restart(now time.Time) {
	t.anchor = now
	t.elapsed = 0
	t.running = true
}

// Tick refreshes the running interval. It is a no-op on a stopped tracker.
func (t *Tracker) Tick(now time.Time) {
	if !t.running {
		return
	}

	t.elapsed = since(t.anchor, now)
}

// Swap banks the running interval and stops accrual. The anchor moves to now
// so that a second Swap before Restart banks nothing.
func (t *Tracker) Swap(now time.Time) {
	if t.running {
		t.accumulated += since(t.anchor, now)
	}

	t.anchor = now
	t.elapsed = 0
	t.running = false
}

// TransferInto replaces the state of other with a stopped tracker holding
// this tracker's current total.
func (t *Tracker) TransferInto(other *Tracker, now time.Time) {
	total := t.Total()

	other.anchor = now
	other.accumulated = total
	other.elapsed = 0
	other.running = false
}

// Total returns the banked time plus the running interval as of the last
// Tick.
func (t *Tracker) Total() time.Duration {
	if !t.running {
		return t.accumulated
	}

	return t.accumulated + t.elapsed
}

// Accumulated returns the banked time only.
func (t *Tracker) Accumulated() time.Duration {
	return t.accumulated
}

// Running reports whether the tracker is accruing time.
func (t *Tracker) Running() bool {
	return t.running
}

// String formats the total as HH:MM:SS.
func (t *Tracker) String() string {
	return timeutil.HMS(t.Total())
}

// since never returns a negative duration so a clock that steps backwards
// cannot shrink a total.
func since(anchor, now time.Time) time.Duration {
	d := now.Sub(anchor)
	if d < 0 {
		return 0
	}

	return d
}

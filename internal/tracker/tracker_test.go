package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

func at(d time.Duration) time.Time {
	return t0.Add(d)
}

func TestStartFresh(t *testing.T) {
	tr := Restore(time.Minute, t0)

	tr.StartFresh(at(time.Second))

	assert.True(t, tr.Running())
	assert.Equal(t, time.Duration(0), tr.Total())

	tr.Tick(at(4 * time.Second))

	assert.Equal(t, 3*time.Second, tr.Total())
}

func TestTickWhileRunning(t *testing.T) {
	tr := New(t0)

	var last time.Duration

	for i := 1; i <= 10; i++ {
		tr.Tick(at(time.Duration(i) * time.Second))

		assert.GreaterOrEqual(t, tr.Total(), last)

		last = tr.Total()
	}

	assert.Equal(t, 10*time.Second, tr.Total())
	assert.Equal(t, time.Duration(0), tr.Accumulated())
}

func TestTickIsCachedUntilCalled(t *testing.T) {
	tr := New(t0)
	tr.Tick(at(2 * time.Second))

	// no tick at 5s, so the total still reflects the 2s refresh
	assert.Equal(t, 2*time.Second, tr.Total())
}

func TestSwapBanksAndStops(t *testing.T) {
	tr := New(t0)
	tr.Tick(at(7 * time.Second))

	tr.Swap(at(10 * time.Second))

	assert.False(t, tr.Running())
	assert.Equal(t, 10*time.Second, tr.Accumulated())
	assert.Equal(t, 10*time.Second, tr.Total())

	for i := 11; i < 20; i++ {
		tr.Tick(at(time.Duration(i) * time.Second))
		assert.Equal(t, 10*time.Second, tr.Accumulated())
		assert.Equal(t, 10*time.Second, tr.Total())
	}
}

func TestDoubleSwapBanksOnce(t *testing.T) {
	tr := New(t0)

	tr.Swap(at(5 * time.Second))
	tr.Swap(at(9 * time.Second))

	assert.Equal(t, 5*time.Second, tr.Total())
}

func TestRestartKeepsAccumulated(t *testing.T) {
	tr := New(t0)
	tr.Swap(at(20 * time.Second))

	tr.Restart(at(50 * time.Second))
	tr.Tick(at(55 * time.Second))

	assert.Equal(t, 20*time.Second, tr.Accumulated())
	assert.Equal(t, 25*time.Second, tr.Total())
}

func TestPauseResumeCycles(t *testing.T) {
	tr := New(t0)

	now := t0
	for i := 0; i < 5; i++ {
		now = now.Add(3 * time.Second)
		tr.Swap(now)

		// paused for a minute, which must not count
		now = now.Add(time.Minute)
		tr.Restart(now)
	}

	tr.Tick(now.Add(time.Second))

	assert.Equal(t, 16*time.Second, tr.Total())
}

func TestTransferInto(t *testing.T) {
	current := New(t0)
	current.Tick(at(5 * time.Second))

	last := New(t0)
	last.Tick(at(time.Hour))

	current.TransferInto(last, at(5*time.Second))

	assert.Equal(t, 5*time.Second, last.Total())
	assert.False(t, last.Running())

	last.Tick(at(time.Hour))
	assert.Equal(t, 5*time.Second, last.Total())
}

func TestBackwardsClockDoesNotShrink(t *testing.T) {
	tr := New(at(10 * time.Second))
	tr.Tick(at(5 * time.Second))

	assert.Equal(t, time.Duration(0), tr.Total())

	tr.Swap(at(time.Second))
	assert.Equal(t, time.Duration(0), tr.Total())
}

func TestRestoreIsCold(t *testing.T) {
	d := 3661*time.Second + 250*time.Millisecond
	tr := Restore(d, t0)

	assert.False(t, tr.Running())
	assert.Equal(t, d, tr.Total())

	tr.Restart(t0)
	tr.Tick(at(time.Second))

	assert.Equal(t, d+time.Second, tr.Total())
}

func TestString(t *testing.T) {
	tr := Restore(25*time.Hour+2*time.Minute+3*time.Second+900*time.Millisecond, t0)

	assert.Equal(t, "25:02:03", tr.String())
	assert.Equal(t, "00:00:00", (&Tracker{}).String())
}

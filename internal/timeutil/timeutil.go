// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"time"
)

const (
	secondsInAMinute = 60
	secondsInAnHour  = 3600
)

// ClockLayout is the layout of the calendar clock shown above the task list.
const ClockLayout = "02/01/2006 15:04:05"

// SecsToHoursMinsAndSecs expresses a seconds value in hours, minutes, and
// seconds. Hours are not wrapped at 24.
func SecsToHoursMinsAndSecs(val uint64) (hrs, mins, secs uint64) {
	hrs = val / secondsInAnHour
	mins = (val % secondsInAnHour) / secondsInAMinute
	secs = val % secondsInAMinute

	return
}

// HMS formats d as HH:MM:SS. Fractions of a second are truncated and
// negative values are treated as zero.
func HMS(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	h, m, s := SecsToHoursMinsAndSecs(uint64(d / time.Second))

	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Clock formats t using ClockLayout.
func Clock(t time.Time) string {
	return t.Format(ClockLayout)
}

package session

import "github.com/ayoisaiah/tally/internal/apperr"

// ErrTaskIndex is returned when a task is addressed by an index that is not
// in the visible task list.
var ErrTaskIndex = &apperr.Error{
	Message: "task index %d is out of range: %d task(s) in the list",
}

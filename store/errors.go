package store

import (
	"errors"
	"io/fs"

	"github.com/ayoisaiah/tally/internal/apperr"
)

var (
	ErrNotFound = &apperr.Error{
		Message: "saved document not found",
	}

	ErrPermission = &apperr.Error{
		Message: "permission denied",
	}

	ErrInvalidPath = &apperr.Error{
		Message: "invalid path: %s",
	}

	ErrMalformed = &apperr.Error{
		Message: "malformed document",
	}

	ErrLocked = &apperr.Error{
		Message: "is tally already running? The database is locked by another instance",
	}

	ErrIO = &apperr.Error{
		Message: "i/o failure",
	}

	ErrQueueClosed = &apperr.Error{
		Message: "persistence queue is closed",
	}
)

// classify maps a filesystem error onto one of the package error kinds.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound.Wrap(err)
	case errors.Is(err, fs.ErrPermission):
		return ErrPermission.Wrap(err)
	case errors.Is(err, fs.ErrInvalid):
		return ErrInvalidPath.Fmt("rejected by the filesystem").Wrap(err)
	default:
		return ErrIO.Wrap(err)
	}
}

// Kind returns a short category for err suitable for logging.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "not-found"
	case errors.Is(err, ErrPermission):
		return "permission-denied"
	case errors.Is(err, ErrInvalidPath):
		return "invalid-input"
	case errors.Is(err, ErrMalformed):
		return "malformed"
	case errors.Is(err, ErrLocked):
		return "locked"
	case errors.Is(err, ErrQueueClosed):
		return "closed"
	default:
		return "io"
	}
}

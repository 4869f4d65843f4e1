package app

import "github.com/ayoisaiah/tally/internal/apperr"

var errUnknownFile = &apperr.Error{
	Message: "unknown file %q: must be %q or %q",
}

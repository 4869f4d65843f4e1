// Package logging configures the process-wide structured logger
package logging

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// Options controls where and how much is logged.
type Options struct {
	Path  string
	Debug bool
}

// New returns a JSON logger writing to a rotating file at opts.Path and the
// writer that backs it. The caller closes the writer on exit.
func New(opts Options) (*slog.Logger, io.WriteCloser) {
	w := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	return slog.New(NewHandler(w, opts.Debug)), w
}

// NewHandler returns the JSON handler used for every log record.
func NewHandler(w io.Writer, debug bool) slog.Handler {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}

// Setup installs the logger returned by New as the slog default.
func Setup(opts Options) io.Closer {
	l, w := New(opts)

	slog.SetDefault(l)

	return w
}

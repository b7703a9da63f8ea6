// Package mlcli is a thin logging shim for cmd/markuplift. The core
// markuplift package never logs (a pretty-printer is a pure function); this
// package exists only so the CLI binary can report parse/validation errors
// in a structured way without forcing a logging dependency on library
// consumers.
package mlcli

import (
	"io"
	"log/slog"
	"sync"
)

// Logger wraps a *slog.Logger with a lazy default: a caller may leave
// Target nil, and the first call to L() substitutes a discarding handler.
type Logger struct {
	// Target is the logger to use. If nil, L() defaults to a handler that
	// discards everything.
	Target *slog.Logger

	once     sync.Once
	resolved *slog.Logger
}

// L returns the resolved logger, initializing the default on first use.
func (l *Logger) L() *slog.Logger {
	l.once.Do(func() {
		l.resolved = l.Target
		if l.resolved == nil {
			l.resolved = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
	})
	return l.resolved
}

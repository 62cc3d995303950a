// Package trace provides the explicitly passed debug log handle the
// crawler writes its per-step decisions to. There is no package-level
// sink; callers that want no output pass Nop.
package trace

import (
	"io"
	"log"
)

// Logger receives formatted trace lines.
type Logger interface {
	Printf(format string, args ...any)
}

// New returns a Logger writing timestamped lines to w.
func New(w io.Writer) Logger {
	return &writer{l: log.New(w, "", log.LstdFlags|log.Lmicroseconds)}
}

type writer struct {
	l *log.Logger
}

func (t *writer) Printf(format string, args ...any) {
	t.l.Printf(format, args...)
}

// Nop discards everything.
var Nop Logger = nopLogger{}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

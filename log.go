package sqlmigrate

import (
	std "log"
)

var log Logger = &stdLogger{}

// Logger receives the engine's progress output: one line per applied
// migration or seed, and a note when nothing is pending. Providers write
// output only when constructed with [WithVerbose].
type Logger interface {
	Printf(format string, v ...any)
}

// SetLogger sets the logger providers write to unless overridden per
// provider with [WithLogger].
func SetLogger(l Logger) {
	log = l
}

// stdLogger outputs to the stdlib's log.std logger.
type stdLogger struct{}

func (*stdLogger) Printf(format string, v ...any) { std.Printf(format, v...) }

// NopLogger returns a logger that discards all logged output.
func NopLogger() Logger {
	return &nopLogger{}
}

type nopLogger struct{}

var _ Logger = (*nopLogger)(nil)

func (*nopLogger) Printf(format string, v ...any) {}

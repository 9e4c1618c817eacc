// Package diagnostics narrates director pipeline stage progress to the log,
// the same start/elapsed-time shape used to narrate ffmpeg passes elsewhere
// in this codebase, generalized from one progress bar to per-stage counts.
package diagnostics

import (
	"log"
	"time"
)

// Logger narrates named stages of a run with their elapsed time. The zero
// value is usable and logs nothing (Stage returns a no-op stopper), so
// callers that don't want diagnostics can pass a nil *Logger.
type Logger struct {
	enabled bool
}

// NewLogger returns a Logger that prints stage timings via the standard
// logger.
func NewLogger() *Logger { return &Logger{enabled: true} }

// Stage logs the start of a named stage and returns a function to call on
// completion, which logs the elapsed duration and an item count.
func (l *Logger) Stage(name string) func(count int) {
	if l == nil || !l.enabled {
		return func(int) {}
	}
	start := time.Now()
	log.Printf("director: %s starting", name)
	return func(count int) {
		log.Printf("director: %s produced %d item(s) in %v", name, count, time.Since(start).Round(time.Millisecond))
	}
}

// Errorf logs a formatted error if the logger is enabled.
func (l *Logger) Errorf(format string, args ...any) {
	if l == nil || !l.enabled {
		return
	}
	log.Printf("director: "+format, args...)
}

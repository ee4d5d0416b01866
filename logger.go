// Package roggle is a thin logging façade: events are filtered by
// severity, rendered by a pluggable Printer and written as text lines to
// a pluggable Output sink.
package roggle

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/trickstertwo/xclock"
)

// Logger orchestrates filter -> printer -> output. Each Log call runs the
// full pipeline synchronously before returning; there is no queueing and
// no background work.
type Logger struct {
	filter  Filter
	printer Printer
	output  Output
	clock   xclock.Clock

	minLevel Level
	closed   atomic.Bool
}

// Factory: internal constructor.
func newLogger(cfg Config) *Logger {
	return &Logger{
		filter:   cfg.Filter,
		printer:  cfg.Printer,
		output:   cfg.Output,
		clock:    cfg.Clock,
		minLevel: cfg.MinLevel,
	}
}

// Facade: global access (Singleton + Facade).
var global atomic.Pointer[Logger]

// SetGlobal sets the global Logger (Singleton setter).
func SetGlobal(l *Logger) { global.Store(l) }

// L returns the global Logger, building the default one on first use.
func L() *Logger {
	if l := global.Load(); l != nil {
		return l
	}
	l := Default()
	if global.CompareAndSwap(nil, l) {
		return l
	}
	return global.Load()
}

// Enabled reports whether events at 'level' would pass this logger's
// threshold. Use to avoid building expensive messages when disabled.
func (l *Logger) Enabled(level Level) bool {
	return level.IsValid() && level >= l.minLevel && !l.closed.Load()
}

// Log runs one event through the pipeline. It returns ErrClosed after
// Close and ErrInvalidLevel when level is a sentinel; filtered-out events
// return nil without evaluating a lazy message.
func (l *Logger) Log(level Level, message any, opts ...EventOption) error {
	if l.closed.Load() {
		return ErrClosed
	}
	if !level.IsValid() {
		return errors.Wrapf(ErrInvalidLevel, "level %q", level)
	}

	e := &Event{Level: level, Time: l.now(), Message: message}
	for _, opt := range opts {
		opt(e)
	}
	if !l.filter.ShouldLog(e) {
		return nil
	}

	l.output.Write(OutputEvent{Level: level, Lines: l.printer.Render(e)})
	return nil
}

// Per-level convenience wrappers.

func (l *Logger) Trace(message any, opts ...EventOption) error {
	return l.Log(LevelTrace, message, opts...)
}

func (l *Logger) Debug(message any, opts ...EventOption) error {
	return l.Log(LevelDebug, message, opts...)
}

func (l *Logger) Info(message any, opts ...EventOption) error {
	return l.Log(LevelInfo, message, opts...)
}

func (l *Logger) Warn(message any, opts ...EventOption) error {
	return l.Log(LevelWarn, message, opts...)
}

func (l *Logger) Error(message any, opts ...EventOption) error {
	return l.Log(LevelError, message, opts...)
}

func (l *Logger) Fatal(message any, opts ...EventOption) error {
	return l.Log(LevelFatal, message, opts...)
}

// Close flips the logger to closed; subsequent Log calls return ErrClosed.
// Closing twice is a no-op. The sink is closed once when it implements
// io.Closer.
func (l *Logger) Close() error {
	if !l.closed.CompareAndSwap(false, true) {
		return nil
	}
	if c, ok := l.output.(io.Closer); ok {
		return errors.Wrap(c.Close(), "roggle: close output")
	}
	return nil
}

// now reads the single authoritative event timestamp from the configured
// clock, defaulting to the process clock.
func (l *Logger) now() time.Time {
	if l.clock != nil {
		return l.clock.Now()
	}
	return xclock.Now()
}

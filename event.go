package roggle

import (
	"fmt"
	"sync"
	"time"
)

// Event is one log entry travelling logger -> filter -> printer -> output.
// It is immutable once constructed; Message may hold a literal value or a
// lazy producer (func() any / func() string) which Resolve evaluates at
// most once.
type Event struct {
	Level Level
	Time  time.Time

	Message any
	Err     error
	Trace   Stack

	once sync.Once
	text string
}

// EventOption attaches optional data to an event at the log call site.
type EventOption func(*Event)

// WithError attaches an error; the printer renders it on its own line.
func WithError(err error) EventOption {
	return func(e *Event) { e.Err = err }
}

// WithStackTrace attaches an explicitly captured trace. A trace attached
// this way is always rendered, independent of the printer's stack-trace
// threshold.
func WithStackTrace(st Stack) EventOption {
	return func(e *Event) { e.Trace = st }
}

// Resolve returns the message text. A lazy producer is invoked on the
// first call only; the result is cached so filtered-and-passed events pay
// for message construction exactly once. A nil message resolves to "".
func (e *Event) Resolve() string {
	e.once.Do(func() {
		e.text = stringify(e.Message)
	})
	return e.text
}

func stringify(v any) string {
	switch m := v.(type) {
	case nil:
		return ""
	case string:
		return m
	case func() string:
		return m()
	case func() any:
		return stringify(m())
	case fmt.Stringer:
		return m.String()
	case error:
		return m.Error()
	default:
		return fmt.Sprint(m)
	}
}

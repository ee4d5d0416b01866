package roggle

import "sync/atomic"

// Filter decides whether an event reaches the printer. Implementations
// must not mutate the event; the message is still unresolved at this
// point so filtered-out lazy messages are never evaluated.
type Filter interface {
	ShouldLog(e *Event) bool
}

// FilterFunc adapter.
type FilterFunc func(*Event) bool

func (f FilterFunc) ShouldLog(e *Event) bool { return f(e) }

// LevelFilter passes events at or above a threshold. The threshold may be
// a sentinel: LevelAll passes everything, LevelOff nothing.
type LevelFilter struct {
	Level Level
}

func (f LevelFilter) ShouldLog(e *Event) bool {
	return e.Level.IsValid() && e.Level >= f.Level
}

// AllowAll passes every event; DenyAll passes none.
type AllowAll struct{}

func (AllowAll) ShouldLog(*Event) bool { return true }

type DenyAll struct{}

func (DenyAll) ShouldLog(*Event) bool { return false }

// defaultLevel backs loggers built without an explicit threshold.
// Last-writer-wins; no atomicity guarantee across readers beyond the
// store itself. Loggers capture the value at Build time.
var defaultLevel atomic.Int64

func init() { defaultLevel.Store(int64(LevelTrace)) }

// DefaultLevel returns the process-wide default minimum severity.
func DefaultLevel() Level { return Level(defaultLevel.Load()) }

// SetDefaultLevel sets the process-wide default minimum severity that
// NewBuilder starts from. It does not affect already-built loggers.
func SetDefaultLevel(l Level) { defaultLevel.Store(int64(l)) }

package roggle

import "strings"

// Level mirrors slog numeric semantics and extends with Trace (-8) and
// Fatal (12), plus two sentinel thresholds: LevelAll admits every event and
// LevelOff admits none. Sentinels are valid thresholds only; logging an
// event AT a sentinel level is an argument error.
type Level int

const (
	LevelAll   Level = -16
	LevelTrace Level = -8
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
	LevelFatal Level = 12
	LevelOff   Level = 16
)

// IsValid reports whether l is a real, loggable severity (not a sentinel).
func (l Level) IsValid() bool {
	switch l {
	case LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal:
		return true
	}
	return false
}

func (l Level) String() string {
	switch l {
	case LevelAll:
		return "all"
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	case LevelOff:
		return "off"
	}
	return "unknown"
}

// ParseLevel maps a level name to its Level. It accepts both "warn" and
// "warning". Unknown names fall back to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return LevelAll
	case "trace":
		return LevelTrace
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	case "off":
		return LevelOff
	default:
		return LevelInfo
	}
}

package roggle

import "github.com/pkg/errors"

var (
	// ErrClosed is returned by Log and its per-level wrappers after Close.
	ErrClosed = errors.New("roggle: logger is closed")

	// ErrInvalidLevel is returned when an event is logged at a sentinel
	// level (LevelAll or LevelOff). Sentinels are thresholds, not
	// severities.
	ErrInvalidLevel = errors.New("roggle: level is not a loggable severity")
)

package roggle

import "io"

// Default creates a logger with the default pipeline: LevelFilter at the
// process default level, PrettyPrinter, console sink on stdout.
func Default() *Logger {
	l, _ := NewBuilder().Build()
	return l
}

// New creates a default logger, sets it as global, and returns it.
func New() *Logger {
	l := Default()
	SetGlobal(l)
	return l
}

// NewWithWriter creates a default-pipeline logger writing to w. Intended
// for tests and tools that capture output.
func NewWithWriter(w io.Writer) *Logger {
	l, _ := NewBuilder().WithOutput(NewConsoleOutput(w)).Build()
	return l
}

// UsePrinter builds a logger around the given printer and sink with the
// provided min level, sets it as global, and returns it. Single line,
// explicit, no envs.
func UsePrinter(p Printer, o Output, min Level) *Logger {
	l, _ := NewBuilder().
		WithPrinter(p).
		WithOutput(o).
		WithMinLevel(min).
		Build()
	SetGlobal(l)
	return l
}

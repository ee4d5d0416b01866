package roggle

import (
	"io"
	"sync"

	"github.com/mattn/go-colorable"
)

// OutputEvent carries the rendered lines of one log event to a sink.
type OutputEvent struct {
	Level Level
	Lines []string
}

// Output is the sink Strategy. Write receives the ordered lines of one
// event and must not reorder or drop them. Write failures are the sink's
// own concern; the logger treats writes as fire-and-forget. Sinks that
// also implement io.Closer are closed once by Logger.Close.
type Output interface {
	Write(e OutputEvent)
}

// ConsoleOutput writes each line, newline-terminated, to a writer.
type ConsoleOutput struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleOutput returns a console sink. A nil writer selects an
// ANSI-aware stdout, so colorized lines render on Windows consoles too.
func NewConsoleOutput(w io.Writer) *ConsoleOutput {
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &ConsoleOutput{w: w}
}

func (o *ConsoleOutput) Write(e OutputEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, line := range e.Lines {
		io.WriteString(o.w, line)
		io.WriteString(o.w, "\n")
	}
}

// ReportFunc receives one complete event, e.g. to forward it to a
// crash-reporting service.
type ReportFunc func(e OutputEvent)

// ReportOutput hands each event to a callback. The callback gets its own
// copy of the line slice and may retain it.
type ReportOutput struct {
	fn ReportFunc
}

func NewReportOutput(fn ReportFunc) *ReportOutput {
	return &ReportOutput{fn: fn}
}

func (o *ReportOutput) Write(e OutputEvent) {
	if o.fn == nil {
		return
	}
	lines := make([]string, len(e.Lines))
	copy(lines, e.Lines)
	o.fn(OutputEvent{Level: e.Level, Lines: lines})
}

// MultiOutput fans one event out to several sinks in order.
type MultiOutput struct {
	outputs []Output
}

func NewMultiOutput(outputs ...Output) *MultiOutput {
	return &MultiOutput{outputs: outputs}
}

func (o *MultiOutput) Write(e OutputEvent) {
	for _, out := range o.outputs {
		out.Write(e)
	}
}

// Close closes every wrapped sink that is an io.Closer, returning the
// first error.
func (o *MultiOutput) Close() error {
	var first error
	for _, out := range o.outputs {
		if c, ok := out.(io.Closer); ok {
			if err := c.Close(); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}

package roggle

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/trickstertwo/xclock"
)

// UnlimitedStackFrames disables trace truncation (the default).
const UnlimitedStackFrames = -1

// defaultTracePrefix indents error and trace lines under the message.
const defaultTracePrefix = "├ "

// PrettyPrinter renders one event as a decorated single message line plus
// optional error and stack-trace lines. All configuration is fixed at
// construction; Render is safe for concurrent use.
type PrettyPrinter struct {
	name string

	colors        bool
	printCaller   bool
	printFunction bool
	printLocation bool
	printEmojis   bool
	printLabels   bool
	printTime     bool

	stackTraceLevel Level
	maxStackFrames  int
	tracePrefix     string

	levelEmojis map[Level]string
	levelLabels map[Level]string
	levelColors map[Level]*color.Color

	formatTime func(time.Time) string
}

// PrettyOption configures a PrettyPrinter at construction.
type PrettyOption func(*PrettyPrinter)

// WithName prepends a logger display name to every line.
func WithName(name string) PrettyOption {
	return func(p *PrettyPrinter) { p.name = name }
}

// WithColors toggles per-level ANSI colorization. When enabled the
// printer forces colors on, independent of TTY detection, so rendered
// output is deterministic.
func WithColors(on bool) PrettyOption {
	return func(p *PrettyPrinter) { p.colors = on }
}

// WithCaller toggles the call-site decoration (default on).
func WithCaller(on bool) PrettyOption {
	return func(p *PrettyPrinter) { p.printCaller = on }
}

// WithFunctionName toggles function names in caller and trace rendering
// (default on).
func WithFunctionName(on bool) PrettyOption {
	return func(p *PrettyPrinter) { p.printFunction = on }
}

// WithLocation toggles source locations in caller and trace rendering
// (default on).
func WithLocation(on bool) PrettyOption {
	return func(p *PrettyPrinter) { p.printLocation = on }
}

// WithEmojis toggles the per-level emoji decoration (default on).
func WithEmojis(on bool) PrettyOption {
	return func(p *PrettyPrinter) { p.printEmojis = on }
}

// WithLabels toggles the per-level label decoration (default on).
func WithLabels(on bool) PrettyOption {
	return func(p *PrettyPrinter) { p.printLabels = on }
}

// WithTimestamp toggles the hh:mm:ss.mmm timestamp decoration
// (default off).
func WithTimestamp(on bool) PrettyOption {
	return func(p *PrettyPrinter) { p.printTime = on }
}

// WithStackTraceLevel sets the severity at or above which a trace is
// captured and rendered even when the event carries none
// (default LevelOff: never).
func WithStackTraceLevel(l Level) PrettyOption {
	return func(p *PrettyPrinter) { p.stackTraceLevel = l }
}

// WithMaxStackFrames caps rendered user frames. Zero renders no trace
// lines (the caller decoration is still resolved); negative values mean
// unlimited.
func WithMaxStackFrames(n int) PrettyOption {
	return func(p *PrettyPrinter) { p.maxStackFrames = n }
}

// WithTracePrefix sets the marker prepended to error and trace lines.
func WithTracePrefix(prefix string) PrettyOption {
	return func(p *PrettyPrinter) { p.tracePrefix = prefix }
}

// WithLevelEmojis overrides emojis for the given levels.
func WithLevelEmojis(m map[Level]string) PrettyOption {
	return func(p *PrettyPrinter) {
		for l, e := range m {
			p.levelEmojis[l] = e
		}
	}
}

// WithLevelLabels overrides labels for the given levels.
func WithLevelLabels(m map[Level]string) PrettyOption {
	return func(p *PrettyPrinter) {
		for l, s := range m {
			p.levelLabels[l] = s
		}
	}
}

// WithLevelColors overrides colors for the given levels.
func WithLevelColors(m map[Level]*color.Color) PrettyOption {
	return func(p *PrettyPrinter) {
		for l, c := range m {
			p.levelColors[l] = c
		}
	}
}

// WithTimeFormatter overrides the timestamp formatting function.
func WithTimeFormatter(f func(time.Time) string) PrettyOption {
	return func(p *PrettyPrinter) { p.formatTime = f }
}

// NewPrettyPrinter builds a printer with the default decoration set:
// emoji, label and caller on; timestamp and colors off.
func NewPrettyPrinter(opts ...PrettyOption) *PrettyPrinter {
	p := &PrettyPrinter{
		printCaller:   true,
		printFunction: true,
		printLocation: true,
		printEmojis:   true,
		printLabels:   true,

		stackTraceLevel: LevelOff,
		maxStackFrames:  UnlimitedStackFrames,
		tracePrefix:     defaultTracePrefix,

		levelEmojis: map[Level]string{
			LevelTrace: "",
			LevelDebug: "🐛",
			LevelInfo:  "💡",
			LevelWarn:  "⚠️",
			LevelError: "⛔",
			LevelFatal: "👾",
		},
		levelLabels: map[Level]string{
			LevelTrace: "[T]",
			LevelDebug: "[D]",
			LevelInfo:  "[I]",
			LevelWarn:  "[W]",
			LevelError: "[E]",
			LevelFatal: "[F]",
		},
		levelColors: map[Level]*color.Color{
			LevelTrace: color.New(color.FgHiBlack),
			LevelDebug: color.New(color.FgCyan),
			LevelInfo:  color.New(color.FgBlue),
			LevelWarn:  color.New(color.FgYellow),
			LevelError: color.New(color.FgRed),
			LevelFatal: color.New(color.FgHiMagenta),
		},
		formatTime: FormatTimestamp,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.colors {
		for _, c := range p.levelColors {
			c.EnableColor()
		}
	}
	return p
}

// FormatTimestamp renders a wall-clock time as "15:04:05.000": zero-padded
// hour, minute, second and three-digit milliseconds.
func FormatTimestamp(t time.Time) string {
	return t.Format("15:04:05.000")
}

// Render produces the display lines for one event: the decorated message
// line, an error line when an error is attached, and the stack-trace
// lines when a trace is attached or the event severity reaches the
// stack-trace level.
func (p *PrettyPrinter) Render(e *Event) []string {
	st := e.Trace
	if st == nil && e.Level >= p.stackTraceLevel {
		st = CaptureStack(1)
	}

	prefix := p.prefix(e, st)
	lines := make([]string, 0, 2)
	lines = append(lines, p.colorize(e.Level, prefix+e.Resolve()))
	if e.Err != nil {
		lines = append(lines, p.colorize(e.Level, prefix+p.tracePrefix+e.Err.Error()))
	}
	for _, tl := range p.formatTrace(st) {
		lines = append(lines, p.colorize(e.Level, prefix+tl))
	}
	return lines
}

// prefix assembles the enabled decorations in stable order: emoji, name,
// label, timestamp, caller. Empty decorations are skipped; a non-empty
// prefix is terminated by ": ".
func (p *PrettyPrinter) prefix(e *Event, st Stack) string {
	parts := make([]string, 0, 5)
	if p.printEmojis {
		if emoji := p.levelEmojis[e.Level]; emoji != "" {
			parts = append(parts, emoji)
		}
	}
	if p.name != "" {
		parts = append(parts, p.name)
	}
	if p.printLabels {
		if label := p.levelLabels[e.Level]; label != "" {
			parts = append(parts, label)
		}
	}
	if p.printTime {
		at := e.Time
		if at.IsZero() {
			at = xclock.Now()
		}
		parts = append(parts, p.formatTime(at))
	}
	if p.printCaller {
		if caller := p.caller(st); caller != "" {
			parts = append(parts, caller)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " ") + ": "
}

// caller resolves the call-site decoration from the first user frame of
// st, capturing a fresh stack when st is nil. No user frame, or both the
// function-name and location toggles off, yields "" and the decoration is
// omitted.
func (p *PrettyPrinter) caller(st Stack) string {
	if st == nil {
		st = CaptureStack(1)
	}
	f, ok := st.caller()
	if !ok {
		return ""
	}
	return p.renderFrame(f)
}

// formatTrace renders the user frames of st, truncated to the configured
// maximum, each as "<prefix>#<i> <function> (<location>)" with the index
// column padded to width 7.
func (p *PrettyPrinter) formatTrace(st Stack) []string {
	if st == nil {
		return nil
	}
	frames := st.user(p.maxStackFrames)
	if len(frames) == 0 {
		return nil
	}
	lines := make([]string, 0, len(frames))
	for i, f := range frames {
		lines = append(lines, p.tracePrefix+fmt.Sprintf("%-7s", "#"+fmt.Sprint(i))+p.renderFrame(f))
	}
	return lines
}

// renderFrame renders "<function> (<location>)" honoring the
// function-name and location toggles.
func (p *PrettyPrinter) renderFrame(f Frame) string {
	var parts []string
	if p.printFunction && f.Function != "" {
		parts = append(parts, f.Function)
	}
	if p.printLocation {
		if loc := f.location(); loc != "" {
			parts = append(parts, "("+loc+")")
		}
	}
	return strings.Join(parts, " ")
}

func (p *PrettyPrinter) colorize(l Level, line string) string {
	if !p.colors {
		return line
	}
	c := p.levelColors[l]
	if c == nil {
		return line
	}
	return c.Sprint(line)
}

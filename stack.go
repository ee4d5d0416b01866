package roggle

import (
	"runtime"
	"strconv"
	"strings"
)

// selfPackage is this library's import path; frames belonging to it are
// never user frames.
const selfPackage = "github.com/keyber-inc/roggle"

// selfWebPrefix is the reserved location prefix for this library when a
// trace was captured from a web-style packaged build.
const selfWebPrefix = "packages/roggle/"

// Frame is one parsed stack entry. Function may be empty; Line and Column
// are 0 when unknown.
type Frame struct {
	Function string
	File     string
	Line     int
	Column   int
}

// Stack is an ordered sequence of frames, innermost first.
type Stack []Frame

// CaptureStack returns the current call stack. skip counts additional
// frames to omit beyond CaptureStack itself; 0 starts at the caller.
func CaptureStack(skip int) Stack {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	var st Stack
	for {
		fr, more := frames.Next()
		st = append(st, Frame{Function: fr.Function, File: fr.File, Line: fr.Line})
		if !more {
			break
		}
	}
	return st
}

// ParseStack parses a pre-formatted textual trace into frames, keeping the
// original innermost-first order. Two frame formats are recognized:
//
//  1. Go runtime traceback pairs, as produced by debug.Stack: a function
//     line ("pkg/path.Func(0x...)") followed by a tab-indented location
//     line ("\tfile.go:42 +0x1b"). Goroutine headers are skipped and
//     "created by" markers are stripped.
//  2. Web-style single lines: "packages/<name>/file.go 42:7 Func", with
//     the function name optional.
//
// Lines matching neither format are ignored.
func ParseStack(s string) Stack {
	var st Stack
	lines := strings.Split(s, "\n")
	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(strings.TrimRight(lines[i], "\r"))
		if trimmed == "" || strings.HasPrefix(trimmed, "goroutine ") {
			continue
		}
		if f, ok := parseWebFrame(trimmed); ok {
			st = append(st, f)
			continue
		}
		if i+1 < len(lines) && strings.HasPrefix(lines[i+1], "\t") {
			f := parseRuntimeFrame(trimmed, strings.TrimSpace(lines[i+1]))
			st = append(st, f)
			i++
		}
	}
	return st
}

// parseWebFrame parses "path file.go 42:7 Func" lines. Only paths under
// the packages/ convention or full URIs are treated as web frames.
func parseWebFrame(line string) (Frame, bool) {
	if !strings.HasPrefix(line, "packages/") && !strings.Contains(line, "://") {
		return Frame{}, false
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Frame{}, false
	}
	f := Frame{File: fields[0]}
	f.Line, f.Column = parseLineColumn(fields[1])
	if f.Line == 0 {
		return Frame{}, false
	}
	if len(fields) > 2 {
		f.Function = strings.Join(fields[2:], " ")
	}
	return f, true
}

// parseRuntimeFrame parses one traceback pair: the function line and its
// indented "file:line +0xoffset" location line.
func parseRuntimeFrame(fnLine, locLine string) Frame {
	fn := strings.TrimPrefix(fnLine, "created by ")
	if i := strings.Index(fn, " in goroutine "); i >= 0 {
		fn = fn[:i]
	}
	if i := strings.LastIndexByte(fn, '('); i >= 0 && strings.HasSuffix(fn, ")") {
		fn = fn[:i]
	}

	loc := locLine
	if i := strings.IndexByte(loc, ' '); i >= 0 {
		loc = loc[:i] // drop the +0x offset
	}
	f := Frame{Function: fn}
	if i := strings.LastIndexByte(loc, ':'); i >= 0 {
		if n, err := strconv.Atoi(loc[i+1:]); err == nil {
			f.File = loc[:i]
			f.Line = n
			return f
		}
	}
	f.File = loc
	return f
}

func parseLineColumn(s string) (line, col int) {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		line, _ = strconv.Atoi(s[:i])
		col, _ = strconv.Atoi(s[i+1:])
		return line, col
	}
	line, _ = strconv.Atoi(s)
	return line, 0
}

// isInternal reports whether the frame belongs to the Go runtime or to
// this library itself. Internal frames never appear in rendered traces
// and never resolve as the caller.
func (f Frame) isInternal() bool {
	if f.Function == "" && f.File == "" {
		return true
	}
	if strings.HasPrefix(f.Function, "runtime.") || strings.HasPrefix(f.Function, "runtime/") {
		return true
	}
	if framePackage(f.Function) == selfPackage {
		return true
	}
	if strings.HasPrefix(f.File, selfWebPrefix) {
		return true
	}
	return strings.Contains(f.File, selfPackage)
}

// framePackage extracts the package import path from a fully qualified
// function name such as "github.com/x/y.(*T).Do" or "main.main".
func framePackage(fn string) string {
	if fn == "" {
		return ""
	}
	slash := strings.LastIndexByte(fn, '/')
	dot := strings.IndexByte(fn[slash+1:], '.')
	if dot < 0 {
		return fn
	}
	return fn[:slash+1+dot]
}

// user returns the non-internal frames in original order, truncated to at
// most max when max >= 0.
func (st Stack) user(max int) []Frame {
	if max == 0 {
		return nil
	}
	var out []Frame
	for _, f := range st {
		if f.isInternal() {
			continue
		}
		out = append(out, f)
		if max >= 0 && len(out) >= max {
			break
		}
	}
	return out
}

// caller returns the first user frame, if any.
func (st Stack) caller() (Frame, bool) {
	for _, f := range st {
		if !f.isInternal() {
			return f, true
		}
	}
	return Frame{}, false
}

// location renders "file[:line[:column]]", dropping trailing parts that
// are unknown.
func (f Frame) location() string {
	var b strings.Builder
	b.WriteString(f.File)
	if f.Line > 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(f.Line))
		if f.Column > 0 {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(f.Column))
		}
	}
	return b.String()
}

package roggle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const runtimeTrace = `goroutine 1 [running]:
runtime/debug.Stack()
	/usr/local/go/src/runtime/debug/stack.go:26 +0x5e
github.com/acme/app/server.(*Handler).ServeHTTP(0xc000010000, 0x0)
	/src/app/server/handler.go:42 +0x1b
main.main()
	/src/app/main.go:12 +0x45
created by net/http.(*Server).Serve in goroutine 5
	/usr/local/go/src/net/http/server.go:3086 +0x5cb
`

func TestParseStackRuntimeFormat(t *testing.T) {
	st := ParseStack(runtimeTrace)
	require.Len(t, st, 4)

	assert.Equal(t, Frame{
		Function: "runtime/debug.Stack",
		File:     "/usr/local/go/src/runtime/debug/stack.go",
		Line:     26,
	}, st[0])
	assert.Equal(t, Frame{
		Function: "github.com/acme/app/server.(*Handler).ServeHTTP",
		File:     "/src/app/server/handler.go",
		Line:     42,
	}, st[1])
	assert.Equal(t, Frame{
		Function: "main.main",
		File:     "/src/app/main.go",
		Line:     12,
	}, st[2])
	assert.Equal(t, Frame{
		Function: "net/http.(*Server).Serve",
		File:     "/usr/local/go/src/net/http/server.go",
		Line:     3086,
	}, st[3])
}

func TestParseStackWebFormat(t *testing.T) {
	st := ParseStack("packages/acme_app/src/main.go 10:7 main\npackages/roggle/src/printer.go 120:9 render\n")
	require.Len(t, st, 2)

	assert.Equal(t, Frame{Function: "main", File: "packages/acme_app/src/main.go", Line: 10, Column: 7}, st[0])
	assert.Equal(t, Frame{Function: "render", File: "packages/roggle/src/printer.go", Line: 120, Column: 9}, st[1])

	assert.False(t, st[0].isInternal())
	assert.True(t, st[1].isInternal(), "packages/roggle/ is the library's own reserved prefix")
}

func TestParseStackWebFormatWithoutFunction(t *testing.T) {
	st := ParseStack("packages/acme_app/src/main.go 10:7")
	require.Len(t, st, 1)
	assert.Equal(t, "", st[0].Function)
	assert.Equal(t, 10, st[0].Line)
	assert.Equal(t, 7, st[0].Column)
}

func TestParseStackIgnoresGarbage(t *testing.T) {
	assert.Empty(t, ParseStack(""))
	assert.Empty(t, ParseStack("not a stack trace\nat all\n"))
}

func TestFramePackage(t *testing.T) {
	cases := map[string]string{
		"main.main":                            "main",
		"runtime/debug.Stack":                  "runtime/debug",
		"github.com/acme/app.handle":           "github.com/acme/app",
		"github.com/acme/app.(*T).Do":          "github.com/acme/app",
		selfPackage + ".(*PrettyPrinter).Render": selfPackage,
	}
	for fn, want := range cases {
		assert.Equal(t, want, framePackage(fn), fn)
	}
}

func TestInternalClassification(t *testing.T) {
	internal := []Frame{
		{Function: "runtime.goexit", File: "/go/src/runtime/asm_amd64.s", Line: 1695},
		{Function: "runtime/debug.Stack", File: "/go/src/runtime/debug/stack.go", Line: 26},
		{Function: selfPackage + ".(*Logger).Log", File: "/src/roggle/logger.go", Line: 70},
		{File: "packages/roggle/src/printer.go", Line: 5, Function: "render"},
		{Function: "github.com/acme/app.handle", File: "/go/pkg/mod/" + selfPackage + "@v1.0.0/pretty.go", Line: 12},
		{},
	}
	for _, f := range internal {
		assert.True(t, f.isInternal(), "%+v", f)
	}

	user := []Frame{
		{Function: "main.main", File: "/src/app/main.go", Line: 10},
		{Function: "github.com/acme/app.handle", File: "/src/app/handler.go", Line: 42},
		{Function: "testing.tRunner", File: "/go/src/testing/testing.go", Line: 1690},
		{File: "packages/acme_app/src/main.go", Line: 10},
	}
	for _, f := range user {
		assert.False(t, f.isInternal(), "%+v", f)
	}
}

func TestUserFramesOrderAndTruncation(t *testing.T) {
	st := Stack{
		{Function: selfPackage + ".capture", File: "/src/roggle/stack.go", Line: 1},
		{Function: "main.a", File: "/src/app/a.go", Line: 1},
		{Function: "runtime.call", File: "/go/src/runtime/proc.go", Line: 2},
		{Function: "main.b", File: "/src/app/b.go", Line: 2},
		{Function: "main.c", File: "/src/app/c.go", Line: 3},
	}

	all := st.user(UnlimitedStackFrames)
	require.Len(t, all, 3)
	assert.Equal(t, "main.a", all[0].Function)
	assert.Equal(t, "main.b", all[1].Function)
	assert.Equal(t, "main.c", all[2].Function)

	assert.Len(t, st.user(2), 2)
	assert.Empty(t, st.user(0))
}

func TestCallerResolution(t *testing.T) {
	st := Stack{
		{Function: selfPackage + ".capture", File: "/src/roggle/stack.go", Line: 1},
		{Function: "main.a", File: "/src/app/a.go", Line: 1},
	}
	f, ok := st.caller()
	require.True(t, ok)
	assert.Equal(t, "main.a", f.Function)

	_, ok = Stack{{Function: "runtime.goexit"}}.caller()
	assert.False(t, ok)
	_, ok = Stack(nil).caller()
	assert.False(t, ok)
}

func TestFrameLocation(t *testing.T) {
	assert.Equal(t, "/a/b.go:10:7", Frame{File: "/a/b.go", Line: 10, Column: 7}.location())
	assert.Equal(t, "/a/b.go:10", Frame{File: "/a/b.go", Line: 10}.location())
	assert.Equal(t, "/a/b.go", Frame{File: "/a/b.go"}.location())
	assert.Equal(t, "/a/b.go", Frame{File: "/a/b.go", Column: 7}.location(), "column without line is dropped")
}

func TestCaptureStack(t *testing.T) {
	st := CaptureStack(0)
	require.NotEmpty(t, st)
	assert.Contains(t, st[0].Function, "TestCaptureStack")
	assert.True(t, strings.HasSuffix(st[0].File, "_test.go"))
	assert.Greater(t, st[0].Line, 0)
}

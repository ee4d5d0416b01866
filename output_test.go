package roggle

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleOutputWritesLinesInOrder(t *testing.T) {
	var buf bytes.Buffer
	out := NewConsoleOutput(&buf)
	out.Write(OutputEvent{Level: LevelInfo, Lines: []string{"first", "second"}})
	out.Write(OutputEvent{Level: LevelWarn, Lines: []string{"third"}})

	assert.Equal(t, "first\nsecond\nthird\n", buf.String())
}

func TestConsoleOutputDefaultsToStdout(t *testing.T) {
	out := NewConsoleOutput(nil)
	require.NotNil(t, out.w)
}

func TestReportOutputCopiesLines(t *testing.T) {
	var got []OutputEvent
	out := NewReportOutput(func(e OutputEvent) { got = append(got, e) })

	lines := []string{"a", "b"}
	out.Write(OutputEvent{Level: LevelError, Lines: lines})
	lines[0] = "mutated"

	require.Len(t, got, 1)
	assert.Equal(t, LevelError, got[0].Level)
	assert.Equal(t, []string{"a", "b"}, got[0].Lines)
}

func TestReportOutputNilCallback(t *testing.T) {
	out := NewReportOutput(nil)
	assert.NotPanics(t, func() {
		out.Write(OutputEvent{Level: LevelInfo, Lines: []string{"x"}})
	})
}

func TestMultiOutputFanOut(t *testing.T) {
	a := &stubOutput{}
	b := &stubOutput{}
	multi := NewMultiOutput(a, b)

	multi.Write(OutputEvent{Level: LevelInfo, Lines: []string{"x"}})

	require.Len(t, a.snapshot(), 1)
	require.Len(t, b.snapshot(), 1)
	assert.Equal(t, a.snapshot(), b.snapshot())
}

func TestMultiOutputCloseClosesClosers(t *testing.T) {
	a := &stubOutput{}
	b := &stubOutput{}
	var buf bytes.Buffer
	multi := NewMultiOutput(a, NewConsoleOutput(&buf), b)

	require.NoError(t, multi.Close())
	assert.Equal(t, 1, a.closed)
	assert.Equal(t, 1, b.closed)
}

func TestLoggerCloseClosesSinkThroughMulti(t *testing.T) {
	a := &stubOutput{}
	logger, err := NewBuilder().
		WithPrinter(plainPrinter()).
		WithOutput(NewMultiOutput(a)).
		Build()
	require.NoError(t, err)

	require.NoError(t, logger.Close())
	assert.Equal(t, 1, a.closed)
}

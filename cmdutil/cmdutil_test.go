package cmdutil

import (
	"context"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
}

func TestExecuteSuccess(t *testing.T) {
	skipOnWindows(t)
	code, stdout, stderr, err := Services{}.Execute(context.Background(), "sh", []string{"-c", "echo out; echo err >&2"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "out\n", stdout)
	assert.Equal(t, "err\n", stderr)
}

func TestExecuteNonZeroExit(t *testing.T) {
	skipOnWindows(t)
	code, _, _, err := Services{}.Execute(context.Background(), "sh", []string{"-c", "exit 3"})
	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestExecuteMissingProgram(t *testing.T) {
	code, _, _, err := Services{}.Execute(context.Background(), "scalus-no-such-program-xyz", nil)
	require.Error(t, err)
	assert.Equal(t, -1, code)
}

func TestExecuteTimeout(t *testing.T) {
	skipOnWindows(t)
	s := Services{Timeout: 50 * time.Millisecond}
	code, _, _, err := s.Execute(context.Background(), "sh", []string{"-c", "exec sleep 5"})
	require.Error(t, err)
	assert.Equal(t, -1, code)
}

func TestExecuteEnvAndLines(t *testing.T) {
	skipOnWindows(t)
	var lines []string
	s := Services{
		Env:    []string{"SCALUS_TEST_VALUE=hello"},
		OnLine: func(line string) { lines = append(lines, line) },
	}
	_, stdout, _, err := s.Execute(context.Background(), "sh", []string{"-c", "echo $SCALUS_TEST_VALUE; printf tail"})
	require.NoError(t, err)
	assert.Equal(t, "hello\ntail", stdout)
	assert.Equal(t, []string{"hello", "tail"}, lines)
}

func TestLineWriter(t *testing.T) {
	var got []string
	var out strings.Builder
	lw := &lineWriter{w: &out, emit: func(l string) { got = append(got, l) }}

	_, _ = lw.Write([]byte("one\r\ntw"))
	_, _ = lw.Write([]byte("o\nthree"))
	lw.Flush()

	assert.Equal(t, []string{"one", "two", "three"}, got)
	assert.Equal(t, "one\r\ntwo\nthree", out.String())
}

func TestExecuteInterleavedStreams(t *testing.T) {
	skipOnWindows(t)
	var lines []string
	s := Services{OnLine: func(line string) { lines = append(lines, line) }}
	_, stdout, stderr, err := s.Execute(context.Background(), "sh", []string{"-c", "echo out; echo err >&2; echo out2"})
	require.NoError(t, err)
	assert.Equal(t, "out\nout2\n", stdout)
	assert.Equal(t, "err\n", stderr)
	assert.ElementsMatch(t, []string{"out", "err", "out2"}, lines)
}

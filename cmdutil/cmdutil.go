// Package cmdutil runs short-lived helper programs, such as a profile
// post-processor, and reports their result code and output.
package cmdutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/jongio/scalus/logutil"
)

// DefaultTimeout bounds a helper program when the caller's context does not.
const DefaultTimeout = 2 * time.Minute

// OutputLineHandler is a callback for processing output lines in real-time.
type OutputLineHandler func(line string)

// Executor runs a program to completion.
type Executor interface {
	Execute(ctx context.Context, path string, args []string) (code int, stdout, stderr string, err error)
}

// Services executes programs on the local machine.
type Services struct {
	// Dir is the working directory; empty means the current one.
	Dir string
	// Env is appended to the inherited environment.
	Env []string
	// Timeout overrides DefaultTimeout.
	Timeout time.Duration
	// OnLine, if set, receives each output line as it is produced.
	OnLine OutputLineHandler
}

// Execute runs path with args and waits for it. A program that runs and exits
// non-zero is not an error: its code is returned with a nil error. err is set
// only when the program could not be run or was cancelled.
func (s Services) Execute(ctx context.Context, path string, args []string) (int, string, string, error) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = s.Dir
	cmd.Env = append(os.Environ(), s.Env...)
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	var outLines, errLines *lineWriter
	if s.OnLine != nil {
		emit := serialize(s.OnLine)
		outLines = &lineWriter{w: &stdout, emit: emit}
		errLines = &lineWriter{w: &stderr, emit: emit}
		cmd.Stdout, cmd.Stderr = outLines, errLines
	} else {
		cmd.Stdout, cmd.Stderr = &stdout, &stderr
	}

	logutil.Debug("executing", "path", path, "args", args)
	err := cmd.Run()
	if outLines != nil {
		outLines.Flush()
		errLines.Flush()
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, stdout.String(), stderr.String(), nil
	case errors.As(err, &exitErr) && ctx.Err() == nil:
		return exitErr.ExitCode(), stdout.String(), stderr.String(), nil
	default:
		return -1, stdout.String(), stderr.String(), fmt.Errorf("failed to run %s: %w", path, err)
	}
}

var _ Executor = Services{}


// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"

	"github.com/shirou/gopsutil/v4/process"
)

// Process is a started client program.
type Process interface {
	Pid() int
	// Exited reports whether the process has exited and, if so, its code.
	Exited() (bool, int)
	// Wait blocks until the process exits.
	Wait() error
}

// InputIdleWaiter is implemented by processes that can report when their UI
// is ready for input.
type InputIdleWaiter interface {
	WaitForInputIdle(ctx context.Context) error
}

// IsProcessRunning checks if a process with the given PID is running.
func IsProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}
	exists, err := process.PidExists(int32(pid))
	return err == nil && exists
}

// Starter launches programs.
type Starter struct {
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
}

// Start launches path with args. env replaces the environment when non-nil.
// The process is not tied to ctx and keeps running after it is cancelled.
func (s Starter) Start(ctx context.Context, path string, args []string, env []string) (Process, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cmd := exec.Command(path, args...) // #nosec G204 - program comes from the trusted configuration
	cmd.Dir = s.Dir
	cmd.Env = env
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", path, err)
	}
	return newHandle(cmd), nil
}

// Handle tracks a process started by Starter.
type Handle struct {
	cmd  *exec.Cmd
	done chan struct{}

	mu      sync.Mutex
	code    int
	waitErr error
}

func newHandle(cmd *exec.Cmd) *Handle {
	h := &Handle{cmd: cmd, done: make(chan struct{})}
	go h.wait()
	return h
}

func (h *Handle) wait() {
	err := h.cmd.Wait()

	h.mu.Lock()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		h.code = 0
	case errors.As(err, &exitErr):
		h.code = exitErr.ExitCode()
	default:
		h.code = -1
		h.waitErr = err
	}
	h.mu.Unlock()
	close(h.done)
}

// Pid implements Process.
func (h *Handle) Pid() int {
	return h.cmd.Process.Pid
}

// Exited implements Process.
func (h *Handle) Exited() (bool, int) {
	select {
	case <-h.done:
		h.mu.Lock()
		defer h.mu.Unlock()
		return true, h.code
	default:
		return false, 0
	}
}

// Wait implements Process. A non-zero exit code is not an error.
func (h *Handle) Wait() error {
	<-h.done
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.waitErr
}

// WaitForInputIdle implements InputIdleWaiter. It returns when the process
// is idle, has exited, or ctx is done.
func (h *Handle) WaitForInputIdle(ctx context.Context) error {
	return waitForInputIdle(ctx, h.Pid(), h.done)
}

//go:build !windows

package procutil

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// idlePollInterval is the gap between state samples.
var idlePollInterval = 250 * time.Millisecond

// idleSamples is how many consecutive non-running samples count as idle.
const idleSamples = 2

func waitForInputIdle(ctx context.Context, pid int, done <-chan struct{}) error {
	proc, err := process.NewProcessWithContext(ctx, int32(pid))
	if err != nil {
		select {
		case <-done:
			return nil
		default:
		}
		return fmt.Errorf("failed to inspect process %d: %w", pid, err)
	}

	ticker := time.NewTicker(idlePollInterval)
	defer ticker.Stop()

	quiet := 0
	for {
		if isQuiet(ctx, proc) {
			quiet++
			if quiet >= idleSamples {
				return nil
			}
		} else {
			quiet = 0
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-done:
			return nil
		case <-ticker.C:
		}
	}
}

func isQuiet(ctx context.Context, proc *process.Process) bool {
	states, err := proc.StatusWithContext(ctx)
	if err != nil {
		return false
	}
	for _, s := range states {
		switch s {
		case process.Sleep, process.Idle, process.Wait:
		default:
			return false
		}
	}
	return len(states) > 0
}

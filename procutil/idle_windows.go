//go:build windows

package procutil

import (
	"context"
	"fmt"

	"golang.org/x/sys/windows"
)

const (
	idleSliceMillis = 250
	waitTimeout     = 0x102
)

var procWaitForInputIdle = windows.NewLazySystemDLL("user32.dll").NewProc("WaitForInputIdle")

func waitForInputIdle(ctx context.Context, pid int, done <-chan struct{}) error {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_INFORMATION|windows.SYNCHRONIZE, false, uint32(pid))
	if err != nil {
		return fmt.Errorf("failed to open process %d: %w", pid, err)
	}
	defer func() { _ = windows.CloseHandle(h) }()

	for {
		r, _, callErr := procWaitForInputIdle.Call(uintptr(h), idleSliceMillis)
		switch r {
		case 0:
			return nil
		case waitTimeout:
		default:
			return fmt.Errorf("WaitForInputIdle failed: %w", callErr)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-done:
			return nil
		default:
		}
	}
}

package launch

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/jongio/scalus/logutil"
	"github.com/jongio/scalus/procutil"
)

// Wait policy options.
const (
	OptionWaitForExit      = "waitforexit"
	OptionWaitForInputIdle = "waitforinputidle"
	OptionWait             = "wait"
)

// DefaultWait is how long the process is held open when no wait option is
// configured. Generated profiles are deleted when it ends.
const DefaultWait = 10 * time.Second

// WaitKind selects what the controller waits for.
type WaitKind int

const (
	// WaitSleep waits for a fixed duration.
	WaitSleep WaitKind = iota
	// WaitExit waits for the client to exit.
	WaitExit
	// WaitInputIdle waits for the client's UI to accept input.
	WaitInputIdle
)

func (k WaitKind) String() string {
	switch k {
	case WaitExit:
		return "exit"
	case WaitInputIdle:
		return "inputidle"
	default:
		return "sleep"
	}
}

// WaitPolicy is the parsed form of the wait options.
type WaitPolicy struct {
	Kind     WaitKind
	Duration time.Duration
}

// ParseWaitPolicy derives the policy from the options. waitforexit wins over
// waitforinputidle, which wins over wait. "wait" alone means no delay and
// "wait:N" waits N seconds; an unparseable N means no delay. Without a wait
// option the default delay applies.
func ParseWaitPolicy(options []string) WaitPolicy {
	if len(options) == 0 {
		return WaitPolicy{Kind: WaitSleep, Duration: DefaultWait}
	}
	if hasOption(options, OptionWaitForExit) {
		return WaitPolicy{Kind: WaitExit}
	}
	if hasOption(options, OptionWaitForInputIdle) {
		return WaitPolicy{Kind: WaitInputIdle}
	}

	policy := WaitPolicy{Kind: WaitSleep, Duration: DefaultWait}
	for _, opt := range options {
		if len(opt) < len(OptionWait) || !strings.EqualFold(opt[:len(OptionWait)], OptionWait) {
			continue
		}
		if len(opt) == len(OptionWait) {
			policy.Duration = 0
			break
		}
		parts := strings.Split(opt, ":")
		if len(parts) > 1 {
			secs, err := strconv.Atoi(strings.TrimSpace(parts[1]))
			if err != nil || secs < 0 {
				secs = 0
			}
			policy.Duration = time.Duration(secs) * time.Second
		}
		break
	}
	return policy
}

func hasOption(options []string, name string) bool {
	for _, opt := range options {
		if strings.EqualFold(opt, name) {
			return true
		}
	}
	return false
}

// Controller holds the invoking process open after the client starts.
type Controller struct {
	Clock clockwork.Clock
}

// After applies the wait policy for options to proc and logs the client's
// state afterwards. Problems are logged, never returned.
func (c Controller) After(ctx context.Context, proc procutil.Process, options []string) {
	log := logutil.NewLogger("launch").WithOperation("post-launch")
	clock := c.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	policy := ParseWaitPolicy(options)
	switch policy.Kind {
	case WaitExit:
		log.Info("waiting for the application to exit", "pid", proc.Pid())
		waitExit(ctx, proc, log)

	case WaitInputIdle:
		w, ok := proc.(procutil.InputIdleWaiter)
		if !ok {
			log.Warn("waiting for input idle is not supported for this process", "pid", proc.Pid())
			break
		}
		log.Info("waiting for the application to become idle", "pid", proc.Pid())
		if err := w.WaitForInputIdle(ctx); err != nil {
			log.Warn("wait for input idle failed", "error", err)
		}

	default:
		if policy.Duration > 0 {
			log.Info("waiting before exit", "seconds", int(policy.Duration/time.Second))
			select {
			case <-clock.After(policy.Duration):
			case <-ctx.Done():
				log.Warn("wait interrupted", "error", ctx.Err())
			}
		}
	}

	if exited, code := proc.Exited(); exited {
		log.Info("application exited", "exitCode", code)
	} else {
		log.Info("application still running, scalus has finished", "pid", proc.Pid(), "alive", procutil.IsProcessRunning(proc.Pid()))
	}
}

func waitExit(ctx context.Context, proc procutil.Process, log *logutil.ComponentLogger) {
	done := make(chan error, 1)
	go func() { done <- proc.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			log.Warn("wait for exit failed", "error", err)
		}
	case <-ctx.Done():
		log.Warn("wait interrupted", "error", ctx.Err())
	}
}

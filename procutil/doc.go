// Package procutil starts the client program a connection profile is handed
// to and tracks it afterwards.
//
// Start returns a Handle whose exit state is recorded by a background
// goroutine, so Exited never blocks. On interactive desktop platforms a
// Handle can also wait until the client's UI is ready:
//
//	proc, err := procutil.Starter{}.Start(ctx, exe, args, env)
//	if err != nil {
//	    return err
//	}
//	if w, ok := proc.(procutil.InputIdleWaiter); ok {
//	    _ = w.WaitForInputIdle(ctx)
//	}
//
// Windows uses the user32 WaitForInputIdle call. Other platforms poll the
// process state through github.com/shirou/gopsutil/v4/process until it is
// no longer running.
package procutil

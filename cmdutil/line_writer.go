package cmdutil

import (
	"bytes"
	"io"
	"strings"
	"sync"
)

// lineWriter copies program output to w and passes every complete line,
// without its terminator, to emit.
type lineWriter struct {
	mu      sync.Mutex
	w       io.Writer
	emit    OutputLineHandler
	pending bytes.Buffer
}

func (lw *lineWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	n, err := lw.w.Write(p)
	if err != nil {
		return n, err
	}
	lw.pending.Write(p)
	for {
		line, err := lw.pending.ReadString('\n')
		if err != nil {
			// Incomplete line; keep it for the next write.
			lw.pending.Reset()
			lw.pending.WriteString(line)
			break
		}
		lw.emit(strings.TrimRight(line, "\r\n"))
	}
	return n, nil
}

// Flush emits a final unterminated line, if any.
func (lw *lineWriter) Flush() {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	if lw.pending.Len() > 0 {
		lw.emit(lw.pending.String())
		lw.pending.Reset()
	}
}

// serialize makes h safe to share between the stdout and stderr writers.
func serialize(h OutputLineHandler) OutputLineHandler {
	var mu sync.Mutex
	return func(line string) {
		mu.Lock()
		defer mu.Unlock()
		h(line)
	}
}

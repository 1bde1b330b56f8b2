package logger

import (
	"io"
	"os"
	"sync"
)

var (
	// mu protects the fields below.
	mu     sync.RWMutex
	plain  bool
	debug  bool
	output io.Writer = os.Stderr
)

// Init sets the output mode for every subsequent log call.
func Init(plainMode, debugMode bool) {
	mu.Lock()
	defer mu.Unlock()
	plain = plainMode
	debug = debugMode
}

// SetOutput redirects log output and returns a func restoring the previous
// writer.
func SetOutput(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()
	prev := output
	output = w
	return func() {
		mu.Lock()
		defer mu.Unlock()
		output = prev
	}
}

func isPlain() bool {
	mu.RLock()
	defer mu.RUnlock()
	return plain
}

func isDebug() bool {
	mu.RLock()
	defer mu.RUnlock()
	return debug
}

func out() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return output
}

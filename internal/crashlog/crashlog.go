// Package crashlog writes a detailed report of an unrecovered panic to disk
// and restores the terminal so the user sees a readable error instead of a
// wrecked alternate screen.
package crashlog

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"time"
)

// DefaultPath is the crash report location used by callers that pass an
// empty path, such as background goroutines deep inside internal packages
// that have no access to the configured config directory. cmd/tv overrides
// it at startup once the real config directory is known.
var DefaultPath = "/tmp/television-crash.log"

// Write appends a crash report for the recovered value r to path, including
// the crashing goroutine's stack, a dump of all goroutine stacks, and basic
// runtime memory statistics. If r is nil, Write is a no-op.
func Write(path string, r any, goroutineName string) {
	if r == nil {
		return
	}
	if path == "" {
		path = DefaultPath
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open crash log: %v\n", err)
		f = os.Stderr
	}
	defer f.Close()

	fmt.Fprintf(f, "\n\n=== CRASH REPORT - %s ===\n\n", time.Now().Format("2006-01-02 15:04:05.000"))

	if goroutineName == "" {
		goroutineName = "main"
	}
	fmt.Fprintf(f, "Goroutine: %s\n\n", goroutineName)
	fmt.Fprintf(f, "Error: %v\n\n", r)

	fmt.Fprintf(f, "Crashing goroutine stack trace:\n")
	f.Write(debug.Stack())
	fmt.Fprintf(f, "\n")

	fmt.Fprintf(f, "All goroutine stacks:\n")
	buf := make([]byte, 1024*1024)
	n := runtime.Stack(buf, true)
	f.Write(buf[:n])
	fmt.Fprintf(f, "\n")

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Fprintf(f, "Goroutines:       %d\n", runtime.NumGoroutine())
	fmt.Fprintf(f, "Memory allocated: %d MB\n", m.Alloc/1024/1024)
	fmt.Fprintf(f, "Memory sys:       %d MB\n", m.Sys/1024/1024)
	fmt.Fprintf(f, "GC runs:          %d\n", m.NumGC)

	if f != os.Stderr {
		fmt.Fprintf(os.Stderr, "\nfatal error: %v\n\ncrash log saved to %s\n", r, path)
	}
}

// Guard recovers a panic in the current goroutine, writes it to path tagged
// with name, then re-panics so the process still terminates with a non-zero
// exit (the Go runtime's panic exit status, 2) for panics that escape the
// event loop. Callers that want to keep running a
// background goroutine after a panic should use SafeGo instead.
func Guard(path, name string) {
	if r := recover(); r != nil {
		Write(path, r, name)
		panic(r)
	}
}

// SafeGo runs fn in a new goroutine, recovering any panic into a crash log
// entry instead of bringing down the whole process, the way the teacher's
// safeGo wraps background Docker-polling goroutines.
func SafeGo(path, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				Write(path, r, name)
			}
		}()
		fn()
	}()
}

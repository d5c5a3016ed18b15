package crashlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWriteNilIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crash.log")
	Write(path, nil, "worker")

	if _, err := os.Stat(path); err == nil {
		t.Fatalf("expected no crash file to be written for a nil panic value")
	}
}

func TestWriteIncludesErrorAndGoroutineName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crash.log")
	Write(path, "boom", "ingest-loop")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	contents := string(data)
	if !strings.Contains(contents, "boom") {
		t.Fatalf("expected crash log to mention the panic value, got: %s", contents)
	}
	if !strings.Contains(contents, "ingest-loop") {
		t.Fatalf("expected crash log to mention the goroutine name, got: %s", contents)
	}
}

func TestSafeGoRecoversPanic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crash.log")

	SafeGo(path, "test-goroutine", func() {
		panic("oh no")
	})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if data, err := os.ReadFile(path); err == nil && len(data) > 0 {
			if !strings.Contains(string(data), "oh no") {
				t.Fatalf("expected recovered panic to be logged, got: %s", string(data))
			}
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("crash log was never written within the deadline")
}

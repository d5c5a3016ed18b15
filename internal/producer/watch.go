package producer

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Resetter is the subset of the matcher used to drain and regenerate the
// haystack between watch-mode restarts.
type Resetter interface {
	Reset()
	SetProducing(bool)
}

// Watcher re-runs a Spec on a fixed interval, draining the target Resetter
// before each re-injection so that no snapshot ever observes a mix of two
// generations (spec §4.1: "Re-injection is serialised with the matcher's
// reset so snapshots never mix generations").
type Watcher struct {
	interval time.Duration
	newSpec  func() Spec
	sink     Sink
	target   Resetter

	mu      sync.Mutex
	current *Producer
	lastErr error
}

// NewWatcher creates a Watcher. newSpec is called before each run so the
// caller can vary the spec across generations if needed; most callers will
// just return the same Spec every time.
func NewWatcher(interval time.Duration, newSpec func() Spec, sink Sink, target Resetter) *Watcher {
	return &Watcher{interval: interval, newSpec: newSpec, sink: sink, target: target}
}

// Run blocks, restarting the source every interval, until ctx is cancelled.
// The first generation runs immediately.
func (w *Watcher) Run(ctx context.Context) {
	w.runGeneration(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.stopCurrent()
			return
		case <-ticker.C:
			w.runGeneration(ctx)
		}
	}
}

func (w *Watcher) runGeneration(ctx context.Context) {
	w.target.Reset()

	p := New(w.newSpec(), w.sink)
	w.mu.Lock()
	w.current = p
	w.mu.Unlock()

	w.target.SetProducing(true)
	exited, err := p.Run(ctx)
	w.target.SetProducing(false)

	w.mu.Lock()
	switch {
	case err != nil:
		w.lastErr = err
	case exited != nil && exited.Code > 0:
		w.lastErr = fmt.Errorf("watched command exited with status %d", exited.Code)
	}
	w.mu.Unlock()
}

// LastError returns the most recent spawn failure or non-zero exit observed
// across generations, if any.
func (w *Watcher) LastError() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

func (w *Watcher) stopCurrent() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.current != nil {
		w.current.Stop()
	}
}

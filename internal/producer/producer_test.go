package producer

import (
	"context"
	"sync"
	"testing"
	"time"
)

type collectingSink struct {
	mu    sync.Mutex
	lines []string
}

func (s *collectingSink) Push(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
}

func (s *collectingSink) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

func TestProducerStreamsLinesFromCommand(t *testing.T) {
	sink := &collectingSink{}
	p := New(Spec{Kind: SourceCommand, Command: "printf 'alpha\\nbeta\\n\\ngamma\\n'", Shell: "sh"}, sink)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exited, err := p.Run(ctx)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if exited != nil {
		t.Fatalf("expected clean exit, got %+v", exited)
	}

	got := sink.snapshot()
	want := []string{"alpha", "beta", "gamma"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestProducerReportsNonZeroExit(t *testing.T) {
	sink := &collectingSink{}
	p := New(Spec{Kind: SourceCommand, Command: "printf 'one\\n'; exit 3", Shell: "sh"}, sink)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exited, err := p.Run(ctx)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if exited == nil || exited.Code != 3 {
		t.Fatalf("expected exit code 3, got %+v", exited)
	}
	if got := sink.snapshot(); len(got) != 1 || got[0] != "one" {
		t.Fatalf("expected already-streamed item to survive, got %v", got)
	}
}

func TestProducerSpawnFailure(t *testing.T) {
	sink := &collectingSink{}
	p := New(Spec{Kind: SourceCommand, Command: "echo hi", Shell: "/nonexistent/shell-binary"}, sink)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := p.Run(ctx)
	if err == nil {
		t.Fatalf("expected spawn error")
	}
}

type fakeResetter struct {
	mu       sync.Mutex
	resets   int
	producing bool
}

func (f *fakeResetter) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resets++
}

func (f *fakeResetter) SetProducing(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.producing = v
}

func (f *fakeResetter) resetCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resets
}

func TestWatcherRestartsOnInterval(t *testing.T) {
	sink := &collectingSink{}
	target := &fakeResetter{}

	w := NewWatcher(30*time.Millisecond, func() Spec {
		return Spec{Kind: SourceCommand, Command: "echo tick", Shell: "sh"}
	}, sink, target)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	w.Run(ctx)

	if target.resetCount() < 2 {
		t.Fatalf("expected at least 2 generations, got %d", target.resetCount())
	}
}

package matcher

import (
	"testing"
	"time"
)

func pushString(t *testing.T, m *Matcher[string], s string) {
	t.Helper()
	m.Injector().Push(s, func(item string, cols []string) {
		cols[0] = item
	})
}

// waitForHaystack polls until the matcher's internal haystack reaches n
// items or the timeout elapses; the ingest goroutine drains the lock-free
// queue asynchronously so tests must not assume synchronous injection.
func waitForHaystack[T any](t *testing.T, m *Matcher[T], n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		m.mu.RLock()
		got := len(m.haystack)
		m.mu.RUnlock()
		if got >= n {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("haystack did not reach %d items in time", n)
}

func TestMatcherMatchedNeverExceedsTotal(t *testing.T) {
	m := New[string](DefaultConfig())
	defer m.Shutdown()

	words := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	for _, w := range words {
		pushString(t, m, w)
	}
	waitForHaystack(t, m, len(words))

	for _, pattern := range []string{"", "a", "e", "xyz", "alph"} {
		m.Find(pattern)
		m.Tick()
		snap := m.Snapshot()
		if snap.Matched > snap.Total {
			t.Fatalf("pattern %q: matched %d > total %d", pattern, snap.Matched, snap.Total)
		}
	}
}

func TestMatcherExcludesNonSubsequence(t *testing.T) {
	m := New[string](DefaultConfig())
	defer m.Shutdown()

	pushString(t, m, "television")
	pushString(t, m, "telephone")
	pushString(t, m, "telegraph")
	waitForHaystack(t, m, 3)

	cases := []struct {
		pattern string
		matched int
	}{
		{"tel", 3},
		// all three candidates share the "tele" prefix, so a correct
		// subsequence matcher keeps all three here.
		{"tele", 3},
		{"televi", 1},
	}
	for _, c := range cases {
		m.Find(c.pattern)
		m.Tick()
		snap := m.Snapshot()
		if snap.Matched != c.matched {
			t.Fatalf("pattern %q: matched = %d, want %d", c.pattern, snap.Matched, c.matched)
		}
	}
}

func TestMatcherTieBreakByInsertionOrder(t *testing.T) {
	m := New[string](DefaultConfig())
	defer m.Shutdown()

	// Two identical "xa" items satisfy pattern "a" with the same score
	// (one non-contiguous match at index 1, same length), so insertion
	// order must decide.
	pushString(t, m, "xa")
	pushString(t, m, "xa")
	waitForHaystack(t, m, 2)

	m.Find("a")
	m.Tick()
	rows := m.Results(10, 0)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Index >= rows[1].Index {
		t.Fatalf("expected ascending insertion index on tie, got %d then %d", rows[0].Index, rows[1].Index)
	}
}

func TestMatcherResetClearsHaystack(t *testing.T) {
	m := New[string](DefaultConfig())
	defer m.Shutdown()

	pushString(t, m, "one")
	pushString(t, m, "two")
	waitForHaystack(t, m, 2)

	m.Find("o")
	m.Tick()
	if m.Snapshot().Total != 2 {
		t.Fatalf("expected total 2 before reset")
	}

	m.Reset()
	m.Tick()
	snap := m.Snapshot()
	if snap.Total != 0 || snap.Matched != 0 {
		t.Fatalf("expected empty snapshot after reset, got %+v", snap)
	}
	if m.Pattern() != "" {
		t.Fatalf("expected pattern cleared after reset, got %q", m.Pattern())
	}
}

func TestMatcherInvalidPatternYieldsEmptyResults(t *testing.T) {
	m := New[string](DefaultConfig())
	defer m.Shutdown()

	pushString(t, m, "alpha")
	waitForHaystack(t, m, 1)

	m.Find("zzz-not-present")
	m.Tick()
	if snap := m.Snapshot(); snap.Matched != 0 {
		t.Fatalf("expected 0 matches, got %d", snap.Matched)
	}
}

func TestMatcherGetResultOutOfRange(t *testing.T) {
	m := New[string](DefaultConfig())
	defer m.Shutdown()

	pushString(t, m, "alpha")
	waitForHaystack(t, m, 1)
	m.Find("")
	m.Tick()

	if _, ok := m.GetResult(5); ok {
		t.Fatalf("expected out-of-range GetResult to report absent")
	}
}

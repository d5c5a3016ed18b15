package cache

import "testing"

func TestRingSetEvictsOldest(t *testing.T) {
	rs := NewRingSet[string](2)

	if _, evicted := rs.Push("a"); evicted {
		t.Fatalf("unexpected eviction on first push")
	}
	if _, evicted := rs.Push("b"); evicted {
		t.Fatalf("unexpected eviction on second push")
	}

	evicted, did := rs.Push("c")
	if !did || evicted != "a" {
		t.Fatalf("expected eviction of %q, got %q (did=%v)", "a", evicted, did)
	}

	if rs.Contains("a") {
		t.Fatalf("expected %q to be evicted", "a")
	}
	for _, k := range []string{"b", "c"} {
		if !rs.Contains(k) {
			t.Fatalf("expected %q to be retained", k)
		}
	}
	if got := rs.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
}

func TestRingSetReinsertIsNoOp(t *testing.T) {
	rs := NewRingSet[string](2)
	rs.Push("a")
	rs.Push("b")

	if _, evicted := rs.Push("a"); evicted {
		t.Fatalf("re-inserting a present key must not evict")
	}
	if got := rs.Keys(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("eviction order changed after no-op re-insert: %v", got)
	}

	// c should still evict a (the oldest), proving the re-insert didn't
	// bump a's position.
	evicted, did := rs.Push("c")
	if !did || evicted != "a" {
		t.Fatalf("expected eviction of %q after no-op reinsert, got %q (did=%v)", "a", evicted, did)
	}
}

func TestRingSetRetainsLastCDistinctKeys(t *testing.T) {
	rs := NewRingSet[int](3)
	inserted := []int{}
	for i := 0; i < 10; i++ {
		rs.Push(i)
		inserted = append(inserted, i)
	}

	want := inserted[len(inserted)-3:]
	got := rs.Keys()
	if len(got) != len(want) {
		t.Fatalf("Len() = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys() = %v, want %v", got, want)
		}
	}
}

// Package matcher implements the concurrent fuzzy matcher (component C2):
// a growing haystack, a current pattern, and snapshot-based result paging
// advanced by explicit Tick calls from the controller's frame loop.
package matcher

import (
	"sort"
	"sync"
	"sync/atomic"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"

	"github.com/televisionhq/television/internal/crashlog"
	"github.com/televisionhq/television/internal/entry"
)

// injectQueueCapacity bounds the lock-free injection queue. It is rounded up
// to a power of two internally by lfq.
const injectQueueCapacity = 4096

// Item is one haystack entry: the owned producer record plus its
// pre-computed match columns and stable insertion index.
type Item[T any] struct {
	Value   T
	Columns []string
	Index   int
}

// Result is one ranked row in a Snapshot.
type Result[T any] struct {
	Item           T
	Index          int
	Score          int
	DisplayMatches []entry.Range
}

// Snapshot is a consistent, immutable view of the matcher between ticks.
type Snapshot[T any] struct {
	Matched int
	Total   int
	Running bool
	Rows    []Result[T]
}

// Matcher maintains a growing haystack of type T, a current pattern, and the
// most recent ranked Snapshot. All public methods are safe for concurrent
// use; interior locking is private to the matcher as required by spec §3.
type Matcher[T any] struct {
	cfg   Config
	queue *lfq.MPSC[pendingItem[T]]

	closeOnce sync.Once
	closeCh   chan struct{}

	mu        sync.RWMutex
	haystack  []Item[T]
	nextIndex int

	generation atomic.Uint64
	pattern    atomic.Pointer[string]
	producing  atomic.Bool
	snapshot   atomic.Pointer[Snapshot[T]]
}

// New creates a Matcher and starts its internal ingest goroutine.
func New[T any](cfg Config) *Matcher[T] {
	m := &Matcher[T]{
		cfg:     cfg,
		queue:   lfq.NewMPSC[pendingItem[T]](injectQueueCapacity),
		closeCh: make(chan struct{}),
	}
	empty := ""
	m.pattern.Store(&empty)
	m.snapshot.Store(&Snapshot[T]{})
	crashlog.SafeGo("", "matcher-ingest", m.ingestLoop)
	return m
}

// Injector returns the producer-side handle used to push items.
func (m *Matcher[T]) Injector() Injector[T] {
	return Injector[T]{queue: m.queue}
}

// SetProducing marks whether an upstream producer is still expected to
// deliver more items; it is surfaced verbatim as Snapshot.Running.
func (m *Matcher[T]) SetProducing(v bool) {
	m.producing.Store(v)
}

func (m *Matcher[T]) ingestLoop() {
	backoff := iox.Backoff{}
	for {
		select {
		case <-m.closeCh:
			return
		default:
		}

		p, err := m.queue.Dequeue()
		if err != nil {
			if lfq.IsWouldBlock(err) {
				backoff.Wait()
				continue
			}
			return
		}
		backoff.Reset()

		m.mu.Lock()
		idx := m.nextIndex
		m.nextIndex++
		m.haystack = append(m.haystack, Item[T]{Value: p.value, Columns: p.columns, Index: idx})
		m.mu.Unlock()
	}
}

// Find sets the current pattern. It never blocks: replacing the pattern
// atomically supersedes any Tick already in progress for the old pattern
// (spec §4.2).
func (m *Matcher[T]) Find(pattern string) {
	p := pattern
	m.pattern.Store(&p)
	m.generation.Add(1)
}

// Reset empties the haystack and cancels the active pattern's ranking.
func (m *Matcher[T]) Reset() {
	m.mu.Lock()
	m.haystack = nil
	m.nextIndex = 0
	m.mu.Unlock()

	m.generation.Add(1)
	empty := ""
	m.pattern.Store(&empty)
	m.snapshot.Store(&Snapshot[T]{})
}

// Pattern returns the current pattern.
func (m *Matcher[T]) Pattern() string {
	return *m.pattern.Load()
}

// Tick advances ranking for the current haystack and pattern using the
// configured worker pool, then publishes a new Snapshot.
func (m *Matcher[T]) Tick() {
	gen := m.generation.Load()
	pattern := *m.pattern.Load()

	m.mu.RLock()
	total := len(m.haystack)
	items := make([]Item[T], total)
	copy(items, m.haystack)
	m.mu.RUnlock()

	if total == 0 {
		m.snapshot.Store(&Snapshot[T]{Running: m.producing.Load()})
		return
	}

	pf := newPatternPrefilter(pattern, m.cfg.IgnoreCase)
	threads := m.cfg.threads()
	if threads > total {
		threads = total
	}
	chunk := (total + threads - 1) / threads

	resultsCh := make(chan []Result[T], threads)
	var wg sync.WaitGroup
	for start := 0; start < total; start += chunk {
		end := start + chunk
		if end > total {
			end = total
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			local := make([]Result[T], 0, end-start)
			for i := start; i < end; i++ {
				if m.generation.Load() != gen {
					resultsCh <- nil
					return
				}
				it := items[i]
				var col string
				if len(it.Columns) > 0 {
					col = it.Columns[0]
				}
				if pattern == "" {
					local = append(local, Result[T]{Item: it.Value, Index: it.Index})
					continue
				}
				if !pf.MayContain(col, m.cfg.IgnoreCase) {
					continue
				}
				sc, ranges, ok := score(col, pattern, m.cfg)
				if !ok {
					continue
				}
				local = append(local, Result[T]{Item: it.Value, Index: it.Index, Score: sc, DisplayMatches: ranges})
			}
			resultsCh <- local
		}(start, end)
	}
	wg.Wait()
	close(resultsCh)

	if m.generation.Load() != gen {
		// Pattern or reset superseded this tick; drop results, the next
		// Tick will compute fresh ones for the live pattern.
		return
	}

	var all []Result[T]
	for r := range resultsCh {
		all = append(all, r...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Score != all[j].Score {
			return all[i].Score > all[j].Score
		}
		return all[i].Index < all[j].Index
	})

	m.snapshot.Store(&Snapshot[T]{
		Matched: len(all),
		Total:   total,
		Running: m.producing.Load(),
		Rows:    all,
	})
}

// Results returns up to num ranked items starting at offset, from the most
// recent Snapshot.
func (m *Matcher[T]) Results(num, offset int) []Result[T] {
	snap := m.snapshot.Load()
	if offset < 0 || offset >= len(snap.Rows) {
		return nil
	}
	end := offset + num
	if end > len(snap.Rows) {
		end = len(snap.Rows)
	}
	out := make([]Result[T], end-offset)
	copy(out, snap.Rows[offset:end])
	return out
}

// GetResult returns the single ranked item at absolute index.
func (m *Matcher[T]) GetResult(index int) (Result[T], bool) {
	snap := m.snapshot.Load()
	if index < 0 || index >= len(snap.Rows) {
		return Result[T]{}, false
	}
	return snap.Rows[index], true
}

// Snapshot returns the most recent published snapshot.
func (m *Matcher[T]) Snapshot() Snapshot[T] {
	return *m.snapshot.Load()
}

// Shutdown stops the ingest goroutine. Safe to call more than once.
func (m *Matcher[T]) Shutdown() {
	m.closeOnce.Do(func() {
		close(m.closeCh)
	})
}

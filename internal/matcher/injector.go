package matcher

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// pendingItem is what actually travels through the lock-free queue: the raw
// item plus its pre-computed match columns, so the single ingest goroutine
// never has to re-run the caller's column function.
type pendingItem[T any] struct {
	value   T
	columns []string
}

// Injector is the producer-side handle used to push items into a Matcher's
// haystack. It is safe to use from any number of goroutines concurrently —
// backed by code.hybscloud.com/lfq's lock-free MPSC queue, grounded on
// _examples/hayabusa-cloud-lfq — while the Matcher itself drains it from a
// single internal goroutine, matching spec §3's "matcher is never mutated
// from more than one thread" invariant.
type Injector[T any] struct {
	queue *lfq.MPSC[pendingItem[T]]
}

// Push enqueues item, computing its match columns via f. f receives a slice
// of length numColumns (matcher-defined, currently always 1) and should fill
// it in based on item.
func (inj Injector[T]) Push(item T, f func(item T, cols []string)) {
	cols := make([]string, 1)
	f(item, cols)

	p := pendingItem[T]{value: item, columns: cols}
	backoff := iox.Backoff{}
	for {
		err := inj.queue.Enqueue(&p)
		if err == nil {
			return
		}
		if lfq.IsWouldBlock(err) {
			backoff.Wait()
			continue
		}
		// The queue only returns ErrWouldBlock; any other error means the
		// queue was misused (e.g. pushed to after Drain). Drop silently
		// rather than block the producer forever.
		return
	}
}

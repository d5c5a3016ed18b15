package channels

import (
	"context"
	"sync"

	"github.com/televisionhq/television/internal/crashlog"
	"github.com/televisionhq/television/internal/entry"
	"github.com/televisionhq/television/internal/matcher"
	"github.com/televisionhq/television/internal/producer"
)

// StdinChannel streams lines read from os.Stdin into its matcher, one entry
// per non-blank line. Sourcing is delegated to internal/producer (spec §4.1).
type StdinChannel struct {
	matcher *matcher.Matcher[string]
	cancel  context.CancelFunc

	mu      sync.Mutex
	lastErr error
}

// NewStdin starts reading os.Stdin in the background and returns a channel
// backed by the lines it produces.
func NewStdin() *StdinChannel {
	m := matcher.New[string](matcher.DefaultConfig())
	m.SetProducing(true)

	c := &StdinChannel{matcher: m}

	injector := m.Injector()
	sink := producer.SinkFunc(func(line string) {
		injector.Push(line, func(item string, cols []string) {
			cols[0] = item
		})
	})

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	p := producer.New(producer.Spec{Kind: producer.SourceStdin}, sink)
	crashlog.SafeGo("", "channel-run:stdin", func() {
		defer m.SetProducing(false)
		_, err := p.Run(ctx)
		if err != nil {
			c.mu.Lock()
			c.lastErr = err
			c.mu.Unlock()
		}
	})

	return c
}

func (c *StdinChannel) Find(pattern string) { c.matcher.Find(pattern) }

func (c *StdinChannel) Results(num, offset int) []entry.Entry {
	c.matcher.Tick()
	rows := c.matcher.Results(num, offset)
	out := make([]entry.Entry, len(rows))
	for i, r := range rows {
		out[i] = entry.New(r.Item).WithDisplayMatches(r.DisplayMatches)
	}
	return out
}

func (c *StdinChannel) GetResult(index int) (entry.Entry, bool) {
	r, ok := c.matcher.GetResult(index)
	if !ok {
		return entry.Entry{}, false
	}
	return entry.New(r.Item).WithDisplayMatches(r.DisplayMatches), true
}

func (c *StdinChannel) ResultCount() int { return c.matcher.Snapshot().Matched }
func (c *StdinChannel) TotalCount() int  { return c.matcher.Snapshot().Total }
func (c *StdinChannel) Running() bool    { return c.matcher.Snapshot().Running }

func (c *StdinChannel) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *StdinChannel) Shutdown() {
	c.cancel()
	c.matcher.Shutdown()
}

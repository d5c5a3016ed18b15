package channels

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/televisionhq/television/internal/crashlog"
	"github.com/televisionhq/television/internal/entry"
	"github.com/televisionhq/television/internal/matcher"
	"github.com/televisionhq/television/internal/producer"
)

// CommandChannel runs a shell command and streams its stdout lines in as
// entries, matching television-channels' custom.rs channel. It backs both
// cable channels and the ad-hoc "pipe a command in" mode. Sourcing is
// delegated to internal/producer so spawn failures and non-zero exits are
// captured instead of silently discarded.
type CommandChannel struct {
	matcher        *matcher.Matcher[string]
	previewCommand string
	name           string

	cancel  context.CancelFunc
	watcher *producer.Watcher

	mu      sync.Mutex
	lastErr error
}

// NewCommand starts entriesCommand in the background and returns a channel
// over its output lines. previewCommand is the template later used to
// render a preview for a selected entry (spec §4.3 / §6 cable channels).
// When watch > 0 the command is re-run on that interval, draining the
// matcher between generations (spec §4.1 / §6 "watch").
func NewCommand(name, entriesCommand, previewCommand string, watch time.Duration) *CommandChannel {
	m := matcher.New[string](matcher.DefaultConfig().WithThreads(2))

	c := &CommandChannel{matcher: m, previewCommand: previewCommand, name: name}

	injector := m.Injector()
	sink := producer.SinkFunc(func(line string) {
		injector.Push(line, func(item string, cols []string) {
			cols[0] = item
		})
	})

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	if watch > 0 {
		spec := func() producer.Spec {
			return producer.Spec{Kind: producer.SourceCommand, Command: entriesCommand}
		}
		w := producer.NewWatcher(watch, spec, sink, m)
		c.watcher = w
		crashlog.SafeGo("", "channel-watch:"+name, func() {
			w.Run(ctx)
		})
		return c
	}

	m.SetProducing(true)
	p := producer.New(producer.Spec{Kind: producer.SourceCommand, Command: entriesCommand}, sink)
	crashlog.SafeGo("", "channel-run:"+name, func() {
		defer m.SetProducing(false)
		exited, err := p.Run(ctx)
		c.recordErr(err, exited)
	})

	return c
}

func (c *CommandChannel) recordErr(err error, exited *producer.ExitedMsg) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case err != nil:
		c.lastErr = err
	case exited != nil && exited.Code > 0:
		c.lastErr = fmt.Errorf("%q exited with status %d", c.name, exited.Code)
	}
}

// PreviewCommand returns the template this channel's entries should be
// rendered with.
func (c *CommandChannel) PreviewCommand() string { return c.previewCommand }

// Name returns the channel's display name.
func (c *CommandChannel) Name() string { return c.name }

func (c *CommandChannel) Find(pattern string) { c.matcher.Find(pattern) }

func (c *CommandChannel) Results(num, offset int) []entry.Entry {
	c.matcher.Tick()
	rows := c.matcher.Results(num, offset)
	out := make([]entry.Entry, len(rows))
	for i, r := range rows {
		out[i] = entry.New(r.Item).WithDisplayMatches(r.DisplayMatches)
	}
	return out
}

func (c *CommandChannel) GetResult(index int) (entry.Entry, bool) {
	r, ok := c.matcher.GetResult(index)
	if !ok {
		return entry.Entry{}, false
	}
	return entry.New(r.Item).WithDisplayMatches(r.DisplayMatches), true
}

func (c *CommandChannel) ResultCount() int { return c.matcher.Snapshot().Matched }
func (c *CommandChannel) TotalCount() int  { return c.matcher.Snapshot().Total }
func (c *CommandChannel) Running() bool    { return c.matcher.Snapshot().Running }

func (c *CommandChannel) Err() error {
	c.mu.Lock()
	err := c.lastErr
	c.mu.Unlock()
	if err != nil {
		return err
	}
	if c.watcher != nil {
		return c.watcher.LastError()
	}
	return nil
}

func (c *CommandChannel) Shutdown() {
	c.cancel()
	c.matcher.Shutdown()
}

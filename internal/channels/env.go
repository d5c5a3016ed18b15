package channels

import (
	"os"
	"strings"

	"github.com/televisionhq/television/internal/entry"
	"github.com/televisionhq/television/internal/matcher"
)

const envFileIcon = "config"

type envVar struct {
	name  string
	value string
}

// EnvChannel surfaces the current process's environment variables as
// entries, display=name, value=value, matching television-channels' env.rs.
type EnvChannel struct {
	matcher *matcher.Matcher[envVar]
	icon    string
}

// NewEnv snapshots os.Environ() once and returns a channel over it. Unlike
// the other channels there is nothing to stream: the list is fixed at
// startup.
func NewEnv() *EnvChannel {
	m := matcher.New[envVar](matcher.DefaultConfig().WithThreads(1))
	injector := m.Injector()

	for _, kv := range os.Environ() {
		name, value, _ := strings.Cut(kv, "=")
		injector.Push(envVar{name: name, value: value}, func(item envVar, cols []string) {
			cols[0] = item.name + item.value
		})
	}

	return &EnvChannel{matcher: m, icon: envFileIcon}
}

// splitMatchRanges partitions ranges computed against the concatenated
// "name+value" column into the portion that falls within the name and the
// portion that falls within the value, shifting the latter back to be
// relative to the value string.
func splitMatchRanges(ranges []entry.Range, nameLen uint32) (nameRanges, valueRanges []entry.Range) {
	for _, r := range ranges {
		switch {
		case r.End <= nameLen:
			nameRanges = append(nameRanges, r)
		case r.Start >= nameLen:
			valueRanges = append(valueRanges, entry.Range{Start: r.Start - nameLen, End: r.End - nameLen})
		default:
			nameRanges = append(nameRanges, entry.Range{Start: r.Start, End: nameLen})
			valueRanges = append(valueRanges, entry.Range{Start: 0, End: r.End - nameLen})
		}
	}
	return nameRanges, valueRanges
}

func (c *EnvChannel) toEntry(v envVar, ranges []entry.Range) entry.Entry {
	nameRanges, valueRanges := splitMatchRanges(ranges, uint32(len(v.name)))
	return entry.New(v.name).
		WithValue(v.value).
		WithIcon(c.icon).
		WithDisplayMatches(nameRanges).
		WithValueMatches(valueRanges)
}

func (c *EnvChannel) Find(pattern string) { c.matcher.Find(pattern) }

func (c *EnvChannel) Results(num, offset int) []entry.Entry {
	c.matcher.Tick()
	rows := c.matcher.Results(num, offset)
	out := make([]entry.Entry, len(rows))
	for i, r := range rows {
		out[i] = c.toEntry(r.Item, r.DisplayMatches)
	}
	return out
}

func (c *EnvChannel) GetResult(index int) (entry.Entry, bool) {
	r, ok := c.matcher.GetResult(index)
	if !ok {
		return entry.Entry{}, false
	}
	return c.toEntry(r.Item, r.DisplayMatches), true
}

func (c *EnvChannel) ResultCount() int { return c.matcher.Snapshot().Matched }
func (c *EnvChannel) TotalCount() int  { return c.matcher.Snapshot().Total }
func (c *EnvChannel) Running() bool    { return c.matcher.Snapshot().Running }

// Err always returns nil: the environment snapshot is taken synchronously at
// construction, so there is no background producer that could fail.
func (c *EnvChannel) Err() error { return nil }

func (c *EnvChannel) Shutdown() { c.matcher.Shutdown() }

package controller

import (
	"testing"
	"time"

	"github.com/televisionhq/television/internal/channels"
	"github.com/televisionhq/television/internal/entry"
	"github.com/televisionhq/television/internal/preview"
)

// fakeChannel is a deterministic, in-memory channels.Channel stub used to
// exercise the controller without spawning real subprocesses.
type fakeChannel struct {
	entries []string
	pattern string
}

func newFakeChannel(entries ...string) *fakeChannel {
	return &fakeChannel{entries: entries}
}

func (c *fakeChannel) Find(pattern string) { c.pattern = pattern }

func (c *fakeChannel) filtered() []string {
	if c.pattern == "" {
		return c.entries
	}
	var out []string
	for _, e := range c.entries {
		if containsSubsequence(e, c.pattern) {
			out = append(out, e)
		}
	}
	return out
}

func containsSubsequence(s, pattern string) bool {
	i := 0
	for _, r := range s {
		if i < len(pattern) && rune(pattern[i]) == r {
			i++
		}
	}
	return i == len(pattern)
}

func (c *fakeChannel) Results(num, offset int) []entry.Entry {
	f := c.filtered()
	var out []entry.Entry
	for i := offset; i < len(f) && (num == 0 || i < offset+num); i++ {
		out = append(out, entry.New(f[i]))
	}
	return out
}

func (c *fakeChannel) GetResult(index int) (entry.Entry, bool) {
	f := c.filtered()
	if index < 0 || index >= len(f) {
		return entry.Entry{}, false
	}
	return entry.New(f[index]), true
}

func (c *fakeChannel) ResultCount() int { return len(c.filtered()) }
func (c *fakeChannel) TotalCount() int  { return len(c.entries) }
func (c *fakeChannel) Running() bool    { return false }
func (c *fakeChannel) Err() error       { return nil }
func (c *fakeChannel) Shutdown()        {}

var _ channels.Channel = (*fakeChannel)(nil)

func newTestModel(entries ...string) (*Model, *fakeChannel) {
	fc := newFakeChannel(entries...)
	sources := []ChannelSource{{
		Name: "test",
		New:  func() channels.Channel { return fc },
	}}
	m := New(sources, preview.New(), 16*time.Millisecond, nil, Settings{})
	return m, fc
}

func TestToggleSelectionTracksEntry(t *testing.T) {
	m, _ := newTestModel("alpha", "beta", "gamma")
	m.tick()

	m.picker.Select(0)
	m.toggleSelection()

	if len(m.selected) != 1 {
		t.Fatalf("expected 1 selected entry, got %d", len(m.selected))
	}

	m.toggleSelection()
	if len(m.selected) != 0 {
		t.Fatalf("expected selection to toggle off, got %d", len(m.selected))
	}
}

func TestConfirmSelectionUsesCursorWhenNoMultiSelect(t *testing.T) {
	m, _ := newTestModel("alpha", "beta", "gamma")
	m.tick()
	m.picker.Select(1)

	m.confirmSelection(true)

	if !m.quitting {
		t.Fatalf("expected confirmSelection(exit=true) to set quitting")
	}
	if len(m.finalSelection) != 1 || m.finalSelection[0].Display != "beta" {
		t.Fatalf("finalSelection = %+v, want [beta]", m.finalSelection)
	}
}

func TestConfirmSelectionUsesMultiSelectSet(t *testing.T) {
	m, _ := newTestModel("alpha", "beta", "gamma")
	m.tick()

	m.picker.Select(0)
	m.toggleSelection()
	m.picker.Select(2)
	m.toggleSelection()

	m.confirmSelection(false)

	if m.quitting {
		t.Fatalf("confirmSelection(exit=false) should not quit")
	}
	if len(m.finalSelection) != 2 {
		t.Fatalf("finalSelection = %+v, want 2 entries", m.finalSelection)
	}
}

func TestToggleRemoteControlSwitchesMode(t *testing.T) {
	m, _ := newTestModel("alpha")
	if m.mode != ModeChannel {
		t.Fatalf("expected initial mode Channel")
	}

	m.toggleRemoteControl()
	if m.mode != ModeRemoteControl {
		t.Fatalf("expected mode RemoteControl after toggle")
	}

	m.toggleRemoteControl()
	if m.mode != ModeChannel {
		t.Fatalf("expected mode Channel after second toggle")
	}
}

func TestInsertRunesUpdatesPattern(t *testing.T) {
	m, fc := newTestModel("alpha", "beta")

	m.insertRunes([]rune("al"))
	m.currentMatcherFind(string(m.input))

	if fc.pattern != "al" {
		t.Fatalf("channel pattern = %q, want %q", fc.pattern, "al")
	}
	if string(m.input) != "al" {
		t.Fatalf("input = %q, want %q", string(m.input), "al")
	}
}

func TestQuitSetsQuittingFlag(t *testing.T) {
	m, _ := newTestModel("alpha")
	m.quit(nil)
	if !m.quitting {
		t.Fatalf("expected quit() to set quitting")
	}
}

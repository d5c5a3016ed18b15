package render

import (
	"strings"
	"testing"

	"github.com/televisionhq/television/internal/entry"
)

func TestHighlightMatchesPreservesText(t *testing.T) {
	got := highlightMatches("hello", []entry.Range{{Start: 1, End: 3}})
	// Styling may add ANSI codes around "el"; stripping isn't necessary
	// here, we just check the unhighlighted runes on either side survive.
	if !strings.Contains(got, "h") || !strings.Contains(got, "o") {
		t.Fatalf("expected surrounding characters preserved, got %q", got)
	}
}

func TestHighlightMatchesNoRangesIsIdentity(t *testing.T) {
	got := highlightMatches("hello", nil)
	if got != "hello" {
		t.Fatalf("got %q, want unchanged %q", got, "hello")
	}
}

func TestViewDoesNotPanicOnEmptyContext(t *testing.T) {
	ctx := Context{Width: 80, Height: 24}
	out := View(ctx)
	if out == "" {
		t.Fatalf("expected non-empty view output")
	}
}

func TestViewZeroSizeReturnsEmpty(t *testing.T) {
	if got := View(Context{}); got != "" {
		t.Fatalf("expected empty output for zero-size context, got %q", got)
	}
}

func TestViewRendersRows(t *testing.T) {
	ctx := Context{
		Width:  80,
		Height: 24,
		Rows: []Row{
			{Display: "alpha"},
			{Display: "beta", Selected: true},
		},
		Selected: 0,
	}
	out := View(ctx)
	if !strings.Contains(out, "alpha") || !strings.Contains(out, "beta") {
		t.Fatalf("expected both rows rendered, got %q", out)
	}
}

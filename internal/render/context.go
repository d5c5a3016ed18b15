// Package render builds the terminal presentation (component C6) from an
// immutable per-frame Context value, grounded on the layout conventions in
// _examples/eviltik-docker-tui/src/render.go.
package render

import "github.com/televisionhq/television/internal/entry"

// Mode mirrors controller.Mode without importing it, keeping render
// dependency-free of the controller package.
type Mode int

const (
	ModeChannel Mode = iota
	ModeRemoteControl
)

// Row is one visible result line.
type Row struct {
	Display  string
	Value    string
	Matches  []entry.Range
	Selected bool
}

// PreviewView is the subset of a preview artifact needed to draw it.
type PreviewView struct {
	Title  string
	Status int
	Lines  []string
	Scroll int
}

// Context is the value type the controller builds once per render tick and
// hands to View. It must be cheap to construct: O(visible rows), never
// O(haystack) (spec §4.6).
type Context struct {
	Input  string
	Cursor int

	Width, Height int
	// Scale shrinks the rendered UI to this percentage of the terminal size,
	// centering it within the remaining space (spec §6 ui.ui_scale).
	Scale int

	Mode        Mode
	ChannelName string
	HelpVisible bool

	// InputBarTop places the input bar above the results pane instead of
	// below it (spec §6 ui.input_bar_position).
	InputBarTop bool
	// ShowPreview, ShowStatusBar gate optional panels (spec §6 ui.features).
	ShowPreview   bool
	ShowStatusBar bool
	// PreviewPosition is one of "right", "left", "top", "bottom"
	// (spec §6 ui.preview_panel.position); PreviewSize is its percentage
	// share of the screen (ui.preview_panel.size).
	PreviewPosition string
	PreviewSize     int

	Total, Matched int
	Running        bool
	// StatusMessage, when non-empty, is a non-fatal producer error appended
	// to the status bar (spec §7: ProducerSpawn, ProducerExited).
	StatusMessage string

	ViewOffset int
	Rows       []Row
	Selected   int // index into Rows, -1 if none

	Preview PreviewView
}

// Package entry defines the matched-candidate value type shared by the
// matcher, the preview engine, and the controller.
package entry

import "fmt"

// Range is an inclusive-exclusive range of rune (character) indices used to
// highlight matched characters inside a display or value string.
type Range struct {
	Start uint32
	End   uint32
}

// Entry is one ranked candidate as surfaced to the UI. Two entries are equal
// and hash identically iff their Display strings are equal.
type Entry struct {
	Display string
	Value   *string
	Icon    *string
	Line    *int
	DisplayMatches []Range
	ValueMatches   []Range
}

// New builds a bare entry for the given display string.
func New(display string) Entry {
	return Entry{Display: display}
}

// WithValue attaches a secondary value (e.g. an env var value or a docker tag).
func (e Entry) WithValue(v string) Entry {
	e.Value = &v
	return e
}

// WithIcon attaches an icon hint.
func (e Entry) WithIcon(icon string) Entry {
	e.Icon = &icon
	return e
}

// WithLine attaches a line-number hint used for preview scroll positioning.
func (e Entry) WithLine(n int) Entry {
	e.Line = &n
	return e
}

// WithDisplayMatches attaches match-index ranges for the display string.
func (e Entry) WithDisplayMatches(r []Range) Entry {
	e.DisplayMatches = r
	return e
}

// WithValueMatches attaches match-index ranges for the value string.
func (e Entry) WithValueMatches(r []Range) Entry {
	e.ValueMatches = r
	return e
}

// Key returns the identity used for equality, hashing, and cache lookups.
func (e Entry) Key() string {
	return e.Display
}

// StdoutRepr renders the line(s) written to standard output when this entry
// is the final selection.
func (e Entry) StdoutRepr() string {
	repr := e.Display
	if e.Line != nil {
		repr = fmt.Sprintf("%s:%d", repr, *e.Line)
	}
	return repr
}

// Package picker tracks list selection and view-scrolling state for the
// results pane, independent of what is actually selected (component C4).
package picker

// Picker holds the selection cursor, the cursor's position relative to the
// visible window, and the window's scroll offset. It knows nothing about
// the items themselves, only their count.
type Picker struct {
	selected         int
	hasSelected      bool
	relativeSelected int
	viewOffset       int
	inverted         bool
	input            string
}

// New returns a Picker with no selection and an empty input.
func New() *Picker {
	return &Picker{}
}

// Inverted returns a copy of p with its scroll direction flipped, matching
// layouts that render results top-down instead of bottom-up.
func (p *Picker) Inverted() *Picker {
	cp := *p
	cp.inverted = !cp.inverted
	return &cp
}

// ResetSelection moves the cursor back to the first row and scrolls the
// view back to the top.
func (p *Picker) ResetSelection() {
	p.selected = 0
	p.hasSelected = true
	p.relativeSelected = 0
	p.viewOffset = 0
}

// ResetInput clears the picker's own copy of the filter input.
func (p *Picker) ResetInput() {
	p.input = ""
}

// Input returns the current filter input text.
func (p *Picker) Input() string {
	return p.input
}

// SetInput replaces the filter input text.
func (p *Picker) SetInput(s string) {
	p.input = s
}

// Selected returns the absolute selected index, if any.
func (p *Picker) Selected() (int, bool) {
	return p.selected, p.hasSelected
}

// Select sets the absolute selected index directly.
func (p *Picker) Select(index int) {
	p.selected = index
	p.hasSelected = true
}

// ViewOffset returns the index of the first row currently visible.
func (p *Picker) ViewOffset() int {
	return p.viewOffset
}

// SelectNext moves the cursor to the next entry. On a picker that is not
// inverted this lowers the selected index by one, and from index 0 it wraps
// to the last entry (totalItems-1) and scrolls the view to the end. height
// is the number of visible rows in the results pane. Direction is reversed
// when the picker is inverted.
func (p *Picker) SelectNext(totalItems, height int) {
	if p.inverted {
		p.selectPrev(totalItems, height)
	} else {
		p.selectNext(totalItems, height)
	}
}

// SelectPrev moves the cursor to the previous entry. On a picker that is
// not inverted this raises the selected index by one, and from the last
// entry it wraps to index 0 and scrolls the view to the top. Direction is
// reversed when the picker is inverted.
func (p *Picker) SelectPrev(totalItems, height int) {
	if p.inverted {
		p.selectNext(totalItems, height)
	} else {
		p.selectPrev(totalItems, height)
	}
}

func (p *Picker) selectNext(totalItems, height int) {
	selected := p.selected
	relative := p.relativeSelected
	if selected > 0 {
		p.Select(selected - 1)
		p.relativeSelected = saturatingSub(relative, 1)
		if relative == 0 {
			p.viewOffset = saturatingSub(p.viewOffset, 1)
		}
		return
	}
	p.viewOffset = saturatingSub(totalItems, height-2)
	p.Select(saturatingSub(totalItems, 1))
	p.relativeSelected = height - 3
}

func (p *Picker) selectPrev(totalItems, height int) {
	if totalItems == 0 {
		return
	}
	newIndex := (p.selected + 1) % totalItems
	p.Select(newIndex)
	if newIndex == 0 {
		p.viewOffset = 0
		p.relativeSelected = 0
		return
	}
	if p.relativeSelected == height-3 {
		p.viewOffset++
		p.relativeSelected = min(p.selected, height-3)
	} else {
		p.relativeSelected = min(p.relativeSelected+1, p.selected)
	}
}

func saturatingSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}

package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/televisionhq/television/internal/config"
)

func (m *Model) applyAction(action Action, key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action {
	case ActionQuit:
		m.quit(nil)
		return m, tea.Quit

	case ActionAddInputChar:
		m.insertRunes(key.Runes)
		m.currentMatcherFind(string(m.input))

	case ActionDeletePrevChar:
		if m.cursor > 0 {
			m.input = append(m.input[:m.cursor-1], m.input[m.cursor:]...)
			m.cursor--
			m.currentMatcherFind(string(m.input))
		}

	case ActionDeleteNextChar:
		if m.cursor < len(m.input) {
			m.input = append(m.input[:m.cursor], m.input[m.cursor+1:]...)
			m.currentMatcherFind(string(m.input))
		}

	case ActionGoToPrevChar:
		if m.cursor > 0 {
			m.cursor--
		}

	case ActionGoToNextChar:
		if m.cursor < len(m.input) {
			m.cursor++
		}

	case ActionGoToInputStart:
		m.cursor = 0

	case ActionGoToInputEnd:
		m.cursor = len(m.input)

	case ActionSelectNextEntry:
		m.picker.SelectNext(m.resultCount(), m.viewportHeight())
		m.requestPreview()

	case ActionSelectPrevEntry:
		m.picker.SelectPrev(m.resultCount(), m.viewportHeight())
		m.requestPreview()

	case ActionToggleSelection:
		m.toggleSelection()

	case ActionSelectEntry:
		m.confirmSelection(false)

	case ActionSelectAndExit:
		m.confirmSelection(true)
		if m.quitting {
			return m, tea.Quit
		}

	case ActionScrollPreviewUp:
		m.scrollPreview(-1)

	case ActionScrollPreviewDown:
		m.scrollPreview(1)

	case ActionScrollPreviewHalfPageUp:
		m.scrollPreview(-m.viewportHeight() / 2)

	case ActionScrollPreviewHalfPageDown:
		m.scrollPreview(m.viewportHeight() / 2)

	case ActionToggleRemoteControl:
		if m.ui.Features&config.FeatureRemoteControl != 0 {
			m.toggleRemoteControl()
		}

	case ActionHelp:
		if m.ui.Features&config.FeatureHelpPanel != 0 {
			m.helpVisible = !m.helpVisible
		}
	}

	return m, nil
}

func (m *Model) insertRunes(runes []rune) {
	m.input = append(m.input[:m.cursor], append(append([]rune{}, runes...), m.input[m.cursor:]...)...)
	m.cursor += len(runes)
}

func (m *Model) scrollPreview(delta int) {
	m.previewScroll += delta
	if m.previewScroll < 0 {
		m.previewScroll = 0
	}
}

func (m *Model) toggleSelection() {
	if m.mode != ModeChannel || m.active == nil {
		return
	}
	idx, ok := m.picker.Selected()
	if !ok {
		return
	}
	ent, ok := m.active.GetResult(idx)
	if !ok {
		return
	}
	key := ent.Key()
	if _, already := m.selected[key]; already {
		delete(m.selected, key)
	} else {
		m.selected[key] = ent
	}
}

func (m *Model) confirmSelection(exit bool) {
	if m.mode == ModeRemoteControl {
		m.confirmRemoteControlSelection()
		return
	}
	if m.active == nil {
		return
	}

	if len(m.selected) > 0 {
		for _, ent := range m.selected {
			m.finalSelection = append(m.finalSelection, ent)
		}
	} else if idx, ok := m.picker.Selected(); ok {
		if ent, ok := m.active.GetResult(idx); ok {
			m.finalSelection = append(m.finalSelection, ent)
		}
	}

	if exit {
		m.quit(nil)
	}
}

func (m *Model) confirmRemoteControlSelection() {
	idx, ok := m.picker.Selected()
	if !ok {
		return
	}
	result, ok := m.rcMatcher.GetResult(idx)
	if !ok {
		return
	}
	for i, s := range m.sources {
		if s.Name == result.Item {
			m.activateSource(i)
			break
		}
	}
	m.mode = ModeChannel
}

func (m *Model) toggleRemoteControl() {
	if m.mode == ModeChannel {
		m.mode = ModeRemoteControl
		m.rcMatcher.Find("")
		m.picker.ResetSelection()
	} else {
		m.mode = ModeChannel
		m.picker.ResetSelection()
	}
}

func (m *Model) quit(err error) {
	m.quitting = true
	m.err = err
}

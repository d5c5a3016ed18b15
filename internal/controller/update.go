package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/televisionhq/television/internal/preview"
)

// Update is the controller's single mutation point (spec §4.5: "the
// controller... is the sole mutator").
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampSelection()
		return m, nil

	case tea.KeyMsg:
		action := m.keymap.Translate(msg)
		return m.applyAction(action, msg)

	case tickMsg:
		m.tick()
		if m.quitting {
			return m, tea.Quit
		}
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

func (m *Model) currentMatcherFind(pattern string) {
	if m.mode == ModeRemoteControl {
		m.rcMatcher.Find(pattern)
	} else if m.active != nil {
		m.active.Find(pattern)
	}
	m.picker.ResetSelection()
}

func (m *Model) tick() {
	if m.mode == ModeChannel && m.active != nil {
		_ = m.active.Results(0, 0) // advances the matcher's internal Tick
		m.clampSelection()
		m.requestPreview()
		m.checkChannelErr()
	} else {
		m.rcMatcher.Tick()
		m.clampSelection()
	}
	m.drainPreviewCompletions()
}

// checkChannelErr surfaces a producer spawn failure or non-zero exit as a
// non-fatal status-bar message and a log line, without interrupting the
// event loop (spec §7: ProducerSpawn, ProducerExited).
func (m *Model) checkChannelErr() {
	err := m.active.Err()
	if err == nil || err == m.reportedErr {
		return
	}
	m.reportedErr = err
	m.statusMessage = err.Error()
	if m.logger != nil {
		m.logger.Errorf("channel %q: %v", m.sources[m.sourceIndex].Name, err)
	}
}

func (m *Model) drainPreviewCompletions() {
	if m.previewEngine == nil {
		return
	}
	for {
		_, err := m.previewEngine.Completions().Dequeue()
		if err != nil {
			return
		}
		// A completion arrived; the next requestPreview/cache.Get call will
		// observe it. We don't need the payload here because the cache is
		// already the source of truth the renderer reads from.
	}
}

func (m *Model) requestPreview() {
	if m.previewEngine == nil || m.active == nil {
		return
	}
	idx, ok := m.picker.Selected()
	if !ok {
		m.currentArtifact = preview.Placeholder()
		return
	}
	ent, ok := m.active.GetResult(idx)
	if !ok {
		m.currentArtifact = preview.Placeholder()
		return
	}
	m.currentArtifact = m.previewEngine.Preview(ent, m.activePreviewCmd)
}

func (m *Model) clampSelection() {
	total := m.resultCount()
	if total == 0 {
		return
	}
	idx, ok := m.picker.Selected()
	if !ok || idx >= total {
		m.picker.Select(total - 1)
	}
}

func (m *Model) resultCount() int {
	if m.mode == ModeRemoteControl {
		return m.rcMatcher.Snapshot().Matched
	}
	if m.active == nil {
		return 0
	}
	return m.active.ResultCount()
}

func (m *Model) viewportHeight() int {
	h := m.height - 4 // input bar + status bar + borders
	if h < 3 {
		return 3
	}
	return h
}

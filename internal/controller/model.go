// Package controller implements the event loop (component C5): a
// bubbletea model that multiplexes keyboard input, preview completions, and
// a frame tick into mutations of picker and mode state, grounded on
// _examples/eviltik-docker-tui/src/model.go's Update/View dispatch shape.
package controller

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/televisionhq/television/internal/channels"
	"github.com/televisionhq/television/internal/config"
	"github.com/televisionhq/television/internal/entry"
	"github.com/televisionhq/television/internal/matcher"
	"github.com/televisionhq/television/internal/picker"
	"github.com/televisionhq/television/internal/preview"
)

// Mode is the Channel <-> RemoteControl state machine from spec §4.5.
type Mode int

const (
	ModeChannel Mode = iota
	ModeRemoteControl
)

// ChannelSource describes one selectable channel: how to construct it and
// how to preview its entries. Cable-defined channels and built-ins are both
// represented this way.
type ChannelSource struct {
	Name             string
	New              func() channels.Channel
	PreviewCommand   string
	PreviewDelimiter string
}

// Settings carries the configuration knobs the controller itself needs to
// consume, as opposed to the ones already resolved into ChannelSource
// (spec §6 [ui] / [keybindings]).
type Settings struct {
	UI          config.UI
	Keybindings map[string][]string
}

// withDefaults fills in any zero-value field left unset by a caller (such
// as existing tests that build a Settings{} without an explicit UI), so the
// defaulting lives in one place instead of being duplicated at every call
// site.
func (s Settings) withDefaults() Settings {
	if s.UI.Features == 0 {
		s.UI.Features = config.DefaultFeatures
	}
	if s.UI.PreviewPanel.Position == "" {
		s.UI.PreviewPanel.Position = config.PreviewRight
	}
	if s.UI.PreviewPanel.Size == 0 {
		s.UI.PreviewPanel.Size = 50
	}
	if s.UI.InputBarPosition == "" {
		s.UI.InputBarPosition = config.InputBarBottom
	}
	if s.UI.Scale == 0 {
		s.UI.Scale = 100
	}
	return s
}

// Model is the controller's bubbletea model.
type Model struct {
	keymap   Keymap
	tickRate time.Duration
	logger   *log.Logger
	ui       config.UI

	sources            []ChannelSource
	sourceIndex        int
	active             channels.Channel
	activePreviewCmd   string
	activePreviewDelim string

	mode      Mode
	rcMatcher *matcher.Matcher[string]

	input  []rune
	cursor int

	picker   *picker.Picker
	selected map[string]entry.Entry

	previewEngine   *preview.Engine
	currentArtifact *preview.Artifact
	previewScroll   int

	width, height int
	quitting      bool
	err           error

	finalSelection []entry.Entry
	helpVisible    bool

	// statusMessage is the most recent non-fatal producer failure surfaced
	// to the status bar (spec §7: ProducerSpawn/ProducerExited). reportedErr
	// dedupes repeated ticks observing the same error.
	statusMessage string
	reportedErr   error
}

// New builds a Model over sources (the first is activated immediately),
// with previewEngine driving all preview rendering. settings carries the
// [ui] and [keybindings] tables from the loaded config (spec §6); the zero
// value behaves like television's built-in defaults.
func New(sources []ChannelSource, previewEngine *preview.Engine, tickRate time.Duration, logger *log.Logger, settings Settings) *Model {
	settings = settings.withDefaults()

	keymap := DefaultKeymap()
	if len(settings.Keybindings) > 0 {
		keymap = MergeUserBindings(keymap, settings.Keybindings)
	}

	pk := picker.New()
	if settings.UI.Orientation == config.OrientationPortrait {
		pk = pk.Inverted()
	}

	m := &Model{
		keymap:          keymap,
		tickRate:        tickRate,
		logger:          logger,
		ui:              settings.UI,
		sources:         sources,
		picker:          pk,
		selected:        make(map[string]entry.Entry),
		previewEngine:   previewEngine,
		currentArtifact: preview.Placeholder(),
	}
	if len(sources) > 0 {
		m.activateSource(0)
	}
	m.rcMatcher = matcher.New[string](matcher.DefaultConfig().WithThreads(1))
	for _, s := range m.sources {
		name := s.Name
		m.rcMatcher.Injector().Push(name, func(item string, cols []string) {
			cols[0] = item
		})
	}
	return m
}

func (m *Model) activateSource(index int) {
	if m.active != nil {
		m.active.Shutdown()
	}
	src := m.sources[index]
	m.sourceIndex = index
	m.active = src.New()
	m.activePreviewCmd = src.PreviewCommand
	m.activePreviewDelim = src.PreviewDelimiter
	m.picker.ResetSelection()
	m.picker.ResetInput()
	m.input = nil
	m.cursor = 0
	m.statusMessage = ""
	m.reportedErr = nil
	m.active.Find("")
}

// Init starts the frame tick.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

func tickCmd(rate time.Duration) tea.Cmd {
	return tea.Tick(rate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// FinalSelection returns the entries selected when the model quit, if any.
func (m *Model) FinalSelection() []entry.Entry {
	return m.finalSelection
}

// Err returns any error state accumulated during the run.
func (m *Model) Err() error {
	return m.err
}

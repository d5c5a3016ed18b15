// Package config loads the TOML configuration file defining tick rate,
// watch interval, UI layout, preview theme, keybindings, and cable channel
// prototypes (spec §6).
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrConfigInvalid is returned when the configuration file exists but fails
// to parse; startup treats this as fatal (exit 1, spec §7).
var ErrConfigInvalid = errors.New("config: invalid configuration file")

// InputBarPosition is where the search input is drawn relative to results.
type InputBarPosition string

const (
	InputBarTop    InputBarPosition = "top"
	InputBarBottom InputBarPosition = "bottom"
)

// Orientation controls whether results grow downward or upward.
type Orientation string

const (
	OrientationLandscape Orientation = "landscape"
	OrientationPortrait  Orientation = "portrait"
)

// PreviewPanelPosition is where the preview pane is drawn relative to results.
type PreviewPanelPosition string

const (
	PreviewRight  PreviewPanelPosition = "right"
	PreviewLeft   PreviewPanelPosition = "left"
	PreviewTop    PreviewPanelPosition = "top"
	PreviewBottom PreviewPanelPosition = "bottom"
)

// UIFeature is one independently toggleable panel.
type UIFeature int

const (
	FeaturePreviewPanel UIFeature = 1 << iota
	FeatureHelpPanel
	FeatureStatusBar
	FeatureRemoteControl
)

// DefaultFeatures mirrors television's default: everything on.
const DefaultFeatures = FeaturePreviewPanel | FeatureHelpPanel | FeatureStatusBar | FeatureRemoteControl

// PreviewPanel configures the preview pane's size and placement.
type PreviewPanel struct {
	Size     int                  `toml:"size"`
	Position PreviewPanelPosition `toml:"position"`
}

// UI groups the layout options under the `[ui]` table.
type UI struct {
	Scale            int              `toml:"ui_scale"`
	InputBarPosition InputBarPosition `toml:"input_bar_position"`
	Orientation      Orientation      `toml:"orientation"`
	Theme            string           `toml:"theme"`
	Features         UIFeature        `toml:"features"`
	PreviewPanel     PreviewPanel     `toml:"preview_panel"`
}

// Previewers groups per-source preview rendering options.
type Previewers struct {
	File FilePreviewer `toml:"file"`
}

// FilePreviewer configures syntax highlighting for file previews.
type FilePreviewer struct {
	Theme string `toml:"theme"`
}

// CableChannelRow is one [[cable_channel]] TOML entry.
type CableChannelRow struct {
	Name             string `toml:"name"`
	SourceCommand    string `toml:"source_command"`
	PreviewCommand   string `toml:"preview_command"`
	PreviewDelimiter string `toml:"preview_delimiter"`
}

// Config is the full set of recognised configuration options (spec §6).
type Config struct {
	TickRate      int                 `toml:"tick_rate"`
	Watch         int                 `toml:"watch"`
	UI            UI                  `toml:"ui"`
	Previewers    Previewers          `toml:"previewers"`
	Keybindings   map[string][]string `toml:"keybindings"`
	CableChannels []CableChannelRow   `toml:"cable_channel"`
}

// Default returns the built-in defaults, applied before any file is merged
// in.
func Default() Config {
	return Config{
		TickRate: 60,
		Watch:    0,
		UI: UI{
			Scale:            100,
			InputBarPosition: InputBarBottom,
			Orientation:      OrientationLandscape,
			Features:         DefaultFeatures,
			PreviewPanel: PreviewPanel{
				Size:     50,
				Position: PreviewRight,
			},
		},
	}
}

// Load reads and merges the TOML file at path over Default(). A missing
// file is not an error: Default() is returned unchanged (spec §7: "Missing
// file => defaults"). A present-but-malformed file is ErrConfigInvalid.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrConfigInvalid, path, err)
	}
	return cfg, nil
}

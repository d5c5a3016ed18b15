// Package cable discovers and parses cable-channel definition files: TOML
// files whose name ends in "channels.toml", found in the configuration
// directory, each listing one or more [[cable_channel]] entries.
package cable

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// defaultDelimiter is used for {N} field splitting when a prototype does not
// set preview_delimiter.
const defaultDelimiter = " "

// fileNameSuffix and fileFormat together define the discovery glob
// "*channels.toml", grounded on television's cable.rs
// is_cable_file_format (stem suffix "channels" + extension "toml").
const fileNameSuffix = "channels"
const fileFormat = ".toml"

const defaultChannelsFileName = "default_channels.toml"

//go:embed default-channels.toml
var defaultChannels string

// Prototype is one [[cable_channel]] entry: a named, shell-backed channel
// definition.
type Prototype struct {
	Name             string `toml:"name"`
	SourceCommand    string `toml:"source_command"`
	PreviewCommand   string `toml:"preview_command"`
	PreviewDelimiter string `toml:"preview_delimiter"`
}

// Delimiter returns the configured preview delimiter, or the default.
func (p Prototype) Delimiter() string {
	if p.PreviewDelimiter == "" {
		return defaultDelimiter
	}
	return p.PreviewDelimiter
}

// Channels is the full set of cable channel prototypes, keyed by name.
type Channels map[string]Prototype

type prototypeFile struct {
	Prototypes []Prototype `toml:"cable_channel"`
}

// Load discovers "*channels.toml" files under configDir, parses every
// [[cable_channel]] entry from each, and merges them by name (later files
// win on name collision). If no matching file is found, the embedded
// default set is written to configDir and loaded instead.
func Load(configDir string) (Channels, error) {
	entries, err := os.ReadDir(configDir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if isCableFile(e.Name()) {
			paths = append(paths, filepath.Join(configDir, e.Name()))
		}
	}

	if len(paths) == 0 {
		defaultPath := filepath.Join(configDir, defaultChannelsFileName)
		if err := os.WriteFile(defaultPath, []byte(defaultChannels), 0o644); err != nil {
			return nil, err
		}
		paths = append(paths, defaultPath)
	}

	channels := make(Channels)
	for _, p := range paths {
		var pf prototypeFile
		if _, err := toml.DecodeFile(p, &pf); err != nil {
			// A malformed cable file is skipped rather than aborting
			// startup; the rest of the channel set still loads.
			continue
		}
		for _, proto := range pf.Prototypes {
			channels[proto.Name] = proto
		}
	}

	return channels, nil
}

func isCableFile(name string) bool {
	if !strings.HasSuffix(name, fileFormat) {
		return false
	}
	stem := strings.TrimSuffix(name, fileFormat)
	return strings.HasSuffix(stem, fileNameSuffix)
}

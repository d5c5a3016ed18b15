package cable

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsCableFile(t *testing.T) {
	cases := map[string]bool{
		"my_channels.toml":      true,
		"cable_channels.toml":   true,
		"channels.toml":         true,
		"channels.yaml":         false,
		"random.toml":           false,
		"windows-channels.toml": true,
	}
	for name, want := range cases {
		if got := isCableFile(name); got != want {
			t.Errorf("isCableFile(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestLoadWritesDefaultsWhenNoneFound(t *testing.T) {
	dir := t.TempDir()

	channels, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(channels) == 0 {
		t.Fatalf("expected default channels to be loaded")
	}
	if _, ok := channels["Files"]; !ok {
		t.Fatalf("expected default channel %q, got %v", "Files", channels)
	}

	if _, err := os.Stat(filepath.Join(dir, defaultChannelsFileName)); err != nil {
		t.Fatalf("expected default channels file to be written: %v", err)
	}
}

func TestLoadParsesUserDefinedChannels(t *testing.T) {
	dir := t.TempDir()
	contents := `
[[cable_channel]]
name = "My Channel"
source_command = "echo hi"
preview_command = "echo {}"
preview_delimiter = ","
`
	if err := os.WriteFile(filepath.Join(dir, "my_channels.toml"), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	channels, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	proto, ok := channels["My Channel"]
	if !ok {
		t.Fatalf("expected %q channel, got %v", "My Channel", channels)
	}
	if proto.Delimiter() != "," {
		t.Fatalf("Delimiter() = %q, want %q", proto.Delimiter(), ",")
	}
	if proto.SourceCommand != "echo hi" {
		t.Fatalf("SourceCommand = %q", proto.SourceCommand)
	}
}

func TestPrototypeDefaultDelimiter(t *testing.T) {
	p := Prototype{Name: "x"}
	if got := p.Delimiter(); got != " " {
		t.Fatalf("Delimiter() = %q, want space", got)
	}
}

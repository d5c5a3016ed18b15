package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.TickRate != 60 {
		t.Fatalf("TickRate = %d, want 60", cfg.TickRate)
	}
	if cfg.UI.InputBarPosition != InputBarBottom {
		t.Fatalf("InputBarPosition = %q, want %q", cfg.UI.InputBarPosition, InputBarBottom)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := `
tick_rate = 30
watch = 5

[ui]
ui_scale = 80
orientation = "portrait"

[[cable_channel]]
name = "Files"
source_command = "find . -type f"
preview_command = "bat {}"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.TickRate != 30 {
		t.Fatalf("TickRate = %d, want 30", cfg.TickRate)
	}
	if cfg.Watch != 5 {
		t.Fatalf("Watch = %d, want 5", cfg.Watch)
	}
	if cfg.UI.Orientation != OrientationPortrait {
		t.Fatalf("Orientation = %q, want %q", cfg.UI.Orientation, OrientationPortrait)
	}
	// Fields not set in the file keep their default.
	if cfg.UI.PreviewPanel.Position != PreviewRight {
		t.Fatalf("PreviewPanel.Position = %q, want default %q", cfg.UI.PreviewPanel.Position, PreviewRight)
	}
	if len(cfg.CableChannels) != 1 || cfg.CableChannels[0].Name != "Files" {
		t.Fatalf("CableChannels = %+v", cfg.CableChannels)
	}
}

func TestLoadMalformedFileIsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("tick_rate = [this is not valid toml"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("Load() error = %v, want ErrConfigInvalid", err)
	}
}

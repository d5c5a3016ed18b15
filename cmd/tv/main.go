// Command tv is television's entrypoint: it loads configuration and cable
// channels, wires the built-in and cable-defined sources into the
// controller, runs the bubbletea program, and prints the final selection to
// standard output on exit (spec §6).
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/televisionhq/television/internal/cable"
	"github.com/televisionhq/television/internal/channels"
	"github.com/televisionhq/television/internal/config"
	"github.com/televisionhq/television/internal/controller"
	"github.com/televisionhq/television/internal/crashlog"
	"github.com/televisionhq/television/internal/logging"
	"github.com/televisionhq/television/internal/preview"
)

func main() {
	configDir := resolveConfigDir()
	crashLogPath := filepath.Join(configDir, "crash.log")
	crashlog.DefaultPath = crashLogPath
	defer crashlog.Guard(crashLogPath, "main")

	cfg, err := config.Load(filepath.Join(configDir, "config.toml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "tv: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := logging.New(filepath.Join(configDir, "television.log"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "tv: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	proto, err := cable.Load(configDir)
	if err != nil {
		logger.Errorf("loading cable channels: %v", err)
		proto = cable.Channels{}
	}

	sources := buildSources(proto, cfg)

	previewEngine := preview.New(
		preview.WithConcurrency(preview.DefaultConcurrency),
		preview.WithTimeout(preview.DefaultTimeout),
	)

	settings := controller.Settings{UI: cfg.UI, Keybindings: cfg.Keybindings}
	m := controller.New(sources, previewEngine, tickRate(cfg.TickRate), logger, settings)

	program := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tv: %v\n", err)
		os.Exit(1)
	}

	final := m.FinalSelection()
	for _, ent := range final {
		fmt.Println(ent.StdoutRepr())
	}
}

// tickRate converts the configured frames-per-second tick_rate into a
// bubbletea tick interval, falling back to a sane default when unset.
func tickRate(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// resolveConfigDir returns the directory television reads its config,
// cable channels, logs, and crash reports from, creating it if necessary.
func resolveConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	dir := filepath.Join(base, "television")
	os.MkdirAll(dir, 0o755)
	return dir
}

// buildSources assembles the built-in channels (stdin when standard input is
// not a terminal, env, docker) plus every cable-defined channel — both the
// ones discovered on disk by cable.Load and the inline [[cable_channel]]
// rows from the main config file — into the ChannelSource list the
// controller dispatches between.
func buildSources(proto cable.Channels, cfg config.Config) []controller.ChannelSource {
	var sources []controller.ChannelSource

	watch := time.Duration(cfg.Watch) * time.Second

	if !isatty.IsTerminal(os.Stdin.Fd()) {
		sources = append(sources, controller.ChannelSource{
			Name: "stdin",
			New:  func() channels.Channel { return channels.NewStdin() },
		})
	}

	sources = append(sources, controller.ChannelSource{
		Name: "env",
		New:  func() channels.Channel { return channels.NewEnv() },
	})

	sources = append(sources, controller.ChannelSource{
		Name: "docker",
		New: func() channels.Channel {
			c, err := channels.NewDocker()
			if err != nil {
				return channels.NewCommand("docker", "true", "", 0)
			}
			return c
		},
	})

	for name, p := range proto {
		name, p := name, p
		sources = append(sources, controller.ChannelSource{
			Name:             name,
			PreviewCommand:   p.PreviewCommand,
			PreviewDelimiter: p.Delimiter(),
			New: func() channels.Channel {
				return channels.NewCommand(name, p.SourceCommand, p.PreviewCommand, watch)
			},
		})
	}

	for _, row := range cfg.CableChannels {
		row := row
		delimiter := row.PreviewDelimiter
		if delimiter == "" {
			delimiter = " "
		}
		sources = append(sources, controller.ChannelSource{
			Name:             row.Name,
			PreviewCommand:   row.PreviewCommand,
			PreviewDelimiter: delimiter,
			New: func() channels.Channel {
				return channels.NewCommand(row.Name, row.SourceCommand, row.PreviewCommand, watch)
			},
		})
	}

	return sources
}

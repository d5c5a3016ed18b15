// Package logging configures the application-wide logger. Because the
// terminal's alternate screen is owned by the UI while the program runs,
// log output never goes to stdout/stderr; it goes to a file, the same way
// the teacher's MCP server redirects the standard logger away from the
// terminal so it doesn't corrupt interactive output.
package logging

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// EnvVar is the level-filter environment variable, spec.md §6's
// "RUST_LOG-style level filter... any equivalent naming is acceptable."
const EnvVar = "TELEVISION_LOG"

// DefaultLevel is used when EnvVar is unset or unrecognised.
const DefaultLevel = log.WarnLevel

// New opens (creating if needed) the log file at path and returns a logger
// configured from the TELEVISION_LOG environment variable.
func New(path string) (*log.Logger, *os.File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: open %s: %w", path, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	logger.SetLevel(levelFromEnv())

	return logger, f, nil
}

func levelFromEnv() log.Level {
	raw := os.Getenv(EnvVar)
	if raw == "" {
		return DefaultLevel
	}
	lvl, err := log.ParseLevel(raw)
	if err != nil {
		return DefaultLevel
	}
	return lvl
}

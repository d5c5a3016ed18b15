// Package channels implements the concrete entry sources (component C?):
// stdin, shell commands (cable channels), environment variables, and Docker
// images, all satisfying the same Channel interface the controller drives.
package channels

import "github.com/televisionhq/television/internal/entry"

// Channel is the interface the controller uses to drive any entry source,
// whatever feeds its matcher. It mirrors television-channels' OnAir trait.
type Channel interface {
	// Find replaces the active search pattern, superseding any in-progress
	// ranking for the previous pattern.
	Find(pattern string)

	// Results ticks the channel's matcher and returns up to num entries
	// starting at offset, ranked best-first.
	Results(num, offset int) []entry.Entry

	// GetResult returns the entry at the given absolute rank, if any.
	GetResult(index int) (entry.Entry, bool)

	// ResultCount is the number of entries currently matching the pattern.
	ResultCount() int

	// TotalCount is the number of entries ingested so far, matched or not.
	TotalCount() int

	// Running reports whether the channel is still producing entries.
	Running() bool

	// Err returns the most recent producer failure (spawn error or
	// non-zero exit) if any, so the controller can surface it as a
	// non-fatal status-bar message and log line (spec §7: ProducerSpawn,
	// ProducerExited). nil means no error has occurred.
	Err() error

	// Shutdown releases any resources (subprocesses, goroutines) the
	// channel holds.
	Shutdown()
}

// Name identifies a channel for picking purposes in cable and the remote
// control.
type Name string

package matcher

import "runtime"

// Config controls the fuzzy matcher's ranking behaviour and worker pool
// size. The zero value is not valid; use DefaultConfig.
type Config struct {
	// Threads is the number of worker goroutines used to score a haystack
	// on each Tick. Zero means DefaultConfig's choice.
	Threads int
	// IgnoreCase makes matching case-insensitive (default true).
	IgnoreCase bool
	// PreferPrefix biases the score toward matches starting at column 0.
	PreferPrefix bool
	// MatchPaths treats '/' as a boost point, matching television's
	// path-aware scoring mode.
	MatchPaths bool
}

// DefaultConfig mirrors the nucleo-pool defaults named in spec §4.2:
// case-insensitive, no prefix preference, no path awareness, and a worker
// count of min(NumCPU, 8).
func DefaultConfig() Config {
	return Config{
		Threads:    defaultThreads(),
		IgnoreCase: true,
	}
}

func defaultThreads() int {
	n := runtime.NumCPU()
	if n > 8 {
		return 8
	}
	if n < 1 {
		return 1
	}
	return n
}

// WithThreads returns a copy of cfg with Threads set.
func (cfg Config) WithThreads(n int) Config {
	cfg.Threads = n
	return cfg
}

// WithIgnoreCase returns a copy of cfg with IgnoreCase set.
func (cfg Config) WithIgnoreCase(v bool) Config {
	cfg.IgnoreCase = v
	return cfg
}

// WithPreferPrefix returns a copy of cfg with PreferPrefix set.
func (cfg Config) WithPreferPrefix(v bool) Config {
	cfg.PreferPrefix = v
	return cfg
}

// WithMatchPaths returns a copy of cfg with MatchPaths set.
func (cfg Config) WithMatchPaths(v bool) Config {
	cfg.MatchPaths = v
	return cfg
}

func (cfg Config) threads() int {
	if cfg.Threads > 0 {
		return cfg.Threads
	}
	return defaultThreads()
}

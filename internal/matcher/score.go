package matcher

import (
	"strings"
	"unicode"

	"github.com/televisionhq/television/internal/entry"
)

// score attempts a subsequence match of pattern against column under cfg.
// It returns ok=false if column does not contain pattern as a (case-folded)
// subsequence, per spec §4.2: "An item whose match columns do not contain
// every pattern character... is excluded entirely."
//
// The scoring function rewards contiguous runs, a match starting at the
// beginning of the column (prefer-prefix bias), and matches immediately
// following a path separator (path-aware bias), mirroring the qualitative
// behaviour of the nucleo-style matcher named as canonical in spec §9.
func score(column, pattern string, cfg Config) (value int, ranges []entry.Range, ok bool) {
	if pattern == "" {
		return 0, nil, true
	}

	haystackRunes := []rune(column)
	patternRunes := []rune(pattern)
	if cfg.IgnoreCase {
		haystackRunes = foldRunes(haystackRunes)
		patternRunes = foldRunes(patternRunes)
	}

	var runs []entry.Range
	hIdx := 0
	pIdx := 0
	consecutive := 0
	total := 0
	var runStart = -1

	for pIdx < len(patternRunes) {
		found := -1
		for i := hIdx; i < len(haystackRunes); i++ {
			if haystackRunes[i] == patternRunes[pIdx] {
				found = i
				break
			}
		}
		if found == -1 {
			return 0, nil, false
		}

		if runStart == -1 {
			runStart = found
			consecutive = 1
		} else if found == hIdx {
			// contiguous with the previous matched rune
			consecutive++
		} else {
			runs = append(runs, entry.Range{Start: uint32(runStart), End: uint32(hIdx)})
			runStart = found
			consecutive = 1
		}

		bonus := 1
		if found == hIdx {
			bonus += consecutive // reward contiguous runs
		}
		if cfg.PreferPrefix && found == 0 {
			bonus += 8
		}
		if cfg.MatchPaths && found > 0 && haystackRunes[found-1] == '/' {
			bonus += 4
		}
		total += bonus

		hIdx = found + 1
		pIdx++
	}
	if runStart != -1 {
		runs = append(runs, entry.Range{Start: uint32(runStart), End: uint32(hIdx)})
	}

	// Shorter haystacks with the same run quality score slightly higher,
	// favouring tighter matches the way prefix/path bias favours early ones.
	total += max(0, 64-len(haystackRunes))

	return total, runs, true
}

func foldRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}

// containsAllChars is a cheap rejection test: it reports whether column
// contains every rune of pattern. Tick does not call it; when the
// Aho-Corasick prefilter is disabled, every column goes straight to score().
func containsAllChars(column, pattern string, ignoreCase bool) bool {
	if ignoreCase {
		column = strings.ToLower(column)
		pattern = strings.ToLower(pattern)
	}
	for _, r := range pattern {
		if !strings.ContainsRune(column, r) {
			return false
		}
	}
	return true
}

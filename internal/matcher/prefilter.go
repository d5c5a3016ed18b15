package matcher

import (
	"strings"
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
)

// patternPrefilter is a cheap multi-character rejection test built once per
// pattern and reused across the whole haystack on a Tick. It answers "could
// this column possibly contain every character of the pattern" without
// paying for the full subsequence scan in score(), mirroring the way
// coregex's meta engine builds an Aho-Corasick automaton over literal
// alternations to short-circuit expensive regex evaluation
// (_examples/coregx-coregex/meta/compile.go).
type patternPrefilter struct {
	chars    []rune
	auto     *ahocorasick.Automaton
	disabled bool
}

// newPatternPrefilter builds an automaton matching each distinct rune of
// pattern (case-folded when ignoreCase is set) as a one-character literal.
func newPatternPrefilter(pattern string, ignoreCase bool) *patternPrefilter {
	if pattern == "" {
		return &patternPrefilter{disabled: true}
	}
	if ignoreCase {
		pattern = strings.ToLower(pattern)
	}

	seen := make(map[rune]bool)
	var chars []rune
	builder := ahocorasick.NewBuilder()
	for _, r := range pattern {
		if seen[r] {
			continue
		}
		seen[r] = true
		chars = append(chars, r)
		builder.AddPattern([]byte(string(r)))
	}

	auto, err := builder.Build()
	if err != nil {
		// A disabled prefilter lets every column through to score(); the
		// prefilter is purely an optimisation and must never change
		// matching semantics.
		return &patternPrefilter{disabled: true}
	}
	return &patternPrefilter{chars: chars, auto: auto}
}

// MayContain reports whether column could contain every distinct pattern
// character. A false result guarantees column does not satisfy the
// subsequence match in score(); a true result is not a guarantee (hence
// score() still runs the authoritative check).
//
// The automaton only exposes Find(haystack, at) *Match (Start/End of the
// next match from at onward), the shape evidenced by coregex's own use of
// this package (_examples/coregx-coregex/meta/find.go's
// findAhoCorasickAt) — there is no FindAll or per-match pattern index, so
// which literal matched is recovered from the matched bytes themselves
// rather than from the Match value.
func (p *patternPrefilter) MayContain(column string, ignoreCase bool) bool {
	if p == nil || p.disabled {
		return true
	}

	data := []byte(column)
	if ignoreCase {
		data = []byte(strings.ToLower(column))
	}

	matched := make(map[rune]bool, len(p.chars))
	at := 0
	for at < len(data) {
		m := p.auto.Find(data, at)
		if m == nil {
			break
		}
		r, _ := utf8.DecodeRune(data[m.Start:m.End])
		matched[r] = true
		if len(matched) == len(p.chars) {
			return true
		}
		if m.End <= at {
			at++
		} else {
			at = m.End
		}
	}
	return len(matched) == len(p.chars)
}

// Package likeset compiles a batch of LIKE patterns together and uses a
// shared prefilter over their required literals to skip individual DFAs
// wholesale: if none of the batch's literals occur anywhere in an input,
// none of the patterns that require one can match it. A batch with two or
// more registered literals shares an Aho-Corasick automaton over all of
// them; a batch with exactly one is gated by a direct SIMD-assisted
// substring scan instead, since spinning up an automaton for a single
// literal buys nothing over scanning for it directly.
package likeset

import (
	"github.com/coregx/ahocorasick"

	"github.com/martint/likematcher"
	"github.com/martint/likematcher/internal/literal"
	"github.com/martint/likematcher/internal/simd"
)

// entry pairs a compiled matcher with whether it has a literal registered
// with the set's prefilter (and is therefore covered by the prefilter
// gate).
type entry struct {
	matcher *likematcher.LikeMatcher
	gated   bool
}

// Set is a batch of compiled LikeMatchers sharing one prefilter gate. The
// zero value is not usable; construct with Compile.
type Set struct {
	entries   []entry
	automaton *ahocorasick.Automaton // set when 2+ literals are registered
	single    []byte                 // set when exactly 1 literal is registered
}

// Compile compiles every pattern in patterns (optionally with escape,
// shared across the whole batch) and registers whichever of each pattern's
// prefix or suffix literal is longer with the set's shared prefilter.
// Patterns with neither (e.g. "%" or "_") are always checked individually,
// since there's no literal to gate them on.
func Compile(patterns []string, escape *rune) (*Set, error) {
	entries := make([]entry, len(patterns))
	builder := ahocorasick.NewBuilder()

	var literals [][]byte
	for i, p := range patterns {
		var m *likematcher.LikeMatcher
		var err error
		if escape != nil {
			m, err = likematcher.CompileEscape(p, *escape)
		} else {
			m, err = likematcher.Compile(p)
		}
		if err != nil {
			return nil, err
		}

		lit, ok := literal.MostSelective(m.Prefix(), m.Suffix())
		if ok {
			literals = append(literals, lit)
		}
		entries[i] = entry{matcher: m, gated: ok}
	}

	switch len(literals) {
	case 0:
		return &Set{entries: entries}, nil
	case 1:
		return &Set{entries: entries, single: literals[0]}, nil
	default:
		for _, lit := range literals {
			builder.AddPattern(lit)
		}
		automaton, err := builder.Build()
		if err != nil {
			return nil, err
		}
		return &Set{entries: entries, automaton: automaton}, nil
	}
}

// MatchAll returns, for each pattern in the set (by index, in the order
// passed to Compile), whether it matches input. When the shared prefilter
// finds none of the batch's registered literals in input, every gated
// matcher is skipped without running its DFA; ungated matchers (no
// prefix/suffix literal at all) are always checked individually.
func (s *Set) MatchAll(input []byte) []bool {
	result := make([]bool, len(s.entries))

	var noLiteralPresent bool
	switch {
	case s.automaton != nil:
		noLiteralPresent = s.automaton.Find(input, 0) == nil
	case s.single != nil:
		noLiteralPresent = !simd.Contains(input, s.single)
	}

	for i, e := range s.entries {
		if e.gated && noLiteralPresent {
			continue
		}
		result[i] = e.matcher.Match(input)
	}
	return result
}

// Len returns the number of patterns in the set.
func (s *Set) Len() int {
	return len(s.entries)
}

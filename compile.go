// Package likematcher compiles SQL LIKE patterns ('%' any run of zero or
// more characters, '_' exactly one character, with an optional escape
// character) into a matcher backed by a dense byte-level DFA, so that
// repeated matching against the same pattern avoids re-parsing it.
package likematcher

import (
	"errors"

	"github.com/martint/likematcher/internal/dfa"
	"github.com/martint/likematcher/internal/literal"
	"github.com/martint/likematcher/internal/nfa"
	"github.com/martint/likematcher/internal/pattern"
)

// Compile parses and compiles a LIKE pattern with no escape character,
// using DefaultConfig.
func Compile(text string) (*LikeMatcher, error) {
	return CompileWithConfig(text, nil, DefaultConfig())
}

// MustCompile is like Compile but panics if the pattern fails to compile.
// It is intended for patterns known at init time, analogous to
// regexp.MustCompile.
func MustCompile(text string) *LikeMatcher {
	m, err := Compile(text)
	if err != nil {
		panic(err)
	}
	return m
}

// CompileEscape is like Compile but treats escape as the pattern's escape
// character: escape followed by '%', '_', or escape itself is taken
// literally; any other following character is an error.
func CompileEscape(text string, escape rune) (*LikeMatcher, error) {
	return CompileWithConfig(text, &escape, DefaultConfig())
}

// MustCompileEscape is like CompileEscape but panics if the pattern fails
// to compile.
func MustCompileEscape(text string, escape rune) *LikeMatcher {
	m, err := CompileEscape(text, escape)
	if err != nil {
		panic(err)
	}
	return m
}

// CompileWithConfig compiles text under cfg, with escape as the optional
// escape character (nil for none).
func CompileWithConfig(text string, escape *rune, cfg Config) (*LikeMatcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	hasEscape := escape != nil
	var escapeRune rune
	if hasEscape {
		escapeRune = *escape
	}

	elements, err := pattern.Parse(text, escapeRune, hasEscape)
	if err != nil {
		return nil, &CompileError{Pattern: text, Offset: parseErrorOffset(err), Err: err}
	}
	optimized := pattern.Optimize(elements)

	minSize, maxSize, hasMaxSize := bounds(optimized)

	prefix, rest, _ := literal.PeelPrefix(optimized)
	suffix, middle, _ := literal.PeelSuffix(rest)

	exact := true
	if len(middle) > 0 {
		last := middle[len(middle)-1]
		if last.Kind() == pattern.KindAny && last.Unbounded() {
			exact = false

			// The driver stops at the first accept state for a
			// non-exact match, so the final wildcard never needs to
			// loop; dropping Unbounded here yields a smaller DFA.
			trimmed := make([]pattern.Element, len(middle))
			copy(trimmed, middle)
			trimmed[len(trimmed)-1] = pattern.NewAny(last.Min(), false)
			middle = trimmed
		}
	}

	n, err := nfa.BuildFromPattern(middle)
	if err != nil {
		return nil, &CompileError{Pattern: text, Offset: -1, Err: err}
	}

	d, err := dfa.Determinize(n, cfg.MaxStates)
	if err != nil {
		return nil, &CompileError{Pattern: text, Offset: -1, Err: err}
	}

	m := &LikeMatcher{
		pattern:    text,
		hasEscape:  hasEscape,
		escape:     escapeRune,
		minSize:    minSize,
		maxSize:    maxSize,
		hasMaxSize: hasMaxSize,
		prefix:     prefix,
		suffix:     suffix,
		table:      dfa.Compile(d),
		exact:      exact,
	}
	if cfg.Debug {
		m.states = d.States
	}

	return m, nil
}

// bounds computes the minimum and maximum possible byte length of any
// string matching elements, and whether a finite maximum exists at all
// (false once an unbounded wildcard appears anywhere in the pattern).
// These bounds let MatchAt reject an input by length alone, without
// running the DFA.
func bounds(elements []pattern.Element) (min, max int, hasMax bool) {
	hasMax = true
	for _, e := range elements {
		switch e.Kind() {
		case pattern.KindLiteral:
			length := len(e.Literal())
			min += length
			max += length
		case pattern.KindAny:
			length := int(e.Min())
			min += length
			max += length * 4 // a codepoint is at most 4 UTF-8 bytes
			if e.Unbounded() {
				hasMax = false
			}
		}
	}
	return min, max, hasMax
}

func parseErrorOffset(err error) int {
	var perr *pattern.ParseError
	if errors.As(err, &perr) {
		return perr.Offset
	}
	return -1
}

package likematcher

import (
	"fmt"

	"github.com/martint/likematcher/internal/dfa"
)

// LikeMatcher is a compiled SQL LIKE pattern. It is safe for concurrent use
// by multiple goroutines: Match and MatchAt only read from a LikeMatcher's
// fields, never write them.
type LikeMatcher struct {
	pattern   string
	hasEscape bool
	escape    rune

	minSize    int
	maxSize    int
	hasMaxSize bool

	prefix []byte
	suffix []byte

	table *dfa.Table
	exact bool

	// states is retained only when Config.Debug is set, so String() can
	// render the compiled automaton; nil otherwise.
	states []dfa.State
}

// Pattern returns the original LIKE pattern text m was compiled from.
func (m *LikeMatcher) Pattern() string {
	return m.pattern
}

// Escape returns the pattern's escape character and true, or (0, false) if
// the pattern was compiled without one.
func (m *LikeMatcher) Escape() (rune, bool) {
	return m.escape, m.hasEscape
}

// Prefix returns the literal bytes m requires at the start of any match,
// or nil if the pattern doesn't begin with a literal run.
func (m *LikeMatcher) Prefix() []byte {
	return m.prefix
}

// Suffix returns the literal bytes m requires at the end of any match, or
// nil if the pattern doesn't end with a literal run.
func (m *LikeMatcher) Suffix() []byte {
	return m.suffix
}

// Match reports whether input, taken as a whole, satisfies m.
func (m *LikeMatcher) Match(input []byte) bool {
	return m.MatchAt(input, 0, len(input))
}

// MatchString reports whether s, taken as a whole, satisfies m.
func (m *LikeMatcher) MatchString(s string) bool {
	return m.Match([]byte(s))
}

// MatchAt reports whether input[offset:offset+length] satisfies m, without
// copying or re-slicing input. It is the primitive Match and MatchString
// are built on, exposed directly for callers matching against a shared
// buffer (e.g. a column of packed row data).
func (m *LikeMatcher) MatchAt(input []byte, offset, length int) bool {
	if length < m.minSize {
		return false
	}
	if m.hasMaxSize && length > m.maxSize {
		return false
	}

	if !matchLiteral(m.prefix, input, offset) {
		return false
	}
	if !matchLiteral(m.suffix, input, offset+length-len(m.suffix)) {
		return false
	}

	return m.runDFA(input, offset+len(m.prefix), length-len(m.suffix)-len(m.prefix))
}

// matchLiteral reports whether pattern occurs verbatim at input[offset:].
func matchLiteral(pattern []byte, input []byte, offset int) bool {
	for i, b := range pattern {
		if input[offset+i] != b {
			return false
		}
	}
	return true
}

// runDFA scans input[offset:offset+length] through the compiled dense
// table. When m.exact is false (the pattern's middle ends in an unbounded
// wildcard) it returns true as soon as the table reaches an accept state,
// since every extension of an already-accepted input also matches; otherwise
// it requires the scan to end on an accept state.
func (m *LikeMatcher) runDFA(input []byte, offset, length int) bool {
	row := m.table.Start
	for i := 0; i < length; i++ {
		row = m.table.Transitions[row+uint32(input[offset+i])]
		if !m.exact && m.table.AcceptAt(row) {
			return true
		}
	}
	return m.table.AcceptAt(row)
}

// String renders m for debugging. The state count is only included when m
// was compiled with Config.Debug set; otherwise that data is discarded
// after compilation and the rendering omits it.
func (m *LikeMatcher) String() string {
	if m.states != nil {
		return fmt.Sprintf("LikeMatcher(%q, states=%d, exact=%v, prefix=%q, suffix=%q)",
			m.pattern, len(m.states), m.exact, m.prefix, m.suffix)
	}
	return fmt.Sprintf("LikeMatcher(%q, exact=%v, prefix=%q, suffix=%q)",
		m.pattern, m.exact, m.prefix, m.suffix)
}

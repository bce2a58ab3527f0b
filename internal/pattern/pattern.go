// Package pattern implements the intermediate representation for SQL LIKE
// patterns: a flat sequence of literal runs and wildcard runs, produced by
// Parse and normalized by Optimize.
package pattern

import "fmt"

// Kind identifies which variant an Element holds.
type Kind uint8

const (
	// KindLiteral is a nonempty run of bytes to be matched exactly.
	KindLiteral Kind = iota
	// KindAny is a wildcard run: at least Min codepoints, more if Unbounded.
	KindAny
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindAny:
		return "Any"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Element is one segment of a parsed LIKE pattern: either a literal byte
// run or a wildcard run. The zero value is not a valid Element; construct
// with NewLiteral or NewAny.
type Element struct {
	kind      Kind
	literal   []byte
	min       uint32
	unbounded bool
}

// NewLiteral returns a literal element holding b. b must be nonempty;
// the parser and optimizer never emit empty literals.
func NewLiteral(b []byte) Element {
	return Element{kind: KindLiteral, literal: b}
}

// NewAny returns a wildcard element matching at least min codepoints, and
// any number more when unbounded is true.
func NewAny(min uint32, unbounded bool) Element {
	return Element{kind: KindAny, min: min, unbounded: unbounded}
}

// Kind reports whether e is a literal or a wildcard run.
func (e Element) Kind() Kind { return e.kind }

// Literal returns the byte run for a KindLiteral element. Result is
// unspecified for other kinds.
func (e Element) Literal() []byte { return e.literal }

// Min returns the minimum codepoint count for a KindAny element. Result is
// unspecified for other kinds.
func (e Element) Min() uint32 { return e.min }

// Unbounded reports whether a KindAny element admits unlimited additional
// codepoints. Result is unspecified for other kinds.
func (e Element) Unbounded() bool { return e.unbounded }

// String renders e for debugging.
func (e Element) String() string {
	switch e.kind {
	case KindLiteral:
		return fmt.Sprintf("Literal(%q)", e.literal)
	case KindAny:
		return fmt.Sprintf("Any(min=%d, unbounded=%v)", e.min, e.unbounded)
	default:
		return "Element(invalid)"
	}
}

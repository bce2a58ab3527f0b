// Package literal extracts the literal prefix and suffix of a parsed LIKE
// pattern, the parts outside any wildcard run, so the matcher driver can
// check them with a plain byte comparison instead of running the DFA over
// them, and so that a batch of patterns can be prefiltered by an
// aggregate multi-pattern literal scan before any individual DFA runs.
package literal

import "github.com/martint/likematcher/internal/pattern"

// PeelPrefix removes a leading KindLiteral element from elements, returning
// its bytes and the remaining elements. It returns ok == false if elements
// does not begin with a literal (empty pattern, or starts with a wildcard).
func PeelPrefix(elements []pattern.Element) (prefix []byte, rest []pattern.Element, ok bool) {
	if len(elements) == 0 || elements[0].Kind() != pattern.KindLiteral {
		return nil, elements, false
	}
	return elements[0].Literal(), elements[1:], true
}

// PeelSuffix removes a trailing KindLiteral element from elements, returning
// its bytes and the remaining elements. It returns ok == false if elements
// does not end with a literal, or has length <= 1 (in which case any
// leading literal is the pattern's prefix, not a separate suffix).
func PeelSuffix(elements []pattern.Element) (suffix []byte, rest []pattern.Element, ok bool) {
	if len(elements) <= 1 {
		return nil, elements, false
	}
	last := elements[len(elements)-1]
	if last.Kind() != pattern.KindLiteral {
		return nil, elements, false
	}
	return last.Literal(), elements[:len(elements)-1], true
}

// MostSelective picks whichever of prefix and suffix is longer, on the
// assumption that a longer required literal rules out more candidate
// inputs when used as an aggregate prefilter gate. It returns ok == false
// if both are empty.
func MostSelective(prefix, suffix []byte) (literal []byte, ok bool) {
	switch {
	case len(prefix) == 0 && len(suffix) == 0:
		return nil, false
	case len(suffix) > len(prefix):
		return suffix, true
	default:
		return prefix, true
	}
}

package nfa

import "github.com/martint/likematcher/internal/pattern"

// BuildFromPattern compiles the (post-peeling) middle of a LIKE pattern's
// IR into an NFA. Each Literal becomes a chain of Value transitions; each
// Any becomes max(min, 1) chained copies of the single-codepoint
// sub-automaton, made optional with a leading epsilon edge when min == 0,
// and looped with a trailing epsilon edge back to the entry of the final
// copy when unbounded.
func BuildFromPattern(elements []pattern.Element) (*NFA, error) {
	b := NewBuilder()
	cache := newSuffixCache()

	start := b.AddState()
	state := start

	for _, element := range elements {
		switch element.Kind() {
		case pattern.KindLiteral:
			for _, value := range element.Literal() {
				next := b.AddState()
				b.AddValue(state, value, next)
				state = next
			}

		case pattern.KindAny:
			copies := element.Min()
			if copies == 0 {
				copies = 1
			}

			var entry StateID
			for i := uint32(0); i < copies; i++ {
				entry = state
				state = cache.addCodepoint(b, state)
			}

			if element.Min() == 0 {
				b.AddEpsilon(entry, state)
			}
			if element.Unbounded() {
				b.AddEpsilon(state, entry)
			}
		}
	}

	return b.Build(start, state)
}

// Package dfa turns the byte-level NFA built from a LIKE pattern's IR into
// a deterministic automaton, via subset construction, and lowers that DFA
// into a dense transition table for the matcher driver.
package dfa

import (
	"sort"
	"strings"

	"github.com/martint/likematcher/internal/conv"
	"github.com/martint/likematcher/internal/nfa"
	"github.com/martint/likematcher/internal/sparse"
)

// State is one DFA state: an accept flag and a total transition function
// over the 256-byte alphabet (every entry always resolves to a real state,
// the dedicated fail state included).
type State struct {
	Accept bool
	Trans  [256]int
}

// DFA is the determinized automaton: states indexed by id, a start id, and
// a dedicated absorbing fail id with no accept flag and no transitions
// leaving it (every entry in its row points back to itself).
type DFA struct {
	States []State
	Start  int
	Fail   int
}

// Determinize runs subset construction over n's byte alphabet. maxStates
// bounds how many DFA states may be discovered (including the fail state);
// exceeding it returns ErrTooManyStates rather than continuing to build an
// unbounded table, since a LIKE pattern's NFA shape never legitimately
// requires more than a small multiple of the pattern's length.
func Determinize(n *nfa.NFA, maxStates int) (*DFA, error) {
	closure := newClosureComputer(n)

	startSet := closure.of(setOf(n.Start))
	startKey := canonicalKey(startSet)

	indexOf := map[string]int{startKey: 0}
	sets := [][]nfa.StateID{startSet}
	states := []State{{Accept: contains(startSet, n.Accept)}}

	queue := []int{0}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		set := sets[id]

		var trans [256]int
		for i := range trans {
			trans[i] = -1
		}

		for b := 0; b < 256; b++ {
			target := stepByte(n, set, byte(b))
			if len(target) == 0 {
				continue
			}

			target = closure.of(target)
			key := canonicalKey(target)

			targetID, ok := indexOf[key]
			if !ok {
				if len(states) >= maxStates {
					return nil, ErrTooManyStates
				}
				targetID = len(states)
				indexOf[key] = targetID
				sets = append(sets, target)
				states = append(states, State{Accept: contains(target, n.Accept)})
				queue = append(queue, targetID)
			}
			trans[b] = targetID
		}

		states[id].Trans = trans
	}

	failID := len(states)
	if failID >= maxStates {
		return nil, ErrTooManyStates
	}
	var failTrans [256]int
	for b := range failTrans {
		failTrans[b] = failID
	}
	states = append(states, State{Accept: false, Trans: failTrans})

	for id := range states {
		if id == failID {
			continue
		}
		for b := 0; b < 256; b++ {
			if states[id].Trans[b] == -1 {
				states[id].Trans[b] = failID
			}
		}
	}

	return &DFA{States: states, Start: 0, Fail: failID}, nil
}

// closureComputer caches a reusable sparse set sized to the NFA so that
// repeated epsilon-closure computations during subset construction don't
// reallocate their working set.
type closureComputer struct {
	n      *nfa.NFA
	marked *sparse.SparseSet
}

func newClosureComputer(n *nfa.NFA) *closureComputer {
	return &closureComputer{
		n:      n,
		marked: sparse.New(conv.IntToUint32(len(n.States))),
	}
}

// of computes the epsilon-closure of seed: the least fixed point reachable
// via Epsilon transitions, returned sorted by state id for canonicalization.
func (c *closureComputer) of(seed []nfa.StateID) []nfa.StateID {
	c.marked.Clear()

	stack := append([]nfa.StateID(nil), seed...)
	for _, s := range seed {
		c.marked.Insert(uint32(s))
	}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, t := range c.n.States[s].Trans {
			if t.Kind != nfa.Epsilon {
				continue
			}
			if c.marked.Contains(uint32(t.Target)) {
				continue
			}
			c.marked.Insert(uint32(t.Target))
			stack = append(stack, t.Target)
		}
	}

	result := make([]nfa.StateID, 0, c.marked.Size())
	for _, v := range c.marked.Values() {
		result = append(result, nfa.StateID(v))
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// stepByte returns the (pre-closure) set of NFA states reachable from any
// state in set by a single transition that consumes byte b.
func stepByte(n *nfa.NFA, set []nfa.StateID, b byte) []nfa.StateID {
	var result []nfa.StateID
	for _, s := range set {
		for _, t := range n.States[s].Trans {
			if t.Kind != nfa.Epsilon && t.Matches(b) {
				result = append(result, t.Target)
			}
		}
	}
	return result
}

func setOf(s nfa.StateID) []nfa.StateID { return []nfa.StateID{s} }

func contains(set []nfa.StateID, s nfa.StateID) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// canonicalKey turns a sorted state-id slice into a comparable map key.
// Subset-equivalent NFA-state sets produce identical keys and are merged
// into one DFA state, per the subset-construction tie-break rule.
func canonicalKey(sorted []nfa.StateID) string {
	var b strings.Builder
	for _, id := range sorted {
		b.WriteByte(byte(id))
		b.WriteByte(byte(id >> 8))
		b.WriteByte(byte(id >> 16))
		b.WriteByte(byte(id >> 24))
		b.WriteByte(0)
	}
	return b.String()
}

package dfa

import "github.com/martint/likematcher/internal/conv"

// Table is the dense, flattened form of a DFA used by the matcher driver's
// scan loop. Transitions is laid out state-major, 256 entries per state;
// each entry already stores the target state's row base (target id * 256,
// the "stride trick"), so advancing one input byte is a single indexed
// load with no multiplication: rowBase = Transitions[rowBase+b].
type Table struct {
	Transitions []uint32
	Accept      []bool
	Start       uint32
	Fail        uint32
}

// Compile lowers d into a Table. The DFA's int-indexed transition function
// is flattened into one []uint32 and every target id is pre-multiplied by
// 256, trading table size for a branch-free scan loop.
func Compile(d *DFA) *Table {
	n := len(d.States)
	table := &Table{
		Transitions: make([]uint32, n*256),
		Accept:      make([]bool, n),
		Start:       conv.IntToUint32(d.Start) * 256,
		Fail:        conv.IntToUint32(d.Fail) * 256,
	}

	for id, state := range d.States {
		table.Accept[id] = state.Accept
		base := id * 256
		for b, target := range state.Trans {
			table.Transitions[base+b] = conv.IntToUint32(target) * 256
		}
	}

	return table
}

// AcceptAt reports whether rowBase (as returned while scanning, already
// stride-encoded) corresponds to an accepting state.
func (t *Table) AcceptAt(rowBase uint32) bool {
	return t.Accept[rowBase/256]
}

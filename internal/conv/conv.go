// Package conv provides bounds-checked integer narrowing used when DFA
// state counts and table offsets cross from Go's int into the fixed-width
// types stored in the compiled dense table.
package conv

import "math"

// IntToUint32 converts n to uint32, panicking if n is negative or does not
// fit. A panic here indicates a state count overflowed the DFA's state-id
// width, which MaxStates in Config is meant to prevent well before this
// point.
func IntToUint32(n int) uint32 {
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("conv: int value out of uint32 range")
	}
	return uint32(n)
}

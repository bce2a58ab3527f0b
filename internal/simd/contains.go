// Package simd provides a fast literal-presence scan used to prefilter
// batches of LIKE patterns before running any individual DFA: a required
// literal that doesn't occur anywhere in the input rules out every pattern
// that needs it. It dispatches between a pure Go SWAR (SIMD Within A
// Register) byte scan and the standard library's substring search based on
// detected CPU features, without any assembly.
package simd

import (
	"bytes"
	"encoding/binary"
	"math/bits"

	"golang.org/x/sys/cpu"
)

// hasAVX2 records whether the CPU advertises AVX2 support. bytes.Index is
// already assembly-optimized (including AVX2 paths) in the standard
// library on amd64, so when AVX2 is available there is nothing a pure Go
// SWAR scan can add; the flag instead picks the other way, since the SWAR
// byte-search below only outperforms a naive scan and isn't worth the
// setup cost against stdlib's own accelerated substring search.
var hasAVX2 = cpu.X86.HasAVX2

// Contains reports whether needle occurs anywhere in haystack. It is used
// as an aggregate prefilter gate: if Contains is false for every literal
// registered by a batch of patterns, none of those patterns can match.
func Contains(haystack, needle []byte) bool {
	return Index(haystack, needle) >= 0
}

// Index returns the index of the first occurrence of needle in haystack,
// or -1 if needle does not occur. Single-byte needles are dispatched
// through indexByte (the SWAR scan below, or bytes.IndexByte when AVX2 is
// available); everything else goes through bytes.Index, which is
// already well-optimized (including AVX2 on amd64) in the standard
// library.
func Index(haystack, needle []byte) int {
	if len(needle) == 1 {
		return indexByte(haystack, needle[0])
	}
	return bytes.Index(haystack, needle)
}

// indexByte dispatches to the SWAR scan on platforms without an
// AVX2-accelerated stdlib path, and to bytes.IndexByte otherwise, since
// bytes.IndexByte already uses AVX2 where available.
func indexByte(haystack []byte, needle byte) int {
	if hasAVX2 {
		return bytes.IndexByte(haystack, needle)
	}
	return indexByteSWAR(haystack, needle)
}

// indexByteSWAR processes 8 bytes at a time using uint64 bitwise
// operations: broadcast needle into every byte lane, XOR against each
// chunk so matching bytes become zero, then use the classic zero-byte
// detection formula to locate the first zero lane.
func indexByteSWAR(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := uint64(needle) * 0x0101010101010101
	const lo8 = 0x0101010101010101
	const hi8 = 0x8080808080808080

	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		xor := chunk ^ mask
		hasZero := (xor - lo8) &^ xor & hi8
		if hasZero != 0 {
			return i + bits.TrailingZeros64(hasZero)/8
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

package nfa

// Leading-byte bit-prefix classes for the four UTF-8 encoding lengths, and
// the shared continuation-byte class (10xxxxxx).
const (
	lead1Bits, lead1Width = 0, 1      // 0xxxxxxx            (ASCII, 1 byte)
	lead2Bits, lead2Width = 0b110, 3  // 110xxxxx            (2 bytes)
	lead3Bits, lead3Width = 0b1110, 4 // 1110xxxx            (3 bytes)
	lead4Bits, lead4Width = 0b11110, 5
	contBits, contWidth   = 0b10, 2 // 10xxxxxx (continuation)
)

// suffixCache memoizes continuation-byte states by (target, bit-class)
// pair, returning the existing state when the same pair is requested
// again. addCodepoint always passes a freshly allocated end state as the
// target, so each copy of the single-codepoint sub-automaton gets its own
// continuation chain; within one copy, the 2/3/4-byte paths share it.
type suffixCache struct {
	entries map[suffixKey]StateID
}

type suffixKey struct {
	target StateID
	bits   byte
	width  uint8
}

func newSuffixCache() *suffixCache {
	return &suffixCache{entries: make(map[suffixKey]StateID)}
}

// getOrCreate returns a state that transitions to target on a byte matching
// (bits, width), reusing a previously built one if the cache has it.
func (c *suffixCache) getOrCreate(b *Builder, target StateID, bits byte, width uint8) StateID {
	key := suffixKey{target: target, bits: bits, width: width}
	if id, ok := c.entries[key]; ok {
		return id
	}
	id := b.AddState()
	b.AddPrefix(id, bits, width, target)
	c.entries[key] = id
	return id
}

// addCodepoint builds the single-UTF-8-codepoint sub-automaton rooted at
// start: it consumes exactly one valid codepoint's worth of bytes (1 to 4,
// per the leading byte) and lands on a freshly allocated end state, which
// it returns.
//
//	start --[0xxxxxxx]-------------------------------------> end
//	start --[110xxxxx]--> s3 --[10xxxxxx]------------------> end
//	start --[1110xxxx]--> s2 --[10xxxxxx]--> s3 --[10xxxxxx]-> end
//	start --[11110xxx]--> s1 --[10xxxxxx]--> s2 --[10xxxxxx]--> s3 --[10xxxxxx]-> end
//
// s3, s2, and s1 are the shared continuation states, closest to end first.
func (c *suffixCache) addCodepoint(b *Builder, start StateID) StateID {
	end := b.AddState()

	b.AddPrefix(start, lead1Bits, lead1Width, end)

	s3 := c.getOrCreate(b, end, contBits, contWidth)
	s2 := c.getOrCreate(b, s3, contBits, contWidth)
	s1 := c.getOrCreate(b, s2, contBits, contWidth)

	b.AddPrefix(start, lead2Bits, lead2Width, s3)
	b.AddPrefix(start, lead3Bits, lead3Width, s2)
	b.AddPrefix(start, lead4Bits, lead4Width, s1)

	return end
}

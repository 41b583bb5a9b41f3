package bits

import (
	"math/bits"

	"github.com/segmentio/columnar/internal/unsafecast"
)

// CountTrue returns the number of true values in data.
//
// Go represents booleans as bytes holding either 0 or 1, so the count over a
// 64 bits word of booleans is the population count of the word.
func CountTrue(data []bool) int {
	b := unsafecast.Slice[byte](data)
	n := 0

	// Count byte by byte until the address is aligned on a word boundary.
	for len(b) > 0 && uintptr(unsafecast.Pointer(b))%8 != 0 {
		n += int(b[0])
		b = b[1:]
	}

	words := unsafecast.Slice[uint64](b)
	for _, w := range words {
		n += bits.OnesCount64(w)
	}

	for _, c := range b[8*len(words):] {
		n += int(c)
	}
	return n
}

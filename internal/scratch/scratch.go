// Package scratch manages the temporary buffers that operations allocate for
// the duration of a call.
//
// Buffers are recycled through a sync.Pool. The program acquires a buffer,
// defers its release, and must not retain any reference to its memory after
// the release:
//
//	buf := scratch.GetBools(n)
//	defer buf.Release()
package scratch

import (
	"sync"

	"github.com/segmentio/columnar/internal/unsafecast"
)

// Bools is a scratch buffer of booleans.
type Bools struct {
	words []uint64
	data  []bool
}

var boolsPool sync.Pool // *Bools

// GetBools returns a buffer holding n booleans. The content of the buffer is
// unspecified.
//
// The memory of the buffer is aligned on 64 bits words.
func GetBools(n int) *Bools {
	b, _ := boolsPool.Get().(*Bools)
	if b == nil {
		b = new(Bools)
	}
	if size := (n + 7) / 8; cap(b.words) < size {
		b.words = make([]uint64, size)
	} else {
		b.words = b.words[:size]
	}
	b.data = unsafecast.Slice[bool](b.words)[:n]
	return b
}

// Slice returns the booleans of the buffer.
func (b *Bools) Slice() []bool { return b.data }

// Len returns the number of booleans in the buffer.
func (b *Bools) Len() int { return len(b.data) }

// Release returns the buffer to the pool. The buffer must not be used after
// calling Release.
func (b *Bools) Release() {
	if b == nil {
		return
	}
	b.data = nil
	boolsPool.Put(b)
}

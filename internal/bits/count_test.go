package bits_test

import (
	"testing"
	"testing/quick"

	"github.com/segmentio/columnar/internal/bits"
)

const bufferSize = 4096

func countTrue(data []bool) int {
	n := 0
	for _, b := range data {
		if b {
			n++
		}
	}
	return n
}

func TestCountTrue(t *testing.T) {
	f := func(data []bool) bool {
		// Exercise every alignment of the input.
		for i := 0; i < 8 && i <= len(data); i++ {
			want := countTrue(data[i:])
			got := bits.CountTrue(data[i:])
			if want != got {
				t.Errorf("offset %d: want=%d got=%d", i, want, got)
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestCountTrueEmpty(t *testing.T) {
	if n := bits.CountTrue(nil); n != 0 {
		t.Errorf("want=0 got=%d", n)
	}
}

func BenchmarkCountTrue(b *testing.B) {
	data := make([]bool, bufferSize)
	for i := range data {
		data[i] = i%3 == 0
	}
	for i := 0; i < b.N; i++ {
		bits.CountTrue(data)
	}
	b.SetBytes(bufferSize)
}

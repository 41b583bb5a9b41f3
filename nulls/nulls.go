// Package nulls implements the null masks of columns.
//
// A null mask records the positions of the null rows of a column in a roaring
// bitmap. Most columns have no or few nulls, which roaring bitmaps store in
// very little memory while still answering membership queries quickly.
//
// A nil *Nulls is a valid mask which contains no rows.
package nulls

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"
)

type Nulls struct {
	bitmap *roaring.Bitmap
}

// Build constructs a null mask with the given rows set.
func Build(rows ...int) *Nulls {
	n := &Nulls{bitmap: roaring.New()}
	for _, row := range rows {
		n.Add(row)
	}
	return n
}

// Range constructs a null mask with all rows in [i, j) set.
func Range(i, j int) *Nulls {
	n := &Nulls{bitmap: roaring.New()}
	if i < j {
		n.bitmap.AddRange(uint64(i), uint64(j))
	}
	return n
}

// Add sets row in the mask. The row must be in [0, math.MaxInt32), values
// out of that range are truncated to 32 bits.
//
// Masks are not safe to mutate concurrently; columns only call Add while
// they are being built.
func (n *Nulls) Add(row int) {
	if n.bitmap == nil {
		n.bitmap = roaring.New()
	}
	n.bitmap.Add(uint32(row))
}

// Contains returns true if row is set in the mask.
func (n *Nulls) Contains(row int) bool {
	return n != nil && n.bitmap != nil && n.bitmap.Contains(uint32(row))
}

// Any returns true if at least one row is set in the mask.
func (n *Nulls) Any() bool {
	return n != nil && n.bitmap != nil && !n.bitmap.IsEmpty()
}

// Count returns the number of rows set in the mask.
func (n *Nulls) Count() int {
	if n == nil || n.bitmap == nil {
		return 0
	}
	return int(n.bitmap.GetCardinality())
}

// CountRange returns the number of rows set in [i, j).
func (n *Nulls) CountRange(i, j int) int {
	if !n.Any() || i >= j {
		return 0
	}
	count := n.bitmap.Rank(uint32(j - 1))
	if i > 0 {
		count -= n.bitmap.Rank(uint32(i - 1))
	}
	return int(count)
}

// Slice returns a mask holding the rows of n in [i, j), shifted so that row i
// of n is row 0 of the result. The method returns nil if none of the rows in
// the range were set.
func (n *Nulls) Slice(i, j int) *Nulls {
	if n.CountRange(i, j) == 0 {
		return nil
	}
	s := &Nulls{bitmap: roaring.New()}
	it := n.bitmap.Iterator()
	it.AdvanceIfNeeded(uint32(i))
	for it.HasNext() {
		row := it.Next()
		if int(row) >= j {
			break
		}
		s.bitmap.Add(row - uint32(i))
	}
	return s
}

// Rows returns the list of rows set in the mask, in ascending order.
func (n *Nulls) Rows() []int {
	if !n.Any() {
		return nil
	}
	rows := make([]int, 0, n.bitmap.GetCardinality())
	it := n.bitmap.Iterator()
	for it.HasNext() {
		rows = append(rows, int(it.Next()))
	}
	return rows
}

// Clone returns a copy of n which can be mutated independently.
func (n *Nulls) Clone() *Nulls {
	if n == nil || n.bitmap == nil {
		return nil
	}
	return &Nulls{bitmap: n.bitmap.Clone()}
}

func (n *Nulls) String() string {
	return fmt.Sprint(n.Rows())
}

package columnar

import (
	"github.com/google/uuid"

	"github.com/segmentio/columnar/nulls"
)

// Gather returns a column where row k holds a copy of row indices[k] of col.
//
// Indices outside of [0, col.Len()) produce null rows. Lists and structs are
// gathered recursively: the child elements of the selected rows are gathered
// into a new child column.
func Gather(col *Column, indices []int) *Column {
	numRows := col.Len()
	out := &Column{
		kind:    col.Kind(),
		numRows: len(indices),
	}

	var mask *nulls.Nulls
	for k, i := range indices {
		if i < 0 || i >= numRows || col.IsNull(i) {
			if mask == nil {
				mask = new(nulls.Nulls)
			}
			mask.Add(k)
		}
	}
	out.nulls = mask

	switch col.Kind() {
	case List:
		offsets := make([]int32, len(indices)+1)
		elements := make([]int, 0, len(indices))
		for k, i := range indices {
			if i >= 0 && i < numRows {
				begin, end := col.ListRange(i)
				for e := begin; e < end; e++ {
					elements = append(elements, e)
				}
			}
			offsets[k+1] = int32(len(elements))
		}
		out.offsets = offsets
		out.children = []*Column{Gather(col.Child(0), elements)}

	case Struct:
		out.children = make([]*Column, col.NumChildren())
		for i, child := range col.Children() {
			out.children[i] = Gather(child, indices)
		}

	default:
		out.values = gatherValues(col.values, indices)
	}

	return out
}

func gatherValues(values any, indices []int) any {
	switch v := values.(type) {
	case []bool:
		return gather(v, indices)
	case []int32:
		return gather(v, indices)
	case []int64:
		return gather(v, indices)
	case []uint32:
		return gather(v, indices)
	case []uint64:
		return gather(v, indices)
	case []float32:
		return gather(v, indices)
	case []float64:
		return gather(v, indices)
	case [][]byte:
		return gather(v, indices)
	case []uuid.UUID:
		return gather(v, indices)
	default:
		return nil
	}
}

// gather copies src[indices[k]] to the k-th output position, leaving the zero
// value where the index is out of range.
func gather[T Value](src []T, indices []int) []T {
	dst := make([]T, len(indices))
	for k, i := range indices {
		if uint(i) < uint(len(src)) {
			dst[k] = src[i]
		}
	}
	return dst
}

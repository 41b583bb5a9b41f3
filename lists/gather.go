// Package lists implements operations on the elements of list columns.
package lists

import (
	"github.com/pkg/errors"

	"github.com/segmentio/columnar"
)

// SegmentedGather gathers the elements within each row of a list column.
//
// Row r of the result holds, for each index x in row r of gatherMap, the
// element at position x in row r of source:
//
//	source    : [{"a", "b", "c", "d"}, {"1", "2", "3", "4"}, {"x", "y", "z"}]
//	gatherMap : [{0, 1, 3, 2}, {1, 3, 2}, {}]
//	result    : [{"a", "b", "d", "c"}, {"2", "4", "3"}, {}]
//
// Indices are valid in [-n, n), where n is the number of elements in the
// source row; negative indices count from the end of the row. Elements
// gathered from indices out of that range are null when policy is Nullify,
// and unspecified when policy is DontCheck (they may hold elements of other
// rows, or be null, but reading them is always safe).
//
// Null rows of source produce null rows in the result.
//
// The function returns an error wrapping ErrInvalidKind if source is not a
// list column or gatherMap is not a list of integers, ErrRowCountMismatch if
// both columns do not have the same number of rows, and ErrInvalidArgument if
// gatherMap contains null rows or null indices.
func SegmentedGather(source, gatherMap *columnar.Column, policy columnar.OutOfBoundsPolicy) (*columnar.Column, error) {
	if source.Kind() != columnar.List {
		return nil, errors.Wrapf(columnar.ErrInvalidKind, "segmented gather source is a %s column", source.Kind())
	}
	if gatherMap.Kind() != columnar.List || !gatherMap.Child(0).Kind().IsInteger() {
		return nil, errors.Wrap(columnar.ErrInvalidKind, "segmented gather map must be a list of integers")
	}
	if source.Len() != gatherMap.Len() {
		return nil, errors.Wrapf(columnar.ErrRowCountMismatch, "segmented gather map has %d rows, source has %d", gatherMap.Len(), source.Len())
	}
	if gatherMap.HasNulls() {
		return nil, errors.Wrap(columnar.ErrInvalidArgument, "segmented gather map contains null rows")
	}

	mapOffsets := gatherMap.Offsets()
	begin, end := int(mapOffsets[0]), int(mapOffsets[len(mapOffsets)-1])
	relative, err := indicesOf(gatherMap.Child(0).Slice(begin, end))
	if err != nil {
		return nil, err
	}

	absolute := make([]int, len(relative))
	offsets := make([]int32, len(mapOffsets))

	for row := 0; row < source.Len(); row++ {
		srcBegin, srcEnd := source.ListRange(row)
		size := srcEnd - srcBegin
		mapBegin, mapEnd := gatherMap.ListRange(row)

		for k := mapBegin - begin; k < mapEnd-begin; k++ {
			index := relative[k]
			if index < 0 {
				index += size
			}
			if policy == columnar.Nullify && (index < 0 || index >= size) {
				absolute[k] = -1
			} else {
				absolute[k] = srcBegin + index
			}
		}

		offsets[row+1] = int32(mapEnd - begin)
	}

	elements := columnar.Gather(source.Child(0), absolute)
	return columnar.NewListColumn(offsets, elements, source.Nulls().Rows()...)
}

func indicesOf(col *columnar.Column) ([]int, error) {
	if col.HasNulls() {
		return nil, errors.Wrap(columnar.ErrInvalidArgument, "segmented gather map contains null indices")
	}
	indices := make([]int, col.Len())
	switch col.Kind() {
	case columnar.Int32:
		for i, v := range columnar.Values[int32](col) {
			indices[i] = int(v)
		}
	case columnar.Int64:
		for i, v := range columnar.Values[int64](col) {
			indices[i] = int(v)
		}
	case columnar.Uint32:
		for i, v := range columnar.Values[uint32](col) {
			indices[i] = int(v)
		}
	case columnar.Uint64:
		for i, v := range columnar.Values[uint64](col) {
			indices[i] = clampIndex(v)
		}
	}
	return indices, nil
}

// clampIndex converts unsigned indices, saturating values which do not fit in
// an int; those are out of range of any list anyway.
func clampIndex(v uint64) int {
	const maxInt = int(^uint(0) >> 1)
	if v > uint64(maxInt) {
		return maxInt
	}
	return int(v)
}

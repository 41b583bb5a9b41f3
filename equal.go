package columnar

import "github.com/pkg/errors"

// RowEqual is a predicate comparing rows i and j of a table.
//
// RowEqual functions are pure: they never mutate the table they were built
// for and may be called concurrently from multiple goroutines.
type RowEqual func(i, j int) bool

// NewRowEqual constructs a predicate which reports whether two rows of table
// are equal.
//
// Two rows are equal if the values of every column are equal at both
// positions. Two null values are equal if nullEquality is NullsEqual, while a
// null value never equals a non-null value. List and struct columns are
// compared recursively, applying the same rules at every level. Floating point
// values follow IEEE 754, NaN values are never equal.
func NewRowEqual(table *Table, nullEquality NullEquality) (RowEqual, error) {
	return newRowEqual(table, nullEquality, table.HasNested())
}

// newRowEqual selects the comparator variant: when nested is false, the flat
// variant is built and list or struct columns are rejected.
func newRowEqual(table *Table, nullEquality NullEquality, nested bool) (RowEqual, error) {
	columns := make([]rowEqualFunc, table.NumColumns())

	for i, col := range table.Columns() {
		var equal rowEqualFunc
		var err error

		if nested {
			equal, err = nestedEqualFuncOf(col, nullEquality, 0)
		} else {
			equal, err = flatEqualFuncOf(col, nullEquality)
		}
		if err != nil {
			return nil, errors.WithMessagef(err, "column %d", i)
		}
		columns[i] = equal
	}

	switch len(columns) {
	case 0:
		return func(int, int) bool { return true }, nil
	case 1:
		return RowEqual(columns[0]), nil
	default:
		return func(i, j int) bool {
			for _, equal := range columns {
				if !equal(i, j) {
					return false
				}
			}
			return true
		}, nil
	}
}

func flatEqualFuncOf(col *Column, nullEquality NullEquality) (rowEqualFunc, error) {
	c := classOf(col.Kind())
	if c == nil {
		return nil, errors.Wrapf(ErrNotComparable, "%s column in flat comparison", col.Kind())
	}
	return nullAware(col, nullEquality, c.equal(col)), nil
}

func nestedEqualFuncOf(col *Column, nullEquality NullEquality, depth int) (rowEqualFunc, error) {
	if depth > MaxColumnDepth {
		return nil, errors.Wrapf(ErrNotComparable, "column nesting exceeds %d levels", MaxColumnDepth)
	}

	switch col.Kind() {
	case List:
		elements, err := nestedEqualFuncOf(col.Child(0), nullEquality, depth+1)
		if err != nil {
			return nil, err
		}
		return nullAware(col, nullEquality, equalList(col.Offsets(), elements)), nil

	case Struct:
		fields := make([]rowEqualFunc, col.NumChildren())
		for i, child := range col.Children() {
			equal, err := nestedEqualFuncOf(child, nullEquality, depth+1)
			if err != nil {
				return nil, err
			}
			fields[i] = equal
		}
		return nullAware(col, nullEquality, equalStruct(fields)), nil

	default:
		return flatEqualFuncOf(col, nullEquality)
	}
}

// nullAware wraps equal with the comparison of null values. Columns without
// nulls skip the check entirely.
func nullAware(col *Column, nullEquality NullEquality, equal rowEqualFunc) rowEqualFunc {
	if !col.HasNulls() {
		return equal
	}
	mask := col.Nulls()
	nullsEqual := nullEquality == NullsEqual
	return func(i, j int) bool {
		iNull, jNull := mask.Contains(i), mask.Contains(j)
		switch {
		case iNull && jNull:
			return nullsEqual
		case iNull || jNull:
			return false
		default:
			return equal(i, j)
		}
	}
}

// equalList compares list rows element by element: the lists must have the
// same length and equal elements at each position.
func equalList(offsets []int32, elements rowEqualFunc) rowEqualFunc {
	return func(i, j int) bool {
		i0, i1 := offsets[i], offsets[i+1]
		j0, j1 := offsets[j], offsets[j+1]
		if i1-i0 != j1-j0 {
			return false
		}
		for n := i1 - i0; n > 0; n-- {
			if !elements(int(i0), int(j0)) {
				return false
			}
			i0++
			j0++
		}
		return true
	}
}

func equalStruct(fields []rowEqualFunc) rowEqualFunc {
	return func(i, j int) bool {
		for _, equal := range fields {
			if !equal(i, j) {
				return false
			}
		}
		return true
	}
}

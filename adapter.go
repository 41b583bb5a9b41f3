package columnar

// newColumnGroupStart constructs the predicate reporting whether row i of col
// starts a new group of equal values, given the null and NaN policies of the
// single column distinct count.
//
// The generic row comparator cannot merge nulls and NaN values into a single
// equivalence class, so null-or-NaN rows are handled before falling back to
// it. The comparator itself always treats nulls as equal: null grouping is
// fully decided here.
func newColumnGroupStart(col *Column, nullPolicy NullPolicy, nanPolicy NaNPolicy, nested bool) (rowPredicate, error) {
	equal, err := newRowEqual(&Table{columns: []*Column{col}, numRows: col.Len()}, NullsEqual, nested)
	if err != nil {
		return nil, err
	}

	mask := col.Nulls()
	isNull := rowPredicate(mask.Contains)
	nanIsNull := nanPolicy == NaNIsNull && col.Kind().IsFloat()
	if nanIsNull {
		isNaN := nanFuncOf(col)
		isNull = func(i int) bool { return mask.Contains(i) || isNaN(i) }
	}

	if nullPolicy == ExcludeNulls {
		return func(i int) bool {
			switch {
			case isNull(i):
				return false
			case i == 0:
				return true
			default:
				return !equal(i, i-1)
			}
		}, nil
	}

	if nanIsNull {
		return func(i int) bool {
			switch {
			case i == 0:
				return true
			case isNull(i):
				return !isNull(i - 1)
			default:
				return !equal(i, i-1)
			}
		}, nil
	}

	return func(i int) bool { return i == 0 || !equal(i, i-1) }, nil
}

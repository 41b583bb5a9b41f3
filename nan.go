package columnar

// IsNaN returns true if the value at the given row of col is NaN.
//
// The function always returns false for columns of kinds other than Float and
// Double. It does not look at the null mask: the value stored at the position
// of a null row is tested like any other.
func IsNaN(col *Column, row int) bool {
	return nanFuncOf(col)(row)
}

// nanFuncOf resolves the NaN classifier for the kind of col.
func nanFuncOf(col *Column) rowPredicate {
	if c := classOf(col.Kind()); c != nil {
		return c.isNaN(col)
	}
	return neverNaN(col)
}

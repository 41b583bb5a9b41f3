package columnar

import "math"

const (
	// MaxRows is the maximum number of rows in a column. Null masks address
	// rows with 32 bits integers.
	MaxRows = math.MaxInt32

	// MaxColumnDepth is the maximum nesting depth of list and struct columns.
	MaxColumnDepth = math.MaxInt8
)

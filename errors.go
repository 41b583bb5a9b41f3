package columnar

import (
	"github.com/pkg/errors"
)

var (
	// ErrRowCountMismatch is returned when columns expected to share the
	// same number of rows do not.
	ErrRowCountMismatch = errors.New("row count mismatch")

	// ErrNotComparable is returned when a column of a kind that cannot be
	// compared reaches an equality predicate, for example a nested column
	// given to the flat comparator.
	ErrNotComparable = errors.New("column is not comparable")

	// ErrInvalidKind is returned when an operation receives a column of a
	// kind it does not support.
	ErrInvalidKind = errors.New("invalid column kind")

	// ErrInvalidArgument is returned when the content of an argument breaks
	// the contract of an operation, for example null entries in a gather map.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTooManyRows is returned when a column exceeds MaxRows.
	ErrTooManyRows = errors.New("too many rows")
)

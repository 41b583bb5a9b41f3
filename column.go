package columnar

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/segmentio/columnar/nulls"
)

// Value is the constraint satisfied by the Go types that back the values of
// primitive columns.
type Value interface {
	bool | int32 | int64 | uint32 | uint64 | float32 | float64 | []byte | uuid.UUID
}

// Column is a read-only view of a sequence of typed values, each of which may
// be null.
//
// Primitive columns hold their values in a Go slice of the type matching their
// kind. List columns hold an offsets array of Len()+1 entries pointing into
// their single child column: row i is made of the child elements in
// [offsets[i], offsets[i+1]). Struct columns hold one child per field, each
// with the same number of rows as the struct column.
//
// Columns are immutable once constructed and are therefore safe to use
// concurrently from multiple goroutines.
type Column struct {
	kind     Kind
	numRows  int
	nulls    *nulls.Nulls
	values   any
	offsets  []int32
	children []*Column
}

func kindOf[T Value]() Kind {
	var z T
	switch any(z).(type) {
	case bool:
		return Boolean
	case int32:
		return Int32
	case int64:
		return Int64
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float
	case float64:
		return Double
	case []byte:
		return ByteArray
	default: // uuid.UUID
		return UUID
	}
}

// NewColumn constructs a primitive column holding values. The rows listed in
// nullRows are null; the values at these positions are ignored. The function
// panics if a null row is not in [0, len(values)).
//
// The column retains the values slice, the program must not modify it after
// calling NewColumn.
func NewColumn[T Value](values []T, nullRows ...int) *Column {
	return &Column{
		kind:    kindOf[T](),
		numRows: len(values),
		nulls:   mustNullMaskOf(nullRows, len(values)),
		values:  values,
	}
}

// NewStringColumn is a convenience wrapper around NewColumn for columns of
// strings, which are stored as byte arrays.
func NewStringColumn(values []string, nullRows ...int) *Column {
	b := make([][]byte, len(values))
	for i, v := range values {
		b[i] = []byte(v)
	}
	return NewColumn(b, nullRows...)
}

// NewListColumn constructs a list column of len(offsets)-1 rows from the
// elements of child.
func NewListColumn(offsets []int32, child *Column, nullRows ...int) (*Column, error) {
	if len(offsets) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "list offsets must hold at least one entry")
	}
	if child == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "list column has no child")
	}
	if offsets[0] < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "negative list offset %d", offsets[0])
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return nil, errors.Wrapf(ErrInvalidArgument, "list offsets are not monotonic at index %d: %d < %d", i, offsets[i], offsets[i-1])
		}
	}
	if last := int(offsets[len(offsets)-1]); last > child.Len() {
		return nil, errors.Wrapf(ErrInvalidArgument, "list offset %d is out of range of a child column of %d rows", last, child.Len())
	}
	mask, err := nullMaskOf(nullRows, len(offsets)-1)
	if err != nil {
		return nil, err
	}
	return &Column{
		kind:     List,
		numRows:  len(offsets) - 1,
		nulls:    mask,
		offsets:  offsets,
		children: []*Column{child},
	}, nil
}

// NewStructColumn constructs a struct column with one field per child. All
// children must have the same number of rows.
func NewStructColumn(children []*Column, nullRows ...int) (*Column, error) {
	if len(children) == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "struct column has no fields")
	}
	numRows := children[0].Len()
	for i, child := range children[1:] {
		if child.Len() != numRows {
			return nil, errors.Wrapf(ErrRowCountMismatch, "struct field %d has %d rows, expected %d", i+1, child.Len(), numRows)
		}
	}
	mask, err := nullMaskOf(nullRows, numRows)
	if err != nil {
		return nil, err
	}
	return &Column{
		kind:     Struct,
		numRows:  numRows,
		nulls:    mask,
		children: children,
	}, nil
}

// nullMaskOf builds the null mask of a column of numRows rows. Null masks
// store rows as uint32, so rows out of range are rejected before reaching
// them.
func nullMaskOf(rows []int, numRows int) (*nulls.Nulls, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	for _, row := range rows {
		if row < 0 || row >= numRows {
			return nil, errors.Wrapf(ErrInvalidArgument, "null row %d is out of range of a column of %d rows", row, numRows)
		}
	}
	return nulls.Build(rows...), nil
}

func mustNullMaskOf(rows []int, numRows int) *nulls.Nulls {
	mask, err := nullMaskOf(rows, numRows)
	if err != nil {
		panic(err)
	}
	return mask
}

// Kind returns the kind of values held by the column.
func (c *Column) Kind() Kind { return c.kind }

// Len returns the number of rows in the column.
func (c *Column) Len() int { return c.numRows }

// Nulls returns the null mask of the column, which may be nil.
func (c *Column) Nulls() *nulls.Nulls { return c.nulls }

// IsNull returns true if row i is null.
func (c *Column) IsNull(i int) bool { return c.nulls.Contains(i) }

// HasNulls returns true if at least one row of the column is null.
func (c *Column) HasNulls() bool { return c.nulls.Any() }

// NullCount returns the number of null rows.
func (c *Column) NullCount() int { return c.nulls.Count() }

// Offsets returns the offsets of a list column, nil for other kinds.
func (c *Column) Offsets() []int32 { return c.offsets }

// NumChildren returns the number of child columns.
func (c *Column) NumChildren() int { return len(c.children) }

// Child returns the child column at index i.
func (c *Column) Child(i int) *Column { return c.children[i] }

// Children returns the child columns. The program must treat the returned
// slice as immutable.
func (c *Column) Children() []*Column { return c.children }

// ListRange returns the range of child elements making row i of a list
// column.
func (c *Column) ListRange(i int) (begin, end int) {
	return int(c.offsets[i]), int(c.offsets[i+1])
}

// Depth returns the nesting depth of the column: zero for primitive columns,
// one plus the depth of the deepest child for lists and structs.
func (c *Column) Depth() int {
	depth := 0
	for _, child := range c.children {
		if d := child.Depth() + 1; d > depth {
			depth = d
		}
	}
	return depth
}

// Values returns the values of c as a slice of T. The function returns nil if
// T does not match the kind of the column.
func Values[T Value](c *Column) []T {
	values, _ := c.values.([]T)
	return values
}

// Slice returns a view of rows [i, j) of the column.
//
// The view shares the values of c; null masks are rebased so that row i of c
// is row 0 of the returned column. The method panics if the range is out of
// bounds.
func (c *Column) Slice(i, j int) *Column {
	if i < 0 || j > c.numRows || i > j {
		panic("column slice index out of bounds")
	}
	s := &Column{
		kind:    c.kind,
		numRows: j - i,
		nulls:   c.nulls.Slice(i, j),
	}
	switch c.kind {
	case List:
		s.offsets = c.offsets[i : j+1]
		s.children = c.children
	case Struct:
		s.children = make([]*Column, len(c.children))
		for k, child := range c.children {
			s.children[k] = child.Slice(i, j)
		}
	default:
		s.values = sliceValues(c.values, i, j)
	}
	return s
}

func sliceValues(values any, i, j int) any {
	switch v := values.(type) {
	case []bool:
		return v[i:j:j]
	case []int32:
		return v[i:j:j]
	case []int64:
		return v[i:j:j]
	case []uint32:
		return v[i:j:j]
	case []uint64:
		return v[i:j:j]
	case []float32:
		return v[i:j:j]
	case []float64:
		return v[i:j:j]
	case [][]byte:
		return v[i:j:j]
	case []uuid.UUID:
		return v[i:j:j]
	default:
		return nil
	}
}

func validateRowCount(numRows int) error {
	if numRows > MaxRows {
		return errors.Wrapf(ErrTooManyRows, "%d rows exceed the limit of %d", numRows, MaxRows)
	}
	return nil
}

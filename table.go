package columnar

import "github.com/pkg/errors"

// Table is an ordered collection of columns sharing the same number of rows.
// Row i of a table is the tuple made of row i of each of its columns.
type Table struct {
	columns []*Column
	numRows int
}

// NewTable constructs a table from the given columns. The function returns an
// error wrapping ErrRowCountMismatch if the columns do not all have the same
// number of rows.
func NewTable(columns ...*Column) (*Table, error) {
	t := &Table{columns: columns}
	for i, col := range columns {
		if col == nil {
			return nil, errors.Wrapf(ErrInvalidArgument, "column %d is nil", i)
		}
		if i == 0 {
			t.numRows = col.Len()
		}
		if col.Len() != t.numRows {
			return nil, errors.Wrapf(ErrRowCountMismatch, "column %d has %d rows, expected %d", i, col.Len(), t.numRows)
		}
		if col.Depth() > MaxColumnDepth {
			return nil, errors.Wrapf(ErrInvalidArgument, "column %d is nested %d levels deep, the limit is %d", i, col.Depth(), MaxColumnDepth)
		}
	}
	if err := validateRowCount(t.numRows); err != nil {
		return nil, err
	}
	return t, nil
}

// NumRows returns the number of rows in the table.
func (t *Table) NumRows() int { return t.numRows }

// NumColumns returns the number of columns in the table.
func (t *Table) NumColumns() int { return len(t.columns) }

// Column returns the column at index i.
func (t *Table) Column(i int) *Column { return t.columns[i] }

// Columns returns the columns of the table. The program must treat the
// returned slice as immutable.
func (t *Table) Columns() []*Column { return t.columns }

// HasNested returns true if at least one column of the table is a list or a
// struct.
func (t *Table) HasNested() bool {
	for _, col := range t.columns {
		if col.Kind().IsNested() {
			return true
		}
	}
	return false
}

// Slice returns a view of rows [i, j) of the table.
func (t *Table) Slice(i, j int) *Table {
	s := &Table{columns: make([]*Column, len(t.columns)), numRows: j - i}
	for k, col := range t.columns {
		s.columns[k] = col.Slice(i, j)
	}
	return s
}

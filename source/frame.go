// Package source loads tables of columns from data files.
//
// CSV and parquet files are supported, possibly compressed with one of the
// codecs of the compress package, which are detected from the file name
// extension.
package source

import (
	"github.com/pkg/errors"

	"github.com/segmentio/columnar"
)

// Frame is a table whose columns are named.
type Frame struct {
	Names []string
	Table *columnar.Table
}

func newFrame(names []string, columns []*columnar.Column) (*Frame, error) {
	table, err := columnar.NewTable(columns...)
	if err != nil {
		return nil, err
	}
	return &Frame{Names: names, Table: table}, nil
}

// Column returns the column with the given name, or nil if the frame has no
// such column.
func (f *Frame) Column(name string) *columnar.Column {
	for i, n := range f.Names {
		if n == name {
			return f.Table.Column(i)
		}
	}
	return nil
}

// Select returns a frame made of the named columns of f, in the order of the
// arguments. The function returns f itself when names is empty.
func (f *Frame) Select(names ...string) (*Frame, error) {
	if len(names) == 0 {
		return f, nil
	}
	columns := make([]*columnar.Column, len(names))
	for i, name := range names {
		if columns[i] = f.Column(name); columns[i] == nil {
			return nil, errors.Wrapf(columnar.ErrInvalidArgument, "no column named %q", name)
		}
	}
	return newFrame(names, columns)
}

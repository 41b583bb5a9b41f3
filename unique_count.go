package columnar

import (
	"go.uber.org/zap"

	"github.com/segmentio/columnar/internal/scratch"
)

// UniqueCount returns the number of groups of consecutive equal values in col.
//
// The rows of col must already be arranged so that equal values are
// contiguous, for example by sorting them. The function does not verify it:
// on input breaking this precondition it returns a meaningless count rather
// than an error.
//
// nullPolicy selects whether null rows are counted, and nanPolicy whether NaN
// values of floating point columns are grouped with nulls. With ExcludeNulls,
// rows that are null (or NaN under NaNIsNull) never start a group. With
// IncludeNulls, consecutive null rows form a single group, as do consecutive
// null-or-NaN rows under NaNIsNull. NaN values compared as values are never
// equal.
//
// The returned count is in [0, col.Len()].
func UniqueCount(col *Column, nullPolicy NullPolicy, nanPolicy NaNPolicy, options ...CountOption) (int, error) {
	config, err := NewCountConfig(options...)
	if err != nil {
		return 0, err
	}

	numRows := col.Len()
	if err := validateRowCount(numRows); err != nil {
		return 0, err
	}
	if numRows == 0 {
		return 0, nil
	}
	if nullPolicy == ExcludeNulls && col.NullCount() == numRows {
		return 0, nil
	}

	nested := col.Kind().IsNested()
	startsGroup, err := newColumnGroupStart(col, nullPolicy, nanPolicy, nested)
	if err != nil {
		return 0, err
	}

	config.Logger.Debug("counting distinct values",
		zap.Stringer("kind", col.Kind()),
		zap.Int("rows", numRows),
		zap.Stringer("nulls", nullPolicy),
		zap.Stringer("nan", nanPolicy),
	)
	return countGroups(config, numRows, nested, startsGroup)
}

// UniqueCountTable returns the number of groups of consecutive equal rows in
// table.
//
// As with UniqueCount, the rows must be arranged so that equal rows are
// contiguous; the function does not verify it.
//
// Rows are compared with the predicate returned by NewRowEqual, where
// nullEquality selects whether two null values are equal.
func UniqueCountTable(table *Table, nullEquality NullEquality, options ...CountOption) (int, error) {
	config, err := NewCountConfig(options...)
	if err != nil {
		return 0, err
	}

	numRows := table.NumRows()
	if numRows == 0 {
		return 0, nil
	}

	nested := table.HasNested()
	equal, err := newRowEqual(table, nullEquality, nested)
	if err != nil {
		return 0, err
	}

	config.Logger.Debug("counting distinct rows",
		zap.Int("columns", table.NumColumns()),
		zap.Int("rows", numRows),
		zap.Stringer("nulls", nullEquality),
	)
	return countGroups(config, numRows, nested, func(i int) bool {
		return i == 0 || !equal(i, i-1)
	})
}

// countGroups counts the positions in [0, numRows) where startsGroup is true.
//
// Flat inputs use a single fused pass evaluating the predicate and counting
// its results. Nested inputs first materialize the predicate results in a
// scratch buffer, then count them in a second pass, so the recursive
// comparators are not invoked from within the reduction.
func countGroups(config *CountConfig, numRows int, nested bool, startsGroup rowPredicate) (int, error) {
	if !nested {
		config.Logger.Debug("fused distinct count pass", zap.Int("rows", numRows))
		return config.Stream.CountIf(numRows, startsGroup)
	}

	buffer := scratch.GetBools(numRows)
	defer buffer.Release()

	config.Logger.Debug("buffered distinct count passes", zap.Int("rows", numRows))

	if err := config.Stream.Transform(buffer.Slice(), startsGroup); err != nil {
		return 0, err
	}
	return config.Stream.Count(buffer.Slice())
}

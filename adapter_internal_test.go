package columnar

import (
	"errors"
	"math"
	"testing"
)

func TestColumnGroupStart(t *testing.T) {
	nan := math.NaN()
	// [null, NaN, NaN, 1, 1, 2]
	col := NewColumn([]float64{0, nan, nan, 1, 1, 2}, 0)

	tests := []struct {
		nulls NullPolicy
		nan   NaNPolicy
		want  []bool
	}{
		{IncludeNulls, NaNIsValue, []bool{true, true, true, true, false, true}},
		{IncludeNulls, NaNIsNull, []bool{true, false, false, true, false, true}},
		{ExcludeNulls, NaNIsValue, []bool{false, true, true, true, false, true}},
		{ExcludeNulls, NaNIsNull, []bool{false, false, false, true, false, true}},
	}

	for _, test := range tests {
		t.Run(test.nulls.String()+"/"+test.nan.String(), func(t *testing.T) {
			for _, nested := range []bool{false, true} {
				startsGroup, err := newColumnGroupStart(col, test.nulls, test.nan, nested)
				if err != nil {
					t.Fatal(err)
				}
				for i, want := range test.want {
					if got := startsGroup(i); got != want {
						t.Errorf("nested=%t: row %d: want=%t got=%t", nested, i, want, got)
					}
				}
			}
		})
	}
}

func TestFlatRowEqualRejectsNestedColumns(t *testing.T) {
	list, err := NewListColumn([]int32{0, 1}, NewColumn([]int32{1}))
	if err != nil {
		t.Fatal(err)
	}
	table, err := NewTable(list)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := newRowEqual(table, NullsEqual, false); !errors.Is(err, ErrNotComparable) {
		t.Errorf("wrong error: %v", err)
	}
}

func TestUnknownKindNotComparable(t *testing.T) {
	col := &Column{numRows: 1}
	if _, err := nestedEqualFuncOf(col, NullsEqual, 0); !errors.Is(err, ErrNotComparable) {
		t.Errorf("wrong error: %v", err)
	}
	if nanFuncOf(col)(0) {
		t.Error("column of unknown kind reported NaN values")
	}
}

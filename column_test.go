package columnar_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/segmentio/columnar"
)

func listColumn(t testing.TB, offsets []int32, child *columnar.Column, nullRows ...int) *columnar.Column {
	t.Helper()
	col, err := columnar.NewListColumn(offsets, child, nullRows...)
	if err != nil {
		t.Fatal(err)
	}
	return col
}

func structColumn(t testing.TB, children []*columnar.Column, nullRows ...int) *columnar.Column {
	t.Helper()
	col, err := columnar.NewStructColumn(children, nullRows...)
	if err != nil {
		t.Fatal(err)
	}
	return col
}

func newTable(t testing.TB, columns ...*columnar.Column) *columnar.Table {
	t.Helper()
	table, err := columnar.NewTable(columns...)
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func TestColumnKinds(t *testing.T) {
	tests := []struct {
		col  *columnar.Column
		kind columnar.Kind
	}{
		{columnar.NewColumn([]bool{true}), columnar.Boolean},
		{columnar.NewColumn([]int32{1}), columnar.Int32},
		{columnar.NewColumn([]int64{1}), columnar.Int64},
		{columnar.NewColumn([]uint32{1}), columnar.Uint32},
		{columnar.NewColumn([]uint64{1}), columnar.Uint64},
		{columnar.NewColumn([]float32{1}), columnar.Float},
		{columnar.NewColumn([]float64{1}), columnar.Double},
		{columnar.NewStringColumn([]string{"a"}), columnar.ByteArray},
		{columnar.NewColumn([]uuid.UUID{uuid.New()}), columnar.UUID},
	}

	for _, test := range tests {
		t.Run(test.kind.String(), func(t *testing.T) {
			if kind := test.col.Kind(); kind != test.kind {
				t.Errorf("kind mismatch: want=%s got=%s", test.kind, kind)
			}
			if n := test.col.Len(); n != 1 {
				t.Errorf("wrong number of rows: want=1 got=%d", n)
			}
			if test.col.HasNulls() {
				t.Error("column has unexpected nulls")
			}
		})
	}
}

func TestColumnNulls(t *testing.T) {
	col := columnar.NewColumn([]int64{1, 0, 0, 2}, 1, 2)

	if n := col.NullCount(); n != 2 {
		t.Errorf("wrong null count: want=2 got=%d", n)
	}
	for i, want := range []bool{false, true, true, false} {
		if got := col.IsNull(i); got != want {
			t.Errorf("row %d: wrong null flag: want=%t got=%t", i, want, got)
		}
	}
}

func TestColumnSlice(t *testing.T) {
	col := columnar.NewColumn([]int32{1, 2, 3, 4, 5}, 0, 3)
	s := col.Slice(1, 4)

	if n := s.Len(); n != 3 {
		t.Fatalf("wrong number of rows: want=3 got=%d", n)
	}
	if values := columnar.Values[int32](s); !reflect.DeepEqual(values, []int32{2, 3, 4}) {
		t.Errorf("wrong values: %v", values)
	}
	if rows := s.Nulls().Rows(); !reflect.DeepEqual(rows, []int{2}) {
		t.Errorf("wrong null rows: %v", rows)
	}
	if s := col.Slice(1, 3); s.HasNulls() {
		t.Errorf("slice without nulls has a null mask: %v", s.Nulls())
	}
}

func TestColumnSliceNested(t *testing.T) {
	elements := columnar.NewColumn([]int64{1, 2, 3, 4, 5, 6})
	list := listColumn(t, []int32{0, 2, 2, 5, 6}, elements, 1)

	s := list.Slice(2, 4)
	if n := s.Len(); n != 2 {
		t.Fatalf("wrong number of rows: want=2 got=%d", n)
	}
	if begin, end := s.ListRange(0); begin != 2 || end != 5 {
		t.Errorf("wrong range of row 0: [%d,%d)", begin, end)
	}
	if s.HasNulls() {
		t.Error("slice has unexpected nulls")
	}

	st := structColumn(t, []*columnar.Column{
		columnar.NewColumn([]int32{1, 2, 3}),
		columnar.NewStringColumn([]string{"a", "b", "c"}, 2),
	})
	s = st.Slice(1, 3)
	if n := s.Child(1).Len(); n != 2 {
		t.Errorf("wrong number of rows in struct field: want=2 got=%d", n)
	}
	if !s.Child(1).IsNull(1) {
		t.Error("struct field lost its null row")
	}
}

func TestColumnSliceOutOfBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("slicing out of bounds did not panic")
		}
	}()
	columnar.NewColumn([]int32{1, 2}).Slice(1, 3)
}

func TestColumnNullRowsOutOfRange(t *testing.T) {
	for _, nullRows := range [][]int{{0, 5}, {1, -1}, {2}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("null rows %v of a two rows column did not panic", nullRows)
				}
			}()
			columnar.NewColumn([]int32{0, 7}, nullRows...)
		}()
	}

	elements := columnar.NewColumn([]int64{1, 2, 3})
	if _, err := columnar.NewListColumn([]int32{0, 1, 3}, elements, 2); !errors.Is(err, columnar.ErrInvalidArgument) {
		t.Errorf("wrong error for list null row out of range: %v", err)
	}
	if _, err := columnar.NewStructColumn([]*columnar.Column{elements}, -1); !errors.Is(err, columnar.ErrInvalidArgument) {
		t.Errorf("wrong error for negative struct null row: %v", err)
	}
}

func TestNewListColumnErrors(t *testing.T) {
	elements := columnar.NewColumn([]int64{1, 2, 3})

	tests := []struct {
		scenario string
		offsets  []int32
		child    *columnar.Column
	}{
		{"no offsets", nil, elements},
		{"no child", []int32{0}, nil},
		{"negative offset", []int32{-1, 2}, elements},
		{"decreasing offsets", []int32{0, 2, 1}, elements},
		{"offset past the end", []int32{0, 4}, elements},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			_, err := columnar.NewListColumn(test.offsets, test.child)
			if !errors.Is(err, columnar.ErrInvalidArgument) {
				t.Errorf("wrong error: %v", err)
			}
		})
	}
}

func TestNewStructColumnErrors(t *testing.T) {
	if _, err := columnar.NewStructColumn(nil); !errors.Is(err, columnar.ErrInvalidArgument) {
		t.Errorf("wrong error for empty struct: %v", err)
	}

	_, err := columnar.NewStructColumn([]*columnar.Column{
		columnar.NewColumn([]int32{1, 2}),
		columnar.NewColumn([]int32{1}),
	})
	if !errors.Is(err, columnar.ErrRowCountMismatch) {
		t.Errorf("wrong error for mismatching fields: %v", err)
	}
}

func TestColumnDepth(t *testing.T) {
	leaf := columnar.NewColumn([]int32{1, 2})
	list := listColumn(t, []int32{0, 1, 2}, leaf)
	st := structColumn(t, []*columnar.Column{leaf, list})

	for _, test := range []struct {
		col   *columnar.Column
		depth int
	}{
		{leaf, 0},
		{list, 1},
		{st, 2},
	} {
		if depth := test.col.Depth(); depth != test.depth {
			t.Errorf("%s column: wrong depth: want=%d got=%d", test.col.Kind(), test.depth, depth)
		}
	}
}

func TestValuesKindMismatch(t *testing.T) {
	if values := columnar.Values[int64](columnar.NewColumn([]int32{1})); values != nil {
		t.Errorf("values of the wrong type were returned: %v", values)
	}
}

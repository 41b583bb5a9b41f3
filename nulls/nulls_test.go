package nulls_test

import (
	"reflect"
	"testing"

	"github.com/segmentio/columnar/nulls"
)

func TestNilNulls(t *testing.T) {
	var n *nulls.Nulls

	if n.Any() {
		t.Error("nil mask must be empty")
	}
	if n.Contains(0) {
		t.Error("nil mask must not contain any row")
	}
	if n.Count() != 0 {
		t.Errorf("wrong count: want=0 got=%d", n.Count())
	}
	if s := n.Slice(0, 10); s != nil {
		t.Errorf("slice of nil mask must be nil: %v", s)
	}
	if n.Clone() != nil {
		t.Error("clone of nil mask must be nil")
	}
}

func TestNullsBuild(t *testing.T) {
	n := nulls.Build(1, 3, 5, 3)

	if got := n.Count(); got != 3 {
		t.Errorf("wrong count: want=3 got=%d", got)
	}
	for row, want := range []bool{false, true, false, true, false, true, false} {
		if got := n.Contains(row); got != want {
			t.Errorf("row %d: want=%t got=%t", row, want, got)
		}
	}
	if got := n.Rows(); !reflect.DeepEqual(got, []int{1, 3, 5}) {
		t.Errorf("wrong rows: %v", got)
	}
}

func TestNullsCountRange(t *testing.T) {
	n := nulls.Build(0, 2, 4, 6, 8)

	tests := []struct {
		i, j int
		want int
	}{
		{0, 0, 0},
		{0, 1, 1},
		{0, 9, 5},
		{1, 2, 0},
		{1, 3, 1},
		{3, 7, 2},
		{5, 100, 2},
		{9, 100, 0},
	}

	for _, test := range tests {
		if got := n.CountRange(test.i, test.j); got != test.want {
			t.Errorf("CountRange(%d, %d): want=%d got=%d", test.i, test.j, test.want, got)
		}
	}
}

func TestNullsSlice(t *testing.T) {
	n := nulls.Build(0, 2, 4, 6, 8)

	s := n.Slice(3, 8)
	if got := s.Rows(); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("wrong rows after slicing: %v", got)
	}
	if s := n.Slice(5, 6); s != nil {
		t.Errorf("slice without nulls must be nil: %v", s)
	}
}

func TestNullsRange(t *testing.T) {
	n := nulls.Range(2, 5)
	if got := n.Rows(); !reflect.DeepEqual(got, []int{2, 3, 4}) {
		t.Errorf("wrong rows: %v", got)
	}
	if nulls.Range(3, 3).Any() {
		t.Error("empty range must not set any row")
	}
}

func TestNullsClone(t *testing.T) {
	n := nulls.Build(1)
	c := n.Clone()
	c.Add(2)

	if n.Contains(2) {
		t.Error("mutating the clone must not change the original mask")
	}
	if !c.Contains(1) || !c.Contains(2) {
		t.Errorf("wrong clone content: %v", c)
	}
}

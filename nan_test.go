package columnar_test

import (
	"math"
	"testing"

	"github.com/segmentio/columnar"
)

func TestIsNaN(t *testing.T) {
	nan := math.NaN()

	tests := []struct {
		scenario string
		col      *columnar.Column
		want     []bool
	}{
		{
			scenario: "double",
			col:      columnar.NewColumn([]float64{1, nan, math.Inf(+1), -nan}),
			want:     []bool{false, true, false, true},
		},
		{
			scenario: "float",
			col:      columnar.NewColumn([]float32{float32(nan), 0}),
			want:     []bool{true, false},
		},
		{
			scenario: "null rows are tested by value",
			col:      columnar.NewColumn([]float64{nan, 1}, 0, 1),
			want:     []bool{true, false},
		},
		{
			scenario: "integers",
			col:      columnar.NewColumn([]int64{0, 1}),
			want:     []bool{false, false},
		},
		{
			scenario: "strings",
			col:      columnar.NewStringColumn([]string{"NaN"}),
			want:     []bool{false},
		},
		{
			scenario: "lists",
			col: listColumn(t, []int32{0, 1},
				columnar.NewColumn([]float64{nan}),
			),
			want: []bool{false},
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			for i, want := range test.want {
				if got := columnar.IsNaN(test.col, i); got != want {
					t.Errorf("row %d: want=%t got=%t", i, want, got)
				}
			}
		})
	}
}

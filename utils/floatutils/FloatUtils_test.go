package floatutils

import (
	"reflect"
	"testing"
)

func TestMaxSlice(t *testing.T) {
	tests := []struct {
		values  []float64
		max     float64
		indices []int
	}{
		{[]float64{1, 2, 3}, 3, []int{2}},
		{[]float64{3, 2, 1}, 3, []int{0}},
		{[]float64{2, 2, 1}, 2, []int{0, 1}},
		{[]float64{0, 0, 0, 0}, 0, []int{0, 1, 2, 3}},
		{[]float64{-1, -3, -1}, -1, []int{0, 2}},
		{[]float64{5}, 5, []int{0}},
	}

	for _, test := range tests {
		max, indices := MaxSlice(test.values)
		if max != test.max {
			t.Errorf("MaxSlice(%v): expected max %v, got %v", test.values,
				test.max, max)
		}
		if !reflect.DeepEqual(indices, test.indices) {
			t.Errorf("MaxSlice(%v): expected indices %v, got %v", test.values,
				test.indices, indices)
		}
	}
}

func TestMinMax(t *testing.T) {
	if m := Min(3, 1, 2); m != 1 {
		t.Errorf("Min: expected 1, got %v", m)
	}
	if m := Max(3, 1, 2); m != 3 {
		t.Errorf("Max: expected 3, got %v", m)
	}
	if m := Max(-2); m != -2 {
		t.Errorf("Max single: expected -2, got %v", m)
	}
}

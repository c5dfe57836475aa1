package table

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestPairCombinesEstimates(t *testing.T) {
	p := NewPair(3)
	state := mat.NewVecDense(2, []float64{2, 7})

	p.A.Set(state, 0, 1.0)
	p.B.Set(state, 0, 0.5)
	p.B.Set(state, 2, -2.0)

	combined := p.ActionValues(state)

	expected := []float64{1.5, 0.0, -2.0}
	for i, want := range expected {
		if got := combined.AtVec(i); got != want {
			t.Errorf("action %v: expected combined %v, got %v", i, want, got)
		}
	}
}

func TestPairTablesAreIndependent(t *testing.T) {
	p := NewPair(2)
	state := mat.NewVecDense(1, []float64{3})

	p.A.Set(state, 1, 4.0)

	if v := p.B.At(state, 1); v != 0.0 {
		t.Errorf("writing A must not write B, got %v", v)
	}
	if v := p.A.At(state, 1); v != 4.0 {
		t.Errorf("expected 4.0 in A, got %v", v)
	}
}

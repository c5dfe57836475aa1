package policy

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
	"sfneuman.com/gridlearn/table"
	ts "sfneuman.com/gridlearn/timestep"
)

const sumTolerance float64 = 1e-12

func TestProbabilitiesSumToOne(t *testing.T) {
	cases := []struct {
		values  []float64
		epsilon float64
	}{
		{[]float64{1, 2, 3, 4}, 0.0},
		{[]float64{1, 2, 3, 4}, 0.1},
		{[]float64{0, 0, 0, 0}, 0.5},
		{[]float64{2, 2, 1}, 0.25},
		{[]float64{-1, -1, -1, -5}, 1.0},
		{[]float64{7}, 0.3},
	}

	for _, c := range cases {
		probs := Probabilities(mat.NewVecDense(len(c.values), c.values),
			c.epsilon)

		sum := 0.0
		for i := 0; i < probs.Len(); i++ {
			p := probs.AtVec(i)
			if p < 0 {
				t.Errorf("values %v epsilon %v: negative probability %v",
					c.values, c.epsilon, p)
			}
			sum += p
		}

		if math.Abs(sum-1.0) > sumTolerance {
			t.Errorf("values %v epsilon %v: probabilities sum to %v",
				c.values, c.epsilon, sum)
		}
	}
}

func TestProbabilitiesSplitTies(t *testing.T) {
	values := mat.NewVecDense(4, []float64{2, 2, 1, 0})
	probs := Probabilities(values, 0.2)

	// epsilon/n = 0.05 everywhere, the two maximizers split 0.8
	expected := []float64{0.45, 0.45, 0.05, 0.05}
	for i, want := range expected {
		if got := probs.AtVec(i); math.Abs(got-want) > sumTolerance {
			t.Errorf("action %v: expected probability %v, got %v", i, want,
				got)
		}
	}
}

// dominantTable returns estimates over numActions actions where
// bestAction strictly dominates in the argument state
func dominantTable(state *mat.VecDense, numActions,
	bestAction int) *table.ActionValue {
	q := table.NewActionValue(numActions)
	for a := 0; a < numActions; a++ {
		q.Set(state, a, -1.0)
	}
	q.Set(state, bestAction, 1.0)
	return q
}

func TestEGreedyGreedyWhenEpsilonZero(t *testing.T) {
	state := mat.NewVecDense(2, []float64{1, 1})
	q := dominantTable(state, 4, 2)

	p, err := NewEGreedy(q, 0.0, 42)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}

	step := ts.New(ts.First, 0, 1, state, 0)
	for i := 0; i < 1000; i++ {
		if a := int(p.SelectAction(step).AtVec(0)); a != 2 {
			t.Fatalf("draw %v: expected dominant action 2, got %v", i, a)
		}
	}
}

func TestEGreedyUniformWhenEpsilonOne(t *testing.T) {
	state := mat.NewVecDense(2, []float64{0, 3})
	q := dominantTable(state, 4, 0)

	p, err := NewEGreedy(q, 1.0, 13)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}

	const draws = 10000
	counts := make([]int, 4)
	step := ts.New(ts.First, 0, 1, state, 0)
	for i := 0; i < draws; i++ {
		counts[int(p.SelectAction(step).AtVec(0))]++
	}

	for a, count := range counts {
		frequency := float64(count) / draws
		if math.Abs(frequency-0.25) > 0.02 {
			t.Errorf("action %v: expected frequency near 0.25, got %v", a,
				frequency)
		}
	}
}

func TestEGreedyBreaksTiesUniformly(t *testing.T) {
	state := mat.NewVecDense(1, []float64{5})
	q := table.NewActionValue(3)
	q.Set(state, 0, 1.0)
	q.Set(state, 2, 1.0)

	p, err := NewEGreedy(q, 0.0, 7)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}

	const draws = 2000
	counts := make([]int, 3)
	step := ts.New(ts.First, 0, 1, state, 0)
	for i := 0; i < draws; i++ {
		counts[int(p.SelectAction(step).AtVec(0))]++
	}

	if counts[1] != 0 {
		t.Errorf("non-maximizing action selected %v times at epsilon 0",
			counts[1])
	}
	for _, a := range []int{0, 2} {
		frequency := float64(counts[a]) / draws
		if math.Abs(frequency-0.5) > 0.05 {
			t.Errorf("tied action %v: expected frequency near 0.5, got %v",
				a, frequency)
		}
	}
}

func TestEGreedyEvalActsGreedily(t *testing.T) {
	state := mat.NewVecDense(1, []float64{0})
	q := dominantTable(state, 4, 3)

	p, err := NewEGreedy(q, 1.0, 91)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}

	p.Eval()
	if !p.IsEval() {
		t.Fatal("policy should report evaluation mode")
	}

	step := ts.New(ts.First, 0, 1, state, 0)
	for i := 0; i < 100; i++ {
		if a := int(p.SelectAction(step).AtVec(0)); a != 3 {
			t.Fatalf("eval draw %v: expected greedy action 3, got %v", i, a)
		}
	}

	p.Train()
	if p.IsEval() {
		t.Fatal("policy should report training mode")
	}
}

func TestNewEGreedyRejectsBadEpsilon(t *testing.T) {
	q := table.NewActionValue(2)

	for _, epsilon := range []float64{-0.1, 1.1} {
		if _, err := NewEGreedy(q, epsilon, 1); err == nil {
			t.Errorf("expected an error for epsilon %v", epsilon)
		}
	}
}

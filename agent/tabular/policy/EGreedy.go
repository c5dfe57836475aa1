// Package policy implements policies over tabular action-value estimates
package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
	"sfneuman.com/gridlearn/table"
	ts "sfneuman.com/gridlearn/timestep"
	"sfneuman.com/gridlearn/utils/floatutils"
)

// Probabilities returns the epsilon greedy distribution over actions
// induced by values. Every action receives probability epsilon/n, and
// the actions maximizing values split the remaining (1 - epsilon)
// evenly between themselves, so that tied maximizers are equally
// likely. The returned distribution always sums to 1.
func Probabilities(values mat.Vector, epsilon float64) *mat.VecDense {
	n := values.Len()
	probs := make([]float64, n)
	for i := range probs {
		probs[i] = epsilon / float64(n)
	}

	_, greedy := floatutils.MaxSlice(mat.Col(nil, 0, values))
	share := (1.0 - epsilon) / float64(len(greedy))
	for _, action := range greedy {
		probs[action] += share
	}

	return mat.NewVecDense(n, probs)
}

// EGreedy implements an epsilon greedy policy over the action-value
// estimates of a table.Estimator. With probability epsilon the policy
// selects an action uniformly at random; otherwise it selects an
// action maximizing the estimates, ties broken uniformly at random.
//
// In evaluation mode the policy acts as if epsilon were 0.
type EGreedy struct {
	estimates table.Estimator
	epsilon   float64
	eval      bool
	seed      rand.Source
}

// NewEGreedy constructs a new EGreedy policy over estimates with the
// argument exploration rate
func NewEGreedy(estimates table.Estimator, epsilon float64,
	seed uint64) (*EGreedy, error) {
	if epsilon < 0.0 || epsilon > 1.0 {
		return nil, fmt.Errorf("newegreedy: epsilon must be in [0, 1], "+
			"got %v", epsilon)
	}

	source := rand.NewSource(seed)

	return &EGreedy{
		estimates: estimates,
		epsilon:   epsilon,
		seed:      source,
	}, nil
}

// SelectAction selects an action from an epsilon greedy distribution
// over the estimated values of each action in the timestep's
// observation
func (e *EGreedy) SelectAction(t ts.TimeStep) *mat.VecDense {
	values := e.estimates.ActionValues(t.Observation)
	probabilities := Probabilities(values, e.currentEpsilon())

	sampler := distuv.NewCategorical(mat.Col(nil, 0, probabilities), e.seed)
	action := sampler.Rand()

	return mat.NewVecDense(1, []float64{action})
}

// Eval sets the policy to evaluation mode, where it acts greedily
func (e *EGreedy) Eval() {
	e.eval = true
}

// Train sets the policy to training mode, where it explores at rate
// epsilon
func (e *EGreedy) Train() {
	e.eval = false
}

// IsEval indicates whether the policy is in evaluation mode
func (e *EGreedy) IsEval() bool {
	return e.eval
}

// Epsilon returns the policy's exploration rate
func (e *EGreedy) Epsilon() float64 {
	return e.epsilon
}

// SetEpsilon sets the policy's exploration rate
func (e *EGreedy) SetEpsilon(epsilon float64) {
	e.epsilon = epsilon
}

func (e *EGreedy) currentEpsilon() float64 {
	if e.eval {
		return 0.0
	}
	return e.epsilon
}

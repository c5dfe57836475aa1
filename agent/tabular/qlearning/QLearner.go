package qlearning

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
	"sfneuman.com/gridlearn/table"
	"sfneuman.com/gridlearn/timestep"
	"sfneuman.com/gridlearn/utils/floatutils"
)

// QLearner implements the update functionality for the Q-Learning
// algorithm with a single action-value table.
type QLearner struct {
	q            *table.ActionValue
	step         timestep.TimeStep
	action       int
	nextStep     timestep.TimeStep
	learningRate float64
}

// newQLearner creates a new QLearner updating the estimates of q
func newQLearner(q *table.ActionValue, learningRate float64) *QLearner {
	return &QLearner{
		q:            q,
		learningRate: learningRate,
	}
}

// ObserveFirst observes and records the first episodic timestep
func (q *QLearner) ObserveFirst(t timestep.TimeStep) error {
	if !t.First() {
		fmt.Fprintf(os.Stderr, "Warning: ObserveFirst() should only be "+
			"called on the first timestep (current timestep = %d)\n", t.Number)
	}
	q.step = timestep.TimeStep{}
	q.nextStep = t
	return nil
}

// Observe observes and records any timestep other than the first
// timestep
func (q *QLearner) Observe(action mat.Vector,
	nextStep timestep.TimeStep) error {
	if action.Len() != 1 {
		return fmt.Errorf("observe: value-based methods cannot use "+
			"multi-dimensional actions (action dim = %d)", action.Len())
	}
	q.step = q.nextStep
	q.action = int(action.AtVec(0))
	q.nextStep = nextStep
	return nil
}

// TdError returns the TD error of a transition under the current
// estimates. The target bootstraps off the maximum estimated value in
// the next state, except on terminal transitions, where the target is
// the reward alone.
func (q *QLearner) TdError(t timestep.Transition) float64 {
	target := t.Reward()
	if !t.Terminal() {
		nextValues := q.q.ActionValues(t.NextState())
		maxValue, _ := floatutils.MaxSlice(mat.Col(nil, 0, nextValues))
		target += t.Discount() * maxValue
	}

	action := int(t.Action.AtVec(0))
	return target - q.q.At(t.State(), action)
}

// Step updates the action-value estimates of the Agent's Learner and
// Policy for the last observed transition
func (q *QLearner) Step() error {
	action := mat.NewVecDense(1, []float64{float64(q.action)})
	tdError := q.TdError(timestep.NewTransition(q.step, action, q.nextStep))

	state := q.step.Observation
	current := q.q.At(state, q.action)
	q.q.Set(state, q.action, current+q.learningRate*tdError)

	return nil
}

// EndEpisode performs cleanup at the end of an episode
func (q *QLearner) EndEpisode() {}

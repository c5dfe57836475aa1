package esarsa

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
	"sfneuman.com/gridlearn/agent"
	"sfneuman.com/gridlearn/agent/tabular/policy"
	"sfneuman.com/gridlearn/table"
	"sfneuman.com/gridlearn/timestep"
)

// ESarsaLearner implements the update functionality for the Expected
// Sarsa algorithm. The update target bootstraps off the expected value
// of the next state under an ε-greedy policy, reading the behaviour
// policy's current exploration rate so that the expectation tracks any
// decay schedule.
type ESarsaLearner struct {
	q            *table.ActionValue
	behaviour    agent.EGreedyPolicy
	step         timestep.TimeStep
	action       int
	nextStep     timestep.TimeStep
	learningRate float64
}

// newESarsaLearner creates a new ESarsaLearner updating the estimates
// of q toward expectations under behaviour
func newESarsaLearner(q *table.ActionValue, behaviour agent.EGreedyPolicy,
	learningRate float64) *ESarsaLearner {
	return &ESarsaLearner{
		q:            q,
		behaviour:    behaviour,
		learningRate: learningRate,
	}
}

// ObserveFirst observes and records the first episodic timestep
func (e *ESarsaLearner) ObserveFirst(t timestep.TimeStep) error {
	if !t.First() {
		fmt.Fprintf(os.Stderr, "Warning: ObserveFirst() should only be "+
			"called on the first timestep (current timestep = %d)\n", t.Number)
	}
	e.step = timestep.TimeStep{}
	e.nextStep = t
	return nil
}

// Observe observes and records any timestep other than the first
// timestep
func (e *ESarsaLearner) Observe(action mat.Vector,
	nextStep timestep.TimeStep) error {
	if action.Len() != 1 {
		return fmt.Errorf("observe: value-based methods cannot use "+
			"multi-dimensional actions (action dim = %d)", action.Len())
	}
	e.step = e.nextStep
	e.action = int(action.AtVec(0))
	e.nextStep = nextStep
	return nil
}

// expectedValue returns the ε-greedy expectation of the action values
// in the next state, using the behaviour policy's current exploration
// rate
func (e *ESarsaLearner) expectedValue(values *mat.VecDense) float64 {
	probabilities := policy.Probabilities(values, e.behaviour.Epsilon())
	return mat.Dot(probabilities, values)
}

// TdError computes the TD error generated by the learner on a
// transition
func (e *ESarsaLearner) TdError(t timestep.Transition) float64 {
	target := t.Reward()
	if !t.Terminal() {
		target += t.Discount() * e.expectedValue(e.q.ActionValues(
			t.NextState()))
	}
	return target - e.q.At(t.State(), int(t.Action.AtVec(0)))
}

// Step updates the action-value estimates for the last observed
// transition
func (e *ESarsaLearner) Step() error {
	target := e.nextStep.Reward
	if !e.nextStep.Last() {
		target += e.nextStep.Discount * e.expectedValue(e.q.ActionValues(
			e.nextStep.Observation))
	}

	state := e.step.Observation
	current := e.q.At(state, e.action)
	e.q.Set(state, e.action, current+e.learningRate*(target-current))

	return nil
}

// EndEpisode performs cleanup at the end of an episode
func (e *ESarsaLearner) EndEpisode() {}

package esarsa

import (
	"fmt"
	"os"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
	"sfneuman.com/gridlearn/agent"
	"sfneuman.com/gridlearn/agent/tabular/policy"
	"sfneuman.com/gridlearn/table"
	"sfneuman.com/gridlearn/timestep"
)

// DoubleESarsaLearner implements the update functionality for the
// Double Expected Sarsa algorithm. Each update flips a fair coin to
// choose which of the two tables to update; the ε-greedy expectation
// weights are computed from the table being updated, while the action
// values entering the expectation are read from the other table.
type DoubleESarsaLearner struct {
	pair         *table.Pair
	behaviour    agent.EGreedyPolicy
	step         timestep.TimeStep
	action       int
	nextStep     timestep.TimeStep
	learningRate float64
	coin         distuv.Bernoulli
}

// newDoubleESarsaLearner creates a new DoubleESarsaLearner updating
// the estimates of pair toward expectations under behaviour
func newDoubleESarsaLearner(pair *table.Pair, behaviour agent.EGreedyPolicy,
	learningRate float64, seed uint64) *DoubleESarsaLearner {
	return &DoubleESarsaLearner{
		pair:         pair,
		behaviour:    behaviour,
		learningRate: learningRate,
		coin:         distuv.Bernoulli{P: 0.5, Src: rand.NewSource(seed)},
	}
}

// ObserveFirst observes and records the first episodic timestep
func (d *DoubleESarsaLearner) ObserveFirst(t timestep.TimeStep) error {
	if !t.First() {
		fmt.Fprintf(os.Stderr, "Warning: ObserveFirst() should only be "+
			"called on the first timestep (current timestep = %d)\n", t.Number)
	}
	d.step = timestep.TimeStep{}
	d.nextStep = t
	return nil
}

// Observe observes and records any timestep other than the first
// timestep
func (d *DoubleESarsaLearner) Observe(action mat.Vector,
	nextStep timestep.TimeStep) error {
	if action.Len() != 1 {
		return fmt.Errorf("observe: value-based methods cannot use "+
			"multi-dimensional actions (action dim = %d)", action.Len())
	}
	d.step = d.nextStep
	d.action = int(action.AtVec(0))
	d.nextStep = nextStep
	return nil
}

// Step updates one of the two tables, chosen by a fair coin flip, for
// the last observed transition
func (d *DoubleESarsaLearner) Step() error {
	if d.coin.Rand() == 1.0 {
		return d.stepTable(d.pair.A, d.pair.B)
	}
	return d.stepTable(d.pair.B, d.pair.A)
}

// stepTable updates the estimates of update toward a target whose
// expectation weights come from update and whose values come from eval
func (d *DoubleESarsaLearner) stepTable(update,
	eval *table.ActionValue) error {
	target := d.nextStep.Reward
	if !d.nextStep.Last() {
		next := d.nextStep.Observation
		probabilities := policy.Probabilities(update.ActionValues(next),
			d.behaviour.Epsilon())
		target += d.nextStep.Discount * mat.Dot(probabilities,
			eval.ActionValues(next))
	}

	state := d.step.Observation
	current := update.At(state, d.action)
	update.Set(state, d.action, current+d.learningRate*(target-current))

	return nil
}

// EndEpisode performs cleanup at the end of an episode
func (d *DoubleESarsaLearner) EndEpisode() {}

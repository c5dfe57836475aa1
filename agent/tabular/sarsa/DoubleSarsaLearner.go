package sarsa

import (
	"fmt"
	"os"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
	"sfneuman.com/gridlearn/agent"
	"sfneuman.com/gridlearn/table"
	"sfneuman.com/gridlearn/timestep"
)

// DoubleSarsaLearner implements the update functionality for the
// Double Sarsa algorithm. Each update flips a fair coin to choose
// which of the two tables to update; the committed next action is
// sampled from the behaviour policy over the combined estimates, and
// its value is read from the table not being updated.
type DoubleSarsaLearner struct {
	pair         *table.Pair
	behaviour    agent.Policy
	step         timestep.TimeStep
	action       int
	nextStep     timestep.TimeStep
	nextAction   *mat.VecDense
	learningRate float64
	coin         distuv.Bernoulli
}

// newDoubleSarsaLearner creates a new DoubleSarsaLearner updating the
// estimates of pair and sampling committed actions from behaviour
func newDoubleSarsaLearner(pair *table.Pair, behaviour agent.Policy,
	learningRate float64, seed uint64) *DoubleSarsaLearner {
	return &DoubleSarsaLearner{
		pair:         pair,
		behaviour:    behaviour,
		learningRate: learningRate,
		coin:         distuv.Bernoulli{P: 0.5, Src: rand.NewSource(seed)},
	}
}

// ObserveFirst observes and records the first episodic timestep
func (d *DoubleSarsaLearner) ObserveFirst(t timestep.TimeStep) error {
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
func (d *DoubleSarsaLearner) Observe(action mat.Vector,
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
func (d *DoubleSarsaLearner) Step() error {
	if d.coin.Rand() == 1.0 {
		return d.stepTable(d.pair.A, d.pair.B)
	}
	return d.stepTable(d.pair.B, d.pair.A)
}

// stepTable updates the estimates of update toward a target that
// bootstraps off eval's value of the committed next action
func (d *DoubleSarsaLearner) stepTable(update, eval *table.ActionValue) error {
	target := d.nextStep.Reward
	if !d.nextStep.Last() {
		d.nextAction = d.behaviour.SelectAction(d.nextStep)
		nextAction := int(d.nextAction.AtVec(0))
		target += d.nextStep.Discount * eval.At(d.nextStep.Observation,
			nextAction)
	}

	state := d.step.Observation
	current := update.At(state, d.action)
	update.Set(state, d.action, current+d.learningRate*(target-current))

	return nil
}

// takeNextAction returns and clears the committed next action
func (d *DoubleSarsaLearner) takeNextAction() *mat.VecDense {
	action := d.nextAction
	d.nextAction = nil
	return action
}

// EndEpisode performs cleanup at the end of an episode
func (d *DoubleSarsaLearner) EndEpisode() {
	d.nextAction = nil
}

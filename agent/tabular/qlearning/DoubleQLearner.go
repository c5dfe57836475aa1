package qlearning

import (
	"fmt"
	"os"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
	"sfneuman.com/gridlearn/table"
	"sfneuman.com/gridlearn/timestep"
	"sfneuman.com/gridlearn/utils/floatutils"
)

// DoubleQLearner implements the update functionality for the Double
// Q-Learning algorithm. Each update flips a fair coin to choose which
// of the two tables to update. The chosen table supplies the greedy
// action in the next state; the value of that action is read from the
// other table. Decoupling action selection from action evaluation in
// this way removes the maximization bias of the single-table update.
type DoubleQLearner struct {
	pair         *table.Pair
	step         timestep.TimeStep
	action       int
	nextStep     timestep.TimeStep
	learningRate float64
	coin         distuv.Bernoulli
	rng          *rand.Rand
}

// newDoubleQLearner creates a new DoubleQLearner updating the
// estimates of pair
func newDoubleQLearner(pair *table.Pair, learningRate float64,
	seed uint64) *DoubleQLearner {
	source := rand.NewSource(seed)

	return &DoubleQLearner{
		pair:         pair,
		learningRate: learningRate,
		coin:         distuv.Bernoulli{P: 0.5, Src: source},
		rng:          rand.New(source),
	}
}

// ObserveFirst observes and records the first episodic timestep
func (d *DoubleQLearner) ObserveFirst(t timestep.TimeStep) error {
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
func (d *DoubleQLearner) Observe(action mat.Vector,
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
func (d *DoubleQLearner) Step() error {
	if d.coin.Rand() == 1.0 {
		return d.stepTable(d.pair.A, d.pair.B)
	}
	return d.stepTable(d.pair.B, d.pair.A)
}

// stepTable updates the estimates of update toward a target whose
// greedy action comes from update itself and whose value comes from
// eval. Greedy ties are broken uniformly at random.
func (d *DoubleQLearner) stepTable(update, eval *table.ActionValue) error {
	target := d.nextStep.Reward
	if !d.nextStep.Last() {
		nextState := d.nextStep.Observation
		_, greedy := floatutils.MaxSlice(mat.Col(nil, 0,
			update.ActionValues(nextState)))
		greedyAction := greedy[d.rng.Intn(len(greedy))]

		target += d.nextStep.Discount * eval.At(nextState, greedyAction)
	}

	state := d.step.Observation
	current := update.At(state, d.action)
	update.Set(state, d.action, current+d.learningRate*(target-current))

	return nil
}

// EndEpisode performs cleanup at the end of an episode
func (d *DoubleQLearner) EndEpisode() {}

// Package gridworld implements 2D gridworld environments described by
// ascii maps
package gridworld

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
	env "sfneuman.com/gridlearn/environment"
	ts "sfneuman.com/gridlearn/timestep"
)

// Actions available in a gridworld
const (
	MoveUp int = iota
	MoveDown
	MoveLeft
	MoveRight
)

// Actions is the number of legal gridworld actions
const Actions int = 4

// GridWorld implements an episodic gridworld environment on a Map. The
// agent moves one cell per step in one of the four cardinal
// directions; moves into walls leave it in place. If the agent lands
// on a windy cell, wind pushes it westward by the cell's wind strength
// with probability windProb, stopping early at walls. Observations are
// the agent's (row, col) position.
type GridWorld struct {
	env.Task
	grid *Map

	row, col    int
	discount    float64
	windProb    float64
	wind        distuv.Bernoulli
	currentStep ts.TimeStep
}

// New creates a new GridWorld on grid with task t and discount factor
// discount. Wind pushes with probability windProb each time the agent
// lands on a windy cell; a windProb of 1 gives deterministic wind.
func New(grid *Map, t env.Task, discount, windProb float64,
	seed uint64) (env.Environment, ts.TimeStep, error) {
	if discount < 0 || discount > 1 {
		return nil, ts.TimeStep{}, fmt.Errorf("new: discount must be in "+
			"[0, 1], got %v", discount)
	}
	if windProb < 0 || windProb > 1 {
		return nil, ts.TimeStep{}, fmt.Errorf("new: wind probability must "+
			"be in [0, 1], got %v", windProb)
	}

	task, ok := t.(*Solve)
	if ok {
		task.Register(grid)
	}

	g := &GridWorld{
		Task:     t,
		grid:     grid,
		discount: discount,
		windProb: windProb,
		wind:     distuv.Bernoulli{P: windProb, Src: rand.NewSource(seed)},
	}

	step, err := g.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: %v", err)
	}

	return g, step, nil
}

// Reset resets the environment to a starting state drawn from the
// task's Starter and returns the first timestep of the new episode
func (g *GridWorld) Reset() (ts.TimeStep, error) {
	start := g.Start()
	if start.Len() != 2 {
		return ts.TimeStep{}, fmt.Errorf("reset: start states must be "+
			"(row, col) positions, got %d dimensions", start.Len())
	}

	row, col := int(start.AtVec(0)), int(start.AtVec(1))
	if g.grid.WallAt(row, col) || g.grid.GoalAt(row, col) ||
		g.grid.HazardAt(row, col) {
		return ts.TimeStep{}, fmt.Errorf("reset: cannot start episodes "+
			"at (%d, %d)", row, col)
	}
	g.row, g.col = row, col

	step := ts.New(ts.First, 0, g.discount, g.observation(), 0)
	g.currentStep = step

	return step, nil
}

// Step takes one environmental step given action, returning the next
// timestep and whether it is the last in the episode
func (g *GridWorld) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	if action.Len() != 1 {
		return ts.TimeStep{}, false, fmt.Errorf("step: actions must be " +
			"1-dimensional")
	}
	a := int(action.AtVec(0))
	if a < MoveUp || a > MoveRight {
		return ts.TimeStep{}, false, fmt.Errorf("step: illegal action %d, "+
			"expected action in [0, %d)", a, Actions)
	}

	row, col := g.row, g.col
	switch a {
	case MoveUp:
		row--
	case MoveDown:
		row++
	case MoveLeft:
		col--
	case MoveRight:
		col++
	}
	if g.grid.WallAt(row, col) {
		row, col = g.row, g.col
	}

	// Wind strikes the cell the move lands on, pushing westward until
	// its strength is spent or a wall is hit
	if push := g.grid.WindAt(row, col); push > 0 && g.windy() {
		for i := 0; i < push; i++ {
			if g.grid.WallAt(row, col-1) {
				break
			}
			col--
		}
	}

	g.row, g.col = row, col
	nextState := g.observation()

	reward := g.GetReward(g.currentStep.Observation, action, nextState)
	nextStep := ts.New(ts.Mid, reward, g.discount, nextState,
		g.currentStep.Number+1)
	last := g.End(&nextStep)
	g.currentStep = nextStep

	return nextStep, last, nil
}

// CurrentTimeStep returns the timestep the environment is at
func (g *GridWorld) CurrentTimeStep() ts.TimeStep {
	return g.currentStep
}

// ActionSpec returns the action specification of the environment
func (g *GridWorld) ActionSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{0.0})
	upperBound := mat.NewVecDense(1, []float64{float64(Actions - 1)})

	return env.NewSpec(shape, env.Action, lowerBound, upperBound,
		env.Discrete)
}

// ObservationSpec returns the observation specification of the
// environment
func (g *GridWorld) ObservationSpec() env.Spec {
	shape := mat.NewVecDense(2, nil)
	lowerBound := mat.NewVecDense(2, nil)
	upperBound := mat.NewVecDense(2, []float64{
		float64(g.grid.Rows() - 1),
		float64(g.grid.Cols() - 1),
	})

	return env.NewSpec(shape, env.Observation, lowerBound, upperBound,
		env.Discrete)
}

// DiscountSpec returns the discount specification of the environment
func (g *GridWorld) DiscountSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	bound := mat.NewVecDense(1, []float64{g.discount})

	return env.NewSpec(shape, env.Discount, bound, bound, env.Continuous)
}

// String renders the grid with the agent at its current position
func (g *GridWorld) String() string {
	return g.grid.render(g.row, g.col)
}

func (g *GridWorld) windy() bool {
	return g.wind.Rand() == 1.0
}

func (g *GridWorld) observation() *mat.VecDense {
	return mat.NewVecDense(2, []float64{float64(g.row), float64(g.col)})
}

// position reads a (row, col) observation
func position(obs mat.Vector) (int, int) {
	return int(obs.AtVec(0)), int(obs.AtVec(1))
}

// Package maze wraps GoMaze mazes as environments so that tabular
// agents can learn to navigate them
package maze

import (
	"fmt"

	"github.com/samuelfneumann/gomaze"
	"gonum.org/v1/gonum/mat"
	env "sfneuman.com/gridlearn/environment"
	ts "sfneuman.com/gridlearn/timestep"
)

// Default start and end positions, which let GoMaze choose the
// positions itself
const (
	DefaultStartRow int = -1
	DefaultStartCol int = -1
	DefaultEndRow   int = -1
	DefaultEndCol   int = -1
)

// Maze implements a maze environment where an agent must navigate
// corridors from a starting cell to a goal cell. The maze layout is
// generated by GoMaze using the Initer given at construction, and
// observations are the agent's (row, col) position.
type Maze struct {
	env.Task
	maze *gomaze.Maze

	discount    float64
	currentStep ts.TimeStep
}

// New creates a new rows by cols Maze with task t and discount factor
// discount. The maze corridors are dug by init, and the episode starts
// at (startRow, startCol). The Default* constants let GoMaze choose
// the start position itself.
func New(t env.Task, rows, cols, startRow, startCol int,
	init gomaze.Initer, discount float64) (env.Environment, ts.TimeStep,
	error) {
	if discount < 0 || discount > 1 {
		return nil, ts.TimeStep{}, fmt.Errorf("new: discount must be in "+
			"[0, 1], got %v", discount)
	}

	maze, err := gomaze.NewMaze(rows, cols, DefaultEndRow, DefaultEndCol,
		startRow, startCol, init)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: could not create maze: %v",
			err)
	}

	task, ok := t.(*Solve)
	if ok {
		task.Register(maze)
	}

	floatState := maze.Reset()
	state := mat.NewVecDense(len(floatState), floatState)
	step := ts.New(ts.First, 0, discount, state, 0)

	mazeEnv := &Maze{
		Task:        t,
		maze:        maze,
		discount:    discount,
		currentStep: step,
	}

	return mazeEnv, step, nil
}

// Step takes one environmental step given action, returning the next
// timestep and whether it is the last in the episode
func (m *Maze) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	if action.Len() != 1 {
		return ts.TimeStep{}, false, fmt.Errorf("step: actions must be " +
			"1-dimensional")
	}

	a := int(action.AtVec(0))

	newPos, _, _, err := m.maze.Step(a)
	if err != nil {
		return ts.TimeStep{}, false, err
	}
	nextState := mat.NewVecDense(len(newPos), newPos)

	reward := m.GetReward(m.currentStep.Observation, action, nextState)
	nextStep := ts.New(ts.Mid, reward, m.discount, nextState,
		m.currentStep.Number+1)
	last := m.End(&nextStep)
	m.currentStep = nextStep

	return nextStep, last, nil
}

// Reset resets the environment to a starting state and returns the
// first timestep of the new episode
func (m *Maze) Reset() (ts.TimeStep, error) {
	floatState := m.maze.Reset()
	state := mat.NewVecDense(len(floatState), floatState)
	step := ts.New(ts.First, 0, m.discount, state, 0)

	m.currentStep = step

	return step, nil
}

// CurrentTimeStep returns the timestep the environment is at
func (m *Maze) CurrentTimeStep() ts.TimeStep {
	return m.currentStep
}

// ActionSpec returns the action specification of the environment
func (m *Maze) ActionSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{0.0})
	upperBound := mat.NewVecDense(1, []float64{float64(gomaze.Actions - 1)})

	return env.NewSpec(shape, env.Action, lowerBound, upperBound,
		env.Discrete)
}

// ObservationSpec returns the observation specification of the
// environment
func (m *Maze) ObservationSpec() env.Spec {
	shape := mat.NewVecDense(2, nil)
	lowerBound := mat.NewVecDense(2, nil)
	upperBound := mat.NewVecDense(2, []float64{
		float64(m.maze.Rows() - 1),
		float64(m.maze.Cols() - 1),
	})

	return env.NewSpec(shape, env.Observation, lowerBound, upperBound,
		env.Discrete)
}

// DiscountSpec returns the discount specification of the environment
func (m *Maze) DiscountSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	bound := mat.NewVecDense(1, []float64{m.discount})

	return env.NewSpec(shape, env.Discount, bound, bound, env.Continuous)
}

package maze

import (
	"github.com/samuelfneumann/gomaze"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	env "sfneuman.com/gridlearn/environment"
	ts "sfneuman.com/gridlearn/timestep"
)

// Rewards for the Solve task
const (
	TimeStepReward float64 = -1.0
	TerminalReward float64 = 0
)

// Solve represents the task of reaching the goal cell of a maze in as
// few moves as possible. Every move costs TimeStepReward and reaching
// the goal pays TerminalReward and ends the episode. Episodes that run
// past the step limit time out. The task must be registered with a
// maze before use.
type Solve struct {
	maze      *gomaze.Maze
	stepLimit env.Ender
}

// NewSolve returns a Solve task cutting episodes off after cutoff
// steps
func NewSolve(cutoff int) *Solve {
	return &Solve{
		stepLimit: env.NewStepLimit(cutoff),
	}
}

// Register sets the maze the task is solved on
func (s *Solve) Register(m *gomaze.Maze) {
	s.maze = m
}

// Start returns the starting state of the next episode
func (s *Solve) Start() *mat.VecDense {
	row, col := s.maze.Start()
	return mat.NewVecDense(2, []float64{
		float64(row),
		float64(col),
	})
}

// GetReward returns the reward for the last transition
func (s *Solve) GetReward(_, _, _ mat.Vector) float64 {
	if s.maze.AtGoal() {
		return TerminalReward
	}
	return TimeStepReward
}

// End checks whether t ends the episode, modifying t appropriately if
// so. The goal is checked before the step limit so that reaching it on
// the final allowed step still counts.
func (s *Solve) End(t *ts.TimeStep) bool {
	if s.maze.AtGoal() {
		t.StepType = ts.Last
		t.SetEnd(ts.TerminalStateReached)
		return true
	}
	return s.stepLimit.End(t)
}

// AtGoal represents if the goal state has been reached or not
func (s *Solve) AtGoal(state mat.Matrix) bool {
	rows, cols := state.Dims()
	if rows != 2 || cols != 1 {
		return false
	}

	goalRow, goalCol := s.maze.Goal()

	return int(state.At(0, 0)) == goalRow && int(state.At(1, 0)) == goalCol
}

// Min returns the minimum reward attainable in the Task
func (s *Solve) Min() float64 {
	rewards := []float64{TimeStepReward, TerminalReward}
	return floats.Min(rewards)
}

// Max returns the maximum reward attainable in the Task
func (s *Solve) Max() float64 {
	rewards := []float64{TimeStepReward, TerminalReward}
	return floats.Max(rewards)
}

// RewardSpec returns the reward specification of the task
func (s *Solve) RewardSpec() env.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{s.Min()})
	upperBound := mat.NewVecDense(1, []float64{s.Max()})

	return env.NewSpec(shape, env.Reward, lowerBound, upperBound,
		env.Discrete)
}

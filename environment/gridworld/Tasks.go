package gridworld

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	env "sfneuman.com/gridlearn/environment"
	ts "sfneuman.com/gridlearn/timestep"
)

// Default rewards for the Solve task
const (
	TimeStepReward float64 = -1.0
	GoalReward     float64 = 0.0
	HazardReward   float64 = -100.0
)

// Solve represents the task of reaching a goal cell of a Map in as
// few moves as possible. Every move costs TimeStepReward, reaching a
// goal pays GoalReward and ends the episode, and stepping into a
// hazard pays HazardReward and also ends the episode. Episodes that
// run past the step limit time out.
type Solve struct {
	env.Starter
	grid *Map

	stepReward   float64
	goalReward   float64
	hazardReward float64

	stepLimit env.Ender
	enders    []env.Ender
}

// NewSolve returns a Solve task with the default rewards, starting
// episodes from s and cutting them off after cutoff steps. The task
// must be registered with a Map before use.
func NewSolve(s env.Starter, cutoff int) *Solve {
	return NewCustomSolve(s, cutoff, TimeStepReward, GoalReward,
		HazardReward)
}

// NewCustomSolve returns a Solve task with the argument rewards
func NewCustomSolve(s env.Starter, cutoff int, stepReward, goalReward,
	hazardReward float64) *Solve {
	return &Solve{
		Starter:      s,
		stepReward:   stepReward,
		goalReward:   goalReward,
		hazardReward: hazardReward,
		stepLimit:    env.NewStepLimit(cutoff),
	}
}

// Register sets the Map the task is solved on
func (s *Solve) Register(m *Map) {
	s.grid = m
	s.enders = []env.Ender{
		env.NewFunctionEnder(func(obs mat.Vector) bool {
			row, col := position(obs)
			return m.GoalAt(row, col) || m.HazardAt(row, col)
		}, ts.TerminalStateReached),
		s.stepLimit,
	}
}

// GetReward returns the reward for a transition ending in nextState
func (s *Solve) GetReward(_, _, nextState mat.Vector) float64 {
	row, col := position(nextState)
	switch {
	case s.grid.GoalAt(row, col):
		return s.goalReward
	case s.grid.HazardAt(row, col):
		return s.hazardReward
	}
	return s.stepReward
}

// End checks whether t ends the episode, modifying t appropriately if
// so. Terminal cells are checked before the step limit so that
// reaching the goal on the final allowed step still counts.
func (s *Solve) End(t *ts.TimeStep) bool {
	for _, ender := range s.enders {
		if ender.End(t) {
			return true
		}
	}
	return false
}

// AtGoal represents if the goal state has been reached or not
func (s *Solve) AtGoal(state mat.Matrix) bool {
	rows, cols := state.Dims()
	if rows != 2 || cols != 1 {
		return false
	}
	return s.grid.GoalAt(int(state.At(0, 0)), int(state.At(1, 0)))
}

// Min returns the minimum reward attainable in the Task
func (s *Solve) Min() float64 {
	rewards := []float64{s.stepReward, s.goalReward, s.hazardReward}
	return floats.Min(rewards)
}

// Max returns the maximum reward attainable in the Task
func (s *Solve) Max() float64 {
	rewards := []float64{s.stepReward, s.goalReward, s.hazardReward}
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

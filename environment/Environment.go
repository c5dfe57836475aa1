// Package environment outlines the interfaces and structs needed to implement
// concrete environments
package environment

import (
	"gonum.org/v1/gonum/mat"
	"sfneuman.com/gridlearn/timestep"
)

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter interface {
	Start() *mat.VecDense
}

// Ender determines when and how episodes end. An Ender may rewrite the
// StepType and EndType of the timestep it inspects.
type Ender interface {
	End(*timestep.TimeStep) bool
}

// Task implements the reward scheme and episode termination scheme for
// acting in some environment, as well as the distribution of states at
// which the environment starts episodes.
type Task interface {
	Starter
	Ender

	// GetReward returns the reward for a transition from state to
	// nextState under action
	GetReward(state, action, nextState mat.Vector) float64

	// AtGoal returns whether state is a goal state of the task
	AtGoal(state mat.Matrix) bool

	// Min and Max return the bounds on attainable rewards
	Min() float64
	Max() float64

	RewardSpec() Spec
}

// Environment implements a simulated environment, which includes a Task
// to complete. Environments step in discrete time. Any error an
// environment's backing simulation produces is returned to the caller
// unaltered.
type Environment interface {
	Task

	// Reset resets the environment to some starting state between
	// episodes
	Reset() (timestep.TimeStep, error)

	// Step takes one environmental step given a 1-dimensional action,
	// returning the next timestep and whether it is the last of the
	// episode
	Step(action *mat.VecDense) (timestep.TimeStep, bool, error)

	// CurrentTimeStep returns the timestep the environment is at
	CurrentTimeStep() timestep.TimeStep

	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
}

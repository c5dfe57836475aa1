// Package agent defines the interfaces agents satisfy and the
// configuration machinery that constructs them
package agent

import (
	"gonum.org/v1/gonum/mat"
	"sfneuman.com/gridlearn/timestep"
)

// Agent couples a Learner with a Policy. The Policy selects the
// actions the agent takes, and the Learner updates the action-value
// estimates the Policy selects from.
type Agent interface {
	Learner
	Policy
}

// Learner updates action-value estimates from observed timesteps. An
// experiment feeds a Learner the episode's first timestep through
// ObserveFirst, then each (action, resulting timestep) pair through
// Observe, calling Step after each observation to apply one update.
type Learner interface {
	// Step performs a single update to the learner
	Step() error

	// Observe records that an action led to some timestep
	Observe(action mat.Vector, nextObs timestep.TimeStep) error

	// ObserveFirst records the first timestep in an episode
	ObserveFirst(timestep.TimeStep) error

	// EndEpisode performs cleanup at the end of an episode
	EndEpisode()
}

// TdErrorer is a Learner that can report the TD error of a transition
// under its current estimates
type TdErrorer interface {
	Learner

	// TdError returns the TD error on a transition
	TdError(t timestep.Transition) float64
}

// Policy selects actions from timesteps. A Policy and the Learner it
// is paired with share the same action-value estimates, so updates the
// Learner makes show up in the actions the Policy chooses.
type Policy interface {
	SelectAction(t timestep.TimeStep) *mat.VecDense
	Eval()        // Set policy to evaluation mode
	Train()       // Set policy to training mode
	IsEval() bool // Indicates if in evaluation mode
}

// EGreedyPolicy is a Policy with a mutable exploration rate, so that
// exploration can be annealed over the course of training
type EGreedyPolicy interface {
	Policy
	SetEpsilon(float64)
	Epsilon() float64
}

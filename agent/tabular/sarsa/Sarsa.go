// Package sarsa implements the Sarsa algorithm with tabular
// action-value estimates
package sarsa

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"sfneuman.com/gridlearn/agent"
	"sfneuman.com/gridlearn/agent/tabular/policy"
	"sfneuman.com/gridlearn/environment"
	"sfneuman.com/gridlearn/table"
	ts "sfneuman.com/gridlearn/timestep"
	"sfneuman.com/gridlearn/utils/floatutils"
)

// nextActioner is a Learner that commits to the next action it
// bootstrapped with, so that the agent takes exactly that action
type nextActioner interface {
	agent.Learner

	// takeNextAction returns and clears the committed action, or nil
	// when no action has been committed
	takeNextAction() *mat.VecDense
}

// Sarsa implements the online Sarsa algorithm, learning either a
// single action-value table or, when configured as double, two tables
// updated with cross evaluation. Actions selected by this algorithm
// will always be enumerated as (0, 1, 2, ... N) where N is the maximum
// possible action.
//
// Sarsa is on-policy: each update bootstraps off the value of the
// action that will actually be taken in the next state. The learner
// samples that action from the behaviour policy while updating, and
// SelectAction then returns the committed action.
type Sarsa struct {
	nextActioner
	Target agent.Policy

	behaviour  *policy.EGreedy
	estimates  table.Estimator
	decay      float64
	minEpsilon float64
	seed       uint64
}

// New creates a new Sarsa agent acting in env
func New(env environment.Environment, config Config,
	seed uint64) (*Sarsa, error) {
	// Ensure environment has discrete actions
	if env.ActionSpec().Cardinality != environment.Discrete {
		return nil, fmt.Errorf("sarsa: cannot use non-discrete actions")
	}
	if env.ActionSpec().LowerBound.Len() > 1 {
		return nil, fmt.Errorf("sarsa: actions must be 1-dimensional")
	}
	if env.ActionSpec().LowerBound.AtVec(0) != 0.0 {
		return nil, fmt.Errorf("sarsa: actions must be enumerated " +
			"starting from 0")
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("sarsa: %v", err)
	}

	numActions := int(env.ActionSpec().UpperBound.AtVec(0)) + 1

	var estimates table.Estimator
	if config.Double {
		estimates = table.NewPair(numActions)
	} else {
		estimates = table.NewActionValue(numActions)
	}

	behaviour, err := policy.NewEGreedy(estimates, config.Epsilon, seed)
	if err != nil {
		return nil, fmt.Errorf("sarsa: invalid behaviour policy: %v", err)
	}
	target := policy.NewGreedy(estimates, seed)

	var learner nextActioner
	if config.Double {
		learner = newDoubleSarsaLearner(estimates.(*table.Pair), behaviour,
			config.LearningRate, seed+1)
	} else {
		learner = newSarsaLearner(estimates.(*table.ActionValue), behaviour,
			config.LearningRate)
	}

	return &Sarsa{
		nextActioner: learner,
		Target:       target,
		behaviour:    behaviour,
		estimates:    estimates,
		decay:        config.EpsilonDecay,
		minEpsilon:   config.EpsilonMin,
		seed:         seed,
	}, nil
}

// SelectAction returns the action the last update committed to, when
// one exists, and otherwise samples from the behaviour policy. The
// committed action is exactly the action whose value the update
// bootstrapped off.
func (s *Sarsa) SelectAction(t ts.TimeStep) *mat.VecDense {
	if action := s.takeNextAction(); action != nil {
		return action
	}
	return s.behaviour.SelectAction(t)
}

// Eval sets the agent's policies to evaluation mode
func (s *Sarsa) Eval() {
	s.behaviour.Eval()
}

// Train sets the agent's policies to training mode
func (s *Sarsa) Train() {
	s.behaviour.Train()
}

// IsEval indicates whether the agent is in evaluation mode
func (s *Sarsa) IsEval() bool {
	return s.behaviour.IsEval()
}

// Estimates returns the action-value estimates the agent is learning
func (s *Sarsa) Estimates() table.Estimator {
	return s.estimates
}

// EndEpisode decays the behaviour policy's exploration rate according
// to the configured schedule and finishes the episode
func (s *Sarsa) EndEpisode() {
	if s.decay > 0 {
		s.behaviour.SetEpsilon(floatutils.Max(s.minEpsilon,
			s.behaviour.Epsilon()*s.decay))
	}
	s.nextActioner.EndEpisode()
}

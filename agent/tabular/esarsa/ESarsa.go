// Package esarsa implements the Expected Sarsa algorithm with tabular
// action-value estimates
package esarsa

import (
	"fmt"

	"sfneuman.com/gridlearn/agent"
	"sfneuman.com/gridlearn/agent/tabular/policy"
	"sfneuman.com/gridlearn/environment"
	"sfneuman.com/gridlearn/table"
	"sfneuman.com/gridlearn/utils/floatutils"
)

// ESarsa implements the online Expected Sarsa algorithm. Instead of
// bootstrapping off a single next action, updates bootstrap off the
// expectation of the next state's action values under the behaviour
// policy, so the update target follows the policy as its exploration
// rate changes. When configured as double, two tables are updated with
// cross evaluation to counteract maximization bias.
// Actions selected by this algorithm will always be enumerated as
// (0, 1, 2, ... N) where N is the maximum possible action.
type ESarsa struct {
	agent.Learner
	agent.Policy // Behaviour
	Target       agent.Policy

	behaviour  *policy.EGreedy
	estimates  table.Estimator
	decay      float64
	minEpsilon float64
	seed       uint64
}

// New creates a new ESarsa agent acting in env
func New(env environment.Environment, config Config,
	seed uint64) (*ESarsa, error) {
	// Ensure environment has discrete actions
	if env.ActionSpec().Cardinality != environment.Discrete {
		return nil, fmt.Errorf("esarsa: cannot use non-discrete actions")
	}
	if env.ActionSpec().LowerBound.Len() > 1 {
		return nil, fmt.Errorf("esarsa: actions must be 1-dimensional")
	}
	if env.ActionSpec().LowerBound.AtVec(0) != 0.0 {
		return nil, fmt.Errorf("esarsa: actions must be enumerated " +
			"starting from 0")
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("esarsa: %v", err)
	}

	numActions := int(env.ActionSpec().UpperBound.AtVec(0)) + 1

	// The learner reads the behaviour policy's exploration rate on
	// every update, so the policy must exist first
	var estimates table.Estimator
	if config.Double {
		estimates = table.NewPair(numActions)
	} else {
		estimates = table.NewActionValue(numActions)
	}
	behaviour, err := policy.NewEGreedy(estimates, config.Epsilon, seed)
	if err != nil {
		return nil, fmt.Errorf("esarsa: invalid behaviour policy: %v", err)
	}
	target := policy.NewGreedy(estimates, seed)

	var learner agent.Learner
	if pair, ok := estimates.(*table.Pair); ok {
		learner = newDoubleESarsaLearner(pair, behaviour,
			config.LearningRate, seed+1)
	} else {
		learner = newESarsaLearner(estimates.(*table.ActionValue), behaviour,
			config.LearningRate)
	}

	return &ESarsa{
		Learner:    learner,
		Policy:     behaviour,
		Target:     target,
		behaviour:  behaviour,
		estimates:  estimates,
		decay:      config.EpsilonDecay,
		minEpsilon: config.EpsilonMin,
		seed:       seed,
	}, nil
}

// Estimates returns the action-value estimates the agent is learning
func (e *ESarsa) Estimates() table.Estimator {
	return e.estimates
}

// EndEpisode decays the behaviour policy's exploration rate according
// to the configured schedule and finishes the episode
func (e *ESarsa) EndEpisode() {
	if e.decay > 0 {
		e.behaviour.SetEpsilon(floatutils.Max(e.minEpsilon,
			e.behaviour.Epsilon()*e.decay))
	}
	e.Learner.EndEpisode()
}

// Package qlearning implements the Q-Learning algorithm with tabular
// action-value estimates
package qlearning

import (
	"fmt"

	"sfneuman.com/gridlearn/agent"
	"sfneuman.com/gridlearn/agent/tabular/policy"
	"sfneuman.com/gridlearn/environment"
	"sfneuman.com/gridlearn/table"
	"sfneuman.com/gridlearn/utils/floatutils"
)

// QLearning implements the online Q-Learning algorithm, learning either
// a single action-value table or, when configured as double, two tables
// updated with cross evaluation to counteract maximization bias.
// Actions selected by this algorithm will always be enumerated as
// (0, 1, 2, ... N) where N is the maximum possible action.
type QLearning struct {
	agent.Learner
	agent.Policy // Behaviour
	Target       agent.Policy

	behaviour  *policy.EGreedy
	estimates  table.Estimator
	decay      float64
	minEpsilon float64
	seed       uint64
}

// New creates a new QLearning agent acting in env
func New(env environment.Environment, config Config,
	seed uint64) (*QLearning, error) {
	// Ensure environment has discrete actions
	if env.ActionSpec().Cardinality != environment.Discrete {
		return nil, fmt.Errorf("qlearning: cannot use non-discrete actions")
	}
	if env.ActionSpec().LowerBound.Len() > 1 {
		return nil, fmt.Errorf("qlearning: actions must be 1-dimensional")
	}
	if env.ActionSpec().LowerBound.AtVec(0) != 0.0 {
		return nil, fmt.Errorf("qlearning: actions must be enumerated " +
			"starting from 0")
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("qlearning: %v", err)
	}

	numActions := int(env.ActionSpec().UpperBound.AtVec(0)) + 1

	var estimates table.Estimator
	var learner agent.Learner
	if config.Double {
		pair := table.NewPair(numActions)
		estimates = pair
		learner = newDoubleQLearner(pair, config.LearningRate, seed+1)
	} else {
		q := table.NewActionValue(numActions)
		estimates = q
		learner = newQLearner(q, config.LearningRate)
	}

	behaviour, err := policy.NewEGreedy(estimates, config.Epsilon, seed)
	if err != nil {
		return nil, fmt.Errorf("qlearning: invalid behaviour policy: %v", err)
	}
	target := policy.NewGreedy(estimates, seed)

	return &QLearning{
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
func (q *QLearning) Estimates() table.Estimator {
	return q.estimates
}

// EndEpisode decays the behaviour policy's exploration rate according
// to the configured schedule and finishes the episode
func (q *QLearning) EndEpisode() {
	if q.decay > 0 {
		q.behaviour.SetEpsilon(floatutils.Max(q.minEpsilon,
			q.behaviour.Epsilon()*q.decay))
	}
	q.Learner.EndEpisode()
}

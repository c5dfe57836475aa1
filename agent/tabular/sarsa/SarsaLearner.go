package sarsa

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
	"sfneuman.com/gridlearn/agent"
	"sfneuman.com/gridlearn/table"
	"sfneuman.com/gridlearn/timestep"
)

// SarsaLearner implements the update functionality for the Sarsa
// algorithm with a single action-value table. While updating, the
// learner samples the next action from the behaviour policy and
// commits to it, so the surrounding agent takes exactly the action the
// update bootstrapped off.
type SarsaLearner struct {
	q            *table.ActionValue
	behaviour    agent.Policy
	step         timestep.TimeStep
	action       int
	nextStep     timestep.TimeStep
	nextAction   *mat.VecDense
	learningRate float64
}

// newSarsaLearner creates a new SarsaLearner updating the estimates
// of q and sampling committed actions from behaviour
func newSarsaLearner(q *table.ActionValue, behaviour agent.Policy,
	learningRate float64) *SarsaLearner {
	return &SarsaLearner{
		q:            q,
		behaviour:    behaviour,
		learningRate: learningRate,
	}
}

// ObserveFirst observes and records the first episodic timestep
func (s *SarsaLearner) ObserveFirst(t timestep.TimeStep) error {
	if !t.First() {
		fmt.Fprintf(os.Stderr, "Warning: ObserveFirst() should only be "+
			"called on the first timestep (current timestep = %d)\n", t.Number)
	}
	s.step = timestep.TimeStep{}
	s.nextStep = t
	return nil
}

// Observe observes and records any timestep other than the first
// timestep
func (s *SarsaLearner) Observe(action mat.Vector,
	nextStep timestep.TimeStep) error {
	if action.Len() != 1 {
		return fmt.Errorf("observe: value-based methods cannot use "+
			"multi-dimensional actions (action dim = %d)", action.Len())
	}
	s.step = s.nextStep
	s.action = int(action.AtVec(0))
	s.nextStep = nextStep
	return nil
}

// Step updates the action-value estimates for the last observed
// transition, bootstrapping off the value of the next action, which
// the learner samples and commits to here
func (s *SarsaLearner) Step() error {
	target := s.nextStep.Reward
	if !s.nextStep.Last() {
		s.nextAction = s.behaviour.SelectAction(s.nextStep)
		nextAction := int(s.nextAction.AtVec(0))
		target += s.nextStep.Discount * s.q.At(s.nextStep.Observation,
			nextAction)
	}

	state := s.step.Observation
	current := s.q.At(state, s.action)
	s.q.Set(state, s.action, current+s.learningRate*(target-current))

	return nil
}

// takeNextAction returns and clears the committed next action
func (s *SarsaLearner) takeNextAction() *mat.VecDense {
	action := s.nextAction
	s.nextAction = nil
	return action
}

// EndEpisode performs cleanup at the end of an episode
func (s *SarsaLearner) EndEpisode() {
	s.nextAction = nil
}

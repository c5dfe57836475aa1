package timestep

import "gonum.org/v1/gonum/mat"

// Transition packages together a single environmental transition: the
// timestep the agent acted in, the action it took, and the timestep the
// action produced. Transitions are built by episode loops and consumed
// immediately, they are never stored across steps.
type Transition struct {
	Step     TimeStep
	Action   *mat.VecDense
	NextStep TimeStep
}

// NewTransition returns the transition (step, action) -> nextStep
func NewTransition(step TimeStep, action *mat.VecDense,
	nextStep TimeStep) Transition {
	return Transition{Step: step, Action: action, NextStep: nextStep}
}

// State returns the observation the action was taken in
func (t Transition) State() mat.Vector {
	return t.Step.Observation
}

// NextState returns the observation the action led to
func (t Transition) NextState() mat.Vector {
	return t.NextStep.Observation
}

// Reward returns the reward generated by the transition
func (t Transition) Reward() float64 {
	return t.NextStep.Reward
}

// Discount returns the discount applicable to values of the next state
func (t Transition) Discount() float64 {
	return t.NextStep.Discount
}

// Terminal returns whether the transition ended its episode, in which
// case bootstrapping off the next state is invalid
func (t Transition) Terminal() bool {
	return t.NextStep.Last()
}

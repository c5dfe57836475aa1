package environment

import "sfneuman.com/gridlearn/timestep"

// StepLimit is an Ender that cuts episodes off after a fixed number of
// timesteps. Episodes it ends carry the timestep.Timeout end type so
// that agents can distinguish a cutoff from reaching a terminal state.
type StepLimit struct {
	episodeSteps int
}

// NewStepLimit returns a StepLimit ending episodes after episodeSteps
// timesteps
func NewStepLimit(episodeSteps int) StepLimit {
	return StepLimit{episodeSteps}
}

// End reports whether the episode has hit the step limit. When it has,
// End marks t as the last timestep of the episode with end type
// timestep.Timeout.
func (s StepLimit) End(t *timestep.TimeStep) bool {
	if t.Number < s.episodeSteps {
		return false
	}
	t.StepType = timestep.Last
	t.SetEnd(timestep.Timeout)
	return true
}

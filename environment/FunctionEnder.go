package environment

import (
	"gonum.org/v1/gonum/mat"
	"sfneuman.com/gridlearn/timestep"
)

// FunctionEnder is an Ender that ends episodes whenever a predicate of
// the current observation returns true. Tasks use it to end episodes
// at goal states or hazards without knowing how the environment lays
// out its observations.
type FunctionEnder struct {
	end     func(mat.Vector) bool
	endType timestep.EndType
}

// NewFunctionEnder returns an Ender that ends episodes with end type
// endType whenever f returns true for the current observation
func NewFunctionEnder(f func(mat.Vector) bool,
	endType timestep.EndType) Ender {
	return &FunctionEnder{f, endType}
}

// End reports whether the predicate holds for t's observation. When it
// does, End marks t as the last timestep of the episode with the
// configured end type.
func (f *FunctionEnder) End(t *timestep.TimeStep) bool {
	if !f.end(t.Observation) {
		return false
	}
	t.StepType = timestep.Last
	t.SetEnd(f.endType)
	return true
}

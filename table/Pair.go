package table

import "gonum.org/v1/gonum/mat"

// Pair holds the two independently owned tables of a double estimator.
// Updates write to exactly one of A and B at a time; reading through
// ActionValues always combines both, so that action selection is driven
// by the summed estimates.
type Pair struct {
	A *ActionValue
	B *ActionValue
}

// NewPair returns a double estimator of two empty tables over
// numActions actions
func NewPair(numActions int) *Pair {
	return &Pair{
		A: NewActionValue(numActions),
		B: NewActionValue(numActions),
	}
}

// NumActions returns the number of actions the tables cover
func (p *Pair) NumActions() int {
	return p.A.NumActions()
}

// ActionValues returns the combined (summed) estimate of every action
// in state
func (p *Pair) ActionValues(state mat.Vector) *mat.VecDense {
	combined := p.A.ActionValues(state)
	combined.AddVec(combined, p.B.ActionValues(state))
	return combined
}

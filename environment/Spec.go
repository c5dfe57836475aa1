package environment

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SpecType indicates which quantity of an environment a Spec describes
type SpecType int

const (
	Action SpecType = iota
	Observation
	Discount
	Reward
)

// Cardinality indicates whether the values a Spec describes are drawn
// from a discrete set or a continuous range. Tabular agents require a
// Discrete action spec.
type Cardinality string

const (
	Continuous Cardinality = "Continuous"
	Discrete   Cardinality = "Discrete"
)

// Spec describes the shape and bounds of one quantity an environment
// produces or consumes: its actions, observations, discounts, or
// rewards. Bounds are elementwise and inclusive.
type Spec struct {
	Shape      mat.Vector
	Type       SpecType
	LowerBound mat.Vector
	UpperBound mat.Vector
	Cardinality
}

// NewSpec constructs a Spec describing data of the given shape and
// kind, bounded elementwise by lowerBound and upperBound. NewSpec
// panics if either bound's length differs from the shape's length.
func NewSpec(shape mat.Vector, t SpecType, lowerBound,
	upperBound mat.Vector, cardinality Cardinality) Spec {
	for _, bound := range []mat.Vector{lowerBound, upperBound} {
		if bound.Len() != shape.Len() {
			panic(fmt.Sprintf("bound length %v does not match shape "+
				"length %v", bound.Len(), shape.Len()))
		}
	}
	return Spec{shape, t, lowerBound, upperBound, cardinality}
}

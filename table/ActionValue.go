// Package table implements tabular action-value estimates for
// discrete-action environments with hashable observation vectors
package table

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Estimator is the read-only view of action-value estimates that
// policies select actions from. Both single tables and double-table
// pairs satisfy it.
type Estimator interface {
	// ActionValues returns the estimated value of each action in the
	// argument state
	ActionValues(state mat.Vector) *mat.VecDense

	// NumActions returns the number of actions the estimates cover
	NumActions() int
}

// ActionValue is a table of action-value estimates. Estimates are keyed
// by observation vector and action index. Pairs that were never set
// read as 0.0, so a fresh table is an all-zero initialization over the
// entire (possibly unbounded) state space.
type ActionValue struct {
	numActions int
	values     map[string][]float64
}

// NewActionValue returns an empty table over numActions actions
func NewActionValue(numActions int) *ActionValue {
	if numActions < 1 {
		panic(fmt.Sprintf("newactionvalue: numActions must be positive, "+
			"got %v", numActions))
	}

	return &ActionValue{
		numActions: numActions,
		values:     make(map[string][]float64),
	}
}

// NumActions returns the number of actions the table covers
func (a *ActionValue) NumActions() int {
	return a.numActions
}

// At returns the estimated value of taking action in state. States
// that were never written read as 0.0. At never fails for a legal
// action index.
func (a *ActionValue) At(state mat.Vector, action int) float64 {
	a.checkAction("at", action)

	row, ok := a.values[key(state)]
	if !ok {
		return 0.0
	}
	return row[action]
}

// Set records value as the estimate of taking action in state
func (a *ActionValue) Set(state mat.Vector, action int, value float64) {
	a.checkAction("set", action)

	k := key(state)
	row, ok := a.values[k]
	if !ok {
		row = make([]float64, a.numActions)
		a.values[k] = row
	}
	row[action] = value
}

// ActionValues returns the estimated value of every action in state as
// a newly allocated vector
func (a *ActionValue) ActionValues(state mat.Vector) *mat.VecDense {
	row, ok := a.values[key(state)]
	if !ok {
		return mat.NewVecDense(a.numActions, nil)
	}

	values := make([]float64, a.numActions)
	copy(values, row)
	return mat.NewVecDense(a.numActions, values)
}

// States returns the number of distinct states the table holds
// estimates for
func (a *ActionValue) States() int {
	return len(a.values)
}

func (a *ActionValue) checkAction(op string, action int) {
	if action < 0 || action >= a.numActions {
		panic(fmt.Sprintf("%v: action %v out of range [0, %v)", op, action,
			a.numActions))
	}
}

// GobEncode implements the gob.GobEncoder interface so that tables can
// be checkpointed during long experiments
func (a *ActionValue) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)

	if err := enc.Encode(a.numActions); err != nil {
		return nil, fmt.Errorf("gobencode: could not encode actions: %v", err)
	}
	if err := enc.Encode(a.values); err != nil {
		return nil, fmt.Errorf("gobencode: could not encode values: %v", err)
	}
	return buf.Bytes(), nil
}

// GobDecode implements the gob.GobDecoder interface
func (a *ActionValue) GobDecode(data []byte) error {
	dec := gob.NewDecoder(bytes.NewReader(data))

	if err := dec.Decode(&a.numActions); err != nil {
		return fmt.Errorf("gobdecode: could not decode actions: %v", err)
	}
	if err := dec.Decode(&a.values); err != nil {
		return fmt.Errorf("gobdecode: could not decode values: %v", err)
	}
	if a.values == nil {
		a.values = make(map[string][]float64)
	}
	return nil
}

// key encodes an observation vector as a map key. Observations that
// are element-wise equal share estimates.
func key(state mat.Vector) string {
	var b strings.Builder
	for i := 0; i < state.Len(); i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(state.AtVec(i), 'g', -1, 64))
	}
	return b.String()
}

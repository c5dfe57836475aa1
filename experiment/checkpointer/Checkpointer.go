// Package checkpointer saves snapshots of serializable objects, such
// as an agent's learned value function, at points during an experiment
package checkpointer

import (
	"encoding/gob"

	ts "sfneuman.com/gridlearn/timestep"
)

// Serializable is anything that can be written to and restored from a
// gob stream
type Serializable interface {
	gob.GobEncoder
	gob.GobDecoder
}

// Checkpointer snapshots an object as an experiment runs, deciding
// from each TimeStep whether a new snapshot is due
type Checkpointer interface {
	Checkpoint(ts.TimeStep) error
}

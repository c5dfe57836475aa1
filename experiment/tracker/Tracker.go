// Package tracker defines how experiments record the data they
// generate. A Tracker watches every TimeStep an experiment produces
// and persists whatever it extracted once the experiment finishes.
package tracker

import (
	"encoding/gob"
	"log"
	"os"

	ts "sfneuman.com/gridlearn/timestep"
)

// Tracker records data from the TimeSteps of a running experiment.
// Track is called once per timestep. Save persists everything recorded
// so far and is called when the experiment ends.
type Tracker interface {
	Track(t ts.TimeStep)
	Save()
}

// LoadData reads back a []float64 saved by a Tracker. Trackers gob
// encode their data, so any file written by a Tracker's Save can be
// loaded with this function.
func LoadData(filename string) []float64 {
	file, err := os.Open(filename)
	if err != nil {
		log.Fatalf("could not open data file: %v", err)
	}
	defer file.Close()

	var data []float64
	if err := gob.NewDecoder(file).Decode(&data); err != nil {
		log.Fatalf("could not decode data: %v", err)
	}
	return data
}

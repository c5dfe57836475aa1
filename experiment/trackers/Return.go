// Package trackers implements Trackers that record specific data
// generated during an experiment
package trackers

import (
	"encoding/gob"
	"fmt"
	"log"
	"os"

	ts "sfneuman.com/gridlearn/timestep"
)

// Return records the return of each episode in an experiment: the sum
// of rewards over the episode's timesteps. One value is recorded per
// finished episode, so an episode that the experiment abandons partway
// through leaves no trace in the data.
type Return struct {
	lastTimeStep   int
	currentReturn  float64
	episodeReturns []float64
	filename       string
}

// NewReturn returns a Return Tracker that saves its data to filename
func NewReturn(filename string) *Return {
	var saver Return
	saver.lastTimeStep = -1
	saver.filename = filename
	return &saver
}

// Track adds step's reward to the running return of the current
// episode. A first timestep resets the accumulator, and a last
// timestep records the accumulated return as that episode's value.
//
// Track panics if it is called for non-sequential timesteps
func (r *Return) Track(step ts.TimeStep) {
	// First timesteps only restart the accumulator
	if step.First() {
		r.currentReturn = 0.0
		r.lastTimeStep = 0
		return
	}

	if r.lastTimeStep+1 != step.Number {
		msg := fmt.Sprintf("track: last two timesteps tracked are not "+
			"sequential: timestep %v --> timestep %v were tracked",
			r.lastTimeStep, step.Number)
		panic(msg)
	}

	r.currentReturn += step.Reward
	r.lastTimeStep = step.Number

	// Once the episode ends, record the return and begin tracking the
	// return of a new episode
	if step.Last() {
		r.episodeReturns = append(r.episodeReturns, r.currentReturn)
		r.currentReturn = 0.0
		r.lastTimeStep = -1
	}
}

// Data returns the episodic returns recorded so far
func (r *Return) Data() []float64 {
	data := make([]float64, len(r.episodeReturns))
	copy(data, r.episodeReturns)
	return data
}

// Save writes the recorded returns to the Tracker's file
func (r *Return) Save() {
	file, err := os.Create(r.filename)
	if err != nil {
		log.Fatalf("could not open save file: %v", err)
	}
	defer file.Close()

	en := gob.NewEncoder(file)
	if err = en.Encode(r.episodeReturns); err != nil {
		log.Fatalf("could not encode online return data: %v", err)
	}
}

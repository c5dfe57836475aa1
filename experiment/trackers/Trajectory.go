package trackers

import (
	"encoding/gob"
	"log"
	"os"

	"sfneuman.com/gridlearn/timestep"
)

// Trajectory tracks and saves the sequence of observations an agent
// visits during an experiment. Observations are recorded on every
// timestep, including the first timestep of each episode.
type Trajectory struct {
	observations [][]float64
	filename     string
}

// NewTrajectory returns a Trajectory Tracker that saves its data to
// filename
func NewTrajectory(filename string) *Trajectory {
	var saver Trajectory
	saver.filename = filename
	return &saver
}

// Track records the observation of the argument timestep
func (tr *Trajectory) Track(t timestep.TimeStep) {
	obs := make([]float64, t.Observation.Len())
	for i := 0; i < t.Observation.Len(); i++ {
		obs[i] = t.Observation.AtVec(i)
	}
	tr.observations = append(tr.observations, obs)
}

// Data returns the observations recorded so far
func (tr *Trajectory) Data() [][]float64 {
	data := make([][]float64, len(tr.observations))
	for i, obs := range tr.observations {
		data[i] = make([]float64, len(obs))
		copy(data[i], obs)
	}
	return data
}

// Save writes the recorded observations to the Tracker's file
func (tr *Trajectory) Save() {
	file, err := os.Create(tr.filename)
	if err != nil {
		log.Fatalf("could not open save file: %v", err)
	}
	defer file.Close()

	en := gob.NewEncoder(file)
	if err = en.Encode(tr.observations); err != nil {
		log.Fatalf("could not encode trajectory data: %v", err)
	}
}

// LoadTrajectory loads and returns the observations saved by a
// Trajectory tracker in the file filename
func LoadTrajectory(filename string) [][]float64 {
	file, err := os.Open(filename)
	if err != nil {
		log.Fatalf("could not open file: %v", err)
	}
	defer file.Close()

	var data [][]float64
	dec := gob.NewDecoder(file)
	if err = dec.Decode(&data); err != nil {
		log.Fatalf("could not decode trajectory data: %v", err)
	}
	return data
}

package trackers

import (
	"encoding/gob"
	"log"
	"os"

	"sfneuman.com/gridlearn/timestep"
)

// EpisodeLength records how many timesteps each episode of an
// experiment takes. Like Return, it records one value per finished
// episode, so an abandoned episode leaves no trace in the data.
type EpisodeLength struct {
	episodeLengths []float64
	filename       string
}

// NewEpisodeLength returns an EpisodeLength Tracker that saves its
// data to filename
func NewEpisodeLength(filename string) *EpisodeLength {
	var saver EpisodeLength
	saver.filename = filename
	return &saver
}

// Track records t.Number as the episode's length when t is the last
// timestep of its episode. All other timesteps are ignored, so the
// length recorded is the number of the timestep that ended the
// episode.
func (e *EpisodeLength) Track(t timestep.TimeStep) {
	if t.Last() {
		e.episodeLengths = append(e.episodeLengths, float64(t.Number))
	}
}

// Data returns the episode lengths recorded so far
func (e *EpisodeLength) Data() []float64 {
	data := make([]float64, len(e.episodeLengths))
	copy(data, e.episodeLengths)
	return data
}

// Save writes the recorded lengths to the Tracker's file. Lengths are
// stored as float64 so that tracker.LoadData can decode the saved
// file.
func (e *EpisodeLength) Save() {
	file, err := os.Create(e.filename)
	if err != nil {
		log.Fatalf("could not open save file: %v", err)
	}
	defer file.Close()

	en := gob.NewEncoder(file)
	if err = en.Encode(e.episodeLengths); err != nil {
		log.Fatalf("could not encode episode length data: %v", err)
	}
}

// Package experiment implements functionality for running an experiment
package experiment

import (
	"fmt"

	"sfneuman.com/gridlearn/agent"
	"sfneuman.com/gridlearn/environment/envconfig"
	"sfneuman.com/gridlearn/experiment/checkpointer"
	"sfneuman.com/gridlearn/experiment/tracker"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments will track environment TimeSteps, caching each TimeStep
// in RAM to be later saved to disk. The Save() function
// will then take all cached data and save it to disk. This is usually
// performed after an experiment has been run. The Run() method will
// run all episodes until the experiment's episode limit is reached, or
// some other ending condition is reached. The RunEpisode() function
// will run a single episode.
//
// In order to save data, Experiments use Trackers. Trackers determine
// which data generated during the experiment is saved. Experiments will
// send each TimeStep to Trackers using the Tracker's Track() method.
// The Tracker then determines which data from the TimeStep it caches
// and saves. New Trackers can be registered with an Experiment through
// the constructor or through an Experiment's Register() function.
type Experiment interface {
	Run() error
	RunEpisode() error

	// Save all tracked data to disk
	Save()

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t tracker.Tracker)
}

type Type string

const (
	OnlineExp Type = "OnlineExperiment"
)

// Config represents a configuration of an experiment.
type Config struct {
	Type
	Episodes  uint
	EnvConf   envconfig.Config
	AgentConf agent.TypedConfig
}

// CreateExp creates the Experiment that the Config describes. The
// trackers t and checkpointers check are registered with the new
// Experiment before it is returned.
func (c Config) CreateExp(seed uint64, t []tracker.Tracker,
	check []checkpointer.Checkpointer) (Experiment, error) {
	environment, _, err := c.EnvConf.Create(seed)
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create environment: %v",
			err)
	}

	a, err := c.AgentConf.CreateAgent(environment, seed)
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create agent: %v", err)
	}

	switch c.Type {
	case OnlineExp:
		return NewOnline(environment, a, c.Episodes, t, check), nil
	}

	return nil, fmt.Errorf("createExp: no such experiment type %v", c.Type)
}

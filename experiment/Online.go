package experiment

import (
	"fmt"

	"sfneuman.com/gridlearn/agent"
	env "sfneuman.com/gridlearn/environment"
	"sfneuman.com/gridlearn/experiment/checkpointer"
	"sfneuman.com/gridlearn/experiment/tracker"
	ts "sfneuman.com/gridlearn/timestep"
)

// Online is an Experiment that runs an agent online only. No offline
// evaluation is performed.
type Online struct {
	env.Environment
	agent.Agent
	episodes       uint
	currentEpisode uint
	trackers       []tracker.Tracker
	checkpointers  []checkpointer.Checkpointer
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The episodes parameter determines how
// many episodes the experiment is run for, the t parameter determines
// which data generated during the experiment is saved, and the c
// parameter determines how the agent's learned estimates are
// checkpointed while the experiment runs.
func NewOnline(e env.Environment, a agent.Agent, episodes uint,
	t []tracker.Tracker, c []checkpointer.Checkpointer) *Online {
	return &Online{e, a, episodes, 0, t, c}
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single episode of the experiment. The episode ends
// when the environment produces a timestep that ends the episode,
// either because a terminal state was reached or because the
// environment's step limit cut the episode off.
func (o *Online) RunEpisode() error {
	step, err := o.Environment.Reset()
	if err != nil {
		return fmt.Errorf("runEpisode: could not reset environment: %v", err)
	}
	if err := o.Agent.ObserveFirst(step); err != nil {
		return fmt.Errorf("runEpisode: could not observe first timestep: %v",
			err)
	}
	o.track(step)

	for !step.Last() {
		// Select action, step in environment
		action := o.Agent.SelectAction(step)
		step, _, err = o.Environment.Step(action)
		if err != nil {
			return fmt.Errorf("runEpisode: could not step environment: %v",
				err)
		}

		// Cache the environment step in each Tracker
		o.track(step)

		// Observe the timestep and update the agent
		if err := o.Agent.Observe(action, step); err != nil {
			return fmt.Errorf("runEpisode: could not observe timestep: %v",
				err)
		}
		if err := o.Agent.Step(); err != nil {
			return fmt.Errorf("runEpisode: could not update agent: %v", err)
		}

		if err := o.checkpoint(step); err != nil {
			return fmt.Errorf("runEpisode: %v", err)
		}
	}

	o.Agent.EndEpisode()
	o.currentEpisode++

	return nil
}

// Run runs the entire experiment for all episodes
func (o *Online) Run() error {
	for o.currentEpisode < o.episodes {
		if err := o.RunEpisode(); err != nil {
			return fmt.Errorf("run: %v", err)
		}
	}
	return nil
}

// CurrentEpisode returns the number of episodes the experiment has
// completed so far
func (o *Online) CurrentEpisode() uint {
	return o.currentEpisode
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() {
	for _, t := range o.trackers {
		t.Save()
	}
}

// track tracks the current timestep by caching its data in each Tracker
func (o *Online) track(step ts.TimeStep) {
	for _, t := range o.trackers {
		t.Track(step)
	}
}

// checkpoint saves the current state of the experiment's agent
func (o *Online) checkpoint(step ts.TimeStep) error {
	for _, c := range o.checkpointers {
		if err := c.Checkpoint(step); err != nil {
			return fmt.Errorf("checkpoint: %v", err)
		}
	}
	return nil
}

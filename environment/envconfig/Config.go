// Package envconfig provides configuration structs for configuring
// environments with default parameters and tasks. Environment
// configurations in this package are JSON serializable.
package envconfig

import (
	"fmt"

	env "sfneuman.com/gridlearn/environment"
	"sfneuman.com/gridlearn/environment/gridworld"
	ts "sfneuman.com/gridlearn/timestep"
)

// EnvName stores the name of environments that can be configured with
// this package
type EnvName string

// Environments available for configuration
const (
	GridWorld EnvName = "GridWorld"
)

// TaskName stores the tasks that can be configured with this package
type TaskName string

// Tasks available for configuration
const (
	Solve TaskName = "Solve"
)

// Config implements a specific configuration of a specific environment
// and specific task
type Config struct {
	Environment EnvName
	Task        TaskName

	// Level selects one of the built-in gridworld maps
	Level int

	// RandomStarts draws each episode's starting position uniformly
	// from the open cells instead of using the map's agent position
	RandomStarts bool

	// WindProb is the probability wind pushes the agent on windy
	// cells, with 1 giving deterministic wind
	WindProb float64

	EpisodeCutoff uint
	Discount      float64
}

// NewConfig returns a new environment Config
func NewConfig(envName EnvName, taskName TaskName, level int,
	randomStarts bool, windProb float64, episodeCutoff uint,
	discount float64) Config {
	return Config{
		Environment:   envName,
		Task:          taskName,
		Level:         level,
		RandomStarts:  randomStarts,
		WindProb:      windProb,
		EpisodeCutoff: episodeCutoff,
		Discount:      discount,
	}
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment
func (c Config) Create(seed uint64) (env.Environment, ts.TimeStep, error) {
	switch c.Environment {
	case GridWorld:
		return CreateGridWorld(c.Task, c.Level, c.RandomStarts, c.WindProb,
			int(c.EpisodeCutoff), c.Discount, seed)
	}

	return nil, ts.TimeStep{}, fmt.Errorf("create: cannot create "+
		"environment %v, no such environment", c.Environment)
}

// CreateGridWorld is a factory for creating a GridWorld environment on
// a built-in level with default task parameters
func CreateGridWorld(taskName TaskName, level int, randomStarts bool,
	windProb float64, cutoff int, discount float64,
	seed uint64) (env.Environment, ts.TimeStep, error) {
	m, err := gridworld.Level(level)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("createGridWorld: %v", err)
	}

	var starter env.Starter
	if randomStarts {
		starter, err = gridworld.NewRandomStart(m, seed)
		if err != nil {
			return nil, ts.TimeStep{}, fmt.Errorf("createGridWorld: %v", err)
		}
	} else {
		starter = gridworld.NewMapStart(m)
	}

	var task env.Task
	switch taskName {
	case Solve:
		task = gridworld.NewSolve(starter, cutoff)

	default:
		return nil, ts.TimeStep{}, fmt.Errorf("createGridWorld: GridWorld "+
			"environment has no task %v", taskName)
	}

	return gridworld.New(m, task, discount, windProb, seed)
}

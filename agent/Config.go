package agent

import (
	"sfneuman.com/gridlearn/environment"
)

// Config describes an Agent fully enough to construct it. Configs are
// plain structs of hyperparameters so they can round trip through JSON
// as part of an experiment configuration.
type Config interface {
	// CreateAgent constructs the Agent the Config describes for the
	// given environment
	CreateAgent(env environment.Environment, seed uint64) (Agent, error)

	// ValidAgent reports whether agent is of the type this Config
	// creates
	ValidAgent(agent Agent) bool

	// Validate returns an error if the Config's hyperparameters are
	// out of range
	Validate() error

	// Type identifies the kind of agent the Config creates
	Type() Type
}

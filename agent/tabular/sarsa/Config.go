package sarsa

import (
	"fmt"

	"sfneuman.com/gridlearn/agent"
	"sfneuman.com/gridlearn/environment"
)

func init() {
	agent.Register(agent.EGreedySarsaTabular, Config{})
}

// Config represents a configuration for the Sarsa agent
type Config struct {
	Epsilon      float64 // epsilon for the behaviour policy
	EpsilonDecay float64 // multiplicative decay per episode, 0 disables
	EpsilonMin   float64 // exploration floor when decaying
	LearningRate float64
	Double       bool // learn two tables with cross evaluation
}

// CreateAgent creates a new Sarsa agent based on the configuration
func (c Config) CreateAgent(env environment.Environment,
	seed uint64) (agent.Agent, error) {
	return New(env, c, seed)
}

// ValidAgent returns whether the argument agent is valid for this
// Config
func (c Config) ValidAgent(a agent.Agent) bool {
	_, ok := a.(*Sarsa)
	return ok
}

// Validate checks whether the Config is valid, returning an error
// describing the first malformed hyperparameter found
func (c Config) Validate() error {
	if c.Epsilon < 0.0 || c.Epsilon > 1.0 {
		return fmt.Errorf("epsilon must be in [0, 1], got %v", c.Epsilon)
	}
	if c.LearningRate <= 0.0 || c.LearningRate > 1.0 {
		return fmt.Errorf("learning rate must be in (0, 1], got %v",
			c.LearningRate)
	}
	if c.EpsilonDecay < 0.0 || c.EpsilonDecay > 1.0 {
		return fmt.Errorf("epsilon decay must be in [0, 1], got %v",
			c.EpsilonDecay)
	}
	if c.EpsilonMin < 0.0 || c.EpsilonMin > 1.0 {
		return fmt.Errorf("epsilon minimum must be in [0, 1], got %v",
			c.EpsilonMin)
	}
	return nil
}

// Type returns the type of agent the Config creates
func (c Config) Type() agent.Type {
	return agent.EGreedySarsaTabular
}

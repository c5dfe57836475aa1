package policy

import "sfneuman.com/gridlearn/table"

// Greedy implements a greedy policy over the action-value estimates of
// a table.Estimator. A Greedy policy is an EGreedy policy with epsilon
// fixed at 0: it always selects an action maximizing the estimates,
// with ties broken uniformly at random.
type Greedy struct {
	*EGreedy
}

// NewGreedy constructs a new Greedy policy over estimates
func NewGreedy(estimates table.Estimator, seed uint64) *Greedy {
	egreedy, err := NewEGreedy(estimates, 0.0, seed)
	if err != nil {
		// Unreachable, 0 is always a legal exploration rate
		panic(err)
	}

	return &Greedy{egreedy}
}

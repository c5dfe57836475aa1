package tracker

import (
	"sfneuman.com/gridlearn/environment"
	"sfneuman.com/gridlearn/timestep"
)

// registeredTracker binds a Tracker to one specific Environment. Its
// Track ignores the TimeStep it is handed and instead tracks the
// registered Environment's current TimeStep, so the Tracker sees that
// Environment's data no matter which timesteps the experiment feeds
// it. Save is the embedded Tracker's Save, unchanged.
type registeredTracker struct {
	Tracker
	env environment.Environment
}

// Register binds t to env so that t records data from env only, no
// matter which timesteps the experiment hands it. The returned Tracker
// wraps t; the concrete type of t is no longer visible through it.
func Register(t Tracker, env environment.Environment) Tracker {
	return &registeredTracker{t, env}
}

// Track records the registered Environment's current TimeStep with the
// embedded Tracker. The argument exists only to satisfy the Tracker
// interface and is ignored.
func (r *registeredTracker) Track(timestep.TimeStep) {
	r.Tracker.Track(r.env.CurrentTimeStep())
}

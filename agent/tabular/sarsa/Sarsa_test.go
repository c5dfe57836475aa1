package sarsa

import (
	"testing"

	"gonum.org/v1/gonum/mat"
	"sfneuman.com/gridlearn/agent"
	"sfneuman.com/gridlearn/agent/tabular/policy"
	"sfneuman.com/gridlearn/table"
	ts "sfneuman.com/gridlearn/timestep"
)

func greedyPolicy(t *testing.T, estimates table.Estimator,
	seed uint64) *policy.EGreedy {
	t.Helper()
	p, err := policy.NewEGreedy(estimates, 0.0, seed)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}
	return p
}

func drive(t *testing.T, learner agent.Learner, first ts.TimeStep,
	action int, nextStep ts.TimeStep) {
	t.Helper()

	if err := learner.ObserveFirst(first); err != nil {
		t.Fatalf("could not observe first step: %v", err)
	}
	actionVec := mat.NewVecDense(1, []float64{float64(action)})
	if err := learner.Observe(actionVec, nextStep); err != nil {
		t.Fatalf("could not observe step: %v", err)
	}
	if err := learner.Step(); err != nil {
		t.Fatalf("could not step learner: %v", err)
	}
}

func TestSarsaLearnerBanditUpdates(t *testing.T) {
	q := table.NewActionValue(2)
	learner := newSarsaLearner(q, greedyPolicy(t, q, 3), 0.5)
	state := mat.NewVecDense(1, []float64{0})

	rewards := []float64{1.0, -1.0}
	for action, reward := range rewards {
		first := ts.New(ts.First, 0, 0.9, state, 0)
		last := ts.New(ts.Last, reward, 0.9, state, 1)
		last.SetEnd(ts.TerminalStateReached)
		drive(t, learner, first, action, last)
		learner.EndEpisode()
	}

	if v := q.At(state, 0); v != 0.5 {
		t.Errorf("expected Q(s, 0) = 0.5 after one update, got %v", v)
	}
	if v := q.At(state, 1); v != -0.5 {
		t.Errorf("expected Q(s, 1) = -0.5 after one update, got %v", v)
	}
}

func TestSarsaLearnerTerminalTargetIsRewardAlone(t *testing.T) {
	q := table.NewActionValue(2)
	state := mat.NewVecDense(1, []float64{0})
	next := mat.NewVecDense(1, []float64{1})

	q.Set(next, 0, 100.0)
	q.Set(next, 1, 50.0)

	learner := newSarsaLearner(q, greedyPolicy(t, q, 3), 1.0)
	first := ts.New(ts.First, 0, 0.9, state, 0)
	last := ts.New(ts.Last, 2.0, 0.9, next, 1)
	last.SetEnd(ts.TerminalStateReached)
	drive(t, learner, first, 0, last)

	if v := q.At(state, 0); v != 2.0 {
		t.Errorf("terminal update should target the reward alone, got %v", v)
	}
}

func TestSarsaLearnerBootstrapsOffCommittedAction(t *testing.T) {
	q := table.NewActionValue(3)
	state := mat.NewVecDense(1, []float64{0})
	next := mat.NewVecDense(1, []float64{1})

	// Action 1 dominates in the next state, so a greedy behaviour
	// policy must commit to it and the update must use its value
	q.Set(next, 0, -1.0)
	q.Set(next, 1, 3.0)
	q.Set(next, 2, -1.0)

	learner := newSarsaLearner(q, greedyPolicy(t, q, 3), 1.0)
	first := ts.New(ts.First, 0, 0.5, state, 0)
	drive(t, learner, first, 0, ts.New(ts.Mid, 1.0, 0.5, next, 1))

	// target = 1 + 0.5 * Q(next, 1) = 2.5
	if v := q.At(state, 0); v != 2.5 {
		t.Errorf("expected Q(s, 0) = 2.5, got %v", v)
	}

	committed := learner.takeNextAction()
	if committed == nil {
		t.Fatal("expected a committed next action")
	}
	if a := int(committed.AtVec(0)); a != 1 {
		t.Errorf("expected committed action 1, got %v", a)
	}
	if learner.takeNextAction() != nil {
		t.Error("committed action should be cleared once taken")
	}
}

func TestSarsaAgentTakesCommittedAction(t *testing.T) {
	q := table.NewActionValue(4)
	state := mat.NewVecDense(1, []float64{0})
	next := mat.NewVecDense(1, []float64{1})

	// A fully exploring policy, so a fresh sample would rarely agree
	// with the committed action by chance
	behaviour, err := policy.NewEGreedy(q, 1.0, 17)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}
	learner := newSarsaLearner(q, behaviour, 0.5)
	a := &Sarsa{
		nextActioner: learner,
		Target:       policy.NewGreedy(q, 17),
		behaviour:    behaviour,
		estimates:    q,
	}

	first := ts.New(ts.First, 0, 1.0, state, 0)
	drive(t, a, first, 0, ts.New(ts.Mid, 0, 1.0, next, 1))

	committed := learner.nextAction
	if committed == nil {
		t.Fatal("expected the update to commit to a next action")
	}

	selected := a.SelectAction(ts.New(ts.Mid, 0, 1.0, next, 1))
	if selected != committed {
		t.Error("SelectAction should return the exact committed action")
	}
}

func TestSarsaEndEpisodeClearsCommitment(t *testing.T) {
	q := table.NewActionValue(2)
	state := mat.NewVecDense(1, []float64{0})
	next := mat.NewVecDense(1, []float64{1})

	learner := newSarsaLearner(q, greedyPolicy(t, q, 5), 0.5)
	first := ts.New(ts.First, 0, 1.0, state, 0)
	drive(t, learner, first, 0, ts.New(ts.Mid, 0, 1.0, next, 1))

	if learner.nextAction == nil {
		t.Fatal("expected a committed next action")
	}
	learner.EndEpisode()
	if learner.nextAction != nil {
		t.Error("EndEpisode should clear the committed action")
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{Epsilon: 0.1, EpsilonDecay: 0.99, EpsilonMin: 0.01,
		LearningRate: 0.5}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid config should not error: %v", err)
	}

	invalid := []Config{
		{Epsilon: -0.1, LearningRate: 0.5},
		{Epsilon: 1.1, LearningRate: 0.5},
		{Epsilon: 0.1, LearningRate: 0.0},
		{Epsilon: 0.1, LearningRate: 1.5},
		{Epsilon: 0.1, LearningRate: 0.5, EpsilonDecay: -1.0},
		{Epsilon: 0.1, LearningRate: 0.5, EpsilonMin: 2.0},
	}
	for i, config := range invalid {
		if err := config.Validate(); err == nil {
			t.Errorf("config %d should not validate", i)
		}
	}
}

func TestDoubleSarsaLearnerCrossEvaluates(t *testing.T) {
	state := mat.NewVecDense(1, []float64{0})
	next := mat.NewVecDense(1, []float64{1})

	// Combined estimates make action 1 dominant, so a greedy behaviour
	// policy commits to it; the update of A must then use B's value of
	// action 1, not A's own
	pair := table.NewPair(2)
	pair.A.Set(next, 1, 10.0)
	pair.B.Set(next, 1, 3.0)

	learner := newDoubleSarsaLearner(pair, greedyPolicy(t, pair, 11), 1.0, 11)
	first := ts.New(ts.First, 0, 0.5, state, 0)
	if err := learner.ObserveFirst(first); err != nil {
		t.Fatalf("could not observe first step: %v", err)
	}
	action := mat.NewVecDense(1, []float64{0})
	if err := learner.Observe(action, ts.New(ts.Mid, 1.0, 0.5, next,
		1)); err != nil {
		t.Fatalf("could not observe step: %v", err)
	}
	if err := learner.stepTable(pair.A, pair.B); err != nil {
		t.Fatalf("could not step learner: %v", err)
	}

	// target = 1 + 0.5 * B(next, 1) = 2.5
	if v := pair.A.At(state, 0); v != 2.5 {
		t.Errorf("expected A(s, 0) = 2.5 from cross evaluation, got %v", v)
	}
	if v := pair.B.At(state, 0); v != 0.0 {
		t.Errorf("updating A must not write B, got %v", v)
	}
}

package gridworld

import (
	"testing"

	"gonum.org/v1/gonum/mat"
	env "sfneuman.com/gridlearn/environment"
	ts "sfneuman.com/gridlearn/timestep"
)

// newWorld creates a GridWorld on the argument art, starting episodes
// at the map's agent position and cutting them off after cutoff steps
func newWorld(t *testing.T, rows []string, windProb float64, cutoff int,
	seed uint64) env.Environment {
	t.Helper()

	m, err := NewMap("test", rows)
	if err != nil {
		t.Fatalf("could not parse map: %v", err)
	}
	task := NewSolve(NewMapStart(m), cutoff)
	g, first, err := New(m, task, 0.99, windProb, seed)
	if err != nil {
		t.Fatalf("could not create gridworld: %v", err)
	}
	if !first.First() {
		t.Fatal("environments should start at a first timestep")
	}
	return g
}

// step takes action in g, failing the test on error
func step(t *testing.T, g env.Environment, action int) (ts.TimeStep, bool) {
	t.Helper()

	next, last, err := g.Step(mat.NewVecDense(1,
		[]float64{float64(action)}))
	if err != nil {
		t.Fatalf("could not step: %v", err)
	}
	return next, last
}

// at fails the test unless the observation of timeStep is (row, col)
func at(t *testing.T, timeStep ts.TimeStep, row, col int) {
	t.Helper()

	r, c := position(timeStep.Observation)
	if r != row || c != col {
		t.Fatalf("expected position (%d, %d), got (%d, %d)", row, col, r, c)
	}
}

func TestGridWorldMovesAndWallsBlock(t *testing.T) {
	g := newWorld(t, []string{
		"#####",
		"#   #",
		"# A #",
		"#  G#",
		"#####",
	}, 0.0, 100, 1)

	moves := []struct {
		action   int
		row, col int
	}{
		{MoveUp, 1, 2},
		{MoveUp, 1, 2}, // blocked by the top wall
		{MoveLeft, 1, 1},
		{MoveLeft, 1, 1}, // blocked by the left wall
		{MoveDown, 2, 1},
		{MoveDown, 3, 1},
		{MoveRight, 3, 2},
	}
	for i, move := range moves {
		next, last := step(t, g, move.action)
		at(t, next, move.row, move.col)
		if last || !next.Mid() {
			t.Fatalf("move %d should not end the episode", i)
		}
		if next.Reward != TimeStepReward {
			t.Errorf("move %d: expected reward %v, got %v", i,
				TimeStepReward, next.Reward)
		}
		if next.Number != i+1 {
			t.Errorf("move %d: expected step number %d, got %d", i, i+1,
				next.Number)
		}
	}
}

func TestGridWorldWindPushesWest(t *testing.T) {
	g := newWorld(t, []string{
		"#####",
		"#.. #",
		"# A #",
		"#  G#",
		"#####",
	}, 1.0, 100, 1)

	// Landing on the windy cell (1, 2) pushes one west onto another
	// windy cell, and the wind must not chain
	next, _ := step(t, g, MoveUp)
	at(t, next, 1, 1)

	// Bumping the top wall lands on the current windy cell again, and
	// the push is clipped by the west wall
	next, _ = step(t, g, MoveUp)
	at(t, next, 1, 1)

	next, _ = step(t, g, MoveDown)
	at(t, next, 2, 1)
}

func TestGridWorldStrongWindPushesTwiceWest(t *testing.T) {
	g := newWorld(t, []string{
		"######",
		"#  + #",
		"#  A #",
		"#G   #",
		"######",
	}, 1.0, 100, 1)

	next, _ := step(t, g, MoveUp)
	at(t, next, 1, 1)
}

func TestGridWorldStrongWindClipsAtWalls(t *testing.T) {
	g := newWorld(t, []string{
		"######",
		"##+  #",
		"# A  #",
		"#G   #",
		"######",
	}, 1.0, 100, 1)

	next, _ := step(t, g, MoveUp)
	at(t, next, 1, 2)
}

func TestGridWorldCalmWindNeverPushes(t *testing.T) {
	g := newWorld(t, []string{
		"#####",
		"#.. #",
		"# A #",
		"#  G#",
		"#####",
	}, 0.0, 100, 1)

	next, _ := step(t, g, MoveUp)
	at(t, next, 1, 2)
}

func TestGridWorldGoalEndsEpisode(t *testing.T) {
	g := newWorld(t, []string{
		"#####",
		"#   #",
		"# A #",
		"#  G#",
		"#####",
	}, 0.0, 100, 1)

	next, last := step(t, g, MoveDown)
	if last {
		t.Fatal("episode should not end on the first move")
	}

	next, last = step(t, g, MoveRight)
	at(t, next, 3, 3)
	if !last || !next.Last() {
		t.Fatal("reaching the goal should end the episode")
	}
	if next.End != ts.TerminalStateReached {
		t.Errorf("expected end type %v, got %v", ts.TerminalStateReached,
			next.End)
	}
	if next.Reward != GoalReward {
		t.Errorf("expected the goal reward %v, got %v", GoalReward,
			next.Reward)
	}
	if !g.AtGoal(next.Observation.(*mat.VecDense)) {
		t.Error("AtGoal should report the goal position")
	}
}

func TestGridWorldHazardEndsEpisode(t *testing.T) {
	g := newWorld(t, []string{
		"#####",
		"#A  #",
		"#X G#",
		"#####",
	}, 0.0, 100, 1)

	next, last := step(t, g, MoveDown)
	at(t, next, 2, 1)
	if !last || !next.Last() {
		t.Fatal("stepping into a hazard should end the episode")
	}
	if next.End != ts.TerminalStateReached {
		t.Errorf("expected end type %v, got %v", ts.TerminalStateReached,
			next.End)
	}
	if next.Reward != HazardReward {
		t.Errorf("expected the hazard reward %v, got %v", HazardReward,
			next.Reward)
	}
	if g.AtGoal(next.Observation.(*mat.VecDense)) {
		t.Error("a hazard position is not the goal")
	}
}

func TestGridWorldTimesOut(t *testing.T) {
	g := newWorld(t, []string{
		"#####",
		"#   #",
		"# A #",
		"#  G#",
		"#####",
	}, 0.0, 3, 1)

	for i := 0; i < 2; i++ {
		next, last := step(t, g, MoveUp)
		if last || next.Last() {
			t.Fatalf("step %d should not end the episode", i+1)
		}
	}

	next, last := step(t, g, MoveUp)
	if !last || !next.Last() {
		t.Fatal("the episode should time out at the step limit")
	}
	if next.End != ts.Timeout {
		t.Errorf("expected end type %v, got %v", ts.Timeout, next.End)
	}
	if next.Reward != TimeStepReward {
		t.Errorf("timing out should still pay %v, got %v", TimeStepReward,
			next.Reward)
	}
}

func TestGridWorldRejectsIllegalActions(t *testing.T) {
	g := newWorld(t, []string{
		"#####",
		"# A #",
		"#  G#",
		"#####",
	}, 0.0, 100, 1)

	if _, _, err := g.Step(mat.NewVecDense(2, []float64{0, 1})); err == nil {
		t.Error("multi-dimensional actions should error")
	}
	if _, _, err := g.Step(mat.NewVecDense(1, []float64{4})); err == nil {
		t.Error("action 4 should error")
	}
	if _, _, err := g.Step(mat.NewVecDense(1, []float64{-1})); err == nil {
		t.Error("action -1 should error")
	}
}

func TestGridWorldResetRestartsEpisode(t *testing.T) {
	g := newWorld(t, []string{
		"#####",
		"#   #",
		"# A #",
		"#  G#",
		"#####",
	}, 0.0, 100, 1)

	step(t, g, MoveUp)
	step(t, g, MoveLeft)

	first, err := g.Reset()
	if err != nil {
		t.Fatalf("could not reset: %v", err)
	}
	at(t, first, 2, 2)
	if !first.First() || first.Number != 0 {
		t.Error("resetting should restart the step count")
	}
	if current := g.CurrentTimeStep(); current.Number != 0 {
		t.Error("resetting should replace the current timestep")
	}
}

func TestGridWorldValidatesConstruction(t *testing.T) {
	m, err := NewMap("test", []string{
		"####",
		"#AG#",
		"####",
	})
	if err != nil {
		t.Fatalf("could not parse map: %v", err)
	}

	task := NewSolve(NewMapStart(m), 100)
	if _, _, err := New(m, task, 1.5, 1.0, 1); err == nil {
		t.Error("a discount above 1 should error")
	}
	if _, _, err := New(m, task, -0.1, 1.0, 1); err == nil {
		t.Error("a negative discount should error")
	}
	if _, _, err := New(m, task, 0.9, 1.5, 1); err == nil {
		t.Error("a wind probability above 1 should error")
	}
	if _, _, err := New(m, task, 0.9, -0.1, 1); err == nil {
		t.Error("a negative wind probability should error")
	}

	onWall := NewSolve(NewSingleStart(0, 0), 100)
	if _, _, err := New(m, onWall, 0.9, 1.0, 1); err == nil {
		t.Error("starting on a wall should error")
	}
	onGoal := NewSolve(NewSingleStart(1, 2), 100)
	if _, _, err := New(m, onGoal, 0.9, 1.0, 1); err == nil {
		t.Error("starting on the goal should error")
	}
}

func TestRandomStartDrawsOpenCells(t *testing.T) {
	m, err := NewMap("test", []string{
		"#####",
		"#A..#",
		"# #G#",
		"#####",
	})
	if err != nil {
		t.Fatalf("could not parse map: %v", err)
	}

	open := make(map[[2]int]bool)
	for _, cell := range m.OpenCells() {
		open[cell] = true
	}

	starter, err := NewRandomStart(m, 42)
	if err != nil {
		t.Fatalf("could not create starter: %v", err)
	}

	seen := make(map[[2]int]bool)
	for i := 0; i < 100; i++ {
		start := starter.Start()
		cell := [2]int{int(start.AtVec(0)), int(start.AtVec(1))}
		if !open[cell] {
			t.Fatalf("start (%d, %d) is not an open cell", cell[0], cell[1])
		}
		seen[cell] = true
	}
	if len(seen) < 2 {
		t.Error("random starts should vary across episodes")
	}

	// The same seed draws the same starting positions
	again, err := NewRandomStart(m, 42)
	if err != nil {
		t.Fatalf("could not create starter: %v", err)
	}
	first, err := NewRandomStart(m, 42)
	if err != nil {
		t.Fatalf("could not create starter: %v", err)
	}
	for i := 0; i < 10; i++ {
		a, b := again.Start(), first.Start()
		if a.AtVec(0) != b.AtVec(0) || a.AtVec(1) != b.AtVec(1) {
			t.Fatal("equal seeds should draw equal starting positions")
		}
	}
}

func TestSolveRewardBounds(t *testing.T) {
	task := NewSolve(NewSingleStart(1, 1), 100)
	if task.Min() != HazardReward {
		t.Errorf("expected minimum reward %v, got %v", HazardReward,
			task.Min())
	}
	if task.Max() != GoalReward {
		t.Errorf("expected maximum reward %v, got %v", GoalReward,
			task.Max())
	}

	spec := task.RewardSpec()
	if spec.LowerBound.AtVec(0) != HazardReward ||
		spec.UpperBound.AtVec(0) != GoalReward {
		t.Error("the reward spec should carry the task's reward bounds")
	}
}

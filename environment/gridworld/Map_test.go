package gridworld

import "testing"

func TestNewMapRejectsMalformedMaps(t *testing.T) {
	cases := []struct {
		name string
		rows []string
	}{
		{"empty art", nil},
		{"ragged rows", []string{"####", "#AG#", "####", "##"}},
		{"unknown cell", []string{"####", "#AG#", "#?##", "####"}},
		{"no agent", []string{"####", "# G#", "####"}},
		{"two agents", []string{"####", "#AG#", "#A #", "####"}},
		{"no goal", []string{"####", "#A #", "####"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewMap(c.name, c.rows); err == nil {
				t.Errorf("map %q should not parse", c.name)
			}
		})
	}
}

func TestMapAccessors(t *testing.T) {
	m, err := NewMap("test", []string{
		"######",
		"#A.+X#",
		"#   G#",
		"######",
	})
	if err != nil {
		t.Fatalf("could not parse map: %v", err)
	}

	if m.Rows() != 4 || m.Cols() != 6 {
		t.Errorf("expected a 4x6 map, got %dx%d", m.Rows(), m.Cols())
	}
	if row, col := m.Start(); row != 1 || col != 1 {
		t.Errorf("expected start (1, 1), got (%d, %d)", row, col)
	}

	// The agent's cell reads as floor
	if m.At(1, 1) != Floor {
		t.Errorf("agent cell should read as floor, got %q", m.At(1, 1))
	}

	if !m.WallAt(0, 0) {
		t.Error("expected a wall at (0, 0)")
	}
	if m.WallAt(2, 1) {
		t.Error("expected floor at (2, 1)")
	}
	if wind := m.WindAt(1, 2); wind != 1 {
		t.Errorf("expected wind 1 at (1, 2), got %d", wind)
	}
	if wind := m.WindAt(1, 3); wind != 2 {
		t.Errorf("expected wind 2 at (1, 3), got %d", wind)
	}
	if wind := m.WindAt(2, 2); wind != 0 {
		t.Errorf("expected no wind at (2, 2), got %d", wind)
	}
	if !m.HazardAt(1, 4) {
		t.Error("expected a hazard at (1, 4)")
	}
	if !m.GoalAt(2, 4) {
		t.Error("expected the goal at (2, 4)")
	}

	// Positions outside the map read as walls
	if !m.WallAt(-1, 0) || !m.WallAt(0, -1) || !m.WallAt(4, 0) ||
		!m.WallAt(0, 6) {
		t.Error("positions outside the map should read as walls")
	}
}

func TestMapOpenCells(t *testing.T) {
	m, err := NewMap("test", []string{
		"#####",
		"#A.X#",
		"# #G#",
		"#####",
	})
	if err != nil {
		t.Fatalf("could not parse map: %v", err)
	}

	// Open cells: the agent cell, the windy cell, and (2, 1)
	want := map[[2]int]bool{
		{1, 1}: true,
		{1, 2}: true,
		{2, 1}: true,
	}
	cells := m.OpenCells()
	if len(cells) != len(want) {
		t.Fatalf("expected %d open cells, got %d", len(want), len(cells))
	}
	for _, cell := range cells {
		if !want[cell] {
			t.Errorf("(%d, %d) should not be open", cell[0], cell[1])
		}
	}
}

func TestLevels(t *testing.T) {
	if NumLevels() != 3 {
		t.Fatalf("expected 3 built-in levels, got %d", NumLevels())
	}

	for level := 0; level < NumLevels(); level++ {
		m, err := Level(level)
		if err != nil {
			t.Fatalf("could not load level %d: %v", level, err)
		}
		if m.Rows() != 11 || m.Cols() != 20 {
			t.Errorf("level %d: expected an 11x20 map, got %dx%d", level,
				m.Rows(), m.Cols())
		}
		if row, col := m.Start(); row != 9 || col != 1 {
			t.Errorf("level %d: expected start (9, 1), got (%d, %d)", level,
				row, col)
		}
	}

	windy, _ := Level(1)
	if windy.WindAt(3, 10) != 1 || windy.WindAt(4, 10) != 2 ||
		windy.WindAt(5, 10) != 1 {
		t.Error("level 1 should have wind rows of strengths 1, 2, 1")
	}

	cliff, _ := Level(2)
	for col := 2; col <= 17; col++ {
		if !cliff.HazardAt(9, col) {
			t.Errorf("level 2 should have a hazard at (9, %d)", col)
		}
	}
	if !cliff.GoalAt(9, 18) {
		t.Error("level 2 should have its goal at (9, 18)")
	}

	if _, err := Level(-1); err == nil {
		t.Error("level -1 should not load")
	}
	if _, err := Level(NumLevels()); err == nil {
		t.Errorf("level %d should not load", NumLevels())
	}
}

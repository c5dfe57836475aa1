package gridworld

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

// Cell characters legal in an ascii map
const (
	Wall       byte = '#'
	Floor      byte = ' '
	Agent      byte = 'A'
	Goal       byte = 'G'
	Hazard     byte = 'X'
	Wind       byte = '.' // pushes one cell west
	StrongWind byte = '+' // pushes two cells west
)

// Map is an immutable gridworld layout parsed from ascii art. Each
// line of the art is one row of the grid, indexed from the top-left
// corner as (row, col). Exactly one cell holds the agent's starting
// position 'A', and at least one cell must hold a goal 'G'.
type Map struct {
	name     string
	cells    []string
	startRow int
	startCol int
}

// NewMap parses the ascii art rows into a Map
func NewMap(name string, rows []string) (*Map, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("newMap: map must have at least one row")
	}

	cols := len(rows[0])
	startRow, startCol := -1, -1
	goals := 0
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("newMap: row %d has length %d, "+
				"expected %d", i, len(row), cols)
		}
		for j := 0; j < len(row); j++ {
			switch row[j] {
			case Wall, Floor, Hazard, Wind, StrongWind:
			case Goal:
				goals++
			case Agent:
				if startRow >= 0 {
					return nil, fmt.Errorf("newMap: more than one agent "+
						"position, second found at (%d, %d)", i, j)
				}
				startRow, startCol = i, j
			default:
				return nil, fmt.Errorf("newMap: unknown cell %q at (%d, %d)",
					row[j], i, j)
			}
		}
	}
	if startRow < 0 {
		return nil, fmt.Errorf("newMap: map has no agent position %q",
			Agent)
	}
	if goals == 0 {
		return nil, fmt.Errorf("newMap: map has no goal position %q", Goal)
	}

	return &Map{name, rows, startRow, startCol}, nil
}

// Name returns the name the map was parsed with
func (m *Map) Name() string {
	return m.name
}

// Rows returns the number of rows in the map
func (m *Map) Rows() int {
	return len(m.cells)
}

// Cols returns the number of columns in the map
func (m *Map) Cols() int {
	return len(m.cells[0])
}

// At returns the cell at (row, col). The agent's starting cell reads
// as floor, and positions outside the map read as wall.
func (m *Map) At(row, col int) byte {
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return Wall
	}
	if cell := m.cells[row][col]; cell != Agent {
		return cell
	}
	return Floor
}

// WallAt returns whether (row, col) is impassable
func (m *Map) WallAt(row, col int) bool {
	return m.At(row, col) == Wall
}

// WindAt returns how many cells westward the wind at (row, col) pushes
func (m *Map) WindAt(row, col int) int {
	switch m.At(row, col) {
	case Wind:
		return 1
	case StrongWind:
		return 2
	}
	return 0
}

// GoalAt returns whether (row, col) is a goal cell
func (m *Map) GoalAt(row, col int) bool {
	return m.At(row, col) == Goal
}

// HazardAt returns whether (row, col) is a hazard cell
func (m *Map) HazardAt(row, col int) bool {
	return m.At(row, col) == Hazard
}

// Start returns the agent's starting position
func (m *Map) Start() (row, col int) {
	return m.startRow, m.startCol
}

// OpenCells returns every (row, col) position an agent may occupy
// without ending the episode
func (m *Map) OpenCells() [][2]int {
	var cells [][2]int
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			switch m.At(row, col) {
			case Floor, Wind, StrongWind:
				cells = append(cells, [2]int{row, col})
			}
		}
	}
	return cells
}

// String renders the map with the agent at its starting position
func (m *Map) String() string {
	return m.render(m.startRow, m.startCol)
}

// render draws the map with the agent at (agentRow, agentCol),
// coloring each cell type for terminal output
func (m *Map) render(agentRow, agentCol int) string {
	var builder strings.Builder
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			if row == agentRow && col == agentCol {
				builder.WriteString(aurora.Yellow(string(Agent)).String())
				continue
			}
			cell := m.At(row, col)
			switch cell {
			case Wall:
				builder.WriteString(aurora.White(string(cell)).String())
			case Goal:
				builder.WriteString(aurora.Green(string(cell)).String())
			case Hazard:
				builder.WriteString(aurora.Red(string(cell)).String())
			case Wind, StrongWind:
				builder.WriteString(aurora.Cyan(string(cell)).String())
			default:
				builder.WriteByte(cell)
			}
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

package gridworld

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
	env "sfneuman.com/gridlearn/environment"
)

// SingleStart starts every episode at the same (row, col) position
type SingleStart struct {
	row, col int
}

// NewSingleStart returns a Starter that always starts episodes at
// (row, col)
func NewSingleStart(row, col int) env.Starter {
	return SingleStart{row: row, col: col}
}

// NewMapStart returns a Starter that always starts episodes at the
// agent position marked on m
func NewMapStart(m *Map) env.Starter {
	row, col := m.Start()
	return NewSingleStart(row, col)
}

// Start returns the starting state of the next episode
func (s SingleStart) Start() *mat.VecDense {
	return mat.NewVecDense(2, []float64{float64(s.row), float64(s.col)})
}

// RandomStart starts each episode at a position drawn uniformly from
// the open cells of a Map
type RandomStart struct {
	cells [][2]int
	index distuv.Categorical
}

// NewRandomStart returns a Starter drawing starting positions
// uniformly from the open cells of m
func NewRandomStart(m *Map, seed uint64) (env.Starter, error) {
	cells := m.OpenCells()
	if len(cells) == 0 {
		return nil, fmt.Errorf("randomStart: map has no open cells")
	}

	weights := make([]float64, len(cells))
	for i := range weights {
		weights[i] = 1.0
	}
	source := rand.NewSource(seed)

	return &RandomStart{
		cells: cells,
		index: distuv.NewCategorical(weights, source),
	}, nil
}

// Start returns the starting state of the next episode
func (r *RandomStart) Start() *mat.VecDense {
	cell := r.cells[int(r.index.Rand())]
	return mat.NewVecDense(2, []float64{float64(cell[0]), float64(cell[1])})
}

// Package render draws learned gridworld estimates as PNG images. Open
// cells are shaded by their greedy state value and marked with arrows
// for the greedy actions.
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"gonum.org/v1/gonum/mat"

	"sfneuman.com/gridlearn/environment/gridworld"
	"sfneuman.com/gridlearn/table"
	"sfneuman.com/gridlearn/utils/floatutils"
)

// CellSize is the width and height of a drawn grid cell in pixels
const CellSize = 40

const (
	arrowLength = CellSize * 0.3
	headLength  = CellSize * 0.12
)

var (
	wallShade   = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	goalShade   = color.RGBA{R: 102, G: 230, B: 102, A: 255}
	hazardShade = color.RGBA{R: 230, G: 77, B: 77, A: 255}
	lowShade    = color.RGBA{R: 46, G: 64, B: 128, A: 255}
	highShade   = color.RGBA{R: 255, G: 217, B: 102, A: 255}
	arrowShade  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Values draws the greedy state values of estimates over the cells of
// m. Each open cell is shaded by the value of its highest-valued
// action, scaled between the lowest and highest such values on the
// map, and each greedy action is marked with an arrow. Walls, the
// goal, and hazards keep fixed shades.
func Values(m *gridworld.Map, estimates table.Estimator) *gg.Context {
	dc := newGrid(m)

	values, greedy := greedyValues(m, estimates)
	min, max := valueRange(values)

	for _, cell := range m.OpenCells() {
		x := float64(cell[1] * CellSize)
		y := float64(cell[0] * CellSize)

		dc.SetColor(valueShade(values[cell], min, max))
		dc.DrawRectangle(x, y, CellSize, CellSize)
		dc.Fill()

		dc.SetColor(arrowShade)
		dc.SetLineWidth(2)
		for _, action := range greedy[cell] {
			drawArrow(dc, x+CellSize/2, y+CellSize/2, action)
		}
	}

	return dc
}

// SaveValues renders the greedy state values of estimates over m and
// saves the image to the file filename
func SaveValues(m *gridworld.Map, estimates table.Estimator,
	filename string) error {
	if err := Values(m, estimates).SavePNG(filename); err != nil {
		return fmt.Errorf("savevalues: could not save image: %v", err)
	}
	return nil
}

// Visits shades each open cell of m by how often its [row, col]
// observation appears in trajectory, scaled between zero and the
// highest visit count on the map
func Visits(m *gridworld.Map, trajectory [][]float64) *gg.Context {
	counts := make(map[[2]int]float64)
	for _, obs := range trajectory {
		if len(obs) < 2 {
			continue
		}
		counts[[2]int{int(obs[0]), int(obs[1])}]++
	}

	max := 0.0
	for _, count := range counts {
		if count > max {
			max = count
		}
	}

	dc := newGrid(m)
	for _, cell := range m.OpenCells() {
		dc.SetColor(valueShade(counts[cell], 0, max))
		dc.DrawRectangle(float64(cell[1]*CellSize), float64(cell[0]*CellSize),
			CellSize, CellSize)
		dc.Fill()
	}

	return dc
}

// SaveVisits renders the visit counts of trajectory over m and saves
// the image to the file filename
func SaveVisits(m *gridworld.Map, trajectory [][]float64,
	filename string) error {
	if err := Visits(m, trajectory).SavePNG(filename); err != nil {
		return fmt.Errorf("savevisits: could not save image: %v", err)
	}
	return nil
}

// newGrid returns a drawing context sized to m with walls filled in
// and fixed shades on the goal and hazard cells
func newGrid(m *gridworld.Map) *gg.Context {
	dc := gg.NewContext(m.Cols()*CellSize, m.Rows()*CellSize)
	dc.SetColor(wallShade)
	dc.Clear()

	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			switch {
			case m.GoalAt(row, col):
				dc.SetColor(goalShade)
			case m.HazardAt(row, col):
				dc.SetColor(hazardShade)
			default:
				continue
			}
			dc.DrawRectangle(float64(col*CellSize), float64(row*CellSize),
				CellSize, CellSize)
			dc.Fill()
		}
	}

	return dc
}

// greedyValues returns the greedy state value of every open cell of m
// along with the actions attaining it
func greedyValues(m *gridworld.Map,
	estimates table.Estimator) (map[[2]int]float64, map[[2]int][]int) {
	values := make(map[[2]int]float64)
	greedy := make(map[[2]int][]int)

	for _, cell := range m.OpenCells() {
		state := mat.NewVecDense(2, []float64{float64(cell[0]),
			float64(cell[1])})
		actionValues := estimates.ActionValues(state)

		row := make([]float64, actionValues.Len())
		for i := range row {
			row[i] = actionValues.AtVec(i)
		}

		max, indices := floatutils.MaxSlice(row)
		values[cell] = max
		greedy[cell] = indices
	}

	return values, greedy
}

func valueRange(values map[[2]int]float64) (min, max float64) {
	first := true
	for _, v := range values {
		if first {
			min, max = v, v
			first = false
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// valueShade interpolates between the low and high shades. The lowest
// value on the map takes the low shade and the highest the high shade.
func valueShade(v, min, max float64) color.Color {
	if max <= min {
		return lowShade
	}

	t := (v - min) / (max - min)
	return color.RGBA{
		R: lerp(lowShade.R, highShade.R, t),
		G: lerp(lowShade.G, highShade.G, t),
		B: lerp(lowShade.B, highShade.B, t),
		A: 255,
	}
}

func lerp(low, high uint8, t float64) uint8 {
	return uint8(float64(low) + t*(float64(high)-float64(low)))
}

// drawArrow draws an arrow from the cell centre (cx, cy) pointing in
// the direction action moves the agent
func drawArrow(dc *gg.Context, cx, cy float64, action int) {
	var dx, dy float64
	switch action {
	case gridworld.MoveUp:
		dy = -arrowLength
	case gridworld.MoveDown:
		dy = arrowLength
	case gridworld.MoveLeft:
		dx = -arrowLength
	case gridworld.MoveRight:
		dx = arrowLength
	}

	tipX, tipY := cx+dx, cy+dy
	dc.DrawLine(cx-dx, cy-dy, tipX, tipY)

	angle := math.Atan2(dy, dx)
	for _, offset := range []float64{3 * math.Pi / 4, -3 * math.Pi / 4} {
		dc.DrawLine(tipX, tipY,
			tipX+headLength*math.Cos(angle+offset),
			tipY+headLength*math.Sin(angle+offset))
	}
	dc.Stroke()
}

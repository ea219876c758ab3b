/*
Package maze generates rectangular, image-ready mazes.

A maze is a Grid of Wall, Path, Start and End cells with a wall border, one
entrance on the top row and one exit on the bottom row. Generate carves a
biased random walk from the entrance to the exit and then adds noise: short
branches and widened corridors that make the maze harder to read.

Every random decision is drawn from streams derived from the run's seed, so
the same width, height, noise bias and seed always produce the same grid.
The noise pass gives each swept cell its own stream, which makes the extra
paths of a lower bias a subset of those of a higher one.
*/
package maze

import (
	"strings"
)

// MinDimension is the smallest width or height Generate accepts.
const MinDimension = 20

// Grid is a height x width matrix of cells.
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// NewGrid allocates a grid filled with walls.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	cells := make([][]Cell, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBound reports whether pos lies inside the grid.
func (g *Grid) InBound(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < g.height && pos.Col >= 0 && pos.Col < g.width
}

// ValueAt returns the cell at pos, or OutOfBounds when pos is outside the grid.
func (g *Grid) ValueAt(pos CellPosition) Cell {
	if !g.InBound(pos) {
		return OutOfBounds
	}
	return g.cells[pos.Row][pos.Col]
}

// SetValue stores value at pos.
func (g *Grid) SetValue(pos CellPosition, value Cell) error {
	if !g.InBound(pos) || value == OutOfBounds {
		return ErrOutOfBounds
	}
	g.cells[pos.Row][pos.Col] = value
	return nil
}

// set stores value at pos without checks. Callers keep pos inside the grid.
func (g *Grid) set(pos CellPosition, value Cell) {
	g.cells[pos.Row][pos.Col] = value
}

// IsEdge reports whether pos lies on the outer border.
func (g *Grid) IsEdge(pos CellPosition) bool {
	return pos.Row == 0 || pos.Row == g.height-1 || pos.Col == 0 || pos.Col == g.width-1
}

// IsNearEdge reports whether pos is exactly one cell inside the border on
// either axis.
func (g *Grid) IsNearEdge(pos CellPosition) bool {
	return pos.Row == 1 || pos.Row == g.height-2 || pos.Col == 1 || pos.Col == g.width-2
}

// Neighbors returns the orthogonal neighbours of pos holding match, skipping
// border cells. The result follows the order up, down, right, left. When dirs
// is non-empty only those directions are considered.
func (g *Grid) Neighbors(pos CellPosition, match Cell, dirs ...Direction) []CellPosition {
	var result []CellPosition
	for _, d := range g.matching(pos, match, dirs) {
		result = append(result, pos.Step(d))
	}
	return result
}

// DirectionNames is Neighbors returning directions instead of positions.
func (g *Grid) DirectionNames(pos CellPosition, match Cell) []Direction {
	return g.matching(pos, match, nil)
}

func (g *Grid) matching(pos CellPosition, match Cell, dirs []Direction) []Direction {
	var result []Direction
	for _, d := range directionOrder {
		if len(dirs) > 0 && !containsDirection(dirs, d) {
			continue
		}
		n := pos.Step(d)
		if g.ValueAt(n) != match || g.IsEdge(n) {
			continue
		}
		result = append(result, d)
	}
	return result
}

func containsDirection(dirs []Direction, d Direction) bool {
	for _, candidate := range dirs {
		if candidate == d {
			return true
		}
	}
	return false
}

// CellsByValue returns every position holding value in row-major order.
func (g *Grid) CellsByValue(value Cell) []CellPosition {
	var result []CellPosition
	for row := range g.cells {
		for col, cell := range g.cells[row] {
			if cell == value {
				result = append(result, CellPosition{Row: row, Col: col})
			}
		}
	}
	return result
}

// CellByValue returns the only position holding value. It fails with an
// InvariantError when there is none or more than one.
func (g *Grid) CellByValue(value Cell) (CellPosition, error) {
	cells := g.CellsByValue(value)
	if len(cells) != 1 {
		return CellPosition{}, invariantf("expected exactly one %s cell, found %d", value, len(cells))
	}
	return cells[0], nil
}

// Count returns the number of cells holding value.
func (g *Grid) Count(value Cell) int {
	count := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell == value {
				count++
			}
		}
	}
	return count
}

// clone returns a deep copy of g.
func (g *Grid) clone() *Grid {
	cells := make([][]Cell, g.height)
	for i, row := range g.cells {
		cells[i] = append([]Cell(nil), row...)
	}
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// String renders the grid one row per line using '#', '.', 's' and 'e'.
func (g *Grid) String() string {
	var output strings.Builder
	output.Grow((g.width + 1) * g.height)

	for _, row := range g.cells {
		for _, cell := range row {
			output.WriteRune(cell.Rune())
		}
		output.WriteByte('\n')
	}

	return output.String()
}

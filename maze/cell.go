package maze

import "fmt"

// Cell is the state of a single grid cell.
type Cell uint8

const (
	// Wall blocks traversal and is rendered black.
	Wall Cell = iota
	// Path is an open cell.
	Path
	// Start is the single entrance on the top row.
	Start
	// End is the single exit on the bottom row.
	End
	// OutOfBounds is returned by Grid.ValueAt for coordinates outside the grid.
	// It is never stored in a grid.
	OutOfBounds
)

// Open reports whether the cell can be walked through.
func (c Cell) Open() bool {
	return c == Path || c == Start || c == End
}

// Rune returns the character used for the cell in the text form of a maze.
func (c Cell) Rune() rune {
	switch c {
	case Wall:
		return '#'
	case Path:
		return '.'
	case Start:
		return 's'
	case End:
		return 'e'
	}
	return '?'
}

func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Path:
		return "path"
	case Start:
		return "start"
	case End:
		return "end"
	case OutOfBounds:
		return "out-of-bounds"
	}
	return fmt.Sprintf("Unknown cell: %d", uint8(c))
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Step returns the position one cell away in direction d.
func (p CellPosition) Step(d Direction) CellPosition {
	delta := Directions[d]
	return CellPosition{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}

func (p CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is one of the four orthogonal moves.
type Direction uint8

const (
	Up Direction = iota
	Down
	Right
	Left
)

var (
	// Directions maps every direction to its row/column delta.
	Directions = map[Direction]CellPosition{
		Up:    {Row: -1, Col: 0},
		Down:  {Row: 1, Col: 0},
		Right: {Row: 0, Col: 1},
		Left:  {Row: 0, Col: -1},
	}

	// directionOrder is the fixed enumeration order used by neighbour queries.
	directionOrder = [...]Direction{Up, Down, Right, Left}
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Right:
		return "right"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Unknown direction: %d", uint8(d))
}

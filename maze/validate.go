package maze

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Validate checks the maze rules: one Start on the top row away from the
// corners, one End on the bottom row, walls on every other border cell and an
// open route between Start and End.
func Validate(g *Grid) error {
	if g.width < 3 || g.height < 3 {
		return invariantf("grid %dx%d has no interior", g.width, g.height)
	}

	start, err := g.CellByValue(Start)
	if err != nil {
		return err
	}
	if start.Row != 0 || start.Col < 1 || start.Col > g.width-2 {
		return invariantf("start %s is not on the top row", start)
	}

	end, err := g.CellByValue(End)
	if err != nil {
		return err
	}
	if end.Row != g.height-1 {
		return invariantf("end %s is not on the bottom row", end)
	}

	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			pos := CellPosition{Row: row, Col: col}
			if !g.IsEdge(pos) || pos == start || pos == end {
				continue
			}
			if v := g.ValueAt(pos); v != Wall {
				return invariantf("border cell %s is %s", pos, v)
			}
		}
	}

	if _, err := Solve(g); err != nil {
		return err
	}
	return nil
}

// Solve returns a shortest route from Start to End, both included, walking
// through open cells in the four orthogonal directions.
func Solve(g *Grid) ([]CellPosition, error) {
	start, err := g.CellByValue(Start)
	if err != nil {
		return nil, err
	}
	end, err := g.CellByValue(End)
	if err != nil {
		return nil, err
	}

	visited := mapset.New[CellPosition]()
	parent := make(map[CellPosition]CellPosition)
	pending := queue.New[CellPosition]()

	visited.Put(start)
	pending.Enqueue(start)

	for !pending.Empty() {
		cell := pending.Dequeue()
		if cell == end {
			return backtrack(parent, start, end), nil
		}

		for _, d := range directionOrder {
			next := cell.Step(d)
			if !g.ValueAt(next).Open() || visited.Has(next) {
				continue
			}
			visited.Put(next)
			parent[next] = cell
			pending.Enqueue(next)
		}
	}

	return nil, invariantf("end %s is not reachable from start %s", end, start)
}

func backtrack(parent map[CellPosition]CellPosition, start, end CellPosition) []CellPosition {
	route := []CellPosition{end}
	for cell := end; cell != start; {
		cell = parent[cell]
		route = append(route, cell)
	}
	slices.Reverse(route)
	return route
}

package maze

const (
	preferChance       = 0.6
	walkerBranchChance = 0.01
	branchSwapChance   = 0.5
	nearEdgeSwapChance = 0.6
)

// walkSolution carves the guaranteed route from a random entrance on the top
// row to an exit on the bottom row.
//
// The walker never moves up. Every step opens a wall cell next to the current
// cell, so the route stays connected, and the cell below the walker is always
// untouched because nothing carved so far lies deeper than the walker.
func (gen *generator) walkSolution() error {
	g := gen.grid

	start := CellPosition{Row: 0, Col: 1 + gen.rng.IntN(g.width-2)}
	g.set(start, Start)

	current := start.Step(Down)
	g.set(current, Path)

	prefer, secondary := Left, Right
	if gen.rng.Chance(0.5) {
		prefer, secondary = Right, Left
	}

	lastRow := g.height - 2
	for current.Row < lastRow {
		gen.stage(stageSolution, current.Row, lastRow)

		candidates := withoutDirection(g.DirectionNames(current, Wall), Up)
		if len(candidates) == 0 {
			return &StuckWalkerError{Pos: current, Seed: gen.rng.Seed()}
		}

		dir := candidates[gen.rng.IntN(len(candidates))]
		if containsDirection(candidates, prefer) && gen.rng.Chance(preferChance) {
			dir = prefer
		} else if gen.rng.Chance(walkerBranchChance) {
			current = gen.branch(gen.rng, g, current, prefer, false, 0)
			if gen.rng.Chance(branchSwapChance) {
				prefer, secondary = secondary, prefer
			}
			continue
		}

		current = current.Step(dir)
		g.set(current, Path)

		// Flip before the walker can hug the wall it is heading for.
		if g.IsNearEdge(current) && gen.rng.Chance(nearEdgeSwapChance) {
			prefer, secondary = secondary, prefer
		}
	}
	gen.stage(stageSolution, lastRow, lastRow)

	g.set(CellPosition{Row: g.height - 1, Col: current.Col}, End)
	return nil
}

func withoutDirection(dirs []Direction, d Direction) []Direction {
	result := dirs[:0]
	for _, candidate := range dirs {
		if candidate != d {
			result = append(result, candidate)
		}
	}
	return result
}

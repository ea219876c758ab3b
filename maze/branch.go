package maze

const (
	carveStopChance = 0.05
	carveDownChance = 0.45
)

// branch carves an offshoot from pos heading in dir and returns the last
// cell it opened (pos itself when nothing was carved). Each step draws once
// from rng: low draws end the branch, a middle band bends it downwards and
// the rest carry it straight on. The branch also ends when the next cell in
// its heading is not a wall in layout or lies on the border, so it never
// touches the outer wall, Start or End.
//
// layout is the grid whose walls steer the branch; cells are carved into the
// generator's grid. offset only moves the stop threshold, so the same draws
// under a higher offset give a branch that extends the lower one.
//
// noExit disables the random stop; the branch then runs until it is blocked.
func (gen *generator) branch(rng *RNG, layout *Grid, pos CellPosition, dir Direction, noExit bool, offset float64) CellPosition {
	for {
		roll := rng.Float64()
		if roll+offset < carveStopChance && !noExit {
			return pos
		}

		if !containsDirection(layout.DirectionNames(pos, Wall), dir) {
			return pos
		}

		heading := dir
		if carveStopChance < roll && roll < carveDownChance {
			heading = Down
		}

		next := layout.Neighbors(pos, Wall, heading)
		if len(next) == 0 || layout.IsEdge(next[0]) {
			return pos
		}

		gen.grid.set(next[0], Path)
		pos = next[0]
	}
}

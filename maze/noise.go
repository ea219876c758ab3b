package maze

import "fmt"

// NoiseBias selects how many extra paths the noise pass opens.
type NoiseBias string

const (
	NoiseDefault NoiseBias = "default"
	NoiseNone    NoiseBias = "none"
	NoisePaths   NoiseBias = "paths"
	NoiseWalls   NoiseBias = "walls"
)

const (
	pathsOffset = 0.25
	wallsOffset = -0.09

	noiseRollSides   = 14
	widenRoll        = 0
	branchLeftRoll   = 2
	branchRightRoll  = 3
	noiseDownChance  = 0.005
	noiseEndlessProb = 0.001
)

// ParseNoiseBias converts a user supplied name into a NoiseBias. The empty
// string selects NoiseDefault.
func ParseNoiseBias(s string) (NoiseBias, error) {
	switch b := NoiseBias(s); b {
	case "":
		return NoiseDefault, nil
	case NoiseDefault, NoiseNone, NoisePaths, NoiseWalls:
		return b, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidNoiseBias, s)
}

// Offset moves the carver's stop threshold. Positive values keep branches
// alive longer, negative values end them sooner.
func (b NoiseBias) Offset() float64 {
	switch b {
	case NoisePaths:
		return pathsOffset
	case NoiseWalls:
		return wallsOffset
	}
	return 0
}

// expand sweeps the interior and opens extra cells. Border rows and columns
// are skipped, and so is every third row to keep long horizontal walls.
//
// Each swept cell draws from its own stream and branches are steered by the
// walls of the grid as the walker left it. Only the stop threshold depends on
// offset, so every cell opened under a lower offset is also opened under a
// higher one.
func (gen *generator) expand(offset float64) {
	g := gen.grid
	layout := g.clone()
	total := g.height

	var rng *RNG
	for row := 0; row < g.height; row++ {
		gen.stage(stageNoise, row+1, total)
		if row%3 == 0 || row == g.height-1 {
			continue
		}

		for col := 1; col < g.width-1; col++ {
			pos := CellPosition{Row: row, Col: col}
			if layout.ValueAt(pos) != Wall {
				continue
			}

			rng = gen.rng.Derive(rng, row, col)
			roll := rng.IntN(noiseRollSides)

			if roll == widenRoll {
				if len(g.Neighbors(pos, Path)) > 0 {
					g.set(pos, Path)
				}
				continue
			}

			if roll != branchLeftRoll && roll != branchRightRoll {
				continue
			}

			dir := Left
			if rng.Chance(noiseDownChance) {
				dir = Down
			} else if roll == branchRightRoll {
				dir = Right
			}
			gen.branch(rng, layout, pos, dir, rng.Chance(noiseEndlessProb), offset)
		}
	}
}

package maze

// Stage names passed to Reporter.Stage.
const (
	stageInit     = "Initialising empty maze"
	stageSolution = "Generating random solution"
	stageNoise    = "Adding noise"
)

// Reporter receives what a run does without being part of its result.
type Reporter interface {
	// Seed receives the seed the run uses, generated or not.
	Seed(seed string)
	// Stage receives progress of a named stage as done out of total.
	Stage(name string, done, total int)
}

// Config holds the inputs of one generation run.
type Config struct {
	Width    int       // Number of columns, at least MinDimension
	Height   int       // Number of rows, at least MinDimension
	Noise    NoiseBias // Empty means NoiseDefault
	Seed     string    // Empty means a fresh random seed
	Reporter Reporter  // Optional
}

// generator carries the state of a single run.
type generator struct {
	grid     *Grid
	rng      *RNG
	reporter Reporter
}

// Generate builds a maze. The grid is a pure function of width, height,
// noise bias and seed. On error no grid is returned.
func Generate(cfg Config) (*Grid, error) {
	if cfg.Width < MinDimension || cfg.Height < MinDimension {
		return nil, ErrInvalidDimensions
	}

	noise, err := ParseNoiseBias(string(cfg.Noise))
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == "" {
		seed = NewSeed(nil)
	}
	if cfg.Reporter != nil {
		cfg.Reporter.Seed(seed)
	}

	grid, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	gen := &generator{
		grid:     grid,
		rng:      NewRNG(seed),
		reporter: cfg.Reporter,
	}
	gen.stage(stageInit, grid.height, grid.height)

	if err := gen.walkSolution(); err != nil {
		return nil, err
	}

	if noise != NoiseNone {
		gen.expand(noise.Offset())
	}

	if err := Validate(grid); err != nil {
		return nil, err
	}

	return grid, nil
}

func (gen *generator) stage(name string, done, total int) {
	if gen.reporter != nil {
		gen.reporter.Stage(name, done, total)
	}
}

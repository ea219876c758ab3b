package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/schollz/progressbar/v3"
)

var ErrMissingDimensions = errors.New("both width and height are required, set them with -x and -y or with --xy")

// generateFlags are the options of the generate command.
type generateFlags struct {
	width     int
	height    int
	square    int
	noNoise   bool
	morePaths bool
	moreWalls bool
	seed      string
	output    string
	format    string
	ascii     bool
	quiet     bool
}

func (f *generateFlags) bind(fs *flag.FlagSet, defaultFormat string) {
	fs.IntVar(&f.width, "x", 0, "width of the maze (at least 20)")
	fs.IntVar(&f.width, "width", 0, "alias for -x")
	fs.IntVar(&f.height, "y", 0, "height of the maze (at least 20)")
	fs.IntVar(&f.height, "height", 0, "alias for -y")
	fs.IntVar(&f.square, "xy", 0, "width and height of a square maze")
	fs.BoolVar(&f.noNoise, "no-noise", false, "only carve the solution path")
	fs.BoolVar(&f.morePaths, "more-paths", false, "bias the noise towards open cells")
	fs.BoolVar(&f.moreWalls, "more-walls", false, "bias the noise towards walls")
	fs.StringVar(&f.seed, "s", "", "seed of the maze, random when empty")
	fs.StringVar(&f.seed, "seed", "", "alias for -s")
	fs.StringVar(&f.output, "o", "", "output file or directory")
	fs.StringVar(&f.output, "output", "", "alias for -o")
	fs.StringVar(&f.format, "f", defaultFormat, "image format: png, bmp or tiff")
	fs.StringVar(&f.format, "format", defaultFormat, "alias for -f")
	fs.BoolVar(&f.ascii, "ascii", false, "print the maze as text instead of writing an image")
	fs.BoolVar(&f.quiet, "q", false, "do not print progress")
	fs.BoolVar(&f.quiet, "quiet", false, "alias for -q")
}

// noise resolves the bias flags, -no-noise winning over -more-paths
// winning over -more-walls.
func (f *generateFlags) noise() maze.NoiseBias {
	switch {
	case f.noNoise:
		return maze.NoiseNone
	case f.morePaths:
		return maze.NoisePaths
	case f.moreWalls:
		return maze.NoiseWalls
	}
	return maze.NoiseDefault
}

func (f *generateFlags) dimensions() (int, int, error) {
	if f.square != 0 {
		return f.square, f.square, nil
	}
	if f.width == 0 || f.height == 0 {
		return 0, 0, ErrMissingDimensions
	}
	return f.width, f.height, nil
}

func runGenerate(args []string, env Env) int {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)

	var f generateFlags
	defaultFormat := env.Config.OutputFormat
	if defaultFormat == "" {
		defaultFormat = string(render.FormatPNG)
	}
	f.bind(fs, defaultFormat)
	if err := fs.Parse(args); err != nil {
		return parseExit(err)
	}

	width, height, err := f.dimensions()
	if err != nil {
		return fail(env, err)
	}

	format, err := render.ParseFormat(f.format)
	if err != nil {
		return fail(env, err)
	}

	path := ""
	if !f.ascii {
		cwd := env.Cwd
		if cwd == "" {
			if cwd, err = os.Getwd(); err != nil {
				return fail(env, err)
			}
		}
		if path, err = render.ResolveOutputPath(f.output, cwd, format); err != nil {
			return fail(env, err)
		}
	}

	// Text output owns stdout, so the seed and progress go to stderr.
	info := env.Stdout
	if f.ascii {
		info = env.Stderr
	}

	grid, err := maze.Generate(maze.Config{
		Width:    width,
		Height:   height,
		Noise:    f.noise(),
		Seed:     f.seed,
		Reporter: &progress{w: info, quiet: f.quiet},
	})
	if err != nil {
		return fail(env, err)
	}

	if f.ascii {
		fmt.Fprint(env.Stdout, grid.String())
		return 0
	}

	if err := render.Save(path, grid, format); err != nil {
		return fail(env, fmt.Errorf("saving maze: %w", err))
	}

	fmt.Fprintf(info, "Saved maze to %s\n", path)
	return 0
}

// progress prints the seed of a run and draws one bar per stage.
type progress struct {
	w     io.Writer
	quiet bool
	stage string
	bar   *progressbar.ProgressBar
}

func (p *progress) Seed(seed string) {
	fmt.Fprintf(p.w, "Using seed '%s'\n", seed)
}

func (p *progress) Stage(name string, done, total int) {
	if p.quiet || total <= 0 {
		return
	}

	if name != p.stage || p.bar == nil {
		p.stage = name
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(p.w),
			progressbar.OptionSetDescription(name),
			progressbar.OptionSetWidth(30),
			progressbar.OptionShowCount(),
			progressbar.OptionOnCompletion(func() { fmt.Fprintln(p.w) }),
		)
	}

	// A writer that fails once is not drawn to again.
	if err := p.bar.Set(done); err != nil {
		p.quiet = true
	}
}

package maze

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingReporter struct {
	seed   string
	stages map[string]int
}

func (r *recordingReporter) Seed(seed string) { r.seed = seed }

func (r *recordingReporter) Stage(name string, done, total int) {
	if r.stages == nil {
		r.stages = map[string]int{}
	}
	r.stages[name]++
}

func TestGenerateInvariants(t *testing.T) {
	sizes := [][2]int{{20, 20}, {20, 45}, {57, 20}, {64, 64}}
	biases := []NoiseBias{NoiseDefault, NoiseNone, NoisePaths, NoiseWalls}

	for _, size := range sizes {
		for _, bias := range biases {
			for n := 0; n < 5; n++ {
				seed := fmt.Sprintf("seed-%d", n)
				name := fmt.Sprintf("%dx%d/%s/%s", size[0], size[1], bias, seed)
				t.Run(name, func(t *testing.T) {
					g, err := Generate(Config{Width: size[0], Height: size[1], Noise: bias, Seed: seed})
					require.NoError(t, err)
					assert.NoError(t, Validate(g))

					starts := g.CellsByValue(Start)
					require.Len(t, starts, 1)
					assert.Equal(t, 0, starts[0].Row)

					ends := g.CellsByValue(End)
					require.Len(t, ends, 1)
					assert.Equal(t, size[1]-1, ends[0].Row)
				})
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, bias := range []NoiseBias{NoiseDefault, NoiseNone, NoisePaths, NoiseWalls} {
		cfg := Config{Width: 48, Height: 33, Noise: bias, Seed: "reproducible"}

		first, err := Generate(cfg)
		require.NoError(t, err)
		second, err := Generate(cfg)
		require.NoError(t, err)

		assert.Equal(t, first.String(), second.String(), string(bias))
	}

	a, err := Generate(Config{Width: 48, Height: 33, Seed: "one"})
	require.NoError(t, err)
	b, err := Generate(Config{Width: 48, Height: 33, Seed: "two"})
	require.NoError(t, err)
	assert.NotEqual(t, a.String(), b.String())
}

func TestGenerateRejectsInput(t *testing.T) {
	_, err := Generate(Config{Width: 19, Height: 20, Seed: "x"})
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = Generate(Config{Width: 20, Height: 19, Seed: "x"})
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = Generate(Config{Width: 20, Height: 20, Noise: "loud", Seed: "x"})
	assert.ErrorIs(t, err, ErrInvalidNoiseBias)
}

func TestGenerateTestSeedScenario(t *testing.T) {
	g, err := Generate(Config{Width: 20, Height: 20, Noise: NoiseNone, Seed: "TEST"})
	require.NoError(t, err)

	assert.Equal(t, 20, g.Width())
	assert.Equal(t, 20, g.Height())
	assert.Len(t, g.CellsByValue(Start), 1)
	assert.Len(t, g.CellsByValue(End), 1)

	route, err := Solve(g)
	require.NoError(t, err)
	// Start, 18 interior rows and End.
	assert.GreaterOrEqual(t, len(route), 20)
	assert.Equal(t, 0, route[0].Row)
	assert.Equal(t, 19, route[len(route)-1].Row)
}

func TestNoNoiseKeepsOnlySolutionPath(t *testing.T) {
	for n := 0; n < 10; n++ {
		seed := fmt.Sprintf("plain-%d", n)

		g, err := Generate(Config{Width: 40, Height: 40, Noise: NoiseNone, Seed: seed})
		require.NoError(t, err)

		walked, err := NewGrid(40, 40)
		require.NoError(t, err)
		gen := &generator{grid: walked, rng: NewRNG(seed)}
		require.NoError(t, gen.walkSolution())

		assert.Equal(t, walked.String(), g.String(), seed)
	}
}

func TestNoiseOnlyAddsPaths(t *testing.T) {
	for n := 0; n < 10; n++ {
		seed := fmt.Sprintf("superset-%d", n)

		plain, err := Generate(Config{Width: 40, Height: 40, Noise: NoiseNone, Seed: seed})
		require.NoError(t, err)
		noisy, err := Generate(Config{Width: 40, Height: 40, Noise: NoiseDefault, Seed: seed})
		require.NoError(t, err)

		for _, pos := range plain.CellsByValue(Path) {
			assert.Equal(t, Path, noisy.ValueAt(pos), "%s lost path cell %s", seed, pos)
		}
		assert.Equal(t, plain.CellsByValue(Start), noisy.CellsByValue(Start))
		assert.Equal(t, plain.CellsByValue(End), noisy.CellsByValue(End))
	}
}

func TestNoiseBiasOrdering(t *testing.T) {
	sizes := []struct{ w, h, seeds int }{
		{20, 20, 300},
		{40, 40, 300},
		{57, 23, 200},
		{120, 120, 100},
	}
	biases := []NoiseBias{NoiseNone, NoiseWalls, NoiseDefault, NoisePaths}

	for _, size := range sizes {
		if testing.Short() && size.w > 60 {
			continue
		}
		t.Run(fmt.Sprintf("%dx%d", size.w, size.h), func(t *testing.T) {
			for n := 0; n < size.seeds; n++ {
				seed := fmt.Sprintf("bias-%d", n)

				grids := make([]*Grid, len(biases))
				for i, bias := range biases {
					g, err := Generate(Config{Width: size.w, Height: size.h, Noise: bias, Seed: seed})
					require.NoError(t, err)
					grids[i] = g
				}

				for i := 1; i < len(grids); i++ {
					lower, higher := grids[i-1], grids[i]
					require.GreaterOrEqual(t, higher.Count(Path), lower.Count(Path),
						"%s: %s opened fewer cells than %s", seed, biases[i], biases[i-1])
					for _, pos := range lower.CellsByValue(Path) {
						require.Equal(t, Path, higher.ValueAt(pos),
							"%s: %s kept %s closed, %s opened it", seed, biases[i], pos, biases[i-1])
					}
				}
			}
		})
	}
}

func TestGenerateReportsSeed(t *testing.T) {
	t.Run("supplied", func(t *testing.T) {
		r := &recordingReporter{}
		_, err := Generate(Config{Width: 20, Height: 20, Seed: "mine", Reporter: r})
		require.NoError(t, err)
		assert.Equal(t, "mine", r.seed)
		assert.Contains(t, r.stages, stageInit)
		assert.Contains(t, r.stages, stageSolution)
		assert.Contains(t, r.stages, stageNoise)
	})

	t.Run("generated", func(t *testing.T) {
		r := &recordingReporter{}
		g, err := Generate(Config{Width: 20, Height: 20, Noise: NoiseNone, Reporter: r})
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^[a-zA-Z0-9]{15}$`), r.seed)
		assert.NotContains(t, r.stages, stageNoise)

		again, err := Generate(Config{Width: 20, Height: 20, Noise: NoiseNone, Seed: r.seed})
		require.NoError(t, err)
		assert.Equal(t, g.String(), again.String())
	})
}

func TestWalkerStuck(t *testing.T) {
	g, err := NewGrid(20, 20)
	require.NoError(t, err)
	for row := 1; row < 19; row++ {
		for col := 1; col < 19; col++ {
			require.NoError(t, g.SetValue(CellPosition{Row: row, Col: col}, Path))
		}
	}

	gen := &generator{grid: g, rng: NewRNG("stuck")}
	err = gen.walkSolution()

	require.ErrorIs(t, err, ErrStuckWalker)
	var stuck *StuckWalkerError
	require.ErrorAs(t, err, &stuck)
	assert.Equal(t, 1, stuck.Pos.Row)
	assert.Equal(t, "stuck", stuck.Seed)
}

func TestBranchStaysInside(t *testing.T) {
	for n := 0; n < 200; n++ {
		g, err := NewGrid(20, 20)
		require.NoError(t, err)
		require.NoError(t, g.SetValue(CellPosition{Row: 0, Col: 5}, Start))
		require.NoError(t, g.SetValue(CellPosition{Row: 19, Col: 7}, End))

		gen := &generator{grid: g, rng: NewRNG(fmt.Sprintf("branch-%d", n))}
		r := rand.New(rand.NewPCG(uint64(n), 1))
		from := CellPosition{Row: 1 + r.IntN(18), Col: 1 + r.IntN(18)}
		dir := []Direction{Left, Right, Down}[r.IntN(3)]

		end := gen.branch(gen.rng, g, from, dir, n%2 == 0, []float64{0, pathsOffset, wallsOffset}[n%3])

		assert.True(t, g.InBound(end))
		assert.False(t, g.IsEdge(end))
		assert.Equal(t, Start, g.ValueAt(CellPosition{Row: 0, Col: 5}))
		assert.Equal(t, End, g.ValueAt(CellPosition{Row: 19, Col: 7}))
		for row := 0; row < 20; row++ {
			for col := 0; col < 20; col++ {
				pos := CellPosition{Row: row, Col: col}
				if g.IsEdge(pos) {
					assert.NotEqual(t, Path, g.ValueAt(pos), "branch carved border cell %s", pos)
				}
			}
		}
		assert.GreaterOrEqual(t, end.Row, from.Row, "branches never climb")
	}
}

func TestBranchEndlessRunsUntilBlocked(t *testing.T) {
	g, err := NewGrid(20, 20)
	require.NoError(t, err)

	gen := &generator{grid: g, rng: NewRNG("endless")}
	from := CellPosition{Row: 5, Col: 5}
	end := gen.branch(gen.rng, g, from, Right, true, 0)

	assert.NotEqual(t, from, end)
	blockedAhead := !containsDirection(g.DirectionNames(end, Wall), Right)
	blockedBelow := end.Row == g.Height()-2
	assert.True(t, blockedAhead || blockedBelow, "an endless branch stops only when blocked, stopped at %s", end)
}

func TestBranchOffsetExtendsBranch(t *testing.T) {
	for n := 0; n < 200; n++ {
		layout, err := NewGrid(30, 30)
		require.NoError(t, err)
		for col := 1; col < 29; col++ {
			layout.set(CellPosition{Row: 20, Col: col}, Path)
		}

		carved := map[float64]*Grid{}
		for _, offset := range []float64{wallsOffset, 0, pathsOffset} {
			g := layout.clone()
			gen := &generator{grid: g}
			rng := NewRNG("offset").Derive(nil, n, 0)
			gen.branch(rng, layout, CellPosition{Row: 4, Col: 15}, []Direction{Left, Right}[n%2], false, offset)
			carved[offset] = g
		}

		for _, pair := range [][2]float64{{wallsOffset, 0}, {0, pathsOffset}} {
			shorter, longer := carved[pair[0]], carved[pair[1]]
			for _, pos := range shorter.CellsByValue(Path) {
				assert.Equal(t, Path, longer.ValueAt(pos), "offset %v dropped %s carved under %v", pair[1], pos, pair[0])
			}
		}
	}
}

func TestParseNoiseBias(t *testing.T) {
	for in, want := range map[string]NoiseBias{
		"":        NoiseDefault,
		"default": NoiseDefault,
		"none":    NoiseNone,
		"paths":   NoisePaths,
		"walls":   NoiseWalls,
	} {
		got, err := ParseNoiseBias(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseNoiseBias("more")
	assert.ErrorIs(t, err, ErrInvalidNoiseBias)

	assert.Zero(t, NoiseDefault.Offset())
	assert.Positive(t, NoisePaths.Offset())
	assert.Negative(t, NoiseWalls.Offset())
}

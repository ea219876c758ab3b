package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 2000
	defaultListLimit    = 50
	cacheKeyFmt         = "maze:%dx%d:%s:%s:%s"
)

var (
	ErrTooLarge        = errors.New("maze dimensions exceed the server limit")
	ErrRecordsDisabled = errors.New("maze records are not configured")
	ErrNoLogger        = errors.New("maze service needs a logger")
)

// MazeRequest holds the user supplied parameters of a maze.
type MazeRequest struct {
	Width  int
	Height int
	Noise  string
	Seed   string
	Format string
}

// Rendered is an encoded maze image.
type Rendered struct {
	Seed   string
	Format render.Format
	Data   []byte
	Cached bool
}

// Options configures a MazeService. Cache and Repo may be nil.
type Options struct {
	Cache        i.ImageCache
	Repo         i.MazeRepo
	Logger       i.Logger
	MaxDimension int
	ListLimit    int64
}

// MazeService generates, renders and records mazes.
type MazeService struct {
	cache  i.ImageCache
	repo   i.MazeRepo
	logger i.Logger
	opts   *Options
}

// NewMazeService creates a MazeService, filling unset options with defaults.
func NewMazeService(opts *Options) (*MazeService, error) {
	if opts == nil || opts.Logger == nil {
		return nil, ErrNoLogger
	}

	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}

	if opts.ListLimit <= 0 {
		opts.ListLimit = defaultListLimit
	}

	return &MazeService{
		cache:  opts.Cache,
		repo:   opts.Repo,
		logger: opts.Logger,
		opts:   opts,
	}, nil
}

// Generate builds the grid for req. The seed is resolved first so an empty
// seed request still reports the seed it ended up with.
func (ms *MazeService) Generate(req MazeRequest) (*maze.Grid, string, maze.NoiseBias, error) {
	noise, err := maze.ParseNoiseBias(req.Noise)
	if err != nil {
		return nil, "", "", err
	}

	if err := ms.checkSize(req.Width, req.Height); err != nil {
		return nil, "", "", err
	}

	seed := req.Seed
	if seed == "" {
		seed = maze.NewSeed(nil)
	}

	grid, err := maze.Generate(maze.Config{
		Width:    req.Width,
		Height:   req.Height,
		Noise:    noise,
		Seed:     seed,
		Reporter: &logReporter{logger: ms.logger},
	})
	if err != nil {
		ms.logger.Error(fmt.Sprintf("Generating %dx%d maze with seed %q: %s", req.Width, req.Height, seed, err))
		return nil, "", "", err
	}

	return grid, seed, noise, nil
}

// Render returns the encoded image for req, serving it from the cache when
// the same parameters were rendered before.
func (ms *MazeService) Render(ctx context.Context, req MazeRequest) (*Rendered, error) {
	format, err := render.ParseFormat(req.Format)
	if err != nil {
		return nil, err
	}
	noise, err := maze.ParseNoiseBias(req.Noise)
	if err != nil {
		return nil, err
	}
	if err := ms.checkSize(req.Width, req.Height); err != nil {
		return nil, err
	}
	if req.Seed == "" {
		req.Seed = maze.NewSeed(nil)
	}

	key := fmt.Sprintf(cacheKeyFmt, req.Width, req.Height, noise, req.Seed, format)
	if data, ok := ms.cached(ctx, key); ok {
		return &Rendered{Seed: req.Seed, Format: format, Data: data, Cached: true}, nil
	}

	if ms.cache != nil {
		unlock, err := ms.cache.Lock(ctx, key)
		if err != nil {
			ms.logger.Warning(fmt.Sprintf("Rendering %s without lock: %s", key, err))
		} else {
			defer unlock()
			if data, ok := ms.cached(ctx, key); ok {
				return &Rendered{Seed: req.Seed, Format: format, Data: data, Cached: true}, nil
			}
		}
	}

	grid, seed, _, err := ms.Generate(req)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := render.Encode(&buf, grid, format); err != nil {
		return nil, err
	}

	if ms.cache != nil {
		if err := ms.cache.Set(ctx, key, buf.Bytes()); err != nil {
			ms.logger.Warning(fmt.Sprintf("Caching %s: %s", key, err))
		}
	}

	return &Rendered{Seed: seed, Format: format, Data: buf.Bytes()}, nil
}

// checkSize rejects dimensions Generate would refuse or the server will not
// build, before any cache or lock traffic.
func (ms *MazeService) checkSize(width, height int) error {
	if min(width, height) < maze.MinDimension {
		return maze.ErrInvalidDimensions
	}
	if max(width, height) > ms.opts.MaxDimension {
		return fmt.Errorf("%w: %d", ErrTooLarge, ms.opts.MaxDimension)
	}
	return nil
}

func (ms *MazeService) cached(ctx context.Context, key string) ([]byte, bool) {
	if ms.cache == nil {
		return nil, false
	}

	data, ok, err := ms.cache.Get(ctx, key)
	if err != nil {
		ms.logger.Warning(fmt.Sprintf("Reading cache %s: %s", key, err))
		return nil, false
	}
	return data, ok
}

// Create generates a maze for owner and stores its record.
func (ms *MazeService) Create(ctx context.Context, owner string, req MazeRequest) (*dmn.MazeRecord, error) {
	if ms.repo == nil {
		return nil, ErrRecordsDisabled
	}

	grid, seed, noise, err := ms.Generate(req)
	if err != nil {
		return nil, err
	}

	record, err := dmn.NewMazeRecord(dmn.MazeRecordConfig{
		ID:    uuid.New(),
		Owner: owner,
		Noise: noise,
		Seed:  seed,
		Grid:  grid,
	})
	if err != nil {
		return nil, err
	}

	if err := ms.repo.Save(ctx, record); err != nil {
		ms.logger.Error(fmt.Sprintf("Saving maze record %s: %s", record.ID, err))
		return nil, err
	}

	ms.logger.Info(fmt.Sprintf("Saved maze record: ID=%s Owner=%s Seed=%s", record.ID, owner, seed))
	return record, nil
}

// Record returns the record id if it belongs to owner.
func (ms *MazeService) Record(ctx context.Context, owner string, id uuid.UUID) (*dmn.MazeRecord, error) {
	if ms.repo == nil {
		return nil, ErrRecordsDisabled
	}

	record, err := ms.repo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.Owner != owner {
		return nil, dmn.ErrRecordNotFound
	}
	return record, nil
}

// Records lists the newest records of owner.
func (ms *MazeService) Records(ctx context.Context, owner string) ([]*dmn.MazeRecord, error) {
	if ms.repo == nil {
		return nil, ErrRecordsDisabled
	}
	return ms.repo.ByOwner(ctx, owner, ms.opts.ListLimit)
}

// RenderRecord regenerates and encodes the maze of a stored record.
func (ms *MazeService) RenderRecord(ctx context.Context, owner string, id uuid.UUID, format string) (*Rendered, error) {
	record, err := ms.Record(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	cfg := record.MazeConfig()
	return ms.Render(ctx, MazeRequest{
		Width:  cfg.Width,
		Height: cfg.Height,
		Noise:  string(cfg.Noise),
		Seed:   cfg.Seed,
		Format: format,
	})
}

// logReporter forwards the seed of each run to the service log.
type logReporter struct {
	logger i.Logger
}

func (r *logReporter) Seed(seed string) {
	r.logger.Info(fmt.Sprintf("Using seed '%s'", seed))
}

func (r *logReporter) Stage(string, int, int) {}

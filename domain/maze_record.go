// Package domain holds the records the service persists about generated mazes.
package domain

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

var (
	ErrRecordNotFound = errors.New("maze record not found")
	ErrMissingOwner   = errors.New("maze record needs an owner")
	ErrMissingGrid    = errors.New("maze record needs a generated grid")
)

// MazeRecord describes a saved maze. The grid itself is not stored: width,
// height, noise and seed regenerate it exactly.
type MazeRecord struct {
	ID             uuid.UUID `bson:"_id" json:"id"`
	Owner          string    `bson:"owner" json:"owner"`
	Width          int       `bson:"width" json:"width"`
	Height         int       `bson:"height" json:"height"`
	Noise          string    `bson:"noise" json:"noise"`
	Seed           string    `bson:"seed" json:"seed"`
	PathCells      int       `bson:"pathCells" json:"path_cells"`
	SolutionLength int       `bson:"solutionLength" json:"solution_length"`
	CreatedAt      time.Time `bson:"createdAt" json:"created_at"`
}

// MazeRecordConfig holds the parameters for creating a MazeRecord.
type MazeRecordConfig struct {
	ID    uuid.UUID
	Owner string
	Noise maze.NoiseBias
	Seed  string
	Grid  *maze.Grid
}

// NewMazeRecord summarises a generated grid into a record.
func NewMazeRecord(config MazeRecordConfig) (*MazeRecord, error) {
	if config.Owner == "" {
		return nil, ErrMissingOwner
	}
	if config.Grid == nil {
		return nil, ErrMissingGrid
	}

	route, err := maze.Solve(config.Grid)
	if err != nil {
		return nil, err
	}

	return &MazeRecord{
		ID:             config.ID,
		Owner:          config.Owner,
		Width:          config.Grid.Width(),
		Height:         config.Grid.Height(),
		Noise:          string(config.Noise),
		Seed:           config.Seed,
		PathCells:      config.Grid.Count(maze.Path),
		SolutionLength: len(route),
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// MazeConfig returns the generation parameters that reproduce the record's grid.
func (r *MazeRecord) MazeConfig() maze.Config {
	return maze.Config{
		Width:  r.Width,
		Height: r.Height,
		Noise:  maze.NoiseBias(r.Noise),
		Seed:   r.Seed,
	}
}

package domain

import (
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMazeRecord(t *testing.T) {
	g, err := maze.Generate(maze.Config{Width: 30, Height: 25, Noise: maze.NoiseWalls, Seed: "record"})
	require.NoError(t, err)

	t.Run("summarises the grid", func(t *testing.T) {
		id := uuid.New()
		r, err := NewMazeRecord(MazeRecordConfig{ID: id, Owner: "alice", Noise: maze.NoiseWalls, Seed: "record", Grid: g})
		require.NoError(t, err)

		assert.Equal(t, id, r.ID)
		assert.Equal(t, 30, r.Width)
		assert.Equal(t, 25, r.Height)
		assert.Equal(t, g.Count(maze.Path), r.PathCells)
		assert.GreaterOrEqual(t, r.SolutionLength, 25)
		assert.False(t, r.CreatedAt.IsZero())
	})

	t.Run("regenerates the same grid", func(t *testing.T) {
		r, err := NewMazeRecord(MazeRecordConfig{ID: uuid.New(), Owner: "alice", Noise: maze.NoiseWalls, Seed: "record", Grid: g})
		require.NoError(t, err)

		again, err := maze.Generate(r.MazeConfig())
		require.NoError(t, err)
		assert.Equal(t, g.String(), again.String())
	})

	t.Run("requires owner and grid", func(t *testing.T) {
		_, err := NewMazeRecord(MazeRecordConfig{Grid: g})
		assert.ErrorIs(t, err, ErrMissingOwner)

		_, err = NewMazeRecord(MazeRecordConfig{Owner: "alice"})
		assert.ErrorIs(t, err, ErrMissingGrid)
	})
}

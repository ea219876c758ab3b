package maze

import (
	"errors"
	"fmt"
)

// Generation errors.
var (
	ErrInvalidDimensions = fmt.Errorf("width and height must be at least %d", MinDimension)
	ErrInvalidNoiseBias  = errors.New("invalid noise bias")
	ErrOutOfBounds       = errors.New("position is out of the maze")
	ErrStuckWalker       = errors.New("solution walker has no direction to move in")
	ErrGridInvariant     = errors.New("maze invariant violated")
)

// StuckWalkerError is returned when the solution walker runs out of wall
// cells to open before reaching the second to last row.
type StuckWalkerError struct {
	Pos  CellPosition // Cell the walker was standing on
	Seed string       // Seed of the failed run
}

func (e *StuckWalkerError) Error() string {
	return fmt.Sprintf("%s at %s (seed %q)", ErrStuckWalker, e.Pos, e.Seed)
}

func (e *StuckWalkerError) Unwrap() error { return ErrStuckWalker }

// InvariantError describes a finished grid that breaks one of the maze rules.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %s", ErrGridInvariant, e.Reason)
}

func (e *InvariantError) Unwrap() error { return ErrGridInvariant }

func invariantf(format string, args ...any) error {
	return &InvariantError{Reason: fmt.Sprintf(format, args...)}
}

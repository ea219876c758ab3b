package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// MazeRepo defines the interface for maze record persistence operations.
type MazeRepo interface {
	// Save inserts or updates a record in the repository.
	Save(ctx context.Context, record *dmn.MazeRecord) error

	// ByID retrieves a record by its unique ID.
	// Returns dmn.ErrRecordNotFound when there is no such record.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// ByOwner lists the newest records of an owner, at most limit of them.
	ByOwner(ctx context.Context, owner string, limit int64) ([]*dmn.MazeRecord, error)
}

// AccountRepo defines the interface for account persistence operations.
type AccountRepo interface {
	// Add inserts a new account.
	// Returns dmn.ErrUsernameTaken when the username is in use.
	Add(ctx context.Context, account *dmn.Account) error

	// ByUsername retrieves an account by its username.
	// Returns dmn.ErrAccountNotFound when there is no such account.
	ByUsername(ctx context.Context, username string) (*dmn.Account, error)
}

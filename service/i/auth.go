package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
)

// Authenticator registers accounts and signs them in.
type Authenticator interface {
	Register(ctx context.Context, username, password string) (*dmn.Account, error)
	SignIn(ctx context.Context, username, password string) (*dmn.Account, string, error)
}

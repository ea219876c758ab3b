package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const defaultTokenTTL = 24 * time.Hour

var ErrInvalidCredentials = errors.New("invalid username or password")

var _ i.Authenticator = &AuthService{}

// AuthConfig configures an AuthService.
type AuthConfig struct {
	Accounts  i.AccountRepo
	Tokenizer i.Tokenizer
	Logger    i.Logger
	TokenTTL  time.Duration // Lifetime of issued tokens, a day when zero
	HashCost  int           // bcrypt cost of new passwords
}

// AuthService registers record owners and issues their bearer tokens.
type AuthService struct {
	accounts  i.AccountRepo
	tokenizer i.Tokenizer
	logger    i.Logger
	tokenTTL  time.Duration
	hashCost  int
}

// NewAuthService creates an AuthService.
func NewAuthService(config AuthConfig) (*AuthService, error) {
	if config.Accounts == nil || config.Tokenizer == nil {
		return nil, errors.New("auth service needs an account repo and a tokenizer")
	}
	if config.Logger == nil {
		return nil, ErrNoLogger
	}

	ttl := config.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &AuthService{
		accounts:  config.Accounts,
		tokenizer: config.Tokenizer,
		logger:    config.Logger,
		tokenTTL:  ttl,
		hashCost:  config.HashCost,
	}, nil
}

// Register creates an account with the given credentials.
func (a *AuthService) Register(ctx context.Context, username, password string) (*dmn.Account, error) {
	account, err := dmn.NewAccount(dmn.AccountConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
		HashCost:      a.hashCost,
	})
	if err != nil {
		return nil, err
	}

	if err := a.accounts.Add(ctx, account); err != nil {
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("Registered account: ID=%s Username=%s", account.ID, account.Username))
	return account, nil
}

// SignIn checks the credentials and returns a token whose subject is the
// username, which is the owner of the records the token can reach.
func (a *AuthService) SignIn(ctx context.Context, username, password string) (*dmn.Account, string, error) {
	account, err := a.accounts.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, dmn.ErrAccountNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !account.VerifyPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"sub":       account.Username,
		"accountID": account.ID.String(),
	}, a.tokenTTL)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

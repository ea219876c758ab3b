package service

import (
	"context"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeAccounts struct {
	byName map[string]*dmn.Account
}

func (f *fakeAccounts) Add(_ context.Context, account *dmn.Account) error {
	if _, ok := f.byName[account.Username]; ok {
		return dmn.ErrUsernameTaken
	}
	f.byName[account.Username] = account
	return nil
}

func (f *fakeAccounts) ByUsername(_ context.Context, username string) (*dmn.Account, error) {
	if account, ok := f.byName[username]; ok {
		return account, nil
	}
	return nil, dmn.ErrAccountNotFound
}

func TestNewAuthService(t *testing.T) {
	_, err := NewAuthService(AuthConfig{Logger: nopLogger{}})
	assert.Error(t, err)

	_, err = NewAuthService(AuthConfig{
		Accounts:  &fakeAccounts{},
		Tokenizer: token.NewJwtService("secret", "issuer"),
	})
	assert.ErrorIs(t, err, ErrNoLogger)
}

func TestAuthService(t *testing.T) {
	const password = "q7#Vx!2mPz$Lr9&Tk4@Wd8^Hs"
	ctx := context.Background()
	jwt := token.NewJwtService("a-test-secret-that-is-long-enough", "vinom-maze")

	auth, err := NewAuthService(AuthConfig{
		Accounts:  &fakeAccounts{byName: map[string]*dmn.Account{}},
		Tokenizer: jwt,
		Logger:    nopLogger{},
		TokenTTL:  time.Minute,
		HashCost:  bcrypt.MinCost,
	})
	require.NoError(t, err)

	account, err := auth.Register(ctx, "maze_runner", password)
	require.NoError(t, err)
	assert.Equal(t, "maze_runner", account.Username)

	t.Run("duplicate username", func(t *testing.T) {
		_, err := auth.Register(ctx, "maze_runner", password)
		assert.ErrorIs(t, err, dmn.ErrUsernameTaken)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := auth.Register(ctx, "other_runner", "password")
		assert.ErrorIs(t, err, dmn.ErrWeakPassword)
	})

	t.Run("sign in issues a token for the username", func(t *testing.T) {
		got, bearer, err := auth.SignIn(ctx, "maze_runner", password)
		require.NoError(t, err)
		assert.Equal(t, account.ID, got.ID)

		subject, err := jwt.Subject(bearer)
		require.NoError(t, err)
		assert.Equal(t, "maze_runner", subject)
	})

	t.Run("bad credentials", func(t *testing.T) {
		_, _, err := auth.SignIn(ctx, "maze_runner", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, _, err = auth.SignIn(ctx, "nobody", password)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const strongPassword = "q7#Vx!2mPz$Lr9&Tk4@Wd8^Hs"

func TestNewAccount(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		err      error
	}{
		{"valid", "maze_runner", strongPassword, nil},
		{"short username", "ab", strongPassword, ErrUsernameTooShort},
		{"long username", "abcdefghijklmnopqrstu", strongPassword, ErrUsernameTooLong},
		{"bad characters", "maze-runner", strongPassword, ErrUsernameFormat},
		{"weak password", "maze_runner", "password1", ErrWeakPassword},
		{"username as password", "labyrinth_walker", "labyrinth_walker", ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := NewAccount(AccountConfig{
				ID:            uuid.New(),
				Username:      tt.username,
				PlainPassword: tt.password,
				HashCost:      bcrypt.MinCost,
			})
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, account)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.username, account.Username)
			assert.NotEqual(t, tt.password, account.PasswordHash)
			assert.False(t, account.CreatedAt.IsZero())
		})
	}
}

func TestVerifyPassword(t *testing.T) {
	account, err := NewAccount(AccountConfig{
		ID:            uuid.New(),
		Username:      "maze_runner",
		PlainPassword: strongPassword,
		HashCost:      bcrypt.MinCost,
	})
	require.NoError(t, err)

	assert.True(t, account.VerifyPassword(strongPassword))
	assert.False(t, account.VerifyPassword("nope"))
}

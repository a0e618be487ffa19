package logic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/blues/spacedao/internal/model"
	"github.com/blues/spacedao/internal/repository"
)

func newTestUserLogic() *UserLogic {
	l := NewUserLogic(repository.NewMemStorage())
	l.cost = bcrypt.MinCost
	return l
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	l := newTestUserLogic()
	wallet := "0x1234567890123456789012345678901234567890"

	u, err := l.Register(ctx, model.UserInput{Username: "ada", Password: "correct horse", WalletAddress: &wallet})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.Id)
	assert.NotEqual(t, "correct horse", u.Password)

	_, err = l.Register(ctx, model.UserInput{Username: "ada", Password: "another one"})
	assert.ErrorIs(t, err, ErrUserExists)

	_, err = l.Register(ctx, model.UserInput{Username: "grace", Password: "another one", WalletAddress: &wallet})
	assert.ErrorIs(t, err, ErrUserExists)

	empty := ""
	grace, err := l.Register(ctx, model.UserInput{Username: "grace", Password: "another one", WalletAddress: &empty})
	require.NoError(t, err)
	assert.Nil(t, grace.WalletAddress)

	byWallet, err := l.GetUserByWalletAddress(ctx, wallet)
	require.NoError(t, err)
	assert.Equal(t, "ada", byWallet.Username)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	l := newTestUserLogic()

	_, err := l.Register(ctx, model.UserInput{Username: "ada", Password: "correct horse"})
	require.NoError(t, err)

	u, err := l.Authenticate(ctx, "ada", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "ada", u.Username)

	_, err = l.Authenticate(ctx, "ada", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = l.Authenticate(ctx, "nobody", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

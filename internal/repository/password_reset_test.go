package repository

import (
	"context"
	"testing"
	"time"

	"github.com/papermapper/papermapper/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCodeBurnsPreviousCodes(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	user := seedUser(t, repo, "reset@test.com")

	_, err := repo.PasswordReset.CreateCode(ctx, nil, user.ID, "111111", 10*time.Minute)
	require.NoError(t, err)
	_, err = repo.PasswordReset.CreateCode(ctx, nil, user.ID, "222222", 10*time.Minute)
	require.NoError(t, err)

	_, err = repo.PasswordReset.GetUsable(ctx, nil, "111111")
	assert.ErrorIs(t, err, ErrResetCodeInvalid, "older code should be burned")

	reset, err := repo.PasswordReset.GetUsable(ctx, nil, "222222")
	require.NoError(t, err)
	assert.Equal(t, user.ID, reset.UserID)
}

func TestGetUsableRejectsExpiredCode(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	user := seedUser(t, repo, "reset@test.com")

	_, err := repo.PasswordReset.CreateCode(ctx, nil, user.ID, "333333", -time.Minute)
	require.NoError(t, err)

	_, err = repo.PasswordReset.GetUsable(ctx, nil, "333333")
	assert.ErrorIs(t, err, ErrResetCodeInvalid)
}

func TestGetUsableRejectsUnknownCode(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.PasswordReset.GetUsable(context.Background(), nil, "000000")
	assert.ErrorIs(t, err, ErrResetCodeInvalid)
}

func TestConsumeAndResetPasswordIsSingleUse(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	user := seedUser(t, repo, "reset@test.com")

	_, err := repo.PasswordReset.CreateCode(ctx, nil, user.ID, "444444", 10*time.Minute)
	require.NoError(t, err)

	require.NoError(t, repo.PasswordReset.ConsumeAndResetPassword(ctx, nil, "444444", "new-hash"))

	var got model.User
	require.NoError(t, repo.DB.First(&got, user.ID).Error)
	assert.Equal(t, "new-hash", got.HashedPassword)

	err = repo.PasswordReset.ConsumeAndResetPassword(ctx, nil, "444444", "other-hash")
	assert.ErrorIs(t, err, ErrResetCodeInvalid, "a consumed code must not work twice")

	require.NoError(t, repo.DB.First(&got, user.ID).Error)
	assert.Equal(t, "new-hash", got.HashedPassword, "second attempt must not change the password")
}

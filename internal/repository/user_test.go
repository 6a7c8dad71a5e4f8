package repository

import (
	"context"
	"testing"
	"time"

	"github.com/papermapper/papermapper/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteAccountRemovesEverythingOwned(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	user := seedUser(t, repo, "gone@test.com")
	survivor := seedUser(t, repo, "stays@test.com")

	project := seedProject(t, repo, user.ID)
	otherProject := seedProject(t, repo, survivor.ID)

	_, err := repo.CustomOption.Create(ctx, nil, &model.UserCustomOption{
		OptionType: "paper_type", Value: "thesis", UserID: user.ID,
	})
	require.NoError(t, err)

	_, err = repo.PasswordReset.CreateCode(ctx, nil, user.ID, "555555", 10*time.Minute)
	require.NoError(t, err)

	require.NoError(t, repo.User.DeleteAccount(ctx, nil, user.ID))

	_, err = repo.User.GetByID(ctx, nil, user.ID)
	assert.Error(t, err)
	_, err = repo.Project.GetByID(ctx, nil, project.ID)
	assert.Error(t, err)

	opts, err := repo.CustomOption.ListForUser(ctx, nil, user.ID, "")
	require.NoError(t, err)
	assert.Empty(t, opts)

	_, err = repo.PasswordReset.GetUsable(ctx, nil, "555555")
	assert.ErrorIs(t, err, ErrResetCodeInvalid)

	// The other user is untouched.
	_, err = repo.User.GetByID(ctx, nil, survivor.ID)
	assert.NoError(t, err)
	_, err = repo.Project.GetByID(ctx, nil, otherProject.ID)
	assert.NoError(t, err)
}

func TestCustomOptionCreateDedupes(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	user := seedUser(t, repo, "opts@test.com")

	first, err := repo.CustomOption.Create(ctx, nil, &model.UserCustomOption{
		OptionType: "citation_style", Value: "APA", UserID: user.ID,
	})
	require.NoError(t, err)

	second, err := repo.CustomOption.Create(ctx, nil, &model.UserCustomOption{
		OptionType: "citation_style", Value: "APA", UserID: user.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	opts, err := repo.CustomOption.ListForUser(ctx, nil, user.ID, "citation_style")
	require.NoError(t, err)
	assert.Len(t, opts, 1)
}

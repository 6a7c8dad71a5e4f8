package repository

import (
	"context"
	"testing"

	constant "github.com/papermapper/papermapper/internal/constant"
	"github.com/papermapper/papermapper/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardLinkCreateDedupesEdges(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	user := seedUser(t, repo, "link@test.com")
	project := seedProject(t, repo, user.ID)

	source, err := repo.Card.Create(ctx, nil, &model.Card{
		Type: constant.CardTypeThought, DataID: 1, ProjectID: project.ID,
	})
	require.NoError(t, err)
	target, err := repo.Card.Create(ctx, nil, &model.Card{
		Type: constant.CardTypeThought, DataID: 2, ProjectID: project.ID,
	})
	require.NoError(t, err)

	first, err := repo.CardLink.Create(ctx, nil, &model.CardLink{
		SourceCardID: source.ID,
		TargetCardID: target.ID,
		ProjectID:    project.ID,
	})
	require.NoError(t, err)

	second, err := repo.CardLink.Create(ctx, nil, &model.CardLink{
		SourceCardID: source.ID,
		TargetCardID: target.ID,
		ProjectID:    project.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "duplicate edge should return the existing link")

	links, err := repo.CardLink.List(ctx, nil, project.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, links, 1)

	// The reverse direction is a distinct edge.
	reverse, err := repo.CardLink.Create(ctx, nil, &model.CardLink{
		SourceCardID: target.ID,
		TargetCardID: source.ID,
		ProjectID:    project.ID,
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, reverse.ID)
}

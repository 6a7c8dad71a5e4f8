package repository

import (
	"context"
	"testing"

	constant "github.com/papermapper/papermapper/internal/constant"
	"github.com/papermapper/papermapper/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceCardUpsertsByCard(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	user := seedUser(t, repo, "outline@test.com")
	project := seedProject(t, repo, user.ID)

	card, err := repo.Card.Create(ctx, nil, &model.Card{
		Type: constant.CardTypeThought, DataID: 1, ProjectID: project.ID,
	})
	require.NoError(t, err)

	intro, err := repo.Outline.CreateSection(ctx, nil, &model.OutlineSection{
		Title: "Intro", ProjectID: project.ID,
	})
	require.NoError(t, err)
	body, err := repo.Outline.CreateSection(ctx, nil, &model.OutlineSection{
		Title: "Body", OrderIndex: 1, ProjectID: project.ID,
	})
	require.NoError(t, err)

	first, err := repo.Outline.PlaceCard(ctx, nil, &model.OutlineCardPlacement{
		CardID: card.ID, SectionID: intro.ID, ProjectID: project.ID,
	})
	require.NoError(t, err)

	// Placing the same card again moves it rather than duplicating it.
	moved, err := repo.Outline.PlaceCard(ctx, nil, &model.OutlineCardPlacement{
		CardID: card.ID, SectionID: body.ID, OrderIndex: 3, ProjectID: project.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, moved.ID)
	assert.Equal(t, body.ID, moved.SectionID)
	assert.Equal(t, 3, moved.OrderIndex)

	placements, err := repo.Outline.ListPlacements(ctx, nil, project.ID)
	require.NoError(t, err)
	assert.Len(t, placements, 1)
}

func TestDeleteSectionReparentsChildrenAndDropsPlacements(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	user := seedUser(t, repo, "outline@test.com")
	project := seedProject(t, repo, user.ID)

	root, err := repo.Outline.CreateSection(ctx, nil, &model.OutlineSection{
		Title: "Root", ProjectID: project.ID,
	})
	require.NoError(t, err)
	middle, err := repo.Outline.CreateSection(ctx, nil, &model.OutlineSection{
		Title: "Middle", ProjectID: project.ID, ParentSectionID: &root.ID,
	})
	require.NoError(t, err)
	leaf, err := repo.Outline.CreateSection(ctx, nil, &model.OutlineSection{
		Title: "Leaf", ProjectID: project.ID, ParentSectionID: &middle.ID,
	})
	require.NoError(t, err)

	card, err := repo.Card.Create(ctx, nil, &model.Card{
		Type: constant.CardTypeClaim, DataID: 1, ProjectID: project.ID,
	})
	require.NoError(t, err)
	_, err = repo.Outline.PlaceCard(ctx, nil, &model.OutlineCardPlacement{
		CardID: card.ID, SectionID: middle.ID, ProjectID: project.ID,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Outline.DeleteSection(ctx, nil, middle.ID))

	_, err = repo.Outline.GetSection(ctx, nil, middle.ID)
	assert.Error(t, err)

	got, err := repo.Outline.GetSection(ctx, nil, leaf.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ParentSectionID)
	assert.Equal(t, root.ID, *got.ParentSectionID, "orphaned child should hang off the deleted section's parent")

	placements, err := repo.Outline.ListPlacements(ctx, nil, project.ID)
	require.NoError(t, err)
	assert.Empty(t, placements, "placements in the deleted section are dropped")
}

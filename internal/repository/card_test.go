package repository

import (
	"context"
	"testing"

	constant "github.com/papermapper/papermapper/internal/constant"
	"github.com/papermapper/papermapper/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardCreateBumpsProjectStatus(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	user := seedUser(t, repo, "card@test.com")
	project := seedProject(t, repo, user.ID)
	require.Equal(t, constant.ProjectStatusNotStarted, project.Status)

	question, err := repo.Question.Create(ctx, nil, &model.Question{
		QuestionText: "Why?",
		ProjectID:    project.ID,
	})
	require.NoError(t, err)

	_, err = repo.Card.Create(ctx, nil, &model.Card{
		Type:      constant.CardTypeQuestion,
		DataID:    question.ID,
		ProjectID: project.ID,
	})
	require.NoError(t, err)

	got, err := repo.Project.GetByID(ctx, nil, project.ID)
	require.NoError(t, err)
	assert.Equal(t, constant.ProjectStatusInProgress, got.Status)
}

func TestCardCreateKeepsUserSetStatus(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	user := seedUser(t, repo, "card@test.com")
	project := seedProject(t, repo, user.ID)

	_, err := repo.Project.Update(ctx, nil, project.ID, map[string]any{
		"status": constant.ProjectStatusReadyToWrite,
	})
	require.NoError(t, err)

	thought, err := repo.Thought.Create(ctx, nil, &model.Thought{
		ThoughtText: "note",
		ProjectID:   project.ID,
	})
	require.NoError(t, err)

	_, err = repo.Card.Create(ctx, nil, &model.Card{
		Type:      constant.CardTypeThought,
		DataID:    thought.ID,
		ProjectID: project.ID,
	})
	require.NoError(t, err)

	got, err := repo.Project.GetByID(ctx, nil, project.ID)
	require.NoError(t, err)
	assert.Equal(t, constant.ProjectStatusReadyToWrite, got.Status)
}

func TestCardDeleteCascade(t *testing.T) {
	repo, store := newTestRepository(t)
	ctx := context.Background()

	user := seedUser(t, repo, "card@test.com")
	project := seedProject(t, repo, user.ID)

	question, err := repo.Question.Create(ctx, nil, &model.Question{
		QuestionText:  "Why?",
		ProjectID:     project.ID,
		Files:         store.URL("questions/a.pdf") + "," + store.URL("questions/b.png"),
		FileFilenames: "a.pdf,b.png",
	})
	require.NoError(t, err)

	card, err := repo.Card.Create(ctx, nil, &model.Card{
		Type:      constant.CardTypeQuestion,
		DataID:    question.ID,
		ProjectID: project.ID,
	})
	require.NoError(t, err)

	other, err := repo.Card.Create(ctx, nil, &model.Card{
		Type:      constant.CardTypeThought,
		DataID:    999,
		ProjectID: project.ID,
	})
	require.NoError(t, err)

	inbound, err := repo.CardLink.Create(ctx, nil, &model.CardLink{
		SourceCardID: other.ID,
		TargetCardID: card.ID,
		ProjectID:    project.ID,
	})
	require.NoError(t, err)

	outbound, err := repo.CardLink.Create(ctx, nil, &model.CardLink{
		SourceCardID: card.ID,
		TargetCardID: other.ID,
		ProjectID:    project.ID,
	})
	require.NoError(t, err)

	section, err := repo.Outline.CreateSection(ctx, nil, &model.OutlineSection{
		Title:     "Intro",
		ProjectID: project.ID,
	})
	require.NoError(t, err)

	_, err = repo.Outline.PlaceCard(ctx, nil, &model.OutlineCardPlacement{
		CardID:    card.ID,
		SectionID: section.ID,
		ProjectID: project.ID,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Card.DeleteCascade(ctx, nil, card.ID))

	_, err = repo.Card.GetByID(ctx, nil, card.ID)
	assert.Error(t, err, "card row should be gone")

	_, err = repo.Question.GetByID(ctx, nil, question.ID)
	assert.Error(t, err, "payload row should be gone")

	_, err = repo.CardLink.GetByID(ctx, nil, inbound.ID)
	assert.Error(t, err, "inbound link should be gone")
	_, err = repo.CardLink.GetByID(ctx, nil, outbound.ID)
	assert.Error(t, err, "outbound link should be gone")

	placements, err := repo.Outline.ListPlacements(ctx, nil, project.ID)
	require.NoError(t, err)
	assert.Empty(t, placements, "placement should be gone")

	assert.ElementsMatch(t, []string{"questions/a.pdf", "questions/b.png"}, store.Deleted())

	// The untouched card survives and keeps the project in progress.
	_, err = repo.Card.GetByID(ctx, nil, other.ID)
	assert.NoError(t, err)

	got, err := repo.Project.GetByID(ctx, nil, project.ID)
	require.NoError(t, err)
	assert.Equal(t, constant.ProjectStatusInProgress, got.Status)
}

func TestCardDeleteCascadeResetsStatusOnLastCard(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	user := seedUser(t, repo, "card@test.com")
	project := seedProject(t, repo, user.ID)

	claim, err := repo.Claim.Create(ctx, nil, &model.Claim{
		ClaimText: "It holds",
		ProjectID: project.ID,
	})
	require.NoError(t, err)

	card, err := repo.Card.Create(ctx, nil, &model.Card{
		Type:      constant.CardTypeClaim,
		DataID:    claim.ID,
		ProjectID: project.ID,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Card.DeleteCascade(ctx, nil, card.ID))

	got, err := repo.Project.GetByID(ctx, nil, project.ID)
	require.NoError(t, err)
	assert.Equal(t, constant.ProjectStatusNotStarted, got.Status)
}

func TestCardDeleteCascadeIsIdempotent(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	assert.NoError(t, repo.Card.DeleteCascade(ctx, nil, 12345))
}

// A card whose payload row is already gone still deletes cleanly.
func TestCardDeleteCascadeWithMissingPayload(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	user := seedUser(t, repo, "card@test.com")
	project := seedProject(t, repo, user.ID)

	card, err := repo.Card.Create(ctx, nil, &model.Card{
		Type:      constant.CardTypeInsight,
		DataID:    404,
		ProjectID: project.ID,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Card.DeleteCascade(ctx, nil, card.ID))

	_, err = repo.Card.GetByID(ctx, nil, card.ID)
	assert.Error(t, err)
}

// Storage failures never abort the row cascade.
func TestCardDeleteCascadeSurvivesStorageFailure(t *testing.T) {
	repo, store := newTestRepository(t)
	store.fail = true
	ctx := context.Background()

	user := seedUser(t, repo, "card@test.com")
	project := seedProject(t, repo, user.ID)

	sm, err := repo.SourceMaterial.Create(ctx, nil, &model.SourceMaterial{
		Content:       "body",
		ProjectID:     project.ID,
		Files:         store.URL("source-materials/a.pdf"),
		FileFilenames: "a.pdf",
	})
	require.NoError(t, err)

	card, err := repo.Card.Create(ctx, nil, &model.Card{
		Type:      constant.CardTypeSource,
		DataID:    sm.ID,
		ProjectID: project.ID,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Card.DeleteCascade(ctx, nil, card.ID))

	_, err = repo.SourceMaterial.GetByID(ctx, nil, sm.ID)
	assert.Error(t, err, "payload row should be gone despite storage failure")
}

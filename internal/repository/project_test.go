package repository

import (
	"context"
	"testing"

	constant "github.com/papermapper/papermapper/internal/constant"
	"github.com/papermapper/papermapper/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByIDForUserScopesOwnership(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	owner := seedUser(t, repo, "owner@test.com")
	intruder := seedUser(t, repo, "intruder@test.com")
	project := seedProject(t, repo, owner.ID)

	got, err := repo.Project.GetByIDForUser(ctx, nil, project.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, project.ID, got.ID)

	_, err = repo.Project.GetByIDForUser(ctx, nil, project.ID, intruder.ID)
	assert.Error(t, err, "another user's project must not resolve")
}

func TestAggregateTags(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	user := seedUser(t, repo, "tags@test.com")
	project := seedProject(t, repo, user.ID)
	other := seedProject(t, repo, user.ID)

	_, err := repo.Question.Create(ctx, nil, &model.Question{
		QuestionText: "q", ProjectID: project.ID, Tags: []string{"method", "sources"},
	})
	require.NoError(t, err)
	_, err = repo.Claim.Create(ctx, nil, &model.Claim{
		ClaimText: "c", ProjectID: project.ID, Tags: []string{"method", "argument"},
	})
	require.NoError(t, err)
	_, err = repo.Thought.Create(ctx, nil, &model.Thought{
		ThoughtText: "t", ProjectID: project.ID,
	})
	require.NoError(t, err)
	// Tags in another project never leak in.
	_, err = repo.Insight.Create(ctx, nil, &model.Insight{
		InsightText: "i", ProjectID: other.ID, Tags: []string{"foreign"},
	})
	require.NoError(t, err)

	tags, err := repo.Project.AggregateTags(ctx, nil, project.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"argument", "method", "sources"}, tags)
}

func TestSetAssignmentReplacesPreviousFile(t *testing.T) {
	repo, store := newTestRepository(t)
	ctx := context.Background()

	user := seedUser(t, repo, "assign@test.com")
	project := seedProject(t, repo, user.ID)

	require.NoError(t, repo.Project.SetAssignment(ctx, nil, project.ID, store.URL("assignments/v1.pdf"), "v1.pdf"))
	require.NoError(t, repo.Project.SetAssignment(ctx, nil, project.ID, store.URL("assignments/v2.pdf"), "v2.pdf"))

	got, err := repo.Project.GetByID(ctx, nil, project.ID)
	require.NoError(t, err)
	assert.Equal(t, store.URL("assignments/v2.pdf"), got.AssignmentFile)
	assert.Equal(t, "v2.pdf", got.AssignmentFilename)
	assert.Equal(t, []string{"assignments/v1.pdf"}, store.Deleted(), "previous object should be cleaned up")

	require.NoError(t, repo.Project.ClearAssignment(ctx, nil, project.ID))

	got, err = repo.Project.GetByID(ctx, nil, project.ID)
	require.NoError(t, err)
	assert.Empty(t, got.AssignmentFile)
	assert.Empty(t, got.AssignmentFilename)
}

func TestProjectDeleteCascades(t *testing.T) {
	repo, store := newTestRepository(t)
	ctx := context.Background()

	user := seedUser(t, repo, "cascade@test.com")
	project := seedProject(t, repo, user.ID)

	question, err := repo.Question.Create(ctx, nil, &model.Question{
		QuestionText:  "q",
		ProjectID:     project.ID,
		Files:         store.URL("questions/q.pdf"),
		FileFilenames: "q.pdf",
	})
	require.NoError(t, err)

	card, err := repo.Card.Create(ctx, nil, &model.Card{
		Type: constant.CardTypeQuestion, DataID: question.ID, ProjectID: project.ID,
	})
	require.NoError(t, err)

	citation, err := repo.Citation.Create(ctx, nil, &model.Citation{
		Text: "Doe 2021", ProjectID: project.ID,
	})
	require.NoError(t, err)

	section, err := repo.Outline.CreateSection(ctx, nil, &model.OutlineSection{
		Title: "Intro", ProjectID: project.ID,
	})
	require.NoError(t, err)
	_, err = repo.Outline.PlaceCard(ctx, nil, &model.OutlineCardPlacement{
		CardID: card.ID, SectionID: section.ID, ProjectID: project.ID,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Project.Delete(ctx, nil, project.ID))

	_, err = repo.Project.GetByID(ctx, nil, project.ID)
	assert.Error(t, err)
	_, err = repo.Question.GetByID(ctx, nil, question.ID)
	assert.Error(t, err)
	_, err = repo.Card.GetByID(ctx, nil, card.ID)
	assert.Error(t, err)
	_, err = repo.Citation.GetByID(ctx, nil, citation.ID)
	assert.Error(t, err)
	_, err = repo.Outline.GetSection(ctx, nil, section.ID)
	assert.Error(t, err)

	assert.Contains(t, store.Deleted(), "questions/q.pdf")
}

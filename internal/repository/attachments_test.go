package repository

import (
	"context"
	"testing"

	"github.com/papermapper/papermapper/internal/model"
	"github.com/papermapper/papermapper/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRemoveAttachments(t *testing.T) {
	repo, store := newTestRepository(t)
	ctx := context.Background()

	user := seedUser(t, repo, "files@test.com")
	project := seedProject(t, repo, user.ID)

	sm, err := repo.SourceMaterial.Create(ctx, nil, &model.SourceMaterial{
		Content: "body", ProjectID: project.ID,
	})
	require.NoError(t, err)

	sm, err = repo.SourceMaterial.AppendAttachments(ctx, nil, sm.ID,
		[]string{store.URL("source-materials/a.pdf"), store.URL("source-materials/b.png")},
		[]string{"a.pdf", "b.png"},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.pdf", "b.png"}, util.SplitFileList(sm.FileFilenames))

	sm, err = repo.SourceMaterial.AppendAttachments(ctx, nil, sm.ID,
		[]string{store.URL("source-materials/c.txt")}, []string{"c.txt"},
	)
	require.NoError(t, err)
	assert.Len(t, util.SplitFileList(sm.Files), 3)

	sm, err = repo.SourceMaterial.RemoveAttachment(ctx, nil, sm.ID, store.URL("source-materials/b.png"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		store.URL("source-materials/a.pdf"),
		store.URL("source-materials/c.txt"),
	}, util.SplitFileList(sm.Files))
	assert.Equal(t, []string{"a.pdf", "c.txt"}, util.SplitFileList(sm.FileFilenames),
		"filename list must track the files list")
	assert.Equal(t, []string{"source-materials/b.png"}, store.Deleted())
}

// Deleting a payload row cleans up its attachments but leaves any card
// pointing at it alone; the card cascade is driven from the card side.
func TestPayloadDeleteCleansUpAttachments(t *testing.T) {
	repo, store := newTestRepository(t)
	ctx := context.Background()

	user := seedUser(t, repo, "files@test.com")
	project := seedProject(t, repo, user.ID)

	question, err := repo.Question.Create(ctx, nil, &model.Question{
		QuestionText:  "q",
		ProjectID:     project.ID,
		Files:         store.URL("questions/a.pdf"),
		FileFilenames: "a.pdf",
	})
	require.NoError(t, err)

	require.NoError(t, repo.Question.Delete(ctx, nil, question.ID))

	_, err = repo.Question.GetByID(ctx, nil, question.ID)
	assert.Error(t, err)
	assert.Equal(t, []string{"questions/a.pdf"}, store.Deleted())
}

package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/glebarez/sqlite"
	appcontext "github.com/papermapper/papermapper/internal/app_context"
	"github.com/papermapper/papermapper/internal/auth"
	constant "github.com/papermapper/papermapper/internal/constant"
	"github.com/papermapper/papermapper/internal/model"
	"github.com/papermapper/papermapper/internal/repository"
	"github.com/papermapper/papermapper/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type nopAttachmentStore struct{}

func (nopAttachmentStore) ExtractKeyFromURL(string) string {
	return ""
}

func (nopAttachmentStore) Delete(context.Context, string) bool {
	return true
}

func newTestApp(t *testing.T) (*appcontext.Application, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Thought{},
		&model.Card{},
		&model.CardLink{},
		&model.OutlineCardPlacement{},
	))

	repo := repository.NewRepository(db, zap.NewNop().Sugar(), nopAttachmentStore{})
	return &appcontext.Application{
		Logger:     zap.NewNop().Sugar(),
		Repository: repo,
	}, db
}

func performDeleteCard(app *appcontext.Application, userID uint, cardID string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/cards/"+cardID, nil)
	ctx.Params = gin.Params{{Key: "cardId", Value: cardID}}
	ctx.Set("user", auth.JWTPayload{ID: userID, Email: "cards@test.com"})

	cc := CardController{baseController: newBaseController(app)}
	cc.DeleteCard(ctx)
	return w
}

func TestDeleteCardRemovesOwnedCard(t *testing.T) {
	app, db := newTestApp(t)
	ctx := context.Background()

	user := &model.User{Email: "cards@test.com", HashedPassword: "x"}
	require.NoError(t, db.Create(user).Error)

	project, err := app.Repository.Project.Create(ctx, nil, &model.Project{Name: "Paper", UserID: user.ID})
	require.NoError(t, err)

	thought := &model.Thought{ThoughtText: "draft intro first", ProjectID: project.ID}
	require.NoError(t, db.Create(thought).Error)

	card, err := app.Repository.Card.Create(ctx, nil, &model.Card{
		Type:      constant.CardTypeThought,
		DataID:    thought.ID,
		ProjectID: project.ID,
	})
	require.NoError(t, err)

	w := performDeleteCard(app, user.ID, strconv.FormatUint(uint64(card.ID), 10))
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&model.Card{}).Where("id = ?", card.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteCardMissingCardAnswersSuccess(t *testing.T) {
	app, db := newTestApp(t)

	user := &model.User{Email: "cards@test.com", HashedPassword: "x"}
	require.NoError(t, db.Create(user).Error)

	w := performDeleteCard(app, user.ID, "12345")
	require.Equal(t, http.StatusOK, w.Code)

	var resp util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

// Only a missing row folds into success; any other lookup failure has
// to surface so a retried delete is not acked without deleting.
func TestDeleteCardSurfacesDatabaseFailure(t *testing.T) {
	app, db := newTestApp(t)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w := performDeleteCard(app, 1, "1")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

package controller

import (
	"errors"
	"net/http"

	constant "github.com/papermapper/papermapper/internal/constant"
	"github.com/papermapper/papermapper/internal/model"
	"github.com/papermapper/papermapper/internal/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CardController struct {
	*baseController
}

func (cc CardController) CreateCard(ctx *gin.Context) {
	type Request struct {
		Type      string   `json:"type" form:"type" binding:"required,cardtype"`
		DataID    uint     `json:"data_id" form:"data_id" binding:"required"`
		PositionX *float64 `json:"position_x" form:"position_x" binding:"omitempty"`
		PositionY *float64 `json:"position_y" form:"position_y" binding:"omitempty"`
		ProjectID uint     `json:"project_id" form:"project_id" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	_, _, err := cc.requireOwnedProject(ctx, body.ProjectID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	card, err := cc.app.Repository.Card.Create(ctx, nil, &model.Card{
		Type:      constant.CardType(body.Type),
		DataID:    body.DataID,
		PositionX: body.PositionX,
		PositionY: body.PositionY,
		ProjectID: body.ProjectID,
	})
	if err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create card", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"card": card,
	})
}

func (cc CardController) ListCards(ctx *gin.Context) {
	type Params struct {
		ProjectID uint `json:"project_id" form:"project_id" binding:"required"`
	}
	var params Params

	if err := ctx.ShouldBindQuery(&params); err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	_, _, err := cc.requireOwnedProject(ctx, params.ProjectID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	skip, limit := parseListRange(ctx)
	cards, err := cc.app.Repository.Card.List(ctx, nil, params.ProjectID, skip, limit)
	if err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"cards": cards,
	})
}

// requireOwnedCard loads the card and verifies it sits in a project the
// session user owns.
func (cc CardController) requireOwnedCard(ctx *gin.Context, cardID uint) (*model.Card, error) {
	card, err := cc.app.Repository.Card.GetByID(ctx, nil, cardID)
	if err != nil {
		return nil, err
	}

	if _, _, err := cc.requireOwnedProject(ctx, card.ProjectID); err != nil {
		return nil, err
	}

	return card, nil
}

func (cc CardController) GetCard(ctx *gin.Context) {
	cardID, err := parseUintParam(ctx, "cardId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid card id", util.GenerateErrorMessages(err), nil)
		return
	}

	card, err := cc.requireOwnedCard(ctx, cardID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Card not found", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"card": card,
	})
}

func (cc CardController) UpdateCard(ctx *gin.Context) {
	type Request struct {
		Type      *string  `json:"type" form:"type" binding:"omitempty,cardtype"`
		DataID    *uint    `json:"data_id" form:"data_id" binding:"omitempty"`
		PositionX *float64 `json:"position_x" form:"position_x" binding:"omitempty"`
		PositionY *float64 `json:"position_y" form:"position_y" binding:"omitempty"`
	}
	var body Request

	cardID, err := parseUintParam(ctx, "cardId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid card id", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := cc.requireOwnedCard(ctx, cardID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Card not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	updates := map[string]any{}
	if body.Type != nil {
		updates["type"] = *body.Type
	}
	if body.DataID != nil {
		updates["data_id"] = *body.DataID
	}
	if body.PositionX != nil {
		updates["position_x"] = *body.PositionX
	}
	if body.PositionY != nil {
		updates["position_y"] = *body.PositionY
	}

	card, err := cc.app.Repository.Card.Update(ctx, nil, cardID, updates)
	if err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update card", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"card": card,
	})
}

// DeleteCard removes the card, its typed payload, links, outline
// placement, and stored attachments. A card that is already gone still
// answers success.
func (cc CardController) DeleteCard(ctx *gin.Context) {
	cardID, err := parseUintParam(ctx, "cardId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid card id", util.GenerateErrorMessages(err), nil)
		return
	}

	card, err := cc.app.Repository.Card.GetByID(ctx, nil, cardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Retried delete; the row is gone either way.
			util.ResponseSuccess(ctx, gin.H{"ok": true})
			return
		}

		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete card", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, _, err := cc.requireOwnedProject(ctx, card.ProjectID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Card not found", util.GenerateErrorMessages(errors.New("card not found")), nil)
		return
	}

	if err := cc.app.Repository.Card.DeleteCascade(ctx, nil, cardID); err != nil {
		cc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete card", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"ok": true})
}

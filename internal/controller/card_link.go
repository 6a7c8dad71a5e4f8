package controller

import (
	"errors"
	"net/http"

	"github.com/papermapper/papermapper/internal/model"
	"github.com/papermapper/papermapper/internal/util"
	"github.com/gin-gonic/gin"
)

type CardLinkController struct {
	*baseController
}

func (clc CardLinkController) CreateCardLink(ctx *gin.Context) {
	type Request struct {
		SourceCardID uint   `json:"source_card_id" form:"source_card_id" binding:"required"`
		TargetCardID uint   `json:"target_card_id" form:"target_card_id" binding:"required"`
		SourceHandle string `json:"source_handle" form:"source_handle" binding:"omitempty"`
		TargetHandle string `json:"target_handle" form:"target_handle" binding:"omitempty"`
		ProjectID    uint   `json:"project_id" form:"project_id" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		clc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	_, _, err := clc.requireOwnedProject(ctx, body.ProjectID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	// Both endpoints must exist before an edge may reference them.
	if _, err := clc.app.Repository.Card.GetByID(ctx, nil, body.SourceCardID); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Source card does not exist", util.GenerateErrorMessages(errors.New("source card does not exist"), "source_card_id"), nil)
		return
	}
	if _, err := clc.app.Repository.Card.GetByID(ctx, nil, body.TargetCardID); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Target card does not exist", util.GenerateErrorMessages(errors.New("target card does not exist"), "target_card_id"), nil)
		return
	}

	link, err := clc.app.Repository.CardLink.Create(ctx, nil, &model.CardLink{
		SourceCardID: body.SourceCardID,
		TargetCardID: body.TargetCardID,
		SourceHandle: body.SourceHandle,
		TargetHandle: body.TargetHandle,
		ProjectID:    body.ProjectID,
	})
	if err != nil {
		clc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create card link", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"card_link": link,
	})
}

func (clc CardLinkController) ListCardLinks(ctx *gin.Context) {
	type Params struct {
		ProjectID uint `json:"project_id" form:"project_id" binding:"required"`
	}
	var params Params

	if err := ctx.ShouldBindQuery(&params); err != nil {
		clc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	_, _, err := clc.requireOwnedProject(ctx, params.ProjectID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	skip, limit := parseListRange(ctx)
	links, err := clc.app.Repository.CardLink.List(ctx, nil, params.ProjectID, skip, limit)
	if err != nil {
		clc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"card_links": links,
	})
}

func (clc CardLinkController) requireOwnedLink(ctx *gin.Context, linkID uint) (*model.CardLink, error) {
	link, err := clc.app.Repository.CardLink.GetByID(ctx, nil, linkID)
	if err != nil {
		return nil, err
	}

	if _, _, err := clc.requireOwnedProject(ctx, link.ProjectID); err != nil {
		return nil, err
	}

	return link, nil
}

func (clc CardLinkController) GetCardLink(ctx *gin.Context) {
	linkID, err := parseUintParam(ctx, "linkId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid link id", util.GenerateErrorMessages(err), nil)
		return
	}

	link, err := clc.requireOwnedLink(ctx, linkID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Card link not found", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"card_link": link,
	})
}

func (clc CardLinkController) UpdateCardLink(ctx *gin.Context) {
	type Request struct {
		SourceHandle *string `json:"source_handle" form:"source_handle" binding:"omitempty"`
		TargetHandle *string `json:"target_handle" form:"target_handle" binding:"omitempty"`
	}
	var body Request

	linkID, err := parseUintParam(ctx, "linkId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid link id", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := clc.requireOwnedLink(ctx, linkID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Card link not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		clc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	updates := map[string]any{}
	if body.SourceHandle != nil {
		updates["source_handle"] = *body.SourceHandle
	}
	if body.TargetHandle != nil {
		updates["target_handle"] = *body.TargetHandle
	}

	link, err := clc.app.Repository.CardLink.Update(ctx, nil, linkID, updates)
	if err != nil {
		clc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update card link", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"card_link": link,
	})
}

func (clc CardLinkController) DeleteCardLink(ctx *gin.Context) {
	linkID, err := parseUintParam(ctx, "linkId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid link id", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := clc.requireOwnedLink(ctx, linkID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Card link not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := clc.app.Repository.CardLink.Delete(ctx, nil, linkID); err != nil {
		clc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete card link", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

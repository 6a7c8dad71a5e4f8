package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/papermapper/papermapper/internal/model"
	"github.com/papermapper/papermapper/internal/util"
)

type CitationController struct {
	*baseController
}

func (cic CitationController) Create(ctx *gin.Context) {
	var body model.Citation

	if err := ctx.ShouldBind(&body); err != nil {
		cic.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, _, err := cic.requireOwnedProject(ctx, body.ProjectID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	citation, err := cic.app.Repository.Citation.Create(ctx, nil, &body)
	if err != nil {
		cic.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create citation", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"citation": citation,
	})
}

func (cic CitationController) List(ctx *gin.Context) {
	type Params struct {
		ProjectID uint `json:"project_id" form:"project_id" binding:"required"`
	}
	var params Params

	if err := ctx.ShouldBindQuery(&params); err != nil {
		cic.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, _, err := cic.requireOwnedProject(ctx, params.ProjectID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	skip, limit := parseListRange(ctx)
	citations, err := cic.app.Repository.Citation.List(ctx, nil, params.ProjectID, skip, limit)
	if err != nil {
		cic.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"citations": citations,
	})
}

func (cic CitationController) requireOwned(ctx *gin.Context, id uint) (*model.Citation, error) {
	citation, err := cic.app.Repository.Citation.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}

	if _, _, err := cic.requireOwnedProject(ctx, citation.ProjectID); err != nil {
		return nil, err
	}

	return citation, nil
}

func (cic CitationController) Get(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "citationId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid citation id", util.GenerateErrorMessages(err), nil)
		return
	}

	citation, err := cic.requireOwned(ctx, id)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Citation not found", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"citation": citation,
	})
}

func (cic CitationController) Update(ctx *gin.Context) {
	type Request struct {
		Text        *string `json:"text" form:"text" binding:"omitempty,strNotEmpty"`
		Credibility *string `json:"credibility" form:"credibility" binding:"omitempty"`
	}
	var body Request

	id, err := parseUintParam(ctx, "citationId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid citation id", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := cic.requireOwned(ctx, id); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Citation not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		cic.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	updates := map[string]any{}
	if body.Text != nil {
		updates["text"] = *body.Text
	}
	if body.Credibility != nil {
		updates["credibility"] = *body.Credibility
	}

	citation, err := cic.app.Repository.Citation.Update(ctx, nil, id, updates)
	if err != nil {
		cic.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update citation", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"citation": citation,
	})
}

func (cic CitationController) Delete(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "citationId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid citation id", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := cic.requireOwned(ctx, id); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Citation not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := cic.app.Repository.Citation.Delete(ctx, nil, id); err != nil {
		cic.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete citation", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"ok": true})
}

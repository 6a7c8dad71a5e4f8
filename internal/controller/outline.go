package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/papermapper/papermapper/internal/model"
	"github.com/papermapper/papermapper/internal/util"
)

type OutlineController struct {
	*baseController
}

func (oc OutlineController) CreateSection(ctx *gin.Context) {
	var body model.OutlineSection

	if err := ctx.ShouldBind(&body); err != nil {
		oc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, _, err := oc.requireOwnedProject(ctx, body.ProjectID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if body.ParentSectionID != nil {
		parent, err := oc.app.Repository.Outline.GetSection(ctx, nil, *body.ParentSectionID)
		if err != nil || parent.ProjectID != body.ProjectID {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Parent section not found", util.GenerateErrorMessages(err, "parent_section_id"), nil)
			return
		}
	}

	section, err := oc.app.Repository.Outline.CreateSection(ctx, nil, &body)
	if err != nil {
		oc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create section", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"section": section,
	})
}

func (oc OutlineController) ListSections(ctx *gin.Context) {
	type Params struct {
		ProjectID uint `json:"project_id" form:"project_id" binding:"required"`
	}
	var params Params

	if err := ctx.ShouldBindQuery(&params); err != nil {
		oc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, _, err := oc.requireOwnedProject(ctx, params.ProjectID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	sections, err := oc.app.Repository.Outline.ListSections(ctx, nil, params.ProjectID)
	if err != nil {
		oc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"sections": sections,
	})
}

func (oc OutlineController) requireOwnedSection(ctx *gin.Context, id uint) (*model.OutlineSection, error) {
	section, err := oc.app.Repository.Outline.GetSection(ctx, nil, id)
	if err != nil {
		return nil, err
	}

	if _, _, err := oc.requireOwnedProject(ctx, section.ProjectID); err != nil {
		return nil, err
	}

	return section, nil
}

func (oc OutlineController) GetSection(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "sectionId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid section id", util.GenerateErrorMessages(err), nil)
		return
	}

	section, err := oc.requireOwnedSection(ctx, id)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Section not found", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"section": section,
	})
}

func (oc OutlineController) UpdateSection(ctx *gin.Context) {
	type Request struct {
		Title           *string `json:"title" form:"title" binding:"omitempty,strNotEmpty"`
		OrderIndex      *int    `json:"order_index" form:"order_index" binding:"omitempty"`
		SectionNumber   *string `json:"section_number" form:"section_number" binding:"omitempty"`
		ParentSectionID *uint   `json:"parent_section_id" form:"parent_section_id" binding:"omitempty"`
	}
	var body Request

	id, err := parseUintParam(ctx, "sectionId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid section id", util.GenerateErrorMessages(err), nil)
		return
	}

	section, err := oc.requireOwnedSection(ctx, id)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Section not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		oc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	updates := map[string]any{}
	if body.Title != nil {
		updates["title"] = *body.Title
	}
	if body.OrderIndex != nil {
		updates["order_index"] = *body.OrderIndex
	}
	if body.SectionNumber != nil {
		updates["section_number"] = *body.SectionNumber
	}
	if body.ParentSectionID != nil {
		parent, err := oc.app.Repository.Outline.GetSection(ctx, nil, *body.ParentSectionID)
		if err != nil || parent.ProjectID != section.ProjectID || parent.ID == section.ID {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Parent section not found", util.GenerateErrorMessages(err, "parent_section_id"), nil)
			return
		}
		updates["parent_section_id"] = *body.ParentSectionID
	}

	section, err = oc.app.Repository.Outline.UpdateSection(ctx, nil, id, updates)
	if err != nil {
		oc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update section", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"section": section,
	})
}

func (oc OutlineController) DeleteSection(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "sectionId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid section id", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := oc.requireOwnedSection(ctx, id); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Section not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := oc.app.Repository.Outline.DeleteSection(ctx, nil, id); err != nil {
		oc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete section", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"ok": true})
}

// PlaceCard assigns a card to an outline section. Placing an already
// placed card moves it instead of creating a second placement.
func (oc OutlineController) PlaceCard(ctx *gin.Context) {
	type Request struct {
		CardID     uint `json:"card_id" form:"card_id" binding:"required"`
		SectionID  uint `json:"section_id" form:"section_id" binding:"required"`
		OrderIndex int  `json:"order_index" form:"order_index"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		oc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	section, err := oc.requireOwnedSection(ctx, body.SectionID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Section not found", util.GenerateErrorMessages(err), nil)
		return
	}

	card, err := oc.app.Repository.Card.GetByID(ctx, nil, body.CardID)
	if err != nil || card.ProjectID != section.ProjectID {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Card not found", util.GenerateErrorMessages(err, "card_id"), nil)
		return
	}

	placement, err := oc.app.Repository.Outline.PlaceCard(ctx, nil, &model.OutlineCardPlacement{
		CardID:     body.CardID,
		SectionID:  body.SectionID,
		OrderIndex: body.OrderIndex,
		ProjectID:  section.ProjectID,
	})
	if err != nil {
		oc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to place card", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"placement": placement,
	})
}

func (oc OutlineController) ListPlacements(ctx *gin.Context) {
	type Params struct {
		ProjectID uint `json:"project_id" form:"project_id" binding:"required"`
	}
	var params Params

	if err := ctx.ShouldBindQuery(&params); err != nil {
		oc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, _, err := oc.requireOwnedProject(ctx, params.ProjectID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	placements, err := oc.app.Repository.Outline.ListPlacements(ctx, nil, params.ProjectID)
	if err != nil {
		oc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"placements": placements,
	})
}

func (oc OutlineController) RemovePlacement(ctx *gin.Context) {
	cardID, err := parseUintParam(ctx, "cardId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid card id", util.GenerateErrorMessages(err), nil)
		return
	}

	card, err := oc.app.Repository.Card.GetByID(ctx, nil, cardID)
	if err != nil {
		// Removing a placement for a card that no longer exists is a no-op.
		util.ResponseSuccess(ctx, gin.H{"ok": true})
		return
	}

	if _, _, err := oc.requireOwnedProject(ctx, card.ProjectID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Card not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := oc.app.Repository.Outline.RemovePlacement(ctx, nil, cardID); err != nil {
		oc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to remove placement", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"ok": true})
}

package controller

import (
	"net/http"

	constant "github.com/papermapper/papermapper/internal/constant"
	"github.com/papermapper/papermapper/internal/filestorage"
	"github.com/papermapper/papermapper/internal/model"
	"github.com/papermapper/papermapper/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

type SourceMaterialController struct {
	*baseController
}

func (smc SourceMaterialController) Create(ctx *gin.Context) {
	var body model.SourceMaterial

	if err := ctx.ShouldBind(&body); err != nil {
		smc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, _, err := smc.requireOwnedProject(ctx, body.ProjectID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	sm, err := smc.app.Repository.SourceMaterial.Create(ctx, nil, &body)
	if err != nil {
		smc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create source material", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"source_material": sm,
	})
}

func (smc SourceMaterialController) List(ctx *gin.Context) {
	type Params struct {
		ProjectID uint `json:"project_id" form:"project_id" binding:"required"`
	}
	var params Params

	if err := ctx.ShouldBindQuery(&params); err != nil {
		smc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, _, err := smc.requireOwnedProject(ctx, params.ProjectID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	skip, limit := parseListRange(ctx)
	sms, err := smc.app.Repository.SourceMaterial.List(ctx, nil, params.ProjectID, skip, limit)
	if err != nil {
		smc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"source_materials": sms,
	})
}

func (smc SourceMaterialController) requireOwned(ctx *gin.Context, id uint) (*model.SourceMaterial, error) {
	sm, err := smc.app.Repository.SourceMaterial.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}

	if _, _, err := smc.requireOwnedProject(ctx, sm.ProjectID); err != nil {
		return nil, err
	}

	return sm, nil
}

func (smc SourceMaterialController) Get(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "sourceMaterialId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid source material id", util.GenerateErrorMessages(err), nil)
		return
	}

	sm, err := smc.requireOwned(ctx, id)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Source material not found", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"source_material": sm,
	})
}

func (smc SourceMaterialController) Update(ctx *gin.Context) {
	type Request struct {
		Content      *string   `json:"content" form:"content" binding:"omitempty"`
		Summary      *string   `json:"summary" form:"summary" binding:"omitempty"`
		Tags         *[]string `json:"tags" form:"tags" binding:"omitempty"`
		ArgumentType *string   `json:"argument_type" form:"argument_type" binding:"omitempty"`
		Function     *string   `json:"function" form:"function" binding:"omitempty"`
		Notes        *string   `json:"notes" form:"notes" binding:"omitempty"`
		CitationID   *uint     `json:"citation_id" form:"citation_id" binding:"omitempty"`
	}
	var body Request

	id, err := parseUintParam(ctx, "sourceMaterialId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid source material id", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := smc.requireOwned(ctx, id); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Source material not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		smc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	updates := map[string]any{}
	if body.Content != nil {
		updates["content"] = *body.Content
	}
	if body.Summary != nil {
		updates["summary"] = *body.Summary
	}
	if body.Tags != nil {
		updates["tags"] = pq.StringArray(*body.Tags)
	}
	if body.ArgumentType != nil {
		updates["argument_type"] = *body.ArgumentType
	}
	if body.Function != nil {
		updates["function"] = *body.Function
	}
	if body.Notes != nil {
		updates["notes"] = *body.Notes
	}
	if body.CitationID != nil {
		updates["citation_id"] = *body.CitationID
	}

	sm, err := smc.app.Repository.SourceMaterial.Update(ctx, nil, id, updates)
	if err != nil {
		smc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update source material", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"source_material": sm,
	})
}

func (smc SourceMaterialController) Delete(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "sourceMaterialId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid source material id", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := smc.requireOwned(ctx, id); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Source material not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := smc.app.Repository.SourceMaterial.Delete(ctx, nil, id); err != nil {
		smc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete source material", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"ok": true})
}

func (smc SourceMaterialController) UploadFiles(ctx *gin.Context) {
	type Request struct {
		SourceMaterialID uint `json:"source_material_id" form:"source_material_id" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		smc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	sm, err := smc.requireOwned(ctx, body.SourceMaterialID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Source material not found", util.GenerateErrorMessages(err), nil)
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid multipart form", util.GenerateErrorMessages(err), nil)
		return
	}
	files := form.File["files"]

	if err := filestorage.ValidateNewAttachments(len(util.SplitFileList(sm.Files)), files); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Upload rejected", util.GenerateErrorMessages(err, "files"), nil)
		return
	}

	results, err := smc.app.Storage.UploadMany(ctx, files, constant.FolderSourceMaterials)
	if err != nil {
		smc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to upload files", util.GenerateErrorMessages(err), nil)
		return
	}

	urls := make([]string, 0, len(results))
	names := make([]string, 0, len(results))
	for _, r := range results {
		urls = append(urls, r.FileURL)
		names = append(names, r.Filename)
	}

	sm, err = smc.app.Repository.SourceMaterial.AppendAttachments(ctx, nil, body.SourceMaterialID, urls, names)
	if err != nil {
		smc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to save attachments", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"file_urls": urls,
		"all_files": util.SplitFileList(sm.Files),
	})
}

func (smc SourceMaterialController) DeleteFile(ctx *gin.Context) {
	type Request struct {
		SourceMaterialID uint   `json:"source_material_id" form:"source_material_id" binding:"required"`
		FileURL          string `json:"file_url" form:"file_url" binding:"required,strNotEmpty"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		smc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := smc.requireOwned(ctx, body.SourceMaterialID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Source material not found", util.GenerateErrorMessages(err), nil)
		return
	}

	sm, err := smc.app.Repository.SourceMaterial.RemoveAttachment(ctx, nil, body.SourceMaterialID, body.FileURL)
	if err != nil {
		smc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete file", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"ok":              true,
		"remaining_files": util.SplitFileList(sm.Files),
	})
}

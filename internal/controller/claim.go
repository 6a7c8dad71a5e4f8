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

type ClaimController struct {
	*baseController
}

func (clm ClaimController) Create(ctx *gin.Context) {
	var body model.Claim

	if err := ctx.ShouldBind(&body); err != nil {
		clm.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, _, err := clm.requireOwnedProject(ctx, body.ProjectID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	cl, err := clm.app.Repository.Claim.Create(ctx, nil, &body)
	if err != nil {
		clm.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create claim", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"claim": cl,
	})
}

func (clm ClaimController) List(ctx *gin.Context) {
	type Params struct {
		ProjectID uint `json:"project_id" form:"project_id" binding:"required"`
	}
	var params Params

	if err := ctx.ShouldBindQuery(&params); err != nil {
		clm.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, _, err := clm.requireOwnedProject(ctx, params.ProjectID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	skip, limit := parseListRange(ctx)
	cls, err := clm.app.Repository.Claim.List(ctx, nil, params.ProjectID, skip, limit)
	if err != nil {
		clm.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"claims": cls,
	})
}

func (clm ClaimController) requireOwned(ctx *gin.Context, id uint) (*model.Claim, error) {
	cl, err := clm.app.Repository.Claim.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}

	if _, _, err := clm.requireOwnedProject(ctx, cl.ProjectID); err != nil {
		return nil, err
	}

	return cl, nil
}

func (clm ClaimController) Get(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "claimId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid claim id", util.GenerateErrorMessages(err), nil)
		return
	}

	cl, err := clm.requireOwned(ctx, id)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Claim not found", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"claim": cl,
	})
}

func (clm ClaimController) Update(ctx *gin.Context) {
	type Request struct {
		ClaimText *string   `json:"claim_text" form:"claim_text" binding:"omitempty,strNotEmpty"`
		ClaimType *string   `json:"claim_type" form:"claim_type" binding:"omitempty"`
		Tags      *[]string `json:"tags" form:"tags" binding:"omitempty"`
	}
	var body Request

	id, err := parseUintParam(ctx, "claimId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid claim id", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := clm.requireOwned(ctx, id); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Claim not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		clm.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	updates := map[string]any{}
	if body.ClaimText != nil {
		updates["claim_text"] = *body.ClaimText
	}
	if body.ClaimType != nil {
		updates["claim_type"] = *body.ClaimType
	}
	if body.Tags != nil {
		updates["tags"] = pq.StringArray(*body.Tags)
	}

	cl, err := clm.app.Repository.Claim.Update(ctx, nil, id, updates)
	if err != nil {
		clm.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update claim", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"claim": cl,
	})
}

func (clm ClaimController) Delete(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "claimId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid claim id", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := clm.requireOwned(ctx, id); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Claim not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := clm.app.Repository.Claim.Delete(ctx, nil, id); err != nil {
		clm.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete claim", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"ok": true})
}

func (clm ClaimController) UploadFiles(ctx *gin.Context) {
	type Request struct {
		ClaimID uint `json:"claim_id" form:"claim_id" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		clm.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	cl, err := clm.requireOwned(ctx, body.ClaimID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Claim not found", util.GenerateErrorMessages(err), nil)
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid multipart form", util.GenerateErrorMessages(err), nil)
		return
	}
	files := form.File["files"]

	if err := filestorage.ValidateNewAttachments(len(util.SplitFileList(cl.Files)), files); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Upload rejected", util.GenerateErrorMessages(err, "files"), nil)
		return
	}

	results, err := clm.app.Storage.UploadMany(ctx, files, constant.FolderClaims)
	if err != nil {
		clm.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to upload files", util.GenerateErrorMessages(err), nil)
		return
	}

	urls := make([]string, 0, len(results))
	names := make([]string, 0, len(results))
	for _, r := range results {
		urls = append(urls, r.FileURL)
		names = append(names, r.Filename)
	}

	cl, err = clm.app.Repository.Claim.AppendAttachments(ctx, nil, body.ClaimID, urls, names)
	if err != nil {
		clm.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to save attachments", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"file_urls": urls,
		"all_files": util.SplitFileList(cl.Files),
	})
}

func (clm ClaimController) DeleteFile(ctx *gin.Context) {
	type Request struct {
		ClaimID uint   `json:"claim_id" form:"claim_id" binding:"required"`
		FileURL string `json:"file_url" form:"file_url" binding:"required,strNotEmpty"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		clm.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := clm.requireOwned(ctx, body.ClaimID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Claim not found", util.GenerateErrorMessages(err), nil)
		return
	}

	cl, err := clm.app.Repository.Claim.RemoveAttachment(ctx, nil, body.ClaimID, body.FileURL)
	if err != nil {
		clm.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete file", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"ok":              true,
		"remaining_files": util.SplitFileList(cl.Files),
	})
}

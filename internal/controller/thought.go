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

type ThoughtController struct {
	*baseController
}

func (thc ThoughtController) Create(ctx *gin.Context) {
	var body model.Thought

	if err := ctx.ShouldBind(&body); err != nil {
		thc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, _, err := thc.requireOwnedProject(ctx, body.ProjectID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	th, err := thc.app.Repository.Thought.Create(ctx, nil, &body)
	if err != nil {
		thc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create thought", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"thought": th,
	})
}

func (thc ThoughtController) List(ctx *gin.Context) {
	type Params struct {
		ProjectID uint `json:"project_id" form:"project_id" binding:"required"`
	}
	var params Params

	if err := ctx.ShouldBindQuery(&params); err != nil {
		thc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, _, err := thc.requireOwnedProject(ctx, params.ProjectID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	skip, limit := parseListRange(ctx)
	ths, err := thc.app.Repository.Thought.List(ctx, nil, params.ProjectID, skip, limit)
	if err != nil {
		thc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"thoughts": ths,
	})
}

func (thc ThoughtController) requireOwned(ctx *gin.Context, id uint) (*model.Thought, error) {
	th, err := thc.app.Repository.Thought.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}

	if _, _, err := thc.requireOwnedProject(ctx, th.ProjectID); err != nil {
		return nil, err
	}

	return th, nil
}

func (thc ThoughtController) Get(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "thoughtId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid thought id", util.GenerateErrorMessages(err), nil)
		return
	}

	th, err := thc.requireOwned(ctx, id)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Thought not found", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"thought": th,
	})
}

func (thc ThoughtController) Update(ctx *gin.Context) {
	type Request struct {
		ThoughtText *string   `json:"thought_text" form:"thought_text" binding:"omitempty,strNotEmpty"`
		Tags        *[]string `json:"tags" form:"tags" binding:"omitempty"`
	}
	var body Request

	id, err := parseUintParam(ctx, "thoughtId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid thought id", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := thc.requireOwned(ctx, id); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Thought not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		thc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	updates := map[string]any{}
	if body.ThoughtText != nil {
		updates["thought_text"] = *body.ThoughtText
	}
	if body.Tags != nil {
		updates["tags"] = pq.StringArray(*body.Tags)
	}

	th, err := thc.app.Repository.Thought.Update(ctx, nil, id, updates)
	if err != nil {
		thc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update thought", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"thought": th,
	})
}

func (thc ThoughtController) Delete(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "thoughtId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid thought id", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := thc.requireOwned(ctx, id); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Thought not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := thc.app.Repository.Thought.Delete(ctx, nil, id); err != nil {
		thc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete thought", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"ok": true})
}

func (thc ThoughtController) UploadFiles(ctx *gin.Context) {
	type Request struct {
		ThoughtID uint `json:"thought_id" form:"thought_id" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		thc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	th, err := thc.requireOwned(ctx, body.ThoughtID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Thought not found", util.GenerateErrorMessages(err), nil)
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid multipart form", util.GenerateErrorMessages(err), nil)
		return
	}
	files := form.File["files"]

	if err := filestorage.ValidateNewAttachments(len(util.SplitFileList(th.Files)), files); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Upload rejected", util.GenerateErrorMessages(err, "files"), nil)
		return
	}

	results, err := thc.app.Storage.UploadMany(ctx, files, constant.FolderThoughts)
	if err != nil {
		thc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to upload files", util.GenerateErrorMessages(err), nil)
		return
	}

	urls := make([]string, 0, len(results))
	names := make([]string, 0, len(results))
	for _, r := range results {
		urls = append(urls, r.FileURL)
		names = append(names, r.Filename)
	}

	th, err = thc.app.Repository.Thought.AppendAttachments(ctx, nil, body.ThoughtID, urls, names)
	if err != nil {
		thc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to save attachments", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"file_urls": urls,
		"all_files": util.SplitFileList(th.Files),
	})
}

func (thc ThoughtController) DeleteFile(ctx *gin.Context) {
	type Request struct {
		ThoughtID uint   `json:"thought_id" form:"thought_id" binding:"required"`
		FileURL   string `json:"file_url" form:"file_url" binding:"required,strNotEmpty"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		thc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := thc.requireOwned(ctx, body.ThoughtID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Thought not found", util.GenerateErrorMessages(err), nil)
		return
	}

	th, err := thc.app.Repository.Thought.RemoveAttachment(ctx, nil, body.ThoughtID, body.FileURL)
	if err != nil {
		thc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete file", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"ok":              true,
		"remaining_files": util.SplitFileList(th.Files),
	})
}

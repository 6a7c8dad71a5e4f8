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

type InsightController struct {
	*baseController
}

func (inc InsightController) Create(ctx *gin.Context) {
	var body model.Insight

	if err := ctx.ShouldBind(&body); err != nil {
		inc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, _, err := inc.requireOwnedProject(ctx, body.ProjectID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	in, err := inc.app.Repository.Insight.Create(ctx, nil, &body)
	if err != nil {
		inc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create insight", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"insight": in,
	})
}

func (inc InsightController) List(ctx *gin.Context) {
	type Params struct {
		ProjectID uint `json:"project_id" form:"project_id" binding:"required"`
	}
	var params Params

	if err := ctx.ShouldBindQuery(&params); err != nil {
		inc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, _, err := inc.requireOwnedProject(ctx, params.ProjectID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	skip, limit := parseListRange(ctx)
	ins, err := inc.app.Repository.Insight.List(ctx, nil, params.ProjectID, skip, limit)
	if err != nil {
		inc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"insights": ins,
	})
}

func (inc InsightController) requireOwned(ctx *gin.Context, id uint) (*model.Insight, error) {
	in, err := inc.app.Repository.Insight.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}

	if _, _, err := inc.requireOwnedProject(ctx, in.ProjectID); err != nil {
		return nil, err
	}

	return in, nil
}

func (inc InsightController) Get(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "insightId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid insight id", util.GenerateErrorMessages(err), nil)
		return
	}

	in, err := inc.requireOwned(ctx, id)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Insight not found", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"insight": in,
	})
}

func (inc InsightController) Update(ctx *gin.Context) {
	type Request struct {
		InsightText   *string   `json:"insight_text" form:"insight_text" binding:"omitempty,strNotEmpty"`
		SourcesLinked *string   `json:"sources_linked" form:"sources_linked" binding:"omitempty"`
		InsightType   *string   `json:"insight_type" form:"insight_type" binding:"omitempty"`
		Tags          *[]string `json:"tags" form:"tags" binding:"omitempty"`
	}
	var body Request

	id, err := parseUintParam(ctx, "insightId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid insight id", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := inc.requireOwned(ctx, id); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Insight not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		inc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	updates := map[string]any{}
	if body.InsightText != nil {
		updates["insight_text"] = *body.InsightText
	}
	if body.SourcesLinked != nil {
		updates["sources_linked"] = *body.SourcesLinked
	}
	if body.InsightType != nil {
		updates["insight_type"] = *body.InsightType
	}
	if body.Tags != nil {
		updates["tags"] = pq.StringArray(*body.Tags)
	}

	in, err := inc.app.Repository.Insight.Update(ctx, nil, id, updates)
	if err != nil {
		inc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update insight", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"insight": in,
	})
}

func (inc InsightController) Delete(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "insightId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid insight id", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := inc.requireOwned(ctx, id); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Insight not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := inc.app.Repository.Insight.Delete(ctx, nil, id); err != nil {
		inc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete insight", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"ok": true})
}

func (inc InsightController) UploadFiles(ctx *gin.Context) {
	type Request struct {
		InsightID uint `json:"insight_id" form:"insight_id" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		inc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	in, err := inc.requireOwned(ctx, body.InsightID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Insight not found", util.GenerateErrorMessages(err), nil)
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid multipart form", util.GenerateErrorMessages(err), nil)
		return
	}
	files := form.File["files"]

	if err := filestorage.ValidateNewAttachments(len(util.SplitFileList(in.Files)), files); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Upload rejected", util.GenerateErrorMessages(err, "files"), nil)
		return
	}

	results, err := inc.app.Storage.UploadMany(ctx, files, constant.FolderInsights)
	if err != nil {
		inc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to upload files", util.GenerateErrorMessages(err), nil)
		return
	}

	urls := make([]string, 0, len(results))
	names := make([]string, 0, len(results))
	for _, r := range results {
		urls = append(urls, r.FileURL)
		names = append(names, r.Filename)
	}

	in, err = inc.app.Repository.Insight.AppendAttachments(ctx, nil, body.InsightID, urls, names)
	if err != nil {
		inc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to save attachments", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"file_urls": urls,
		"all_files": util.SplitFileList(in.Files),
	})
}

func (inc InsightController) DeleteFile(ctx *gin.Context) {
	type Request struct {
		InsightID uint   `json:"insight_id" form:"insight_id" binding:"required"`
		FileURL   string `json:"file_url" form:"file_url" binding:"required,strNotEmpty"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		inc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := inc.requireOwned(ctx, body.InsightID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Insight not found", util.GenerateErrorMessages(err), nil)
		return
	}

	in, err := inc.app.Repository.Insight.RemoveAttachment(ctx, nil, body.InsightID, body.FileURL)
	if err != nil {
		inc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete file", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"ok":              true,
		"remaining_files": util.SplitFileList(in.Files),
	})
}

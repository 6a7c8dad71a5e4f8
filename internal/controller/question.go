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

type QuestionController struct {
	*baseController
}

func (qc QuestionController) Create(ctx *gin.Context) {
	var body model.Question

	if err := ctx.ShouldBind(&body); err != nil {
		qc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, _, err := qc.requireOwnedProject(ctx, body.ProjectID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	q, err := qc.app.Repository.Question.Create(ctx, nil, &body)
	if err != nil {
		qc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create question", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"question": q,
	})
}

func (qc QuestionController) List(ctx *gin.Context) {
	type Params struct {
		ProjectID uint `json:"project_id" form:"project_id" binding:"required"`
	}
	var params Params

	if err := ctx.ShouldBindQuery(&params); err != nil {
		qc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, _, err := qc.requireOwnedProject(ctx, params.ProjectID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	skip, limit := parseListRange(ctx)
	qs, err := qc.app.Repository.Question.List(ctx, nil, params.ProjectID, skip, limit)
	if err != nil {
		qc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"questions": qs,
	})
}

func (qc QuestionController) requireOwned(ctx *gin.Context, id uint) (*model.Question, error) {
	q, err := qc.app.Repository.Question.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}

	if _, _, err := qc.requireOwnedProject(ctx, q.ProjectID); err != nil {
		return nil, err
	}

	return q, nil
}

func (qc QuestionController) Get(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "questionId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid question id", util.GenerateErrorMessages(err), nil)
		return
	}

	q, err := qc.requireOwned(ctx, id)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Question not found", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"question": q,
	})
}

func (qc QuestionController) Update(ctx *gin.Context) {
	type Request struct {
		QuestionText *string   `json:"question_text" form:"question_text" binding:"omitempty,strNotEmpty"`
		Category     *string   `json:"category" form:"category" binding:"omitempty"`
		Status       *string   `json:"status" form:"status" binding:"omitempty"`
		Priority     *string   `json:"priority" form:"priority" binding:"omitempty"`
		Tags         *[]string `json:"tags" form:"tags" binding:"omitempty"`
	}
	var body Request

	id, err := parseUintParam(ctx, "questionId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid question id", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := qc.requireOwned(ctx, id); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Question not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		qc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	updates := map[string]any{}
	if body.QuestionText != nil {
		updates["question_text"] = *body.QuestionText
	}
	if body.Category != nil {
		updates["category"] = *body.Category
	}
	if body.Status != nil {
		updates["status"] = *body.Status
	}
	if body.Priority != nil {
		updates["priority"] = *body.Priority
	}
	if body.Tags != nil {
		updates["tags"] = pq.StringArray(*body.Tags)
	}

	q, err := qc.app.Repository.Question.Update(ctx, nil, id, updates)
	if err != nil {
		qc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update question", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"question": q,
	})
}

func (qc QuestionController) Delete(ctx *gin.Context) {
	id, err := parseUintParam(ctx, "questionId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid question id", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := qc.requireOwned(ctx, id); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Question not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := qc.app.Repository.Question.Delete(ctx, nil, id); err != nil {
		qc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete question", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"ok": true})
}

func (qc QuestionController) UploadFiles(ctx *gin.Context) {
	type Request struct {
		QuestionID uint `json:"question_id" form:"question_id" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		qc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	q, err := qc.requireOwned(ctx, body.QuestionID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Question not found", util.GenerateErrorMessages(err), nil)
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid multipart form", util.GenerateErrorMessages(err), nil)
		return
	}
	files := form.File["files"]

	if err := filestorage.ValidateNewAttachments(len(util.SplitFileList(q.Files)), files); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Upload rejected", util.GenerateErrorMessages(err, "files"), nil)
		return
	}

	results, err := qc.app.Storage.UploadMany(ctx, files, constant.FolderQuestions)
	if err != nil {
		qc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to upload files", util.GenerateErrorMessages(err), nil)
		return
	}

	urls := make([]string, 0, len(results))
	names := make([]string, 0, len(results))
	for _, r := range results {
		urls = append(urls, r.FileURL)
		names = append(names, r.Filename)
	}

	q, err = qc.app.Repository.Question.AppendAttachments(ctx, nil, body.QuestionID, urls, names)
	if err != nil {
		qc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to save attachments", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"file_urls": urls,
		"all_files": util.SplitFileList(q.Files),
	})
}

func (qc QuestionController) DeleteFile(ctx *gin.Context) {
	type Request struct {
		QuestionID uint   `json:"question_id" form:"question_id" binding:"required"`
		FileURL    string `json:"file_url" form:"file_url" binding:"required,strNotEmpty"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		qc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := qc.requireOwned(ctx, body.QuestionID); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Question not found", util.GenerateErrorMessages(err), nil)
		return
	}

	q, err := qc.app.Repository.Question.RemoveAttachment(ctx, nil, body.QuestionID, body.FileURL)
	if err != nil {
		qc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete file", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"ok":              true,
		"remaining_files": util.SplitFileList(q.Files),
	})
}

package controller

import (
	"errors"
	"net/http"

	constant "github.com/papermapper/papermapper/internal/constant"
	"github.com/papermapper/papermapper/internal/model"
	"github.com/papermapper/papermapper/internal/util"
	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	*baseController
}

func (pc ProjectController) CreateProject(ctx *gin.Context) {
	type Request struct {
		Name         string `json:"name" form:"name" binding:"required,strNotEmpty,min=1,max=200"`
		ClassSubject string `json:"class_subject" form:"class_subject" binding:"omitempty"`
		PaperType    string `json:"paper_type" form:"paper_type" binding:"omitempty"`
		DueDate      string `json:"due_date" form:"due_date" binding:"omitempty"`
	}
	var body Request

	user, err := pc.getAuthUser(ctx)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	project, err := pc.app.Repository.Project.Create(ctx, nil, &model.Project{
		Name:         body.Name,
		ClassSubject: body.ClassSubject,
		PaperType:    body.PaperType,
		DueDate:      body.DueDate,
		UserID:       user.ID,
	})
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create project", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"project": project,
	})
}

func (pc ProjectController) ListProjects(ctx *gin.Context) {
	user, err := pc.getAuthUser(ctx)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	skip, limit := parseListRange(ctx)
	projects, err := pc.app.Repository.Project.ListForUser(ctx, nil, user.ID, skip, limit)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"projects": projects,
	})
}

func (pc ProjectController) GetProject(ctx *gin.Context) {
	projectID, err := parseUintParam(ctx, "projectId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid project id", util.GenerateErrorMessages(err), nil)
		return
	}

	_, project, err := pc.requireOwnedProject(ctx, projectID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"project": project,
	})
}

func (pc ProjectController) UpdateProject(ctx *gin.Context) {
	type Request struct {
		Name         *string `json:"name" form:"name" binding:"omitempty,strNotEmpty,min=1,max=200"`
		ClassSubject *string `json:"class_subject" form:"class_subject" binding:"omitempty"`
		PaperType    *string `json:"paper_type" form:"paper_type" binding:"omitempty"`
		DueDate      *string `json:"due_date" form:"due_date" binding:"omitempty"`
		Status       *string `json:"status" form:"status" binding:"omitempty"`
	}
	var body Request

	projectID, err := parseUintParam(ctx, "projectId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid project id", util.GenerateErrorMessages(err), nil)
		return
	}

	_, _, err = pc.requireOwnedProject(ctx, projectID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	updates := map[string]any{}
	if body.Name != nil {
		updates["name"] = *body.Name
	}
	if body.ClassSubject != nil {
		updates["class_subject"] = *body.ClassSubject
	}
	if body.PaperType != nil {
		updates["paper_type"] = *body.PaperType
	}
	if body.DueDate != nil {
		updates["due_date"] = *body.DueDate
	}
	if body.Status != nil {
		if !constant.ProjectStatus(*body.Status).Valid() {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid status", util.GenerateErrorMessages(errors.New("invalid project status"), "status"), nil)
			return
		}
		updates["status"] = *body.Status
	}

	project, err := pc.app.Repository.Project.Update(ctx, nil, projectID, updates)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update project", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"project": project,
	})
}

func (pc ProjectController) DeleteProject(ctx *gin.Context) {
	projectID, err := parseUintParam(ctx, "projectId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid project id", util.GenerateErrorMessages(err), nil)
		return
	}

	_, _, err = pc.requireOwnedProject(ctx, projectID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := pc.app.Repository.Project.Delete(ctx, nil, projectID); err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete project", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

func (pc ProjectController) GetProjectTags(ctx *gin.Context) {
	projectID, err := parseUintParam(ctx, "projectId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid project id", util.GenerateErrorMessages(err), nil)
		return
	}

	_, _, err = pc.requireOwnedProject(ctx, projectID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	tags, err := pc.app.Repository.Project.AggregateTags(ctx, nil, projectID)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"tags": tags,
	})
}

func (pc ProjectController) UploadAssignment(ctx *gin.Context) {
	projectID, err := parseUintParam(ctx, "projectId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid project id", util.GenerateErrorMessages(err), nil)
		return
	}

	_, _, err = pc.requireOwnedProject(ctx, projectID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "No file uploaded", util.GenerateErrorMessages(err, "file"), nil)
		return
	}

	if file.Size > constant.MaxAttachmentSize {
		util.ResponseFailed(ctx, http.StatusBadRequest, "File too large", util.GenerateErrorMessages(errors.New("file exceeds the size limit"), "file"), nil)
		return
	}

	result, err := pc.app.Storage.Upload(ctx, file, constant.FolderAssignments)
	if err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to upload file", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := pc.app.Repository.Project.SetAssignment(ctx, nil, projectID, result.FileURL, result.Filename); err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to save assignment", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"file_url": result.FileURL,
		"filename": result.Filename,
	})
}

func (pc ProjectController) DeleteAssignment(ctx *gin.Context) {
	projectID, err := parseUintParam(ctx, "projectId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid project id", util.GenerateErrorMessages(err), nil)
		return
	}

	_, _, err = pc.requireOwnedProject(ctx, projectID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := pc.app.Repository.Project.ClearAssignment(ctx, nil, projectID); err != nil {
		pc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete assignment", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

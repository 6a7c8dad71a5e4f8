package controller

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	constant "github.com/papermapper/papermapper/internal/constant"
	"github.com/papermapper/papermapper/internal/filestorage"
	"github.com/papermapper/papermapper/internal/util"
)

type FileController struct {
	*baseController
}

var secureFolders = map[string]bool{
	constant.FolderSourceMaterials: true,
	constant.FolderQuestions:       true,
	constant.FolderInsights:        true,
	constant.FolderThoughts:        true,
	constant.FolderClaims:          true,
	constant.FolderAssignments:     true,
	constant.FolderGeneral:         true,
}

// Upload stores files that are not tied to any note entity yet, for
// example drafts attached from the canvas before a card is saved.
func (fc FileController) Upload(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid multipart form", util.GenerateErrorMessages(err), nil)
		return
	}
	files := form.File["files"]

	if err := filestorage.ValidateNewAttachments(0, files); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Upload rejected", util.GenerateErrorMessages(err, "files"), nil)
		return
	}

	results, err := fc.app.Storage.UploadMany(ctx, files, constant.FolderGeneral)
	if err != nil {
		fc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to upload files", util.GenerateErrorMessages(err), nil)
		return
	}

	urls := make([]string, 0, len(results))
	for _, r := range results {
		urls = append(urls, r.FileURL)
	}

	util.ResponseSuccess(ctx, gin.H{
		"file_urls": urls,
	})
}

func (fc FileController) Delete(ctx *gin.Context) {
	type Request struct {
		FileURL string `json:"file_url" form:"file_url" binding:"required,strNotEmpty"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		fc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	key := fc.app.Storage.ExtractKeyFromURL(body.FileURL)
	if key == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Unrecognized file url", util.GenerateErrorMessages(fmt.Errorf("url does not belong to this store"), "file_url"), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"ok": fc.app.Storage.Delete(ctx, key),
	})
}

// Serve streams a stored object back to an authenticated user.
func (fc FileController) Serve(ctx *gin.Context) {
	folder := ctx.Param("folder")
	filename := ctx.Param("filename")

	if !secureFolders[folder] || filename == "" {
		util.ResponseFailed(ctx, http.StatusNotFound, "File not found", nil, nil)
		return
	}

	key := util.ToFolderObjectKey(folder, filename)
	object, err := fc.app.Storage.GetObject(ctx, key)
	if err != nil {
		fc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusNotFound, "File not found", util.GenerateErrorMessages(err), nil)
		return
	}
	defer object.Close()

	info, err := object.Stat()
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "File not found", util.GenerateErrorMessages(err), nil)
		return
	}

	ctx.Header("Content-Type", info.ContentType)
	ctx.Header("Content-Length", fmt.Sprintf("%d", info.Size))
	fc.streamObject(ctx, key, object)
}

func (fc FileController) streamObject(ctx *gin.Context, key string, object io.Reader) {
	if _, err := io.Copy(ctx.Writer, object); err != nil {
		// The response is already partially written; log and move on.
		fc.app.Logger.Errorf("Failed to stream object %s: %v", key, err)
	}
}

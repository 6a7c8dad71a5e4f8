package controller

import (
	"net/http"

	"github.com/papermapper/papermapper/internal/model"
	"github.com/papermapper/papermapper/internal/util"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	*baseController
}

func (uc UserController) Me(ctx *gin.Context) {
	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := uc.app.Repository.User.GetByID(ctx, nil, authUser.ID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "User not found", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": user,
	})
}

func (uc UserController) DeleteAccount(ctx *gin.Context) {
	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := uc.app.Repository.User.DeleteAccount(ctx, nil, authUser.ID); err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete account", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

func (uc UserController) ListCustomOptions(ctx *gin.Context) {
	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	opts, err := uc.app.Repository.CustomOption.ListForUser(ctx, nil, authUser.ID, ctx.Query("option_type"))
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"options": opts,
	})
}

func (uc UserController) CreateCustomOption(ctx *gin.Context) {
	type Request struct {
		OptionType string `json:"option_type" form:"option_type" binding:"required,strNotEmpty"`
		Value      string `json:"value" form:"value" binding:"required,strNotEmpty"`
	}
	var body Request

	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	opt, err := uc.app.Repository.CustomOption.Create(ctx, nil, &model.UserCustomOption{
		OptionType: body.OptionType,
		Value:      body.Value,
		UserID:     authUser.ID,
	})
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create option", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"option": opt,
	})
}

func (uc UserController) UpdateCustomOption(ctx *gin.Context) {
	type Request struct {
		Value string `json:"value" form:"value" binding:"required,strNotEmpty"`
	}
	var body Request

	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	optionID, err := parseUintParam(ctx, "optionId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid option id", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ctx.ShouldBind(&body); err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	opt, err := uc.app.Repository.CustomOption.Update(ctx, nil, authUser.ID, optionID, map[string]any{
		"value": body.Value,
	})
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Option not found", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"option": opt,
	})
}

func (uc UserController) DeleteCustomOption(ctx *gin.Context) {
	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", util.GenerateErrorMessages(err), nil)
		return
	}

	optionID, err := parseUintParam(ctx, "optionId")
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid option id", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := uc.app.Repository.CustomOption.Delete(ctx, nil, authUser.ID, optionID); err != nil {
		uc.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete option", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

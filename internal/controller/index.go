package controller

import (
	"github.com/papermapper/papermapper/internal/util"
	"github.com/gin-gonic/gin"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"name": "PaperMapper API",
		"env":  ic.app.Config.ENV,
	})
}

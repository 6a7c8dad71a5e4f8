package route

import (
	"github.com/gin-gonic/gin"
	"github.com/papermapper/papermapper/internal/controller"
	"github.com/papermapper/papermapper/internal/middleware"
)

func V1_Claims(r *gin.RouterGroup, clm *controller.ClaimController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/claims")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.POST("", clm.Create)
		v1.GET("", clm.List)
		v1.GET("/:claimId", clm.Get)
		v1.PUT("/:claimId", clm.Update)
		v1.DELETE("/:claimId", clm.Delete)
		v1.POST("/upload_file", clm.UploadFiles)
		v1.POST("/delete_file", clm.DeleteFile)
	}
}

package route

import (
	"github.com/gin-gonic/gin"
	"github.com/papermapper/papermapper/internal/controller"
	"github.com/papermapper/papermapper/internal/middleware"
)

func V1_Thoughts(r *gin.RouterGroup, thc *controller.ThoughtController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/thoughts")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.POST("", thc.Create)
		v1.GET("", thc.List)
		v1.GET("/:thoughtId", thc.Get)
		v1.PUT("/:thoughtId", thc.Update)
		v1.DELETE("/:thoughtId", thc.Delete)
		v1.POST("/upload_file", thc.UploadFiles)
		v1.POST("/delete_file", thc.DeleteFile)
	}
}

package route

import (
	"github.com/gin-gonic/gin"
	"github.com/papermapper/papermapper/internal/controller"
	"github.com/papermapper/papermapper/internal/middleware"
)

func V1_File(r *gin.RouterGroup, fc *controller.FileController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.POST("/upload", fc.Upload)
		v1.POST("/delete_upload", fc.Delete)
		v1.GET("/secure-files/:folder/:filename", fc.Serve)
	}
}

package route

import (
	"github.com/gin-gonic/gin"
	"github.com/papermapper/papermapper/internal/controller"
	"github.com/papermapper/papermapper/internal/middleware"
)

func V1_Questions(r *gin.RouterGroup, qc *controller.QuestionController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/questions")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.POST("", qc.Create)
		v1.GET("", qc.List)
		v1.GET("/:questionId", qc.Get)
		v1.PUT("/:questionId", qc.Update)
		v1.DELETE("/:questionId", qc.Delete)
		v1.POST("/upload_file", qc.UploadFiles)
		v1.POST("/delete_file", qc.DeleteFile)
	}
}

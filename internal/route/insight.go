package route

import (
	"github.com/gin-gonic/gin"
	"github.com/papermapper/papermapper/internal/controller"
	"github.com/papermapper/papermapper/internal/middleware"
)

func V1_Insights(r *gin.RouterGroup, inc *controller.InsightController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/insights")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.POST("", inc.Create)
		v1.GET("", inc.List)
		v1.GET("/:insightId", inc.Get)
		v1.PUT("/:insightId", inc.Update)
		v1.DELETE("/:insightId", inc.Delete)
		v1.POST("/upload_file", inc.UploadFiles)
		v1.POST("/delete_file", inc.DeleteFile)
	}
}

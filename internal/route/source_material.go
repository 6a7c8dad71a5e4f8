package route

import (
	"github.com/gin-gonic/gin"
	"github.com/papermapper/papermapper/internal/controller"
	"github.com/papermapper/papermapper/internal/middleware"
)

func V1_SourceMaterials(r *gin.RouterGroup, smc *controller.SourceMaterialController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/source_materials")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.POST("", smc.Create)
		v1.GET("", smc.List)
		v1.GET("/:sourceMaterialId", smc.Get)
		v1.PUT("/:sourceMaterialId", smc.Update)
		v1.DELETE("/:sourceMaterialId", smc.Delete)
		v1.POST("/upload_file", smc.UploadFiles)
		v1.POST("/delete_file", smc.DeleteFile)
	}
}

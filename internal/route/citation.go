package route

import (
	"github.com/gin-gonic/gin"
	"github.com/papermapper/papermapper/internal/controller"
	"github.com/papermapper/papermapper/internal/middleware"
)

func V1_Citations(r *gin.RouterGroup, cic *controller.CitationController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/citations")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.POST("", cic.Create)
		v1.GET("", cic.List)
		v1.GET("/:citationId", cic.Get)
		v1.PUT("/:citationId", cic.Update)
		v1.DELETE("/:citationId", cic.Delete)
	}
}

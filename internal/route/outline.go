package route

import (
	"github.com/gin-gonic/gin"
	"github.com/papermapper/papermapper/internal/controller"
	"github.com/papermapper/papermapper/internal/middleware"
)

func V1_Outline(r *gin.RouterGroup, oc *controller.OutlineController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/outline")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.POST("/sections", oc.CreateSection)
		v1.GET("/sections", oc.ListSections)
		v1.GET("/sections/:sectionId", oc.GetSection)
		v1.PUT("/sections/:sectionId", oc.UpdateSection)
		v1.DELETE("/sections/:sectionId", oc.DeleteSection)

		v1.POST("/placements", oc.PlaceCard)
		v1.GET("/placements", oc.ListPlacements)
		v1.DELETE("/placements/:cardId", oc.RemovePlacement)
	}
}

package route

import (
	"github.com/gin-gonic/gin"
	"github.com/papermapper/papermapper/internal/controller"
	"github.com/papermapper/papermapper/internal/middleware"
)

func V1_CardLinks(r *gin.RouterGroup, clc *controller.CardLinkController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/card_links")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.POST("", clc.CreateCardLink)
		v1.GET("", clc.ListCardLinks)
		v1.GET("/:linkId", clc.GetCardLink)
		v1.PUT("/:linkId", clc.UpdateCardLink)
		v1.DELETE("/:linkId", clc.DeleteCardLink)
	}
}

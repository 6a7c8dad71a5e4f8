package route

import (
	"github.com/gin-gonic/gin"
	"github.com/papermapper/papermapper/internal/controller"
	"github.com/papermapper/papermapper/internal/middleware"
)

func V1_Cards(r *gin.RouterGroup, cc *controller.CardController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/cards")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.POST("", cc.CreateCard)
		v1.GET("", cc.ListCards)
		v1.GET("/:cardId", cc.GetCard)
		v1.PUT("/:cardId", cc.UpdateCard)
		v1.DELETE("/:cardId", cc.DeleteCard)
	}
}

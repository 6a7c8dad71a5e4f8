package route

import (
	"github.com/gin-gonic/gin"
	"github.com/papermapper/papermapper/internal/controller"
	"github.com/papermapper/papermapper/internal/middleware"
)

func V1_Users(r *gin.RouterGroup, uc *controller.UserController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/users")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.GET("/me", uc.Me)
		v1.DELETE("/me", uc.DeleteAccount)
		v1.GET("/me/custom-options", uc.ListCustomOptions)
		v1.POST("/me/custom-options", uc.CreateCustomOption)
		v1.PUT("/me/custom-options/:optionId", uc.UpdateCustomOption)
		v1.DELETE("/me/custom-options/:optionId", uc.DeleteCustomOption)
	}
}

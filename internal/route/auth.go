package route

import (
	"github.com/gin-gonic/gin"
	"github.com/papermapper/papermapper/internal/controller"
)

func V1_Auth(r *gin.RouterGroup, authController *controller.AuthController) {
	v1 := r.Group("/v1/auth")
	{
		v1.POST("/register", authController.Register)
		v1.POST("/login", authController.Login)
		v1.POST("/logout", authController.Logout)
		v1.POST("/forgot-password", authController.ForgotPassword)
		v1.POST("/validate-reset-code", authController.ValidateResetCode)
		v1.POST("/reset-password", authController.ResetPassword)
	}
}

package middleware

import (
	"net/http"

	"github.com/papermapper/papermapper/internal/util"
	"github.com/gin-gonic/gin"
)

func (m Middleware) AuthMiddleware(ctx *gin.Context) {
	token, err := util.ReadSessionToken(ctx)
	if err != nil {
		m.app.Logger.Debugf("Failed to read session token: %v", err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		ctx.Abort()
		return
	}

	claim, err := m.app.JWTService.VerifySessionToken(token)
	if err != nil {
		m.app.Logger.Debugf("Failed to verify session token: %v", err)
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid session", util.GenerateErrorMessages(err, "unauthorized"), nil)
		ctx.Abort()
		return
	}

	ctx.Set("user", claim.User)
	ctx.Next()
}

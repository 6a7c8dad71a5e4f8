package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/papermapper/papermapper/internal/auth"
	constant "github.com/papermapper/papermapper/internal/constant"
	"github.com/papermapper/papermapper/internal/mailer"
	"github.com/papermapper/papermapper/internal/model"
	"github.com/papermapper/papermapper/internal/queue"
	"github.com/papermapper/papermapper/internal/repository"
	"github.com/papermapper/papermapper/internal/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	*baseController
}

const forgotPasswordMessage = "Password reset code sent"

func (ac AuthController) setSessionCookie(ctx *gin.Context, token string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(constant.SessionCookieName, token, maxAge, "/",
		ac.app.Config.Auth.CookieDomain, ac.app.Config.Auth.SecureCookie, true)
}

func (ac AuthController) Register(ctx *gin.Context) {
	type Request struct {
		Email    string `json:"email" form:"email" binding:"required,email"`
		Password string `json:"password" form:"password" binding:"required,min=8,max=72"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	hashed, err := util.HashPassword(body.Password)
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to register", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := ac.app.Repository.User.Create(ctx, nil, &model.User{
		Email:          body.Email,
		HashedPassword: hashed,
	})
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Email is already registered", util.GenerateErrorMessages(errors.New("email is already registered"), "email"), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": user,
	})
}

func (ac AuthController) Login(ctx *gin.Context) {
	type Request struct {
		Email    string `json:"email" form:"email" binding:"required,email"`
		Password string `json:"password" form:"password" binding:"required"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := ac.app.Repository.User.GetByEmail(ctx, nil, body.Email)
	if err != nil || !util.ComparePassword(user.HashedPassword, body.Password) {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid email or password", util.GenerateErrorMessages(errors.New("invalid email or password")), nil)
		return
	}

	token, err := ac.app.JWTService.GenerateSessionToken(auth.JWTPayload{
		ID:    user.ID,
		Email: user.Email,
	})
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to login", util.GenerateErrorMessages(err), nil)
		return
	}

	ac.setSessionCookie(ctx, *token, int(ac.app.JWTService.SessionTTL().Seconds()))

	util.ResponseSuccess(ctx, gin.H{
		"user": user,
	})
}

func (ac AuthController) Logout(ctx *gin.Context) {
	ac.setSessionCookie(ctx, "", -1)
	util.ResponseSuccess(ctx, nil)
}

// ForgotPassword answers the same message whether or not the email is
// registered.
func (ac AuthController) ForgotPassword(ctx *gin.Context) {
	type Request struct {
		Email string `json:"email" form:"email" binding:"required,email"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	user, err := ac.app.Repository.User.GetByEmail(ctx, nil, body.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseSuccess(ctx, gin.H{"message": forgotPasswordMessage})
			return
		}

		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	code, err := util.GenerateResetCode(constant.ResetCodeLength)
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	ttl := constant.ResetCodeTTLMinutes * time.Minute
	if _, err := ac.app.Repository.PasswordReset.CreateCode(ctx, nil, user.ID, code, ttl); err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	ac.sendResetCode(user, code)

	util.ResponseSuccess(ctx, gin.H{"message": forgotPasswordMessage})
}

// sendResetCode enqueues the reset email when AMQP is wired, otherwise
// sends inline. Delivery failures are logged only; the code is already
// stored and the response never reveals account existence.
func (ac AuthController) sendResetCode(user *model.User, code string) {
	data := mailer.ResetPasswordData{
		Email:      user.Email,
		Code:       code,
		TTLMinutes: constant.ResetCodeTTLMinutes,
	}

	if ac.app.MailQueue != nil {
		job, err := queue.NewResetPasswordMailJob(user.Email, data)
		if err == nil {
			if body, merr := json.Marshal(job); merr == nil {
				if perr := ac.app.MailQueue.Publish(queue.QueueMail, body); perr == nil {
					return
				} else {
					ac.app.Logger.Errorf("Failed to publish reset mail job, falling back to inline send: %v", perr)
				}
			}
		}
	}

	if _, err := ac.app.Mailer.Send(mailer.RESET_PASSWORD_TEMPLATE, user.Email, user.Email, data); err != nil {
		ac.app.Logger.Errorf("Failed to send reset email to %s: %v", user.Email, err)
	}
}

func (ac AuthController) ValidateResetCode(ctx *gin.Context) {
	type Request struct {
		Code string `json:"code" form:"code" binding:"required,strNotEmpty"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	if _, err := ac.app.Repository.PasswordReset.GetUsable(ctx, nil, body.Code); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid or expired code", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"valid": true})
}

func (ac AuthController) ResetPassword(ctx *gin.Context) {
	type Request struct {
		Token    string `json:"token" form:"token" binding:"required,strNotEmpty"`
		Password string `json:"password" form:"password" binding:"required,min=8,max=72"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	hashed, err := util.HashPassword(body.Password)
	if err != nil {
		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if err := ac.app.Repository.PasswordReset.ConsumeAndResetPassword(ctx, nil, body.Token, hashed); err != nil {
		if errors.Is(err, repository.ErrResetCodeInvalid) {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid or expired code", util.GenerateErrorMessages(err), nil)
			return
		}

		ac.app.Logger.Error(err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{"message": "Password reset successfully"})
}

package handler

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/http/helper"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/http/middleware"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/http/validation"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/domain"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/model/request"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/model/response"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/port"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/service"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/util"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/logging"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/metrics"
)

type AuthHandler struct {
	svc     port.AuthService
	logger  *logging.Logger
	metrics *metrics.AppMetrics
}

func NewAuthHandler(svc port.AuthService, logger *logging.Logger, appMetrics *metrics.AppMetrics) *AuthHandler {
	return &AuthHandler{
		svc:     svc,
		logger:  logger,
		metrics: appMetrics,
	}
}

func (a *AuthHandler) SignUp(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.BindParams[request.SignUpRequest](c)

	if err != nil {
		helper.SendBadRequest(c, "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	_, err = a.svc.Registration(ctx, &params)

	if errors.Is(err, domain.ErrEmailTaken) {
		helper.SendError(c, "Email already in use")
		return
	}

	if err != nil {
		a.logger.Ctx(ctx).Error("Failed to create user", zap.Error(err))
		helper.SendError(c, "Failed to create user")
		return
	}

	if a.metrics != nil {
		a.metrics.RecordUserOperation(ctx, "signup")
	}

	helper.SendSuccess(c, "User created succesfully")
}

func (a *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.BindParams[request.LoginRequest](c)

	if err != nil {
		helper.SendBadRequest(c, "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	user, token, err := a.svc.Login(ctx, &params)

	switch {
	case errors.Is(err, service.ErrEmailNotFound):
		helper.SendLoginFailure(c, "Auth failed, email not found")
		return
	case errors.Is(err, service.ErrWrongPassword):
		if a.metrics != nil {
			a.metrics.RecordAuthFailure(ctx, "wrong_password")
		}

		helper.SendLoginFailure(c, "Wrong password")
		return
	case errors.Is(err, service.ErrTokenIssue):
		helper.SendBadRequest(c, "Failed to generate token")
		return
	case err != nil:
		a.logger.Ctx(ctx).Error("Failed to login", zap.Error(err))
		helper.SendError(c, "Failed to login")
		return
	}

	slog.Info("Auth#Login", "user_id", user.ID.String())

	if a.metrics != nil {
		a.metrics.RecordUserOperation(ctx, "login")
	}

	c.SetCookie(middleware.AuthCookieName, token, 0, "/", "", false, true)

	helper.SendSuccessWithToken(c, "User logged in succesfully", token, nil)
}

func (a *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.GetString(middleware.ContextUserIDKey)

	if err := a.svc.Logout(ctx, userID); err != nil {
		a.logger.Ctx(ctx).Error("Failed to logout", zap.Error(err), zap.String("user_id", userID))
		helper.SendError(c, "Failed to logout")
		return
	}

	if a.metrics != nil {
		a.metrics.RecordUserOperation(ctx, "logout")
	}

	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", false, true)

	helper.SendSuccess(c, "User logged out succesfully")
}

// CheckAuth answers the session probe the frontend fires on page load. The
// guard has already attached the user, so this is a plain read.
func (a *AuthHandler) CheckAuth(c *gin.Context) {
	user := middleware.CurrentUser(c)

	c.JSON(200, response.AuthCheckResponse{
		IsAuth:    true,
		Email:     user.Email,
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
	})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/http/helper"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/http/middleware"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/http/validation"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/domain"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/model/request"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/model/response"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/port"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/util"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/logging"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/metrics"
)

type UserHandler struct {
	svc     port.UserService
	logger  *logging.Logger
	metrics *metrics.AppMetrics
}

func NewUserHandler(svc port.UserService, logger *logging.Logger, appMetrics *metrics.AppMetrics) *UserHandler {
	return &UserHandler{
		svc:     svc,
		logger:  logger,
		metrics: appMetrics,
	}
}

// GetUser returns the caller's profile. The body carries the record under
// userCredentials, which the frontend expects.
func (u *UserHandler) GetUser(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.GetString(middleware.ContextUserIDKey)

	user, err := u.svc.GetByID(ctx, userID)

	if err != nil {
		u.logger.Ctx(ctx).Error("Failed to fetch user details", zap.Error(err), zap.String("user_id", userID))
		helper.SendError(c, "Failed to fetch user details")
		return
	}

	if u.metrics != nil {
		u.metrics.RecordUserOperation(ctx, "get")
	}

	c.JSON(http.StatusOK, response.UserDetailsResponse{
		Status:          response.StatusSuccess,
		Message:         "User Details Fetched Successfully",
		UserCredentials: userToResponse(user),
	})
}

func (u *UserHandler) UpdateUser(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.BindParams[request.UserUpdateRequest](c)

	if err != nil {
		helper.SendBadRequest(c, "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	user, err := u.svc.UpdateByID(ctx, c.Param("id"), &params)

	if err != nil {
		u.logger.Ctx(ctx).Error("Failed to update user info", zap.Error(err), zap.String("user_id", c.Param("id")))
		helper.SendError(c, "Failed to update user info")
		return
	}

	if u.metrics != nil {
		u.metrics.RecordUserOperation(ctx, "update")
	}

	helper.SendSuccess(c, "User Info Updated Successfully", userToResponse(user))
}

func userToResponse(user domain.User) response.UserResponse {
	return response.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

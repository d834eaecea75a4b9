package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/http/helper"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/http/middleware"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/http/validation"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/domain"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/model/request"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/model/response"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/port"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/logging"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/metrics"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/tracing"
)

type TodoHandler struct {
	svc     port.TodoService
	logger  *logging.Logger
	metrics *metrics.AppMetrics
}

func NewTodoHandler(svc port.TodoService, logger *logging.Logger, appMetrics *metrics.AppMetrics) *TodoHandler {
	return &TodoHandler{
		svc:     svc,
		logger:  logger,
		metrics: appMetrics,
	}
}

// CreateTodo forces the owner to the authenticated caller; any created_by in
// the body is ignored.
func (t *TodoHandler) CreateTodo(c *gin.Context) {
	ctx := c.Request.Context()

	user := middleware.CurrentUser(c)

	var params request.TodoCreateRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		helper.SendBadRequest(c, "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	todo := domain.Todo{
		Title:     params.Title,
		Body:      params.Body,
		CreatedBy: user.ID,
	}

	saved, err := t.svc.Create(ctx, todo)

	if err != nil {
		t.logger.Ctx(ctx).Error("Failed to create todo", zap.Error(err), zap.String("user_id", user.ID.String()))
		helper.SendError(c, "Failed to create todo")
		return
	}

	if t.metrics != nil {
		t.metrics.RecordTodoOperation(ctx, "create")
	}

	helper.SendSuccess(c, "Todo Item Added Successfully", todoToResponse(saved))
}

func (t *TodoHandler) GetAllTodos(c *gin.Context) {
	ctx, span := tracing.CreateChildSpan(c.Request.Context(), "handler.todo.GetAllTodos", []attribute.KeyValue{
		attribute.String("handler.method", c.Request.Method),
		attribute.String("handler.path", c.FullPath()),
	})
	defer span.End()

	user := middleware.CurrentUser(c)

	span.SetAttributes(attribute.String("user.id", user.ID.String()))

	todos, err := t.svc.ListByOwner(ctx, user.ID.String())

	if err != nil {
		tracing.AddSpanError(span, err)

		t.logger.Ctx(ctx).Error("Failed to fetch todo list", zap.Error(err), zap.String("user_id", user.ID.String()))

		helper.SendError(c, "Failed to fetch todo list")
		return
	}

	if t.metrics != nil {
		t.metrics.RecordTodoOperation(ctx, "list")
	}

	data := make([]response.TodoResponse, 0, len(todos))

	for _, todo := range todos {
		data = append(data, todoToResponse(todo))
	}

	helper.SendSuccess(c, "Todo List Fetched Successfully", data)
}

// GetTodo answers a missing id with a success envelope, which the frontend
// relies on to render its empty state.
func (t *TodoHandler) GetTodo(c *gin.Context) {
	ctx := c.Request.Context()

	todo, err := t.svc.GetByID(ctx, c.Param("id"))

	if errors.Is(err, domain.ErrNotFound) {
		helper.SendSuccess(c, "Todo Info Not Found")
		return
	}

	if err != nil {
		t.logger.Ctx(ctx).Error("Failed to fetch todo", zap.Error(err), zap.String("todo_id", c.Param("id")))
		helper.SendError(c, "Failed to fetch todo")
		return
	}

	if t.metrics != nil {
		t.metrics.RecordTodoOperation(ctx, "get")
	}

	helper.SendSuccess(c, "Todo Info Fetched Successfully", todoToResponse(todo))
}

func (t *TodoHandler) UpdateTodo(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.TodoUpdateRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		helper.SendBadRequest(c, "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	updated, err := t.svc.UpdateByID(ctx, c.Param("id"), &params)

	if err != nil {
		t.logger.Ctx(ctx).Error("Failed to update todo", zap.Error(err), zap.String("todo_id", c.Param("id")))
		helper.SendError(c, "Failed to update todo")
		return
	}

	if t.metrics != nil {
		t.metrics.RecordTodoOperation(ctx, "update")
	}

	helper.SendSuccess(c, "Todo Info Updated Successfully", todoToResponse(updated))
}

func (t *TodoHandler) DeleteTodo(c *gin.Context) {
	ctx := c.Request.Context()

	if err := t.svc.DeleteByID(ctx, c.Param("id")); err != nil {
		t.logger.Ctx(ctx).Error("Unable to delete todo item", zap.Error(err), zap.String("todo_id", c.Param("id")))
		helper.SendError(c, "Unable to delete Todo Item")
		return
	}

	if t.metrics != nil {
		t.metrics.RecordTodoOperation(ctx, "delete")
	}

	helper.SendSuccess(c, "Todo Item Deleted Successfully")
}

func todoToResponse(todo domain.Todo) response.TodoResponse {
	return response.TodoResponse{
		ID:        todo.ID,
		Title:     todo.Title,
		Body:      todo.Body,
		CreatedBy: todo.CreatedBy,
		CreatedAt: todo.CreatedAt,
		UpdatedAt: todo.UpdatedAt,
	}
}

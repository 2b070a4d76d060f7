package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"taskapi/internal/adapter/http/helper"
	"taskapi/internal/adapter/http/middleware"
	"taskapi/internal/adapter/http/validation"
	"taskapi/internal/core/model/request"
	"taskapi/internal/core/model/response"
	"taskapi/internal/core/port"
	"taskapi/internal/core/util"
	"taskapi/pkg/tracing"
)

type TodoHandler struct {
	svc port.TodoService
}

func NewTodoHandler(svc port.TodoService) *TodoHandler {
	return &TodoHandler{
		svc: svc,
	}
}

func (t *TodoHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	current := middleware.CurrentUser(c)

	params, err := util.ParamsToMap[request.TodoCreateRequest](c)

	if err != nil {
		helper.SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	todo, err := t.svc.Create(ctx, current, &params)

	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.NewTodoResponse(todo))
}

func (t *TodoHandler) GetAll(c *gin.Context) {
	ctx, span := tracing.CreateChildSpan(c.Request.Context(), "handler.todo.GetAll", []attribute.KeyValue{
		attribute.String("handler.method", c.Request.Method),
		attribute.String("handler.path", c.FullPath()),
	})

	defer span.End()

	current := middleware.CurrentUser(c)

	todos, err := t.svc.GetAll(ctx, current)

	if err != nil {
		tracing.AddSpanError(span, err)
		helper.SendDomainError(c, err)
		return
	}

	span.SetAttributes(attribute.Int("todo.count", len(todos)))

	c.JSON(http.StatusOK, response.NewTodoListResponse(todos))
}

func (t *TodoHandler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()
	current := middleware.CurrentUser(c)

	id, err := uuid.Parse(c.Param("id"))

	if err != nil {
		helper.SendNotFoundError(c, "Todo not found")
		return
	}

	todo, err := t.svc.GetByID(ctx, current, id)

	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewTodoResponse(todo))
}

func (t *TodoHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	current := middleware.CurrentUser(c)

	id, err := uuid.Parse(c.Param("id"))

	if err != nil {
		helper.SendNotFoundError(c, "Todo not found")
		return
	}

	params, err := util.ParamsToMap[request.TodoUpdateRequest](c)

	if err != nil {
		helper.SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	todo, err := t.svc.Update(ctx, current, id, &params)

	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewTodoResponse(todo))
}

func (t *TodoHandler) Complete(c *gin.Context) {
	ctx := c.Request.Context()
	current := middleware.CurrentUser(c)

	id, err := uuid.Parse(c.Param("id"))

	if err != nil {
		helper.SendNotFoundError(c, "Todo not found")
		return
	}

	todo, err := t.svc.Complete(ctx, current, id)

	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewTodoResponse(todo))
}

func (t *TodoHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	current := middleware.CurrentUser(c)

	id, err := uuid.Parse(c.Param("id"))

	if err != nil {
		helper.SendNotFoundError(c, "Todo not found")
		return
	}

	if err := t.svc.Delete(ctx, current, id); err != nil {
		helper.SendDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskapi/internal/adapter/http/helper"
	"taskapi/internal/adapter/http/validation"
	"taskapi/internal/core/model/request"
	"taskapi/internal/core/model/response"
	"taskapi/internal/core/port"
	"taskapi/internal/core/util"
)

type AssistantHandler struct {
	svc port.AssistantService
}

func NewAssistantHandler(svc port.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		svc: svc,
	}
}

// Generate dispatches a durable event; the provider call happens later in
// the background worker.
func (h *AssistantHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.ParamsToMap[request.GenerateRequest](c)

	if err != nil {
		helper.SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	eventID, err := h.svc.Generate(ctx, params.UserQuery)

	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, response.GenerateResponse{EventID: eventID})
}

// Invoke calls the provider synchronously.
func (h *AssistantHandler) Invoke(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.ParamsToMap[request.InvokeRequest](c)

	if err != nil {
		helper.SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	message, err := h.svc.Invoke(ctx, params.Question)

	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.InvokeResponse{Message: message})
}

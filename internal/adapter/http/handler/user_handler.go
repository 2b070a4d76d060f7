package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskapi/internal/adapter/http/helper"
	"taskapi/internal/adapter/http/middleware"
	"taskapi/internal/adapter/http/validation"
	"taskapi/internal/core/model/request"
	"taskapi/internal/core/model/response"
	"taskapi/internal/core/port"
	"taskapi/internal/core/util"
)

type UserHandler struct {
	svc port.UserService
}

func NewUserHandler(svc port.UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	ctx := c.Request.Context()
	current := middleware.CurrentUser(c)

	user, err := h.svc.GetCurrentUser(ctx, current)

	if err != nil {
		helper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewUserResponse(user))
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	ctx := c.Request.Context()
	current := middleware.CurrentUser(c)

	params, err := util.ParamsToMap[request.PasswordChangeRequest](c)

	if err != nil {
		helper.SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	if err := h.svc.ChangePassword(ctx, current, &params); err != nil {
		helper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskapi/internal/adapter/http/helper"
	"taskapi/internal/adapter/http/validation"
	"taskapi/internal/core/model/request"
	"taskapi/internal/core/port"
	"taskapi/internal/core/util"
)

type AuthHandler struct {
	svc port.AuthService
}

func NewAuthHandler(svc port.AuthService) *AuthHandler {
	return &AuthHandler{
		svc: svc,
	}
}

func (a *AuthHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.ParamsToMap[request.RegisterUserRequest](c)

	if err != nil {
		helper.SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	if err := a.svc.Register(ctx, &params); err != nil {
		slog.Error("Registration failed", "email", params.Email, "error", err)
		helper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully."})
}

// Login consumes the OAuth2-style form body (username, password) and returns
// a bearer access token.
func (a *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.LoginRequest

	if err := c.ShouldBind(&params); err != nil {
		helper.SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		helper.SendValidationError(c, err)
		return
	}

	token, err := a.svc.Login(ctx, params.Username, params.Password)

	if err != nil {
		slog.Error("Login failed", "username", params.Username)
		helper.SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

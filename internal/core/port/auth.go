package port

import (
	"context"

	"taskapi/internal/core/domain"
	"taskapi/internal/core/model/request"
	"taskapi/internal/core/model/response"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterUserRequest) error
	Login(ctx context.Context, username, password string) (*response.Token, error)

	// VerifyToken is the sole entry point other components use to resolve
	// an identity from a bearer credential.
	VerifyToken(token string) (domain.TokenData, error)
}

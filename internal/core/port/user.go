package port

import (
	"context"

	"github.com/google/uuid"

	"taskapi/internal/core/domain"
	"taskapi/internal/core/model/request"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type UserService interface {
	GetCurrentUser(ctx context.Context, current domain.TokenData) (domain.User, error)
	ChangePassword(ctx context.Context, current domain.TokenData, req *request.PasswordChangeRequest) error
}

package port

import (
	"context"

	"github.com/google/uuid"

	"taskapi/internal/core/domain"
	"taskapi/internal/core/model/request"
)

// TodoRepository is owner-scoped by construction: every read and mutation
// takes the owner id alongside the record id, so a record that exists but
// belongs to someone else is indistinguishable from one that does not exist.
type TodoRepository interface {
	Create(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (domain.Todo, error)
	GetAllByUser(ctx context.Context, userID uuid.UUID) ([]domain.Todo, error)
	Update(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type TodoService interface {
	Create(ctx context.Context, current domain.TokenData, req *request.TodoCreateRequest) (domain.Todo, error)
	GetAll(ctx context.Context, current domain.TokenData) ([]domain.Todo, error)
	GetByID(ctx context.Context, current domain.TokenData, id uuid.UUID) (domain.Todo, error)
	Update(ctx context.Context, current domain.TokenData, id uuid.UUID, req *request.TodoUpdateRequest) (domain.Todo, error)
	Complete(ctx context.Context, current domain.TokenData, id uuid.UUID) (domain.Todo, error)
	Delete(ctx context.Context, current domain.TokenData, id uuid.UUID) error
}

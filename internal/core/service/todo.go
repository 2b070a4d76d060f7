package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"taskapi/internal/core/domain"
	"taskapi/internal/core/model/request"
	"taskapi/internal/core/port"
)

type TodoService struct {
	repo port.TodoRepository
}

func NewTodoService(repo port.TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

// ownerID re-derives a concrete owner identifier from the claim before any
// data access. A claim with no usable id never reaches the repository.
func ownerID(current domain.TokenData) (uuid.UUID, error) {
	userID, err := current.UUID()

	if err != nil {
		return uuid.Nil, domain.NewUserNotFoundError()
	}

	return userID, nil
}

func (s *TodoService) Create(ctx context.Context, current domain.TokenData, req *request.TodoCreateRequest) (domain.Todo, error) {
	userID, err := ownerID(current)

	if err != nil {
		return domain.Todo{}, err
	}

	priority := domain.PriorityMedium

	if req.Priority != nil {
		priority = *req.Priority
	}

	todo := domain.Todo{
		ID:          uuid.New(),
		UserID:      userID,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    priority,
		CreatedAt:   time.Now().UTC(),
	}

	saved, err := s.repo.Create(ctx, todo)

	if err != nil {
		slog.Error("Error creating todo", "user_id", current.UserID, "error", err)
		return domain.Todo{}, domain.NewTodoCreationError(err)
	}

	return saved, nil
}

func (s *TodoService) GetAll(ctx context.Context, current domain.TokenData) ([]domain.Todo, error) {
	userID, err := ownerID(current)

	if err != nil {
		return nil, err
	}

	return s.repo.GetAllByUser(ctx, userID)
}

func (s *TodoService) GetByID(ctx context.Context, current domain.TokenData, id uuid.UUID) (domain.Todo, error) {
	userID, err := ownerID(current)

	if err != nil {
		return domain.Todo{}, err
	}

	todo, err := s.repo.GetByID(ctx, id, userID)

	if errors.Is(err, domain.ErrRecordNotFound) {
		slog.Warn("Todo not found", "todo_id", id, "user_id", userID)
		return domain.Todo{}, domain.NewTodoNotFoundError(id)
	}

	if err != nil {
		return domain.Todo{}, err
	}

	return todo, nil
}

// Update applies only the fields present in the partial input; unset fields
// stay untouched.
func (s *TodoService) Update(ctx context.Context, current domain.TokenData, id uuid.UUID, req *request.TodoUpdateRequest) (domain.Todo, error) {
	todo, err := s.GetByID(ctx, current, id)

	if err != nil {
		return domain.Todo{}, err
	}

	req.ApplyTo(&todo)

	updated, err := s.repo.Update(ctx, todo)

	if err != nil {
		return domain.Todo{}, err
	}

	return updated, nil
}

// Complete is idempotent: a second call returns the stored state, including
// the original completion timestamp.
func (s *TodoService) Complete(ctx context.Context, current domain.TokenData, id uuid.UUID) (domain.Todo, error) {
	todo, err := s.GetByID(ctx, current, id)

	if err != nil {
		return domain.Todo{}, err
	}

	if todo.IsCompleted {
		return todo, nil
	}

	todo.Complete(time.Now().UTC())

	return s.repo.Update(ctx, todo)
}

func (s *TodoService) Delete(ctx context.Context, current domain.TokenData, id uuid.UUID) error {
	todo, err := s.GetByID(ctx, current, id)

	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, todo.ID, todo.UserID)
}

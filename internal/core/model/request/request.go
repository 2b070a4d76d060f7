package request

import (
	"time"

	"taskapi/internal/core/domain"
)

type RegisterUserRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	FirstName string `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string `json:"last_name" validate:"required,min=1,max=50"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
}

// LoginRequest binds the OAuth2-style form body of POST /auth/token.
type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type PasswordChangeRequest struct {
	CurrentPassword    string `json:"current_password" validate:"required,min=8,max=128"`
	NewPassword        string `json:"new_password" validate:"required,min=8,max=128"`
	NewPasswordConfirm string `json:"new_password_confirm" validate:"required,min=8,max=128"`
}

type TodoCreateRequest struct {
	Description string           `json:"description" validate:"required"`
	DueDate     *time.Time       `json:"due_date"`
	Priority    *domain.Priority `json:"priority" validate:"omitempty,min=0,max=4"`
}

// TodoUpdateRequest carries only the fields present in the payload; nil
// means untouched. ApplyTo merges by static dispatch, no reflection.
type TodoUpdateRequest struct {
	Description *string          `json:"description" validate:"omitempty,min=1"`
	DueDate     *time.Time       `json:"due_date"`
	Priority    *domain.Priority `json:"priority" validate:"omitempty,min=0,max=4"`
}

func (r *TodoUpdateRequest) ApplyTo(todo *domain.Todo) {
	if r.Description != nil {
		todo.Description = *r.Description
	}

	if r.DueDate != nil {
		todo.DueDate = r.DueDate
	}

	if r.Priority != nil {
		todo.Priority = *r.Priority
	}
}

type GenerateRequest struct {
	UserQuery string `json:"user_query" validate:"required"`
}

type InvokeRequest struct {
	Question string `json:"question" validate:"required"`
}

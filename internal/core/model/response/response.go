package response

import (
	"time"

	"github.com/google/uuid"

	"taskapi/internal/core/domain"
)

type SuccessResponse struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ResponseError struct {
	Code    string            `json:"code"`
	Errors  []ValidationError `json:"errors"`
	Details any               `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error ResponseError `json:"error"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

func NewUserResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

type TodoResponse struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	DueDate     *time.Time      `json:"due_date"`
	Priority    domain.Priority `json:"priority"`
	IsCompleted bool            `json:"is_completed"`
	CreatedAt   time.Time       `json:"created_at"`
	CompletedAt *time.Time      `json:"completed_at"`
}

func NewTodoResponse(todo domain.Todo) TodoResponse {
	return TodoResponse{
		ID:          todo.ID,
		Description: todo.Description,
		DueDate:     todo.DueDate,
		Priority:    todo.Priority,
		IsCompleted: todo.IsCompleted,
		CreatedAt:   todo.CreatedAt,
		CompletedAt: todo.CompletedAt,
	}
}

func NewTodoListResponse(todos []domain.Todo) []TodoResponse {
	data := make([]TodoResponse, 0, len(todos))

	for _, todo := range todos {
		data = append(data, NewTodoResponse(todo))
	}

	return data
}

type GenerateResponse struct {
	EventID string `json:"event_id"`
}

type InvokeResponse struct {
	Message string `json:"message"`
}

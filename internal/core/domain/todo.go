package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Priority int

const (
	PriorityNormal Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
	PriorityTop
)

func (p Priority) String() string {
	switch p {
	case PriorityNormal:
		return "normal"
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityTop:
		return "top"
	default:
		return "unknown"
	}
}

func (p Priority) Valid() bool {
	return p >= PriorityNormal && p <= PriorityTop
}

type Todo struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string `validate:"required"`
	DueDate     *time.Time
	IsCompleted bool
	CreatedAt   time.Time
	CompletedAt *time.Time
	Priority    Priority `validate:"min=0,max=4"`
}

func (t *Todo) BelongsToUser(userID uuid.UUID) bool {
	return t.UserID == userID
}

// Complete marks the todo done at the given instant. Completion is one-way:
// calling it on an already completed todo changes nothing.
func (t *Todo) Complete(now time.Time) {
	if t.IsCompleted {
		return
	}

	t.IsCompleted = true
	t.CompletedAt = &now
}

func (t *Todo) String() string {
	return fmt.Sprintf("Todo(description=%q, priority=%s, completed=%v)", t.Description, t.Priority, t.IsCompleted)
}

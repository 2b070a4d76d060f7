package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string `validate:"required,email,max=255"`
	FirstName    string `validate:"required,min=1,max=50"`
	LastName     string `validate:"required,min=1,max=50"`
	PasswordHash string `validate:"required"`
	CreatedAt    time.Time
}

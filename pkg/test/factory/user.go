package factory

import (
	"time"

	fab "github.com/Goldziher/fabricator"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"taskapi/internal/core/domain"
)

// DefaultPassword is the plaintext behind every fabricated password hash.
const DefaultPassword = "12345678"

type userSeed struct {
	Email     string
	FirstName string
	LastName  string
}

func NewUser(customData ...map[string]any) domain.User {
	seed := fab.New(userSeed{}).Build()

	hash, _ := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)

	user := domain.User{
		ID:           uuid.New(),
		Email:        seed.Email + "@example.com",
		FirstName:    seed.FirstName,
		LastName:     seed.LastName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	applyOverrides(&user, customData)

	return user
}

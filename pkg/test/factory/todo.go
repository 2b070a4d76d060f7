package factory

import (
	"time"

	fab "github.com/Goldziher/fabricator"
	"github.com/google/uuid"

	"taskapi/internal/core/domain"
)

type todoSeed struct {
	Description string
}

func NewTodo(customData ...map[string]any) domain.Todo {
	seed := fab.New(todoSeed{}).Build()

	todo := domain.Todo{
		ID:          uuid.New(),
		Description: seed.Description,
		Priority:    domain.PriorityMedium,
		CreatedAt:   time.Now().UTC(),
	}

	applyOverrides(&todo, customData)

	return todo
}

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	database "taskapi/internal/adapter/database/sqlite"
	"taskapi/internal/adapter/database/sqlite/repository"
	"taskapi/internal/core/domain"
	"taskapi/internal/core/port"
	"taskapi/pkg/test"
	"taskapi/pkg/test/factory"
)

type TodoRepositorySuite struct {
	suite.Suite
	db    *database.DB
	repo  port.TodoRepository
	owner domain.User
}

func (s *TodoRepositorySuite) SetupTest() {
	s.db = test.InitTestDB()
	s.repo = repository.NewTodoRepository(s.db)

	owner, err := repository.NewUserRepository(s.db).Create(context.Background(), factory.NewUser())
	s.Require().NoError(err)

	s.owner = owner
}

func (s *TodoRepositorySuite) TearDownTest() {
	if s.db != nil {
		s.db.Close()
	}
}

func TestTodoRepositorySuite(t *testing.T) {
	suite.Run(t, new(TodoRepositorySuite))
}

func (s *TodoRepositorySuite) TestCreate_RoundTripsNullableFields() {
	todo := factory.NewTodo(map[string]any{"UserID": s.owner.ID})

	created, err := s.repo.Create(context.Background(), todo)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), todo.ID, created.ID)
	assert.Nil(s.T(), created.DueDate)
	assert.Nil(s.T(), created.CompletedAt)
	assert.False(s.T(), created.IsCompleted)
	assert.Equal(s.T(), domain.PriorityMedium, created.Priority)
}

func (s *TodoRepositorySuite) TestGetByID_ScopedToOwner() {
	todo, err := s.repo.Create(context.Background(), factory.NewTodo(map[string]any{"UserID": s.owner.ID}))
	s.Require().NoError(err)

	_, err = s.repo.GetByID(context.Background(), todo.ID, uuid.New())

	assert.ErrorIs(s.T(), err, domain.ErrRecordNotFound)
}

func (s *TodoRepositorySuite) TestGetAllByUser_NewestFirst() {
	older := factory.NewTodo(map[string]any{
		"UserID":    s.owner.ID,
		"CreatedAt": time.Now().UTC().Add(-time.Hour),
	})
	newer := factory.NewTodo(map[string]any{"UserID": s.owner.ID})

	_, err := s.repo.Create(context.Background(), older)
	s.Require().NoError(err)

	_, err = s.repo.Create(context.Background(), newer)
	s.Require().NoError(err)

	todos, err := s.repo.GetAllByUser(context.Background(), s.owner.ID)

	assert.NoError(s.T(), err)
	s.Require().Len(todos, 2)
	assert.Equal(s.T(), newer.ID, todos[0].ID)
	assert.Equal(s.T(), older.ID, todos[1].ID)
}

func (s *TodoRepositorySuite) TestUpdate_PersistsCompletion() {
	todo, err := s.repo.Create(context.Background(), factory.NewTodo(map[string]any{"UserID": s.owner.ID}))
	s.Require().NoError(err)

	todo.Complete(time.Now().UTC())

	updated, err := s.repo.Update(context.Background(), todo)

	assert.NoError(s.T(), err)
	assert.True(s.T(), updated.IsCompleted)
	assert.NotNil(s.T(), updated.CompletedAt)
}

func (s *TodoRepositorySuite) TestUpdate_UnknownRecord() {
	ghost := factory.NewTodo(map[string]any{"UserID": s.owner.ID})

	_, err := s.repo.Update(context.Background(), ghost)

	assert.ErrorIs(s.T(), err, domain.ErrRecordNotFound)
}

func (s *TodoRepositorySuite) TestDelete() {
	todo, err := s.repo.Create(context.Background(), factory.NewTodo(map[string]any{"UserID": s.owner.ID}))
	s.Require().NoError(err)

	assert.NoError(s.T(), s.repo.Delete(context.Background(), todo.ID, s.owner.ID))
	assert.ErrorIs(s.T(), s.repo.Delete(context.Background(), todo.ID, s.owner.ID), domain.ErrRecordNotFound)
}

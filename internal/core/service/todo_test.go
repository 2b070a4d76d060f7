package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	database "taskapi/internal/adapter/database/sqlite"
	"taskapi/internal/adapter/database/sqlite/repository"
	"taskapi/internal/core/domain"
	"taskapi/internal/core/model/request"
	"taskapi/internal/core/port"
	"taskapi/internal/core/service"
	"taskapi/pkg/test"
	"taskapi/pkg/test/factory"
)

type TodoServiceTestSuite struct {
	suite.Suite
	db       *database.DB
	userRepo port.UserRepository
	service  *service.TodoService

	alice domain.TokenData
	bob   domain.TokenData
}

func (s *TodoServiceTestSuite) SetupTest() {
	s.db = test.InitTestDB()
	s.userRepo = repository.NewUserRepository(s.db)
	s.service = service.NewTodoService(repository.NewTodoRepository(s.db))

	alice, err := s.userRepo.Create(context.Background(), factory.NewUser())
	s.Require().NoError(err)

	bob, err := s.userRepo.Create(context.Background(), factory.NewUser())
	s.Require().NoError(err)

	s.alice = domain.TokenData{UserID: alice.ID.String()}
	s.bob = domain.TokenData{UserID: bob.ID.String()}
}

func (s *TodoServiceTestSuite) TearDownTest() {
	if s.db != nil {
		s.db.Close()
	}
}

func TestTodoServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TodoServiceTestSuite))
}

func (s *TodoServiceTestSuite) createTodo(current domain.TokenData, description string) domain.Todo {
	todo, err := s.service.Create(context.Background(), current, &request.TodoCreateRequest{
		Description: description,
	})
	s.Require().NoError(err)

	return todo
}

func (s *TodoServiceTestSuite) TestCreate_Defaults() {
	todo := s.createTodo(s.alice, "Buy milk")

	assert.Equal(s.T(), "Buy milk", todo.Description)
	assert.Equal(s.T(), domain.PriorityMedium, todo.Priority)
	assert.False(s.T(), todo.IsCompleted)
	assert.Nil(s.T(), todo.CompletedAt)
	assert.Nil(s.T(), todo.DueDate)
}

func (s *TodoServiceTestSuite) TestCreate_WithPriorityAndDueDate() {
	due := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	priority := domain.PriorityTop

	todo, err := s.service.Create(context.Background(), s.alice, &request.TodoCreateRequest{
		Description: "Ship release",
		DueDate:     &due,
		Priority:    &priority,
	})

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), domain.PriorityTop, todo.Priority)
	assert.NotNil(s.T(), todo.DueDate)
	assert.True(s.T(), todo.DueDate.Equal(due))
}

func (s *TodoServiceTestSuite) TestGetAll_ScopedToOwner() {
	s.createTodo(s.alice, "Alice 1")
	s.createTodo(s.alice, "Alice 2")
	s.createTodo(s.bob, "Bob 1")

	todos, err := s.service.GetAll(context.Background(), s.alice)

	assert.NoError(s.T(), err)
	assert.Len(s.T(), todos, 2)
}

func (s *TodoServiceTestSuite) TestOwnerIsolation() {
	todo := s.createTodo(s.alice, "Private")

	_, err := s.service.GetByID(context.Background(), s.bob, todo.ID)
	s.assertNotFound(err)

	description := "Hijacked"
	_, err = s.service.Update(context.Background(), s.bob, todo.ID, &request.TodoUpdateRequest{
		Description: &description,
	})
	s.assertNotFound(err)

	err = s.service.Delete(context.Background(), s.bob, todo.ID)
	s.assertNotFound(err)

	kept, err := s.service.GetByID(context.Background(), s.alice, todo.ID)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "Private", kept.Description)
}

func (s *TodoServiceTestSuite) TestComplete_Idempotent() {
	todo := s.createTodo(s.alice, "Once")

	first, err := s.service.Complete(context.Background(), s.alice, todo.ID)

	assert.NoError(s.T(), err)
	assert.True(s.T(), first.IsCompleted)
	s.Require().NotNil(first.CompletedAt)

	second, err := s.service.Complete(context.Background(), s.alice, todo.ID)

	assert.NoError(s.T(), err)
	assert.True(s.T(), second.IsCompleted)
	s.Require().NotNil(second.CompletedAt)
	assert.True(s.T(), second.CompletedAt.Equal(*first.CompletedAt))
}

func (s *TodoServiceTestSuite) TestUpdate_PartialLeavesOtherFields() {
	due := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)

	todo, err := s.service.Create(context.Background(), s.alice, &request.TodoCreateRequest{
		Description: "Keep me",
		DueDate:     &due,
	})
	s.Require().NoError(err)

	priority := domain.PriorityHigh

	updated, err := s.service.Update(context.Background(), s.alice, todo.ID, &request.TodoUpdateRequest{
		Priority: &priority,
	})

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), domain.PriorityHigh, updated.Priority)
	assert.Equal(s.T(), "Keep me", updated.Description)
	s.Require().NotNil(updated.DueDate)
	assert.True(s.T(), updated.DueDate.Equal(due))
}

func (s *TodoServiceTestSuite) TestDelete_Terminal() {
	todo := s.createTodo(s.alice, "Gone")

	assert.NoError(s.T(), s.service.Delete(context.Background(), s.alice, todo.ID))

	_, err := s.service.GetByID(context.Background(), s.alice, todo.ID)
	s.assertNotFound(err)
}

func (s *TodoServiceTestSuite) TestInvalidClaim_NotFound() {
	_, err := s.service.GetAll(context.Background(), domain.TokenData{})
	s.assertNotFound(err)

	_, err = s.service.GetByID(context.Background(), domain.TokenData{UserID: "None"}, uuid.New())
	s.assertNotFound(err)
}

func (s *TodoServiceTestSuite) assertNotFound(err error) {
	domainErr, ok := domain.AsError(err)

	s.Require().True(ok)
	assert.Equal(s.T(), http.StatusNotFound, domainErr.Status)
}

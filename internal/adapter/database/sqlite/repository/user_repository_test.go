package repository_test

import (
	"context"
	"testing"

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

type UserRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo port.UserRepository
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = test.InitTestDB()
	s.repo = repository.NewUserRepository(s.db)
}

func (s *UserRepositorySuite) TearDownTest() {
	if s.db != nil {
		s.db.Close()
	}
}

func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

func (s *UserRepositorySuite) TestCreateAndGetByEmail() {
	user := factory.NewUser(map[string]any{"Email": "repo@example.com"})

	created, err := s.repo.Create(context.Background(), user)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), user.ID, created.ID)

	found, err := s.repo.GetByEmail(context.Background(), "repo@example.com")

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), user.ID, found.ID)
	assert.Equal(s.T(), user.PasswordHash, found.PasswordHash)
}

func (s *UserRepositorySuite) TestCreate_DuplicateEmail() {
	user := factory.NewUser(map[string]any{"Email": "dup@example.com"})

	_, err := s.repo.Create(context.Background(), user)
	s.Require().NoError(err)

	_, err = s.repo.Create(context.Background(), factory.NewUser(map[string]any{"Email": "dup@example.com"}))

	assert.Error(s.T(), err)
}

func (s *UserRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(s.T(), err, domain.ErrRecordNotFound)
}

func (s *UserRepositorySuite) TestUpdatePassword() {
	user, err := s.repo.Create(context.Background(), factory.NewUser())
	s.Require().NoError(err)

	assert.NoError(s.T(), s.repo.UpdatePassword(context.Background(), user.ID, "new-hash"))

	stored, err := s.repo.GetByID(context.Background(), user.ID)

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "new-hash", stored.PasswordHash)
}

func (s *UserRepositorySuite) TestUpdatePassword_UnknownUser() {
	err := s.repo.UpdatePassword(context.Background(), uuid.New(), "new-hash")

	assert.ErrorIs(s.T(), err, domain.ErrRecordNotFound)
}

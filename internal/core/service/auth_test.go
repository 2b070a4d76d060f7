package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	database "taskapi/internal/adapter/database/sqlite"
	"taskapi/internal/adapter/database/sqlite/repository"
	"taskapi/internal/core/domain"
	"taskapi/internal/core/model/request"
	"taskapi/internal/core/port"
	"taskapi/internal/core/service"
	"taskapi/pkg/password"
	"taskapi/pkg/test"
	"taskapi/pkg/token"
)

type AuthServiceTestSuite struct {
	suite.Suite
	db       *database.DB
	userRepo port.UserRepository
	service  *service.AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.db = test.InitTestDB()
	s.userRepo = repository.NewUserRepository(s.db)

	hasher := password.NewHasher(bcrypt.MinCost)
	codec := token.NewCodec("test-secret", time.Hour)

	s.service = service.NewAuthService(s.userRepo, hasher, codec)
}

func (s *AuthServiceTestSuite) TearDownTest() {
	if s.db != nil {
		s.db.Close()
	}
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func registerRequest(email string) *request.RegisterUserRequest {
	return &request.RegisterUserRequest{
		Email:     email,
		FirstName: "Jane",
		LastName:  "Doe",
		Password:  "supersecret",
	}
}

func (s *AuthServiceTestSuite) TestRegister_Success() {
	err := s.service.Register(context.Background(), registerRequest("jane@example.com"))

	assert.NoError(s.T(), err)

	user, err := s.userRepo.GetByEmail(context.Background(), "jane@example.com")

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "Jane", user.FirstName)
	assert.NotEqual(s.T(), "supersecret", user.PasswordHash)

	hasher := password.NewHasher(bcrypt.MinCost)
	assert.True(s.T(), hasher.Verify("supersecret", user.PasswordHash))
}

func (s *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	assert.NoError(s.T(), s.service.Register(context.Background(), registerRequest("dup@example.com")))

	second := registerRequest("dup@example.com")
	second.FirstName = "Imposter"

	err := s.service.Register(context.Background(), second)

	domainErr, ok := domain.AsError(err)
	assert.True(s.T(), ok)
	assert.Equal(s.T(), http.StatusUnauthorized, domainErr.Status)
	assert.Equal(s.T(), "Error registering user", domainErr.Message)

	user, err := s.userRepo.GetByEmail(context.Background(), "dup@example.com")

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "Jane", user.FirstName)
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	assert.NoError(s.T(), s.service.Register(context.Background(), registerRequest("login@example.com")))

	tokenResp, err := s.service.Login(context.Background(), "login@example.com", "supersecret")

	assert.NoError(s.T(), err)
	assert.NotEmpty(s.T(), tokenResp.AccessToken)
	assert.Equal(s.T(), "bearer", tokenResp.TokenType)

	current, err := s.service.VerifyToken(tokenResp.AccessToken)

	assert.NoError(s.T(), err)

	user, _ := s.userRepo.GetByEmail(context.Background(), "login@example.com")
	assert.Equal(s.T(), user.ID.String(), current.UserID)
}

func (s *AuthServiceTestSuite) TestLogin_WrongPassword() {
	assert.NoError(s.T(), s.service.Register(context.Background(), registerRequest("wrong@example.com")))

	tokenResp, err := s.service.Login(context.Background(), "wrong@example.com", "not-the-password")

	assert.Nil(s.T(), tokenResp)

	domainErr, ok := domain.AsError(err)
	assert.True(s.T(), ok)
	assert.Equal(s.T(), http.StatusUnauthorized, domainErr.Status)
	assert.Equal(s.T(), "Could not validate credentials", domainErr.Message)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownUser() {
	tokenResp, err := s.service.Login(context.Background(), "ghost@example.com", "supersecret")

	assert.Nil(s.T(), tokenResp)

	domainErr, ok := domain.AsError(err)
	assert.True(s.T(), ok)
	assert.Equal(s.T(), http.StatusUnauthorized, domainErr.Status)
	assert.Equal(s.T(), "Could not validate credentials", domainErr.Message)
}

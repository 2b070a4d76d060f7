package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"taskapi/internal/core/domain"
	"taskapi/internal/core/model/request"
	"taskapi/internal/core/model/response"
	"taskapi/internal/core/port"
	"taskapi/pkg/password"
	"taskapi/pkg/token"
)

// AuthService orchestrates registration, credential checks and token
// issuance. It is stateless between calls; the hasher and codec are injected
// with process-wide lifetime.
type AuthService struct {
	repo   port.UserRepository
	hasher *password.Hasher
	codec  *token.Codec
}

func NewAuthService(repo port.UserRepository, hasher *password.Hasher, codec *token.Codec) *AuthService {
	return &AuthService{
		repo:   repo,
		hasher: hasher,
		codec:  codec,
	}
}

func (s *AuthService) Register(ctx context.Context, req *request.RegisterUserRequest) error {
	hash, err := s.hasher.Hash(req.Password)

	if err != nil {
		slog.Error("Failed to hash password", "email", req.Email, "error", err)
		return domain.NewRegistrationError(err)
	}

	user := domain.User{
		ID:           uuid.New(),
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := s.repo.Create(ctx, user); err != nil {
		slog.Error("Failed to register user", "email", req.Email, "error", err)
		return domain.NewRegistrationError(err)
	}

	return nil
}

// Login gives no hint whether the email or the password was wrong.
func (s *AuthService) Login(ctx context.Context, username, plain string) (*response.Token, error) {
	user, err := s.repo.GetByEmail(ctx, username)

	if err != nil {
		slog.Error("Auth#Login", "get_by_email", err, "email", username)
		return nil, domain.NewAuthenticationError()
	}

	if !s.hasher.Verify(plain, user.PasswordHash) {
		slog.Error("Auth#Login", "compare_password", "mismatch", "email", username)
		return nil, domain.NewAuthenticationError()
	}

	accessToken, err := s.codec.Issue(user.Email, user.ID)

	if err != nil {
		slog.Error("Auth#Login", "issue_token", err, "email", username)
		return nil, domain.NewAuthenticationError()
	}

	return &response.Token{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

func (s *AuthService) VerifyToken(tokenString string) (domain.TokenData, error) {
	return s.codec.Verify(tokenString)
}

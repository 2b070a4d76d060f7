package service

import (
	"context"
	"errors"
	"log/slog"

	"taskapi/internal/core/domain"
	"taskapi/internal/core/model/request"
	"taskapi/internal/core/port"
	"taskapi/pkg/password"
)

type UserService struct {
	repo   port.UserRepository
	hasher *password.Hasher
}

func NewUserService(repo port.UserRepository, hasher *password.Hasher) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
	}
}

func (s *UserService) GetCurrentUser(ctx context.Context, current domain.TokenData) (domain.User, error) {
	userID, err := ownerID(current)

	if err != nil {
		return domain.User{}, err
	}

	user, err := s.repo.GetByID(ctx, userID)

	if errors.Is(err, domain.ErrRecordNotFound) {
		slog.Warn("User not found", "user_id", userID)
		return domain.User{}, domain.NewUserNotFoundError(userID)
	}

	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// ChangePassword runs its checks in a fixed order: current-password
// verification first, then new-password confirmation, then persistence.
func (s *UserService) ChangePassword(ctx context.Context, current domain.TokenData, req *request.PasswordChangeRequest) error {
	user, err := s.GetCurrentUser(ctx, current)

	if err != nil {
		return err
	}

	if !s.hasher.Verify(req.CurrentPassword, user.PasswordHash) {
		slog.Warn("Password change failed: incorrect current password", "user_id", user.ID, "email", user.Email)
		return domain.NewInvalidPasswordError()
	}

	if req.NewPassword != req.NewPasswordConfirm {
		slog.Warn("Password mismatch during change attempt", "user_id", user.ID)
		return domain.NewPasswordMismatchError()
	}

	hash, err := s.hasher.Hash(req.NewPassword)

	if err != nil {
		slog.Error("Failed to hash new password", "user_id", user.ID, "error", err)
		return err
	}

	if err := s.repo.UpdatePassword(ctx, user.ID, hash); err != nil {
		slog.Error("Failed to persist new password", "user_id", user.ID, "error", err)
		return err
	}

	slog.Info("Password changed", "user_id", user.ID)

	return nil
}

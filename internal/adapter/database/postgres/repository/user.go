package repository

import (
	"context"
	"errors"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	database "taskapi/internal/adapter/database/postgres"
	"taskapi/internal/core/domain"
	"taskapi/internal/core/port"
)

var userColumns = []string{"id", "email", "first_name", "last_name", "password_hash", "created_at"}

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) port.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	query := r.db.QueryBuilder.Insert("users").
		Columns(userColumns...).
		Values(user.ID.String(), user.Email, user.FirstName, user.LastName, user.PasswordHash, user.CreatedAt)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	if _, err := r.db.Exec(ctx, stmt, args...); err != nil {
		slog.Error("Error creating user", "error", err)
		return domain.User{}, err
	}

	return r.GetByID(ctx, user.ID)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return r.getBy(ctx, sq.Eq{"id": id.String()})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getBy(ctx, sq.Eq{"email": email})
}

func (r *UserRepository) getBy(ctx context.Context, pred sq.Eq) (domain.User, error) {
	query := r.db.QueryBuilder.Select(userColumns...).
		From("users").
		Where(pred).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	var user domain.User
	var id string

	err = r.db.QueryRow(ctx, stmt, args...).Scan(
		&id,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, domain.ErrRecordNotFound
	}

	if err != nil {
		slog.Error("Error getting user", "error", err)
		return domain.User{}, err
	}

	user.ID, err = uuid.Parse(id)

	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := r.db.QueryBuilder.Update("users").
		Set("password_hash", passwordHash).
		Where(sq.Eq{"id": id.String()})

	stmt, args, err := query.ToSql()

	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error updating password", "error", err)
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

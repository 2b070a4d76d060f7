package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	database "taskapi/internal/adapter/database/postgres"
	"taskapi/internal/core/domain"
	"taskapi/internal/core/port"
)

var todoColumns = []string{"id", "user_id", "description", "due_date", "is_completed", "created_at", "completed_at", "priority"}

type TodoRepository struct {
	db *database.DB
}

func NewTodoRepository(db *database.DB) port.TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	query := r.db.QueryBuilder.Insert("todos").
		Columns(todoColumns...).
		Values(
			todo.ID.String(),
			todo.UserID.String(),
			todo.Description,
			nullableTime(todo.DueDate),
			todo.IsCompleted,
			todo.CreatedAt,
			nullableTime(todo.CompletedAt),
			int(todo.Priority),
		)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	if _, err := r.db.Exec(ctx, stmt, args...); err != nil {
		slog.Error("Error creating todo", "error", err)
		return domain.Todo{}, err
	}

	return r.GetByID(ctx, todo.ID, todo.UserID)
}

// GetByID fetches by record id AND owner id jointly, never by id alone.
func (r *TodoRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (domain.Todo, error) {
	query := r.db.QueryBuilder.Select(todoColumns...).
		From("todos").
		Where(sq.Eq{"id": id.String()}).
		Where(sq.Eq{"user_id": userID.String()}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	row := r.db.QueryRow(ctx, stmt, args...)
	todo, err := scanTodo(row.Scan)

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Todo{}, domain.ErrRecordNotFound
	}

	if err != nil {
		slog.Error("Error getting todo", "error", err)
		return domain.Todo{}, err
	}

	return todo, nil
}

func (r *TodoRepository) GetAllByUser(ctx context.Context, userID uuid.UUID) ([]domain.Todo, error) {
	query := r.db.QueryBuilder.Select(todoColumns...).
		From("todos").
		Where(sq.Eq{"user_id": userID.String()}).
		OrderBy("created_at DESC")

	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error fetching todos", "error", err)
		return nil, err
	}

	defer rows.Close()

	todos := []domain.Todo{}

	for rows.Next() {
		todo, err := scanTodo(rows.Scan)

		if err != nil {
			return nil, err
		}

		todos = append(todos, todo)
	}

	return todos, rows.Err()
}

func (r *TodoRepository) Update(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	query := r.db.QueryBuilder.Update("todos").
		SetMap(map[string]interface{}{
			"description":  todo.Description,
			"due_date":     nullableTime(todo.DueDate),
			"is_completed": todo.IsCompleted,
			"completed_at": nullableTime(todo.CompletedAt),
			"priority":     int(todo.Priority),
		}).
		Where(sq.Eq{"id": todo.ID.String()}).
		Where(sq.Eq{"user_id": todo.UserID.String()})

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	tag, err := r.db.Exec(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error updating todo", "error", err)
		return domain.Todo{}, err
	}

	if tag.RowsAffected() == 0 {
		return domain.Todo{}, domain.ErrRecordNotFound
	}

	return r.GetByID(ctx, todo.ID, todo.UserID)
}

func (r *TodoRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := r.db.QueryBuilder.Delete("todos").
		Where(sq.Eq{"id": id.String()}).
		Where(sq.Eq{"user_id": userID.String()})

	stmt, args, err := query.ToSql()

	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error deleting todo", "error", err)
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func scanTodo(scan func(dest ...any) error) (domain.Todo, error) {
	var todo domain.Todo
	var id, userID string
	var dueDate, completedAt sql.NullTime
	var priority int

	err := scan(
		&id,
		&userID,
		&todo.Description,
		&dueDate,
		&todo.IsCompleted,
		&todo.CreatedAt,
		&completedAt,
		&priority,
	)

	if err != nil {
		return domain.Todo{}, err
	}

	todo.ID, err = uuid.Parse(id)

	if err != nil {
		return domain.Todo{}, err
	}

	todo.UserID, err = uuid.Parse(userID)

	if err != nil {
		return domain.Todo{}, err
	}

	if dueDate.Valid {
		t := dueDate.Time
		todo.DueDate = &t
	}

	if completedAt.Valid {
		t := completedAt.Time
		todo.CompletedAt = &t
	}

	todo.Priority = domain.Priority(priority)

	return todo, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}

	return *t
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/database"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/domain"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/port"
	tel "github.com/Ezhilarasu1330/React-Todo-App/internal/core/telemetry"
)

type TodoRepository struct {
	db        *database.DB
	scanner   *database.Scanner
	telemetry port.Telemetry
}

func NewTodoRepository(db *database.DB, telemetry port.Telemetry) port.TodoRepository {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &TodoRepository{
		db:        db,
		scanner:   database.NewScanner(),
		telemetry: telemetry,
	}
}

func (tr *TodoRepository) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "Create", "todo",
		attribute.String("db.table", "todos"),
		attribute.String("todo.id", todo.ID.String()),
		attribute.String("user.id", todo.CreatedBy.String()),
	)
	defer span.End()

	startTime := time.Now()

	stmt, args, err := tr.db.QueryBuilder.Insert("todos").
		Columns("id", "title", "body", "created_by", "created_at", "updated_at").
		Values(todo.ID.String(), todo.Title, todo.Body, todo.CreatedBy.String(), todo.CreatedAt, todo.UpdatedAt).
		ToSql()

	if err != nil {
		slog.Error("Query build failed", "error", err)
		return domain.Todo{}, err
	}

	_, err = tr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		tr.telemetry.RecordRepositoryOperation(ctx, "Create", "todo", time.Since(startTime), err)
		slog.Error("Insert failed", "error", err, "id", todo.ID.String())
		return domain.Todo{}, err
	}

	saved, err := tr.GetByID(ctx, todo.ID.String())

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		tr.telemetry.RecordRepositoryOperation(ctx, "Create", "todo", time.Since(startTime), err)
		return domain.Todo{}, err
	}

	tr.telemetry.RecordBusinessEvent(ctx, "created", "todo", saved.ID.String(), saved.CreatedBy.String(), map[string]interface{}{
		"title":      saved.Title,
		"created_at": saved.CreatedAt,
	})
	tr.telemetry.RecordRepositoryOperation(ctx, "Create", "todo", time.Since(startTime), nil)

	return saved, nil
}

func (tr *TodoRepository) GetAllByOwner(ctx context.Context, ownerID string) ([]domain.Todo, error) {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "GetAllByOwner", "todo",
		attribute.String("db.table", "todos"),
		attribute.String("user.id", ownerID),
	)
	defer span.End()

	startTime := time.Now()

	stmt, args, err := tr.db.QueryBuilder.Select("*").
		From("todos").
		Where(sq.Eq{"created_by": ownerID}).
		OrderBy("created_at DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := tr.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		tr.telemetry.RecordRepositoryOperation(ctx, "GetAllByOwner", "todo", time.Since(startTime), err)
		return nil, err
	}

	defer rows.Close()

	todos := []domain.Todo{}

	if err := tr.scanner.ScanRowsToSlice(rows, &todos); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		tr.telemetry.RecordRepositoryOperation(ctx, "GetAllByOwner", "todo", time.Since(startTime), err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("db.rows_returned", len(todos)))
	tr.telemetry.RecordRepositoryOperation(ctx, "GetAllByOwner", "todo", time.Since(startTime), nil)

	return todos, nil
}

func (tr *TodoRepository) GetByID(ctx context.Context, id string) (domain.Todo, error) {
	stmt, args, err := tr.db.QueryBuilder.Select("*").
		From("todos").
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	rows, err := tr.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		return domain.Todo{}, err
	}

	defer rows.Close()

	var todo domain.Todo

	err = tr.scanner.ScanRowToStruct(rows, &todo)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.Todo{}, domain.ErrNotFound
	}

	if err != nil {
		slog.Error("Error getting todo by id", "error", err)
		return domain.Todo{}, err
	}

	return todo, nil
}

func (tr *TodoRepository) Update(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "Update", "todo",
		attribute.String("db.table", "todos"),
		attribute.String("todo.id", todo.ID.String()),
	)
	defer span.End()

	startTime := time.Now()

	stmt, args, err := tr.db.QueryBuilder.Update("todos").
		SetMap(todo.ToMap()).
		Where(sq.Eq{"id": todo.ID.String()}).
		ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	result, err := tr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		tr.telemetry.RecordRepositoryOperation(ctx, "Update", "todo", time.Since(startTime), err)
		return domain.Todo{}, err
	}

	rowsAffected, err := result.RowsAffected()

	if err != nil {
		return domain.Todo{}, err
	}

	if rowsAffected == 0 {
		tr.telemetry.RecordRepositoryOperation(ctx, "Update", "todo", time.Since(startTime), domain.ErrNotFound)
		return domain.Todo{}, domain.ErrNotFound
	}

	updated, err := tr.GetByID(ctx, todo.ID.String())

	if err != nil {
		return domain.Todo{}, err
	}

	tr.telemetry.RecordBusinessEvent(ctx, "updated", "todo", updated.ID.String(), updated.CreatedBy.String(), map[string]interface{}{
		"updated_at": updated.UpdatedAt,
	})
	tr.telemetry.RecordRepositoryOperation(ctx, "Update", "todo", time.Since(startTime), nil)

	return updated, nil
}

func (tr *TodoRepository) DeleteByID(ctx context.Context, id string) error {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "DeleteByID", "todo",
		attribute.String("db.table", "todos"),
		attribute.String("todo.id", id),
	)
	defer span.End()

	startTime := time.Now()

	stmt, args, err := tr.db.QueryBuilder.Delete("todos").
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return err
	}

	result, err := tr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		tr.telemetry.RecordRepositoryOperation(ctx, "DeleteByID", "todo", time.Since(startTime), err)
		return err
	}

	rowsAffected, _ := result.RowsAffected()

	if rowsAffected == 0 {
		tr.telemetry.RecordRepositoryOperation(ctx, "DeleteByID", "todo", time.Since(startTime), domain.ErrNotFound)
		return domain.ErrNotFound
	}

	tr.telemetry.RecordBusinessEvent(ctx, "deleted", "todo", id, "", map[string]interface{}{
		"deleted_at": time.Now(),
	})
	tr.telemetry.RecordRepositoryOperation(ctx, "DeleteByID", "todo", time.Since(startTime), nil)

	return nil
}

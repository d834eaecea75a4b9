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

type UserRepository struct {
	db        *database.DB
	scanner   *database.Scanner
	telemetry port.Telemetry
}

func NewUserRepository(db *database.DB, telemetry port.Telemetry) port.UserRepository {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &UserRepository{
		db:        db,
		scanner:   database.NewScanner(),
		telemetry: telemetry,
	}
}

func (ur *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	ctx, span := ur.telemetry.StartRepositorySpan(ctx, "Create", "user",
		attribute.String("db.table", "users"),
		attribute.String("user.id", user.ID.String()),
	)
	defer span.End()

	startTime := time.Now()

	// Use transaction to ensure same connection
	tx, err := ur.db.BeginTx(ctx, nil)

	if err != nil {
		slog.Error("Error starting transaction", "error", err)
		return domain.User{}, err
	}

	defer tx.Rollback()

	stmt, args, err := ur.db.QueryBuilder.Insert("users").
		Columns("id", "email", "encrypted_password", "firstname", "lastname", "token", "created_at", "updated_at").
		Values(user.ID.String(), user.Email, user.EncryptedPassword, user.Firstname, user.Lastname, user.Token, user.CreatedAt, user.UpdatedAt).
		ToSql()

	if err != nil {
		slog.Error("Error creating user", "error", err)
		return domain.User{}, err
	}

	_, err = tx.ExecContext(ctx, stmt, args...)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		ur.telemetry.RecordRepositoryOperation(ctx, "Create", "user", time.Since(startTime), err)
		slog.Error("Error creating user", "error", err)
		return domain.User{}, err
	}

	saved, err := ur.getByIDTx(ctx, tx, user.ID.String())

	if err != nil {
		return domain.User{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.User{}, err
	}

	ur.telemetry.RecordBusinessEvent(ctx, "created", "user", saved.ID.String(), saved.ID.String(), map[string]interface{}{
		"email":      saved.Email,
		"created_at": saved.CreatedAt,
	})
	ur.telemetry.RecordRepositoryOperation(ctx, "Create", "user", time.Since(startTime), nil)

	return saved, nil
}

func (ur *UserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	return ur.getOne(ctx, sq.Eq{"id": id})
}

func (ur *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return ur.getOne(ctx, sq.Eq{"email": email})
}

func (ur *UserRepository) GetByToken(ctx context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, domain.ErrNotFound
	}

	return ur.getOne(ctx, sq.Eq{"token": token})
}

func (ur *UserRepository) Update(ctx context.Context, user domain.User) (domain.User, error) {
	ctx, span := ur.telemetry.StartRepositorySpan(ctx, "Update", "user",
		attribute.String("db.table", "users"),
		attribute.String("user.id", user.ID.String()),
	)
	defer span.End()

	startTime := time.Now()

	stmt, args, err := ur.db.QueryBuilder.Update("users").
		SetMap(user.ToMap()).
		Where(sq.Eq{"id": user.ID.String()}).
		ToSql()

	if err != nil {
		return domain.User{}, err
	}

	result, err := ur.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		ur.telemetry.RecordRepositoryOperation(ctx, "Update", "user", time.Since(startTime), err)
		slog.Error("Error updating user", "error", err)
		return domain.User{}, err
	}

	rowsAffected, err := result.RowsAffected()

	if err != nil {
		return domain.User{}, err
	}

	if rowsAffected == 0 {
		ur.telemetry.RecordRepositoryOperation(ctx, "Update", "user", time.Since(startTime), domain.ErrNotFound)
		return domain.User{}, domain.ErrNotFound
	}

	ur.telemetry.RecordRepositoryOperation(ctx, "Update", "user", time.Since(startTime), nil)

	return ur.GetByID(ctx, user.ID.String())
}

func (ur *UserRepository) getOne(ctx context.Context, pred sq.Eq) (domain.User, error) {
	stmt, args, err := ur.db.QueryBuilder.Select("*").
		From("users").
		Where(pred).
		Limit(1).
		ToSql()

	if err != nil {
		return domain.User{}, err
	}

	rows, err := ur.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		return domain.User{}, err
	}

	defer rows.Close()

	var data domain.User

	err = ur.scanner.ScanRowToStruct(rows, &data)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrNotFound
	}

	if err != nil {
		slog.Error("Error getting user", "error", err)
		return domain.User{}, err
	}

	return data, nil
}

func (ur *UserRepository) getByIDTx(ctx context.Context, tx *sql.Tx, id string) (domain.User, error) {
	stmt, args, err := ur.db.QueryBuilder.Select("*").
		From("users").
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return domain.User{}, err
	}

	rows, err := tx.QueryContext(ctx, stmt, args...)

	if err != nil {
		return domain.User{}, err
	}

	defer rows.Close()

	var data domain.User

	err = ur.scanner.ScanRowToStruct(rows, &data)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrNotFound
	}

	if err != nil {
		slog.Error("Error getting user by id", "error", err)
		return domain.User{}, err
	}

	return data, nil
}

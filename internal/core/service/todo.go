package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/domain"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/model/request"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/port"
)

type TodoService struct {
	repo port.TodoRepository
}

func NewTodoService(repo port.TodoRepository) *TodoService {
	return &TodoService{repo}
}

func (ts *TodoService) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	now := time.Now()

	newTodo := domain.Todo{
		ID:        uuid.New(),
		Title:     todo.Title,
		Body:      todo.Body,
		CreatedBy: todo.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, err := ts.repo.Create(ctx, newTodo)

	if err != nil {
		slog.Error("Todo#Create repository create failed", "error", err, "title", newTodo.Title)
		return domain.Todo{}, err
	}

	return saved, nil
}

func (ts *TodoService) ListByOwner(ctx context.Context, ownerID string) ([]domain.Todo, error) {
	return ts.repo.GetAllByOwner(ctx, ownerID)
}

func (ts *TodoService) GetByID(ctx context.Context, id string) (domain.Todo, error) {
	return ts.repo.GetByID(ctx, id)
}

func (ts *TodoService) UpdateByID(ctx context.Context, id string, patch *request.TodoUpdateRequest) (domain.Todo, error) {
	todo, err := ts.repo.GetByID(ctx, id)

	if err != nil {
		return domain.Todo{}, err
	}

	if patch.Title != nil {
		todo.Title = *patch.Title
	}

	if patch.Body != nil {
		todo.Body = *patch.Body
	}

	todo.UpdatedAt = time.Now()

	return ts.repo.Update(ctx, todo)
}

func (ts *TodoService) DeleteByID(ctx context.Context, id string) error {
	return ts.repo.DeleteByID(ctx, id)
}

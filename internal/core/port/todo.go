package port

import (
	"context"

	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/domain"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/model/request"
)

type TodoRepository interface {
	Create(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	GetAllByOwner(ctx context.Context, ownerID string) ([]domain.Todo, error)
	GetByID(ctx context.Context, id string) (domain.Todo, error)
	Update(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	DeleteByID(ctx context.Context, id string) error
}

type TodoService interface {
	Create(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Todo, error)
	GetByID(ctx context.Context, id string) (domain.Todo, error)
	UpdateByID(ctx context.Context, id string, patch *request.TodoUpdateRequest) (domain.Todo, error)
	DeleteByID(ctx context.Context, id string) error
}

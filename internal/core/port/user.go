package port

import (
	"context"

	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/domain"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/model/request"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByToken(ctx context.Context, token string) (domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
}

type UserService interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
	UpdateByID(ctx context.Context, id string, patch *request.UserUpdateRequest) (domain.User, error)
}

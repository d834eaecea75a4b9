package port

import (
	"context"

	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/domain"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/model/request"
)

type AuthService interface {
	Registration(ctx context.Context, req *request.SignUpRequest) (*domain.User, error)
	Login(ctx context.Context, req *request.LoginRequest) (*domain.User, string, error)
	Logout(ctx context.Context, userID string) error
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
}

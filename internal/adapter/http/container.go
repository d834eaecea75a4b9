package http

import (
	"github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/database"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/database/repository"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/http/handler"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/port"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/service"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/auth"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/cache"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/logging"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/metrics"
)

// Container wires repositories, services and handlers together.
type Container struct {
	UserRepo port.UserRepository
	TodoRepo port.TodoRepository

	AuthUseCase port.AuthService
	UserUseCase port.UserService
	TodoUseCase port.TodoService

	TokenCache cache.TokenCache

	AuthHandler *handler.AuthHandler
	UserHandler *handler.UserHandler
	TodoHandler *handler.TodoHandler
}

type ContainerOptions struct {
	DB         *database.DB
	Tokens     *auth.TokenManager
	TokenCache cache.TokenCache
	Telemetry  port.Telemetry
	Logger     *logging.Logger
	Metrics    *metrics.AppMetrics
}

func NewContainer(opts ContainerOptions) *Container {
	userRepo := repository.NewUserRepository(opts.DB, opts.Telemetry)
	todoRepo := repository.NewTodoRepository(opts.DB, opts.Telemetry)

	authSvc := service.NewAuthService(userRepo, opts.Tokens, opts.TokenCache)
	userSvc := service.NewUserService(userRepo)
	todoSvc := service.NewTodoService(todoRepo)

	authHandler := handler.NewAuthHandler(authSvc, opts.Logger, opts.Metrics)
	userHandler := handler.NewUserHandler(userSvc, opts.Logger, opts.Metrics)
	todoHandler := handler.NewTodoHandler(todoSvc, opts.Logger, opts.Metrics)

	return &Container{
		UserRepo: userRepo,
		TodoRepo: todoRepo,

		AuthUseCase: authSvc,
		UserUseCase: userSvc,
		TodoUseCase: todoSvc,

		TokenCache: opts.TokenCache,

		AuthHandler: authHandler,
		UserHandler: userHandler,
		TodoHandler: todoHandler,
	}
}

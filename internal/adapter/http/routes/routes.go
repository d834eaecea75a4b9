package routes

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/http/handler"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/http/middleware"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/port"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/cache"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/config"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/logging"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/metrics"
)

type HandlersConfig struct {
	AuthHandler *handler.AuthHandler
	UserHandler *handler.UserHandler
	TodoHandler *handler.TodoHandler

	AuthUseCase port.AuthService
	TokenCache  cache.TokenCache
}

// SetupRouter builds the full middleware chain and mounts the /api routes.
func SetupRouter(handlers HandlersConfig, cfg *config.Config, logger *logging.Logger, appMetrics *metrics.AppMetrics) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	} else if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())

	httpsEnforcer := middleware.NewHTTPSEnforcer(cfg.EnforceHTTPS, logger)
	router.Use(httpsEnforcer.Middleware())

	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(cfg.CORSOrigin))

	if cfg.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(logger, appMetrics)
		router.Use(rateLimiter.Middleware())
	}

	if appMetrics != nil {
		router.Use(middleware.Metrics(appMetrics))
	}

	mountRoutes(router, handlers, appMetrics)

	return router
}

// SetupRouterForTests mounts the same routes without the telemetry and
// hardening middleware, for httptest-driven suites.
func SetupRouterForTests(handlers HandlersConfig) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())

	mountRoutes(router, handlers, nil)

	return router
}

func mountRoutes(router *gin.Engine, handlers HandlersConfig, appMetrics *metrics.AppMetrics) {
	api := router.Group("/api")

	public := api.Group("/")
	{
		public.POST("/signup", handlers.AuthHandler.SignUp)
		public.POST("/login", handlers.AuthHandler.Login)
	}

	guarded := api.Group("/")
	guarded.Use(middleware.AuthGuard(handlers.AuthUseCase, handlers.TokenCache, appMetrics))
	{
		guarded.GET("/auth", handlers.AuthHandler.CheckAuth)
		guarded.GET("/logout", handlers.AuthHandler.Logout)

		guarded.GET("/user", handlers.UserHandler.GetUser)
		guarded.PUT("/user/:id", handlers.UserHandler.UpdateUser)

		guarded.POST("/todo", handlers.TodoHandler.CreateTodo)
		guarded.GET("/todos", handlers.TodoHandler.GetAllTodos)
		guarded.GET("/todo/:id", handlers.TodoHandler.GetTodo)
		guarded.PUT("/todo/:id", handlers.TodoHandler.UpdateTodo)
		guarded.DELETE("/todo/:id", handlers.TodoHandler.DeleteTodo)
	}
}

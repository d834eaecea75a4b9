package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/http/routes"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/config"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/logging"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/metrics"
)

// NewServer builds the HTTP server around the wired container.
func NewServer(cfg *config.Config, container *Container, logger *logging.Logger, appMetrics *metrics.AppMetrics) *http.Server {
	router := routes.SetupRouter(routes.HandlersConfig{
		AuthHandler: container.AuthHandler,
		UserHandler: container.UserHandler,
		TodoHandler: container.TodoHandler,

		AuthUseCase: container.AuthUseCase,
		TokenCache:  container.TokenCache,
	}, cfg, logger, appMetrics)

	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Serve blocks until the server stops. ErrServerClosed is the normal
// shutdown path and is not reported.
func Serve(srv *http.Server, cfg *config.Config) error {
	slog.Info("Server starting",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"rate_limit_enabled", cfg.RateLimitEnabled,
		"https_enforced", cfg.EnforceHTTPS)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func Shutdown(ctx context.Context, srv *http.Server) error {
	return srv.Shutdown(ctx)
}

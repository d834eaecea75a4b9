package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/database"
	adapterhttp "github.com/Ezhilarasu1330/React-Todo-App/internal/adapter/http"
	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/telemetry"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/auth"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/cache"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/config"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/logging"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/metrics"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/tracing"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()

	logger, err := logging.New(cfg.ServiceName)

	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	defer logger.Sync()

	tel, err := tracing.InitTelemetry(tracing.TelemetryConfig{
		ServiceName:    cfg.ServiceName,
		ServiceVersion: cfg.ServiceVersion,
		Environment:    cfg.Environment,
		MetricsPort:    cfg.MetricsPort,
		OTLPEndpoint:   cfg.OTLPEndpoint,
	})

	if err != nil {
		log.Fatal("Failed to initialize telemetry:", err)
	}

	defer tel.Shutdown(ctx)

	appMetrics := metrics.NewAppMetrics(tel.PrometheusRegistry)
	appMetrics.StartSystemMetrics(ctx)

	db, err := database.Open(database.Options{
		DatabasePath:   cfg.DatabasePath,
		DatabaseURL:    cfg.DatabaseURL,
		MigrationsPath: cfg.MigrationsPath,
	})

	if err != nil {
		log.Fatal("Failed to open database:", err)
	}

	defer db.Close()

	tokenCache := newTokenCache(cfg, logger)

	container := adapterhttp.NewContainer(adapterhttp.ContainerOptions{
		DB:         db,
		Tokens:     auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL),
		TokenCache: tokenCache,
		Telemetry:  telemetry.NewOTELProbe(slog.Default()),
		Logger:     logger,
		Metrics:    appMetrics,
	})

	srv := adapterhttp.NewServer(cfg, container, logger, appMetrics)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := adapterhttp.Serve(srv, cfg); err != nil {
			logger.Error("Server failed", zap.Error(err))
			c <- syscall.SIGTERM
		}
	}()

	<-c
	logger.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := adapterhttp.Shutdown(shutdownCtx, srv); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
	}
}

func newTokenCache(cfg *config.Config, logger *logging.Logger) cache.TokenCache {
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisTokenCache(cfg.RedisURL, cfg.TokenCacheTTL)

		if err == nil {
			return redisCache
		}

		logger.Warn("Falling back to in-process token cache", zap.Error(err))
	}

	return cache.NewMemoryTokenCache(cfg.TokenCacheTTL)
}

package app

import (
	"context"
	"net/http"

	"github.com/Gunvolt24/wb_microservices/config"
	cachemem "github.com/Gunvolt24/wb_microservices/internal/cache/memory"
	"github.com/Gunvolt24/wb_microservices/internal/repo/postgres"
	rest "github.com/Gunvolt24/wb_microservices/internal/transport/http"
	"github.com/Gunvolt24/wb_microservices/internal/usecase"
	"github.com/Gunvolt24/wb_microservices/pkg/logger"
	"github.com/Gunvolt24/wb_microservices/pkg/metrics"
	"github.com/Gunvolt24/wb_microservices/pkg/telemetry"
)

// BootstrapUser — собирает сервис пользователей: Postgres-репозиторий,
// LRU+TTL-кэш с прогревом и HTTP-сервер.
func BootstrapUser(ctx context.Context, cfg *config.UserConfig) (*App, Cleanup, error) {
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	metrics.MustRegister()

	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	userCache := cachemem.NewLRUCacheTTL(cfg.Cache.Capacity, cfg.Cache.TTL)
	userRepo := postgres.NewUserRepository(pool)
	userService := usecase.NewUserService(userRepo, userCache, logg)

	// Прогрев кэша при старте.
	if cfg.Cache.WarmUp {
		if err := userService.WarmUpCache(ctx); err != nil {
			logg.Warnf(ctx, "warm-up cache failed: %v", err)
		}
	}

	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	handler := rest.NewUserHandler(userService, logg)
	router := rest.NewUserRouter(handler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		pool.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

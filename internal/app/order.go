package app

import (
	"context"
	"net/http"

	"github.com/Gunvolt24/wb_microservices/config"
	"github.com/Gunvolt24/wb_microservices/internal/client/userapi"
	"github.com/Gunvolt24/wb_microservices/internal/kafka"
	"github.com/Gunvolt24/wb_microservices/internal/ports"
	"github.com/Gunvolt24/wb_microservices/internal/repo/postgres"
	rest "github.com/Gunvolt24/wb_microservices/internal/transport/http"
	"github.com/Gunvolt24/wb_microservices/internal/usecase"
	"github.com/Gunvolt24/wb_microservices/pkg/logger"
	"github.com/Gunvolt24/wb_microservices/pkg/metrics"
	"github.com/Gunvolt24/wb_microservices/pkg/telemetry"
)

// BootstrapOrder — собирает сервис заказов: Postgres-репозиторий, HTTP-клиент
// сервиса пользователей, продьюсер событий Kafka и HTTP-сервер.
func BootstrapOrder(ctx context.Context, cfg *config.OrderConfig) (*App, Cleanup, error) {
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

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
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

	// Сборка зависимостей доменного слоя.
	orderRepo := postgres.NewOrderRepository(pool)
	userClient := userapi.New(cfg.UserService.BaseURL, cfg.UserService.Timeout, logg)

	// Публикация событий заказов — по конфигурации; иначе no-op.
	var events ports.EventPublisher = kafka.NewNopPublisher()
	if cfg.Kafka.Enabled {
		events = kafka.NewProducer(kafka.ProducerConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			WriteTimeout: cfg.Kafka.WriteTimeout,
		}, logg)
		logg.Infof(ctx, "kafka producer enabled topic=%s brokers=%v", cfg.Kafka.Topic, cfg.Kafka.Brokers)
	}

	orderService := usecase.NewOrderService(orderRepo, userClient, events, logg)

	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	handler := rest.NewOrderHandler(orderService, logg)
	router := rest.NewOrderRouter(handler, otelServiceName)

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

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if err := events.Close(); err != nil {
			logg.Warnf(ctx, "event publisher close error: %v", err)
		}
		pool.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

package config_test

import (
	"slices"
	"testing"
	"time"

	cfg "github.com/Gunvolt24/wb_microservices/config"
)

// TestLoadOrderWithPrefix_Defaults — проверка значений по умолчанию.
func TestLoadOrderWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadOrderWithPrefix("ORDER_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadOrderWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" {
		t.Fatalf("HTTP.Addr: want :8080, got %q", c.HTTP.Addr)
	}
	if c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP.GinMode: want debug, got %q", c.HTTP.GinMode)
	}
	if c.HTTP.ReadTimeout != 10*time.Second || c.HTTP.WriteTimeout != 10*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadHeaderTimeout != 5*time.Second || c.HTTP.IdleTimeout != 60*time.Second {
		t.Fatalf("HTTP header/idle timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.GracefulTimeout != 5*time.Second {
		t.Fatalf("HTTP.GracefulTimeout: want 5s, got %v", c.HTTP.GracefulTimeout)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.Endpoint != "jaeger:4318" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Postgres
	if c.Postgres.MaxConns != 10 {
		t.Fatalf("Postgres.MaxConns: want 10, got %d", c.Postgres.MaxConns)
	}

	// Kafka
	if c.Kafka.Enabled {
		t.Fatalf("Kafka.Enabled: want false by default")
	}
	if !slices.Equal(c.Kafka.Brokers, []string{"kafka:9092"}) {
		t.Fatalf("Kafka.Brokers: want [kafka:9092], got %v", c.Kafka.Brokers)
	}
	if c.Kafka.Topic != "order-events" || c.Kafka.WriteTimeout != 5*time.Second {
		t.Fatalf("Kafka defaults wrong: %+v", c.Kafka)
	}

	// UserService
	if c.UserService.BaseURL != "http://user-service:8081" || c.UserService.Timeout != 5*time.Second {
		t.Fatalf("UserService defaults wrong: %+v", c.UserService)
	}

	// Logger
	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}
}

func TestLoadUserWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadUserWithPrefix("USER_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadUserWithPrefix error: %v", err)
	}

	if c.HTTP.Addr != ":8080" {
		t.Fatalf("HTTP.Addr: want :8080, got %q", c.HTTP.Addr)
	}
	if c.Cache.Capacity != 1000 || c.Cache.TTL != 10*time.Minute {
		t.Fatalf("Cache defaults wrong: %+v", c.Cache)
	}
	if !c.Cache.WarmUp {
		t.Fatalf("Cache.WarmUp: want true by default")
	}
}

// Меняем окружение.
func TestLoadOrderWithPrefix_Overrides(t *testing.T) {
	const p = "ORDER_TEST_OVR"

	// HTTP
	t.Setenv(p+"_HTTP_ADDR", ":9999")
	t.Setenv(p+"_HTTP_GIN_MODE", "release")
	t.Setenv(p+"_HTTP_READ_TIMEOUT", "2s")
	t.Setenv(p+"_HTTP_WRITE_TIMEOUT", "3s")
	t.Setenv(p+"_HTTP_READ_HEADER_TIMEOUT", "1s")
	t.Setenv(p+"_HTTP_IDLE_TIMEOUT", "15s")
	t.Setenv(p+"_HTTP_GRACEFUL_TIMEOUT", "7s")

	// Tracing
	t.Setenv(p+"_TRACING_OTEL_ENABLED", "true")
	t.Setenv(p+"_TRACING_OTEL_SERVICE_NAME", "svc")
	t.Setenv(p+"_TRACING_OTEL_ENDPOINT", "collector:4318")
	t.Setenv(p+"_TRACING_OTEL_SAMPLE_RATIO", "0.25")

	// Postgres
	t.Setenv(p+"_POSTGRES_DSN", "postgres://u:p@h:5432/db?sslmode=disable")
	t.Setenv(p+"_POSTGRES_MAX_CONNS", "42")

	// Kafka
	t.Setenv(p+"_KAFKA_ENABLED", "true")
	t.Setenv(p+"_KAFKA_BROKERS", "k1:9092,k2:9093")
	t.Setenv(p+"_KAFKA_TOPIC", "order-events-test")
	t.Setenv(p+"_KAFKA_WRITE_TIMEOUT", "250ms")

	// UserService
	t.Setenv(p+"_USERSERVICE_BASE_URL", "http://localhost:18081")
	t.Setenv(p+"_USERSERVICE_TIMEOUT", "900ms")

	// Logger
	t.Setenv(p+"_LOGGER_IS_PROD", "true")

	c, err := cfg.LoadOrderWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadOrderWithPrefix error: %v", err)
	}

	if c.HTTP.Addr != ":9999" || c.HTTP.GinMode != "release" {
		t.Fatalf("HTTP overrides wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadTimeout != 2*time.Second || c.HTTP.WriteTimeout != 3*time.Second ||
		c.HTTP.ReadHeaderTimeout != time.Second || c.HTTP.IdleTimeout != 15*time.Second ||
		c.HTTP.GracefulTimeout != 7*time.Second {
		t.Fatalf("HTTP timeout overrides wrong: %+v", c.HTTP)
	}
	if !c.Tracing.Enabled || c.Tracing.ServiceName != "svc" ||
		c.Tracing.Endpoint != "collector:4318" || c.Tracing.SampleRatio != 0.25 {
		t.Fatalf("Tracing overrides wrong: %+v", c.Tracing)
	}
	if c.Postgres.DSN != "postgres://u:p@h:5432/db?sslmode=disable" || c.Postgres.MaxConns != 42 {
		t.Fatalf("Postgres overrides wrong: %+v", c.Postgres)
	}
	if !c.Kafka.Enabled || !slices.Equal(c.Kafka.Brokers, []string{"k1:9092", "k2:9093"}) ||
		c.Kafka.Topic != "order-events-test" || c.Kafka.WriteTimeout != 250*time.Millisecond {
		t.Fatalf("Kafka overrides wrong: %+v", c.Kafka)
	}
	if c.UserService.BaseURL != "http://localhost:18081" || c.UserService.Timeout != 900*time.Millisecond {
		t.Fatalf("UserService overrides wrong: %+v", c.UserService)
	}
	if !c.Logger.IsProd {
		t.Fatalf("Logger override wrong: %+v", c.Logger)
	}
}

func TestLoadUserWithPrefix_Overrides(t *testing.T) {
	const p = "USER_TEST_OVR"

	t.Setenv(p+"_CACHE_CAPACITY", "777")
	t.Setenv(p+"_CACHE_TTL", "30m")
	t.Setenv(p+"_CACHE_WARM_UP", "false")

	c, err := cfg.LoadUserWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadUserWithPrefix error: %v", err)
	}
	if c.Cache.Capacity != 777 || c.Cache.TTL != 30*time.Minute || c.Cache.WarmUp {
		t.Fatalf("Cache overrides wrong: %+v", c.Cache)
	}
}

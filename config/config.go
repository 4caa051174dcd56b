package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Общие секции конфигурации обоих сервисов.
// Значения читаются из окружения с префиксом сервиса (ORDER_*, USER_*).

type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

type Postgres struct {
	DSN      string `default:"" envconfig:"DSN"`
	MaxConns int32  `default:"10" envconfig:"MAX_CONNS"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

// Kafka — шина событий заказов (только order-service).
type Kafka struct {
	Enabled      bool          `default:"false" envconfig:"ENABLED"`
	Brokers      []string      `default:"kafka:9092" envconfig:"BROKERS"`
	Topic        string        `default:"order-events" envconfig:"TOPIC"`
	WriteTimeout time.Duration `default:"5s" envconfig:"WRITE_TIMEOUT"`
}

// UserService — клиент к сервису пользователей (только order-service).
type UserService struct {
	BaseURL string        `default:"http://user-service:8081" envconfig:"BASE_URL"`
	Timeout time.Duration `default:"5s" envconfig:"TIMEOUT"`
}

// Cache — кэш пользователей (только user-service).
type Cache struct {
	Capacity int           `default:"1000" envconfig:"CAPACITY"`
	TTL      time.Duration `default:"10m" envconfig:"TTL"`
	WarmUp   bool          `default:"true" envconfig:"WARM_UP"`
}

// OrderConfig — конфигурация сервиса заказов.
type OrderConfig struct {
	HTTP        HTTP
	Tracing     Tracing
	Postgres    Postgres
	Kafka       Kafka
	UserService UserService
	Logger      Logger
}

// UserConfig — конфигурация сервиса пользователей.
type UserConfig struct {
	HTTP     HTTP
	Tracing  Tracing
	Postgres Postgres
	Cache    Cache
	Logger   Logger
}

// LoadOrder — конфигурация order-service из окружения (префикс ORDER).
func LoadOrder() (OrderConfig, error) { return LoadOrderWithPrefix("ORDER") }

// LoadOrderWithPrefix — то же с произвольным префиксом (для тестов).
func LoadOrderWithPrefix(prefix string) (OrderConfig, error) {
	var c OrderConfig
	if err := envconfig.Process(prefix, &c); err != nil {
		return OrderConfig{}, err
	}
	return c, nil
}

// LoadUser — конфигурация user-service из окружения (префикс USER).
func LoadUser() (UserConfig, error) { return LoadUserWithPrefix("USER") }

// LoadUserWithPrefix — то же с произвольным префиксом (для тестов).
func LoadUserWithPrefix(prefix string) (UserConfig, error) {
	var c UserConfig
	if err := envconfig.Process(prefix, &c); err != nil {
		return UserConfig{}, err
	}
	return c, nil
}

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// UserLookups — исходы удалённой проверки существования пользователя.
	UserLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "user_lookups_total",
			Help: "Remote user existence checks by outcome",
		},
		[]string{"outcome"}, // ok|rejected|error
	)

	// EventsPublished/EventsFailed — публикация событий заказов в Kafka.
	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_published_total",
			Help: "Order events published successfully",
		},
		[]string{"topic"},
	)
	EventsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_failed_total",
			Help: "Order events failed to publish",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрация коллекторов в глобальном реестре.
// Повторные вызовы (второй сервис в одном процессе, тесты) — no-op.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(UserLookups, EventsPublished, EventsFailed, CacheOps, CacheSize)
	})
}

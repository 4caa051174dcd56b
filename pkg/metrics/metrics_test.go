package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/wb_microservices/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestUserLookups_CountersByOutcome(t *testing.T) {
	metrics.MustRegister()

	okBefore := testutil.ToFloat64(metrics.UserLookups.WithLabelValues("ok"))
	rejectedBefore := testutil.ToFloat64(metrics.UserLookups.WithLabelValues("rejected"))

	metrics.UserLookups.WithLabelValues("ok").Inc()
	metrics.UserLookups.WithLabelValues("ok").Inc()
	metrics.UserLookups.WithLabelValues("rejected").Inc()

	if got := testutil.ToFloat64(metrics.UserLookups.WithLabelValues("ok")); got != okBefore+2 {
		t.Fatalf("UserLookups(ok): got=%v want=%v", got, okBefore+2)
	}
	if got := testutil.ToFloat64(metrics.UserLookups.WithLabelValues("rejected")); got != rejectedBefore+1 {
		t.Fatalf("UserLookups(rejected): got=%v want=%v", got, rejectedBefore+1)
	}
}

func TestEventCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	publishedBefore := testutil.ToFloat64(metrics.EventsPublished.WithLabelValues("order-events"))
	failedBefore := testutil.ToFloat64(metrics.EventsFailed.WithLabelValues("order-events"))

	metrics.EventsPublished.WithLabelValues("order-events").Inc()
	metrics.EventsFailed.WithLabelValues("order-events").Inc()

	if got := testutil.ToFloat64(metrics.EventsPublished.WithLabelValues("order-events")); got != publishedBefore+1 {
		t.Fatalf("EventsPublished: got=%v want=%v", got, publishedBefore+1)
	}
	if got := testutil.ToFloat64(metrics.EventsFailed.WithLabelValues("order-events")); got != failedBefore+1 {
		t.Fatalf("EventsFailed: got=%v want=%v", got, failedBefore+1)
	}
}

func TestCacheSize_GaugeSet(t *testing.T) {
	metrics.MustRegister()

	cur := testutil.ToFloat64(metrics.CacheSize)

	metrics.CacheSize.Set(cur + 5)
	if got := testutil.ToFloat64(metrics.CacheSize); got != cur+5 {
		t.Fatalf("CacheSize after +5: got=%v want=%v", got, cur+5)
	}

	metrics.CacheSize.Set(cur) // вернуть как было
	if got := testutil.ToFloat64(metrics.CacheSize); got != cur {
		t.Fatalf("CacheSize restore: got=%v want=%v", got, cur)
	}
}

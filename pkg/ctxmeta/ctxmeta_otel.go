//go:build otel && !gopls

package ctxmeta

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Сборка с тегом `otel`: идентификаторы берутся из активного спана,
// чтобы записи логов обоих сервисов можно было сопоставить с трассой.

func activeSpanContext(ctx context.Context) (trace.SpanContext, bool) {
	sc := trace.SpanFromContext(ctx).SpanContext()
	return sc, sc.IsValid()
}

// TraceIDFromContext — hex-идентификатор трассы активного спана.
func TraceIDFromContext(ctx context.Context) (string, bool) {
	sc, ok := activeSpanContext(ctx)
	if !ok {
		return "", false
	}
	return sc.TraceID().String(), true
}

// SpanIDFromContext — hex-идентификатор самого спана.
func SpanIDFromContext(ctx context.Context) (string, bool) {
	sc, ok := activeSpanContext(ctx)
	if !ok {
		return "", false
	}
	return sc.SpanID().String(), true
}

//go:build !otel || gopls

package ctxmeta

import "context"

// Без тега `otel` трассировка не собирается: идентификаторов нет,
// записи логов связываются только через request_id.

func TraceIDFromContext(context.Context) (string, bool) { return "", false }
func SpanIDFromContext(context.Context) (string, bool)  { return "", false }

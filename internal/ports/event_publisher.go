package ports

import (
	"context"

	"github.com/Gunvolt24/wb_microservices/internal/domain"
)

// EventPublisher — публикация событий заказов в шину.
// Доставка best-effort: неуспех публикации не откатывает запись в БД.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.OrderEvent) error
	Close() error
}

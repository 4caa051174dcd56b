package ports

import (
	"context"

	"github.com/Gunvolt24/wb_microservices/internal/domain"
)

// OrderRepository — хранилище заказов.
// Save проставляет order.ID и creation_date, назначенные базой.
// GetByID возвращает (nil, nil), если записи нет.
// DeleteByID — no-op для несуществующего идентификатора.
type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, orderID int64) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Order, error)
	DeleteByID(ctx context.Context, orderID int64) error
}

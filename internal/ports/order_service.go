package ports

import (
	"context"

	"github.com/Gunvolt24/wb_microservices/internal/domain"
)

// OrderService — операции сервиса заказов, видимые транспортному слою.
type OrderService interface {
	GetOrder(ctx context.Context, orderID int64) (*domain.Order, error)
	OrdersByUser(ctx context.Context, userID int64) ([]*domain.Order, error)
	CreateOrder(ctx context.Context, userID int64, req domain.OrderRequest) (*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID int64) error
}

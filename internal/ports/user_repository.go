package ports

import (
	"context"

	"github.com/Gunvolt24/wb_microservices/internal/domain"
)

// UserRepository — хранилище пользователей.
// Контракты те же, что и у заказов: Save проставляет ID,
// GetByID → (nil, nil) при отсутствии, DeleteByID идемпотентен.
// List возвращает пользователей в порядке вставки.
type UserRepository interface {
	Save(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	DeleteByID(ctx context.Context, userID int64) error
}

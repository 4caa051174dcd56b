package ports

import (
	"context"

	"github.com/Gunvolt24/wb_microservices/internal/domain"
)

// UserCache — кэш пользователей по идентификатору.
// Требования к реализации: потокобезопасность, возврат копий сущности.
type UserCache interface {
	// Get — (user, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, userID int64) (*domain.User, bool)

	// Set — сохранить/обновить пользователя в кэше.
	Set(ctx context.Context, user *domain.User) error

	// Delete — инвалидация записи (вызывается при удалении пользователя,
	// иначе чтение после удаления отдаст устаревшие данные).
	Delete(ctx context.Context, userID int64)

	// WarmUp — массовая загрузка кэша при старте сервиса.
	WarmUp(ctx context.Context, users []*domain.User) error
}

package ports

import (
	"context"
	"errors"

	"github.com/Gunvolt24/wb_microservices/internal/domain"
)

// ErrUserRejected — сервис пользователей ответил клиентской ошибкой (4xx):
// пользователь не может быть разрешён. Только эта категория трактуется
// пайплайном заказов как ошибка валидации; недоступность сервиса или его
// внутренние сбои не маскируются под плохой запрос и проходят дальше как есть.
var ErrUserRejected = errors.New("user lookup rejected")

// UserClient — синхронный клиент к сервису пользователей.
type UserClient interface {
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
}

package ports

import (
	"context"

	"github.com/Gunvolt24/wb_microservices/internal/domain"
)

// UserService — операции сервиса пользователей, видимые транспортному слою.
type UserService interface {
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
	CreateUser(ctx context.Context, req domain.UserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, userID int64) error
	ListUsers(ctx context.Context) ([]*domain.User, error)
}

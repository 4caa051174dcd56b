package domain

import "time"

// Order — заказ, принадлежащий пользователю из соседнего сервиса.
// UserID — внешняя ссылка; на уровне БД она не проверяется (отдельные базы),
// существование пользователя гарантирует только пайплайн создания.
type Order struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Count        int64     `json:"count"`
	UserID       int64     `json:"userId"`
	CreationDate time.Time `json:"creationDate"`
}

// OrderRequest — входной DTO создания заказа (без идентификатора).
// Поля name/count принимаются как есть, без дополнительной валидации.
type OrderRequest struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// NewOrder — собирает заказ из запроса; ID проставит репозиторий при сохранении.
func NewOrder(name string, count int64, userID int64) *Order {
	return &Order{
		Name:         name,
		Count:        count,
		UserID:       userID,
		CreationDate: time.Now().UTC(),
	}
}

// OrderEvent — событие жизненного цикла заказа для шины (best-effort).
type OrderEvent struct {
	Type    string    `json:"type"` // created|deleted
	OrderID int64     `json:"orderId"`
	UserID  int64     `json:"userId,omitempty"`
	Order   *Order    `json:"order,omitempty"`
	At      time.Time `json:"at"`
}

const (
	OrderEventCreated = "created"
	OrderEventDeleted = "deleted"
)

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/wb_microservices/internal/domain"
	"github.com/Gunvolt24/wb_microservices/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что OrderRepository удовлетворяет интерфейсу OrderRepository.
var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository — репозиторий заказов на Postgres (pgxpool).
// user_id не связан FK с таблицей пользователей: она живёт в другой базе,
// ссылочную целостность обеспечивает только пайплайн создания.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository — конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

// Save — вставляет заказ; id назначает база, проставляем его в сущность.
func (r *OrderRepository) Save(ctx context.Context, order *domain.Order) error {
	if order == nil {
		return errors.New("order is nil")
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO orders (name, count, user_id, creation_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, order.Name, order.Count, order.UserID, order.CreationDate).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID — заказ по идентификатору. Если не нашли, возвращает (nil, nil).
func (r *OrderRepository) GetByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	var order domain.Order

	err := r.pool.QueryRow(ctx, `
		SELECT id, name, count, user_id, creation_date
		FROM orders WHERE id = $1
	`, orderID).Scan(&order.ID, &order.Name, &order.Count, &order.UserID, &order.CreationDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}

	return &order, nil
}

// ListByUser — заказы пользователя в порядке вставки (по возрастанию id).
// Всегда возвращает непустой slice-литерал, чтобы сериализоваться в [].
func (r *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, count, user_id, creation_date
		FROM orders
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("select user orders: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order := &domain.Order{}
		if err := rows.Scan(&order.ID, &order.Name, &order.Count, &order.UserID, &order.CreationDate); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("orders rows: %w", err)
	}

	return orders, nil
}

// DeleteByID — удаление по идентификатору; отсутствующая запись — no-op.
func (r *OrderRepository) DeleteByID(ctx context.Context, orderID int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, orderID); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

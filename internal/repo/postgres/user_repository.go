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

// Проверка, что UserRepository удовлетворяет интерфейсу UserRepository.
var _ ports.UserRepository = (*UserRepository)(nil)

// UserRepository — репозиторий пользователей на Postgres (pgxpool).
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository — конструктор UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository { return &UserRepository{pool: pool} }

// Save — вставляет пользователя; id назначает база.
// Уникальность email не требуется и не проверяется.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	if user == nil {
		return errors.New("user is nil")
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, creation_date)
		VALUES ($1, $2, $3)
		RETURNING id
	`, user.Name, user.Email, user.CreationDate).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID — пользователь по идентификатору. Если не нашли, возвращает (nil, nil).
func (r *UserRepository) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	var user domain.User

	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, creation_date
		FROM users WHERE id = $1
	`, userID).Scan(&user.ID, &user.Name, &user.Email, &user.CreationDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}

	return &user, nil
}

// List — все пользователи в порядке вставки (по возрастанию id).
func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, creation_date
		FROM users
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user := &domain.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.CreationDate); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("users rows: %w", err)
	}

	return users, nil
}

// DeleteByID — удаление по идентификатору; отсутствующая запись — no-op.
func (r *UserRepository) DeleteByID(ctx context.Context, userID int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

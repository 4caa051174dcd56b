package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/wb_microservices/internal/domain"
	"github.com/Gunvolt24/wb_microservices/internal/ports"
	"github.com/Gunvolt24/wb_microservices/pkg/metrics"
	"github.com/Gunvolt24/wb_microservices/pkg/validate"
)

// Проверка, что OrderService удовлетворяет порту транспортного слоя.
var _ ports.OrderService = (*OrderService)(nil)

// OrderService — прикладная логика заказов (без знаний о транспорте).
// Существование пользователя проверяется синхронным вызовом соседнего
// сервиса перед созданием/листингом; после создания никакая консистентность
// не поддерживается (пользователь может быть удалён — принятое допущение).
type OrderService struct {
	repo   ports.OrderRepository
	users  ports.UserClient
	events ports.EventPublisher
	log    ports.Logger
}

// NewOrderService — DI-конструктор.
func NewOrderService(
	repo ports.OrderRepository,
	users ports.UserClient,
	events ports.EventPublisher,
	log ports.Logger,
) *OrderService {
	return &OrderService{
		repo:   repo,
		users:  users,
		events: events,
		log:    log,
	}
}

// GetOrder — заказ по идентификатору.
func (s *OrderService) GetOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	if err := validate.ID(orderID); err != nil {
		return nil, err
	}

	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByID failed order_id=%d err=%v", orderID, err)
		return nil, err
	}
	if order == nil {
		return nil, domain.NotFound("order not found")
	}
	return order, nil
}

// OrdersByUser — все заказы пользователя (в порядке вставки).
// Пользователь должен существовать; пустой список — не ошибка.
func (s *OrderService) OrdersByUser(ctx context.Context, userID int64) ([]*domain.Order, error) {
	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, userID)
}

// CreateOrder — создание заказа для пользователя.
// Поля name/count из запроса не валидируются — принимаются как есть.
// До успешной валидации репозиторий не вызывается.
func (s *OrderService) CreateOrder(ctx context.Context, userID int64, req domain.OrderRequest) (*domain.Order, error) {
	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}

	order := domain.NewOrder(req.Name, req.Count, userID)

	start := time.Now()
	if err := s.repo.Save(ctx, order); err != nil {
		s.log.Errorf(ctx, "repo.Save failed user_id=%d err=%v", userID, err)
		return nil, fmt.Errorf("save order: %w", err)
	}
	s.log.Infof(ctx, "order created id=%d user_id=%d took=%s", order.ID, userID, time.Since(start))

	s.publish(ctx, domain.OrderEvent{
		Type:    domain.OrderEventCreated,
		OrderID: order.ID,
		UserID:  userID,
		Order:   order,
		At:      time.Now().UTC(),
	})

	return order, nil
}

// DeleteOrder — удаление по идентификатору; отсутствие записи — не ошибка.
func (s *OrderService) DeleteOrder(ctx context.Context, orderID int64) error {
	if err := validate.ID(orderID); err != nil {
		return err
	}

	if err := s.repo.DeleteByID(ctx, orderID); err != nil {
		s.log.Errorf(ctx, "repo.DeleteByID failed order_id=%d err=%v", orderID, err)
		return err
	}

	s.publish(ctx, domain.OrderEvent{
		Type:    domain.OrderEventDeleted,
		OrderID: orderID,
		At:      time.Now().UTC(),
	})
	return nil
}

// checkUserExists — валидация идентификатора + проверка существования
// пользователя через удалённый сервис. Клиентский отказ (4xx) трактуется
// как ошибка валидации; транспортные и серверные сбои проходят как есть,
// чтобы не превращать недоступность соседнего сервиса в 400.
func (s *OrderService) checkUserExists(ctx context.Context, userID int64) error {
	if err := validate.ID(userID); err != nil {
		return err
	}

	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, ports.ErrUserRejected) {
			metrics.UserLookups.WithLabelValues("rejected").Inc()
			s.log.Infof(ctx, "user lookup rejected user_id=%d: %v", userID, err)
			return domain.InvalidParameters("this user doesn't exist")
		}
		metrics.UserLookups.WithLabelValues("error").Inc()
		s.log.Errorf(ctx, "user lookup failed user_id=%d err=%v", userID, err)
		return fmt.Errorf("user lookup: %w", err)
	}

	metrics.UserLookups.WithLabelValues("ok").Inc()
	return nil
}

// publish — best-effort публикация события; неуспех только логируется.
func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Warnf(ctx, "publish %s event order_id=%d failed: %v", event.Type, event.OrderID, err)
	}
}

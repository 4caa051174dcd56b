package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/wb_microservices/internal/domain"
	"github.com/Gunvolt24/wb_microservices/internal/ports"
	"github.com/Gunvolt24/wb_microservices/internal/ports/mocks"
	"github.com/Gunvolt24/wb_microservices/internal/usecase"
	"github.com/golang/mock/gomock"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

type orderMocks struct {
	repo   *mocks.MockOrderRepository
	users  *mocks.MockUserClient
	events *mocks.MockEventPublisher
}

func newOrderService(t *testing.T) (*usecase.OrderService, orderMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := orderMocks{
		repo:   mocks.NewMockOrderRepository(ctrl),
		users:  mocks.NewMockUserClient(ctrl),
		events: mocks.NewMockEventPublisher(ctrl),
	}
	return usecase.NewOrderService(m.repo, m.users, m.events, noopLogger{}), m
}

func TestGetOrder_Found(t *testing.T) {
	svc, m := newOrderService(t)

	want := &domain.Order{ID: 7, Name: "widget", Count: 2, UserID: 1}
	m.repo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(want, nil)

	got, err := svc.GetOrder(context.Background(), 7)
	if err != nil || got == nil || got.ID != 7 {
		t.Fatalf("expected order 7, got err=%v order=%+v", err, got)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	svc, m := newOrderService(t)

	m.repo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

	_, err := svc.GetOrder(context.Background(), 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if got, want := err.Error(), "order not found"; got != want {
		t.Fatalf("got message %q, want %q", got, want)
	}
}

func TestGetOrder_InvalidID_NoRepoCall(t *testing.T) {
	svc, _ := newOrderService(t)

	// репозиторий не должен вызываться — mock без EXPECT это проверит
	_, err := svc.GetOrder(context.Background(), 0)
	if !errors.Is(err, domain.ErrInvalidParameters) {
		t.Fatalf("expected ErrInvalidParameters, got %v", err)
	}
	if got, want := err.Error(), "id can't be null or less than 1"; got != want {
		t.Fatalf("got message %q, want %q", got, want)
	}
}

func TestCreateOrder_Success_SavesOnceAndPublishes(t *testing.T) {
	svc, m := newOrderService(t)

	gomock.InOrder(
		m.users.EXPECT().GetUserByID(gomock.Any(), int64(1)).Return(&domain.User{ID: 1}, nil),
		m.repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(&domain.Order{})).
			DoAndReturn(func(_ context.Context, o *domain.Order) error {
				o.ID = 42
				return nil
			}).Times(1),
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e domain.OrderEvent) error {
				if e.Type != domain.OrderEventCreated || e.OrderID != 42 || e.UserID != 1 {
					t.Fatalf("unexpected event: %+v", e)
				}
				return nil
			}),
	)

	got, err := svc.CreateOrder(context.Background(), 1, domain.OrderRequest{Name: "widget", Count: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 42 || got.Name != "widget" || got.Count != 3 || got.UserID != 1 {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got.CreationDate.IsZero() {
		t.Fatalf("creation date must be set by the service")
	}
}

func TestCreateOrder_InvalidUserID_NothingCalled(t *testing.T) {
	svc, _ := newOrderService(t)

	_, err := svc.CreateOrder(context.Background(), 0, domain.OrderRequest{Name: "widget", Count: 1})
	if !errors.Is(err, domain.ErrInvalidParameters) {
		t.Fatalf("expected ErrInvalidParameters, got %v", err)
	}
	if got, want := err.Error(), "id can't be null or less than 1"; got != want {
		t.Fatalf("got message %q, want %q", got, want)
	}
}

func TestCreateOrder_UserRejected(t *testing.T) {
	svc, m := newOrderService(t)

	m.users.EXPECT().GetUserByID(gomock.Any(), int64(5)).
		Return(nil, ports.ErrUserRejected)

	_, err := svc.CreateOrder(context.Background(), 5, domain.OrderRequest{Name: "widget", Count: 1})
	if !errors.Is(err, domain.ErrInvalidParameters) {
		t.Fatalf("expected ErrInvalidParameters, got %v", err)
	}
	if got, want := err.Error(), "this user doesn't exist"; got != want {
		t.Fatalf("got message %q, want %q", got, want)
	}
}

// Транспортный сбой при проверке пользователя не классифицируется:
// он не должен превращаться ни в 400, ни в 404.
func TestCreateOrder_UserLookupTransportError_Propagates(t *testing.T) {
	svc, m := newOrderService(t)

	netErr := errors.New("connection refused")
	m.users.EXPECT().GetUserByID(gomock.Any(), int64(5)).Return(nil, netErr)

	_, err := svc.CreateOrder(context.Background(), 5, domain.OrderRequest{Name: "widget", Count: 1})
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, domain.ErrInvalidParameters) || errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("transport error must stay unclassified, got %v", err)
	}
	if !errors.Is(err, netErr) {
		t.Fatalf("original error must be wrapped, got %v", err)
	}
}

func TestCreateOrder_PublishFailure_DoesNotFailCreate(t *testing.T) {
	svc, m := newOrderService(t)

	m.users.EXPECT().GetUserByID(gomock.Any(), int64(1)).Return(&domain.User{ID: 1}, nil)
	m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	if _, err := svc.CreateOrder(context.Background(), 1, domain.OrderRequest{Name: "widget", Count: 1}); err != nil {
		t.Fatalf("publish failure must not fail creation: %v", err)
	}
}

func TestOrdersByUser_EmptyListIsNotAnError(t *testing.T) {
	svc, m := newOrderService(t)

	m.users.EXPECT().GetUserByID(gomock.Any(), int64(3)).Return(&domain.User{ID: 3}, nil)
	m.repo.EXPECT().ListByUser(gomock.Any(), int64(3)).Return([]*domain.Order{}, nil)

	got, err := svc.OrdersByUser(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
}

func TestOrdersByUser_UserRejected(t *testing.T) {
	svc, m := newOrderService(t)

	m.users.EXPECT().GetUserByID(gomock.Any(), int64(3)).Return(nil, ports.ErrUserRejected)

	_, err := svc.OrdersByUser(context.Background(), 3)
	if !errors.Is(err, domain.ErrInvalidParameters) {
		t.Fatalf("expected ErrInvalidParameters, got %v", err)
	}
}

func TestDeleteOrder_IdempotentAndPublishes(t *testing.T) {
	svc, m := newOrderService(t)

	m.repo.EXPECT().DeleteByID(gomock.Any(), int64(10)).Return(nil)
	m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e domain.OrderEvent) error {
			if e.Type != domain.OrderEventDeleted || e.OrderID != 10 {
				t.Fatalf("unexpected event: %+v", e)
			}
			return nil
		})

	if err := svc.DeleteOrder(context.Background(), 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteOrder_InvalidID(t *testing.T) {
	svc, _ := newOrderService(t)

	err := svc.DeleteOrder(context.Background(), -1)
	if !errors.Is(err, domain.ErrInvalidParameters) {
		t.Fatalf("expected ErrInvalidParameters, got %v", err)
	}
}

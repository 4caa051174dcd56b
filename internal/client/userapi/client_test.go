package userapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Gunvolt24/wb_microservices/internal/client/userapi"
	"github.com/Gunvolt24/wb_microservices/internal/ports"
	"github.com/Gunvolt24/wb_microservices/pkg/ctxmeta"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func TestGetUserByID_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/7" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"name":"Alice","email":"alice@example.com"}`))
	}))
	defer srv.Close()

	c := userapi.New(srv.URL, time.Second, noopLogger{})
	user, err := c.GetUserByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 7 || user.Name != "Alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

// 4xx любого вида — отказ: пользователь считается несуществующим.
func TestGetUserByID_4xx_Rejected(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte("user not found"))
		}))

		c := userapi.New(srv.URL, time.Second, noopLogger{})
		_, err := c.GetUserByID(context.Background(), 7)
		srv.Close()

		if !errors.Is(err, ports.ErrUserRejected) {
			t.Fatalf("status %d: expected ErrUserRejected, got %v", status, err)
		}
	}
}

// 5xx — не отказ, а сбой: ошибка не должна классифицироваться как отказ.
func TestGetUserByID_5xx_NotRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := userapi.New(srv.URL, time.Second, noopLogger{})
	_, err := c.GetUserByID(context.Background(), 7)
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ports.ErrUserRejected) {
		t.Fatalf("5xx must not be classified as rejection: %v", err)
	}
}

func TestGetUserByID_NetworkError_NotRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // сервер уже погашен — соединение откажет

	c := userapi.New(srv.URL, time.Second, noopLogger{})
	_, err := c.GetUserByID(context.Background(), 7)
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ports.ErrUserRejected) {
		t.Fatalf("network error must not be classified as rejection: %v", err)
	}
}

func TestGetUserByID_BrokenBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{broken`))
	}))
	defer srv.Close()

	c := userapi.New(srv.URL, time.Second, noopLogger{})
	if _, err := c.GetUserByID(context.Background(), 7); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestGetUserByID_ForwardsRequestID(t *testing.T) {
	var gotRID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`{"id":1,"name":"A","email":"a@b.cd"}`))
	}))
	defer srv.Close()

	ctx := ctxmeta.WithRequestID(context.Background(), "req-42")
	c := userapi.New(srv.URL, time.Second, noopLogger{})
	if _, err := c.GetUserByID(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotRID != "req-42" {
		t.Fatalf("request id not forwarded, got %q", gotRID)
	}
}

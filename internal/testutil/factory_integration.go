//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/wb_microservices/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидного пользователя
func MakeUser(opts ...func(*domain.User)) domain.User {
	now := time.Now().UTC().Truncate(time.Second)

	u := domain.User{
		Name:         "user-" + UniqSuffix(),
		Email:        "user-" + UniqSuffix() + "@example.com",
		CreationDate: now,
	}

	for _, fn := range opts {
		fn(&u)
	}
	return u
}

// Мини-генератор валидного заказа
func MakeOrder(userID int64, opts ...func(*domain.Order)) domain.Order {
	now := time.Now().UTC().Truncate(time.Second)

	o := domain.Order{
		Name:         "order-" + UniqSuffix(),
		Count:        1,
		UserID:       userID,
		CreationDate: now,
	}

	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Доп. опция — если нужно переопределить email в тесте
func WithEmail(email string) func(*domain.User) {
	return func(u *domain.User) { u.Email = email }
}

package domain

import "time"

// User — пользователь. Email валидируется при создании, но уникальность не гарантируется.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	CreationDate time.Time `json:"creationDate"`
}

// UserRequest — входной DTO создания пользователя (без идентификатора).
type UserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUser — собирает пользователя из запроса; ID проставит репозиторий.
// Поля сохраняются как пришли (email не триммится — триммится только копия при валидации).
func NewUser(name, email string) *User {
	return &User{
		Name:         name,
		Email:        email,
		CreationDate: time.Now().UTC(),
	}
}

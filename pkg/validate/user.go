package validate

import (
	"strings"

	"github.com/Gunvolt24/wb_microservices/internal/domain"
)

// UserName — имя пользователя не должно быть пустым или из одних пробелов.
func UserName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.InvalidParameters("name cannot be null or empty")
	}
	return nil
}

// UserRequest — полная проверка запроса на создание пользователя:
// сначала имя, затем email (порядок как в пайплайне создания).
func UserRequest(req *domain.UserRequest) error {
	if req == nil {
		return domain.InvalidParameters("request cannot be null")
	}
	if err := UserName(req.Name); err != nil {
		return err
	}
	return Email(req.Email)
}

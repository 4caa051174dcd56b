package validate

import "github.com/Gunvolt24/wb_microservices/internal/domain"

// ID — проверка числового идентификатора. Правило одно на оба сервиса:
// идентификатор корректен, если он >= 1. Отсутствующий или нечисловой
// параметр пути парсится в 0 и отклоняется тем же сообщением.
func ID(id int64) error {
	if id < 1 {
		return domain.InvalidParameters("id can't be null or less than 1")
	}
	return nil
}

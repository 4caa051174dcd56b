package domain

import "errors"

// Две категории доменных ошибок, доходящих до клиента:
// InvalidParameters → 400, NotFound → 404. Всё остальное транспортный слой
// не классифицирует и отдаёт как внутреннюю ошибку.
var (
	ErrInvalidParameters = errors.New("invalid parameters")
	ErrNotFound          = errors.New("not found")
)

// kindError — ошибка с категорией. Error() возвращает только сообщение:
// оно пишется в тело ответа как есть, без префикса категории.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// InvalidParameters — ошибка валидации входных данных (клиентская, 400).
func InvalidParameters(msg string) error {
	return &kindError{kind: ErrInvalidParameters, msg: msg}
}

// NotFound — сущность не найдена при прямом поиске по ключу (404).
func NotFound(msg string) error {
	return &kindError{kind: ErrNotFound, msg: msg}
}

package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Gunvolt24/wb_microservices/internal/domain"
)

const (
	minEmailLength = 5
	maxEmailLength = 254
)

// Принятая грамматика: локальная часть из ограниченного набора символов,
// доменная — только буквы/цифры/точки. Дефис в домене сознательно не
// пропускается — это зафиксированное поведение, тесты на него завязаны.
var emailPattern = regexp.MustCompile("^[a-zA-Z0-9_!#$%&'*+/=?`{|}~^.-]+@[a-zA-Z0-9.]+$")

// Email — проверка адреса по принятой грамматике. Правила применяются
// по порядку, первая сработавшая возвращает ошибку (short-circuit).
// Проверяется копия с обрезанными пробелами; исходная строка не меняется.
func Email(email string) error {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return domain.InvalidParameters("Email cannot be null or empty")
	}

	// Длина считается в символах, не в байтах: не-ASCII адрес всё равно
	// срежется грамматикой, но с сообщением о формате, а не о длине.
	if n := utf8.RuneCountInString(trimmed); n < minEmailLength || n > maxEmailLength {
		return domain.InvalidParameters(fmt.Sprintf(
			"Email length must be between %d and %d characters", minEmailLength, maxEmailLength))
	}

	if !emailPattern.MatchString(trimmed) {
		return domain.InvalidParameters("Invalid email format")
	}

	// Грамматика гарантирует ровно один '@': доменная часть однозначна.
	domainPart := trimmed[strings.Index(trimmed, "@")+1:]

	if !strings.Contains(domainPart, ".") {
		return domain.InvalidParameters("Domain should contain a dot")
	}
	if strings.HasPrefix(domainPart, ".") || strings.HasSuffix(domainPart, ".") {
		return domain.InvalidParameters("Domain cannot start or end with a dot")
	}
	if strings.Contains(domainPart, "..") {
		return domain.InvalidParameters("Domain cannot contain consecutive dots")
	}

	return nil
}

// redact маскирует чувствительные значения перед записью в лог.
package redact

import (
	"strconv"
	"strings"
)

// Email оставляет первые две руны локальной части и домен: "fo***@example.com".
func Email(s string) string {
	local, domain, ok := strings.Cut(s, "@")
	if !ok || strings.Contains(domain, "@") {
		return "***"
	}

	runes := []rune(local)
	if len(runes) > 2 {
		return string(runes[:2]) + "***@" + domain
	}

	return "***@" + domain
}

// ID сокращает идентификатор (jti, request id) до первых 8 символов.
func ID(s string) string {
	if len(s) <= 8 {
		return s
	}

	return s[:8] + "…"
}

// Content заменяет текст записи дневника его длиной.
func Content(s string) string {
	return "[REDACTED_CONTENT len=" + strconv.Itoa(len([]rune(s))) + "]"
}

func Token() string    { return "[REDACTED_TOKEN]" }
func Password() string { return "[REDACTED_PASSWORD]" }

package sentiment

import (
	"errors"
	"fmt"
)

// Тексты ошибок — часть контракта: они попадают в логи и в analysis_warning.
// Поэтому они начинаются с заглавной буквы и совпадают с сообщениями провайдера-обёртки.
var (
	// ErrNotConfigured — ключ API не задан; сетевой вызов не выполняется.
	ErrNotConfigured = errors.New("GitHub API key is not configured")

	// ErrEmptyText — пустой или пробельный текст; сетевой вызов не выполняется.
	ErrEmptyText = errors.New("Empty text provided for sentiment analysis")

	// ErrUnexpectedResponse — API ответило 200, но без choices[0].message.content.
	ErrUnexpectedResponse = errors.New("Unexpected API response format")
)

// StatusError — API ответило статусом, отличным от 200.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GitHub Models API request failed with status %d: %s", e.StatusCode, e.Body)
}

// RequestError — сбой на транспортном уровне (сеть, таймаут, открытый circuit breaker).
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return "Error analyzing sentiment: " + e.Err.Error()
}

func (e *RequestError) Unwrap() error { return e.Err }

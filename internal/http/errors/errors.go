// errors стандартизирует ответы об ошибках HTTP-слоя.
// На вход принимает ошибку сервисного слоя, на выход даёт:
//   - корректный HTTP-статус;
//   - стабильный машиночитаемый code и безопасное message;
//   - список ошибок полей для 400.
package errors

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/pribylovaa/thought-diary/internal/pkg/log"
	"github.com/pribylovaa/thought-diary/internal/service"
	"github.com/pribylovaa/thought-diary/internal/validation"
)

// Нестандартный код, часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// Ошибки транспортного уровня.
var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrBadRequest   = errors.New("malformed request")
	ErrRateLimited  = errors.New("rate limited")
	ErrNotFound     = errors.New("route not found")
	ErrMethod       = errors.New("method not allowed")
)

// APIError — единый формат ошибки для клиента.
type APIError struct {
	Code      string                  `json:"code"`
	Message   string                  `json:"message"`
	RequestID string                  `json:"request_id,omitempty"`
	Fields    []validation.FieldError `json:"fields,omitempty"`
}

// ErrorResponse — корневой объект ответа.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку в HTTP-статус и тело ответа.
// err == nil считается программной ошибкой вызова и даёт 500.
func ToHTTP(err error) (int, ErrorResponse) {
	var verr *validation.Errors

	switch {
	case err == nil:
		return internal()
	case errors.As(err, &verr):
		return http.StatusBadRequest, resp("validation_error", "Validation failed", verr.Fields...)
	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusBadRequest, resp("validation_error", "Validation failed",
			validation.FieldError{Field: "email", Message: "Email is already registered"})
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, resp("bad_request", "Invalid request body")
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, resp("invalid_credentials", "Invalid email or password")
	case errors.Is(err, service.ErrTokenExpired):
		return http.StatusUnauthorized, resp("token_expired", "Token has expired")
	case errors.Is(err, service.ErrTokenRevoked):
		return http.StatusUnauthorized, resp("token_revoked", "Token has been revoked")
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, resp("invalid_token", "Invalid token")
	case errors.Is(err, ErrMissingToken):
		return http.StatusUnauthorized, resp("authorization_required", "Missing Authorization header")
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, resp("forbidden", "You do not have permission to access this thought diary")
	case errors.Is(err, service.ErrDiaryNotFound):
		return http.StatusNotFound, resp("not_found", "Thought diary not found")
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound, resp("not_found", "User not found")
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, resp("not_found", "Resource not found")
	case errors.Is(err, ErrMethod):
		return http.StatusMethodNotAllowed, resp("method_not_allowed", "Method not allowed")
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests, resp("rate_limited", "Too many requests")
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, resp("canceled", "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, resp("deadline_exceeded", "deadline exceeded")
	default:
		return internal()
	}
}

// WriteError — хелпер для хендлеров и мидлваров.
// Пишет статус и тело, добавляет request_id из заголовка. 5xx логируются.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		body.Error.RequestID = rid
	}

	if status >= http.StatusInternalServerError {
		lg := log.From(r.Context())
		errText := "<nil>"
		if err != nil {
			errText = err.Error()
		}
		lg.Error("request_failed",
			slog.Int("status", status),
			slog.String("err", errText),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func resp(code, msg string, fields ...validation.FieldError) ErrorResponse {
	return ErrorResponse{Error: APIError{Code: code, Message: msg, Fields: fields}}
}

func internal() (int, ErrorResponse) {
	return http.StatusInternalServerError, resp("internal", "internal error")
}

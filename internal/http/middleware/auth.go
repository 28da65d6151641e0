package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	apierrors "github.com/pribylovaa/thought-diary/internal/http/errors"
	"github.com/pribylovaa/thought-diary/internal/models"
	"github.com/pribylovaa/thought-diary/internal/pkg/log"
)

// Authenticator проверяет токен (см. service.Authenticate).
type Authenticator interface {
	Authenticate(ctx context.Context, token string, expected models.TokenType) (*models.Claims, error)
}

type claimsKey struct{}

// RequireToken пропускает запрос дальше, только если в Authorization
// передан действующий Bearer-токен ожидаемого типа. Разобранные claims
// кладутся в контекст, а логгер запроса получает user_id.
func RequireToken(auth Authenticator, expected models.TokenType) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				apierrors.WriteError(w, r, apierrors.ErrMissingToken)
				return
			}

			claims, err := auth.Authenticate(r.Context(), token, expected)
			if err != nil {
				apierrors.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			ctx = log.With(ctx, slog.Int64("user_id", claims.UserID))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFrom возвращает claims, положенные RequireToken.
func ClaimsFrom(ctx context.Context) (*models.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*models.Claims)
	return c, ok && c != nil
}

// BearerToken извлекает токен из заголовка "Authorization: Bearer <token>".
func BearerToken(r *http.Request) (string, bool) {
	const prefix = "bearer "

	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(auth) <= len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return "", false
	}

	token := strings.TrimSpace(auth[len(prefix):])
	return token, token != ""
}

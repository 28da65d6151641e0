package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout ограничивает время обработки запроса. Более ранний дедлайн,
// уже лежащий в контексте, сохраняется. Значение <=0 делает мидлвар no-op.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if dl, ok := r.Context().Deadline(); ok && time.Until(dl) <= d {
				next.ServeHTTP(w, r)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	apierrors "github.com/pribylovaa/thought-diary/internal/http/errors"
	"github.com/pribylovaa/thought-diary/internal/pkg/log"
)

// Recover перехватывает panic и отвечает 500/internal.
// Детали паники не утекают на клиент.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.From(r.Context()).LogAttrs(r.Context(), slog.LevelError, "panic",
					slog.String("path", r.URL.Path),
					slog.Any("reason", rec),
					slog.String("stack", string(debug.Stack())),
				)
				apierrors.WriteError(w, r, fmt.Errorf("panic: %v", rec))
			}()

			next.ServeHTTP(w, r)
		})
	}
}

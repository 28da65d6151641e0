package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/pribylovaa/thought-diary/internal/config"
	apierrors "github.com/pribylovaa/thought-diary/internal/http/errors"
	"github.com/pribylovaa/thought-diary/internal/http/handlers"
	"github.com/pribylovaa/thought-diary/internal/http/middleware"
	"github.com/pribylovaa/thought-diary/internal/models"
)

// Service — сервисный слой целиком: use-cases для хендлеров и
// проверка токенов для RequireToken.
type Service interface {
	handlers.Service
	middleware.Authenticator
}

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger    *slog.Logger
	Timeout   time.Duration
	Env       string
	Version   string
	RateLimit config.RateLimitConfig
	CORS      config.CORSConfig
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc Service, opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	r := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	r.Use(
		middleware.Recover(),
		middleware.RequestID(), // до логирования
		middleware.Logging(opts.Logger),
		middleware.Metrics(),
		cors.Handler(cors.Options{
			AllowedOrigins: opts.CORS.AllowedOrigins,
			AllowedMethods: []string{
				http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
			},
			AllowedHeaders: []string{"Authorization", "Content-Type", middleware.HeaderRequestID},
			ExposedHeaders: []string{middleware.HeaderRequestID},
			MaxAge:         300,
		}),
	)
	if opts.Timeout > 0 {
		r.Use(middleware.Timeout(opts.Timeout))
	}

	h := handlers.New(svc, handlers.Options{Env: opts.Env, Version: opts.Version})

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Group(func(r chi.Router) {
		r.Use(limitIf(!opts.RateLimit.Disabled, opts.RateLimit.DefaultPerHour, time.Hour))
		registerRoutes(r, h, svc, opts.RateLimit)
	})

	return r
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, auth middleware.Authenticator, rl config.RateLimitConfig) {
	access := middleware.RequireToken(auth, models.TokenTypeAccess)

	// system
	r.Get("/health", h.Health)
	r.Get("/version", h.Version)
	r.Get("/docs", h.Docs)

	// auth
	r.Route("/auth", func(r chi.Router) {
		r.With(limitIf(!rl.Disabled, rl.RegisterPerHour, time.Hour)).Post("/register", h.RegisterUser)
		r.With(limitIf(!rl.Disabled, rl.LoginPerWindow, rl.LoginWindow)).Post("/login", h.LoginUser)
		r.Post("/refresh", h.RefreshToken)
		r.With(access).Post("/logout", h.Logout)
		r.With(access).Get("/me", h.Me)
	})

	// diaries; /stats регистрируется раньше /{id}
	r.Route("/diaries", func(r chi.Router) {
		r.Use(access)
		r.Get("/", h.ListDiaries)
		r.Post("/", h.CreateDiary)
		r.Get("/stats", h.DiaryStats)
		r.Get("/{id}", h.GetDiary)
		r.Put("/{id}", h.UpdateDiary)
		r.Delete("/{id}", h.DeleteDiary)
	})
}

// limit — ограничение по IP с ответом в едином формате ошибок.
func limit(n int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(n, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			apierrors.WriteError(w, r, apierrors.ErrRateLimited)
		}),
	)
}

func limitIf(enabled bool, n int, window time.Duration) func(http.Handler) http.Handler {
	if !enabled || n <= 0 || window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return limit(n, window)
}

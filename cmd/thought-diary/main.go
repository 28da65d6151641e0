package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/thought-diary/internal/cache"
	"github.com/pribylovaa/thought-diary/internal/config"
	apphttp "github.com/pribylovaa/thought-diary/internal/http"
	"github.com/pribylovaa/thought-diary/internal/sentiment"
	"github.com/pribylovaa/thought-diary/internal/service"
	"github.com/pribylovaa/thought-diary/internal/storage/postgres"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting thought-diary", "env", cfg.Env, "version", cfg.Version)

	// Корневой контекст по сигналам.
	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	// Подключение к БД c таймаутом.
	dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
	str, err := postgres.New(dbCtx, cfg.DB.DatabaseURL)
	dbCancel()
	if err != nil {
		log.Error("postgres_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer str.Close()
	log.Info("postgres_connected")

	blocklist, err := setupBlocklist(rootCtx, cfg, log)
	if err != nil {
		log.Error("blocklist_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := blocklist.Close(); cerr != nil {
			log.Warn("blocklist_close_failed", slog.String("err", cerr.Error()))
		}
	}()

	analyzer := sentiment.New(sentiment.Config{
		APIKey:    cfg.Sentiment.APIKey,
		Model:     cfg.Sentiment.Model,
		MaxTokens: cfg.Sentiment.MaxTokens,
		Endpoint:  cfg.Sentiment.Endpoint,
		Timeout:   cfg.Sentiment.Timeout,
	})

	srvc := service.New(str, blocklist, analyzer, cfg.Auth)
	log.Info("service_initialized", "sentiment_configured", analyzer.IsConfigured())

	apiHandler := apphttp.NewRouter(srvc, apphttp.Options{
		Logger:    log,
		Timeout:   cfg.Timeouts.Service,
		Env:       cfg.Env,
		Version:   cfg.Version,
		RateLimit: cfg.RateLimit,
		CORS:      cfg.CORS,
	})

	var ready int32 // 0 — not ready; 1 — ready

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if atomic.LoadInt32(&ready) == 1 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}

		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})

	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", apiHandler)

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)
	log.Info("service_ready")

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	log.Info("service_stopped")
}

// setupBlocklist выбирает Redis, если он настроен. In-memory реестр
// не разделяется между процессами, поэтому вне local об этом предупреждаем.
func setupBlocklist(ctx context.Context, cfg *config.Config, log *slog.Logger) (cache.Blocklist, error) {
	if cfg.Redis.RedisURL == "" {
		if cfg.Env != envLocal {
			log.Warn("blocklist_in_memory", slog.String("env", cfg.Env))
		}
		return cache.NewMemoryBlocklist(), nil
	}

	rctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	bl, err := cache.NewRedisBlocklist(rctx, cfg.Redis.RedisURL, cfg.Redis.Prefix)
	if err != nil {
		return nil, err
	}

	log.Info("redis_connected")
	return bl, nil
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

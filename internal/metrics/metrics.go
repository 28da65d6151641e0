// metrics — коллекторы Prometheus сервиса. Регистрируются в default-реестре
// и отдаются через /metrics (promhttp.Handler).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal — число обработанных HTTP-запросов.
	// route — шаблон маршрута chi (например, /diaries/{id}), а не сырой путь.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration — длительность обработки HTTP-запросов.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// SentimentRequestsTotal — исходы обращений к сервису анализа тональности.
	SentimentRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_requests_total",
			Help: "Sentiment analysis attempts by outcome",
		},
		[]string{"outcome"},
	)

	// SentimentRequestDuration — длительность сетевых вызовов провайдера.
	SentimentRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sentiment_request_duration_seconds",
			Help:    "Duration of sentiment provider calls in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	// CircuitBreakerState — 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// BlocklistOpsTotal — операции с реестром отозванных токенов.
	BlocklistOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "token_blocklist_operations_total",
			Help: "Token blocklist operations by type and result",
		},
		[]string{"op", "result"},
	)
)

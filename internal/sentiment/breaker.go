package sentiment

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/pribylovaa/thought-diary/internal/metrics"
)

// defaultBreakerSettings — размыкаем цепь после 5 подряд неудачных вызовов
// и пробуем снова через 30 секунд одним запросом.
func defaultBreakerSettings() gobreaker.Settings {
	return gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
}

func newBreaker(st gobreaker.Settings) *gobreaker.CircuitBreaker[string] {
	if st.Name == "" {
		st.Name = breakerName
	}

	st.IsSuccessful = isProviderHealthy

	st.OnStateChange = func(name string, from, to gobreaker.State) {
		slog.Default().Warn("circuit_breaker_state_changed",
			slog.String("name", name),
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
		metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
	}

	metrics.CircuitBreakerState.WithLabelValues(st.Name).Set(0)

	return gobreaker.NewCircuitBreaker[string](st)
}

// isProviderHealthy решает, считать ли исход вызова сбоем провайдера.
// Отмена запроса клиентом и отказ в обработке конкретного текста (4xx,
// кроме 429) цепь не размыкают: провайдер при этом работает.
func isProviderHealthy(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode < http.StatusInternalServerError &&
			statusErr.StatusCode != http.StatusTooManyRequests
	}

	return false
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

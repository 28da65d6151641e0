// sentiment — клиент анализа тональности поверх GitHub Models
// (chat-completion API). Модель получает системную инструкцию обернуть
// позитивные фрагменты в <span class="positive"> и негативные в
// <span class="negative"> и возвращает размеченный текст.
//
// Любой исход Analyze — либо размеченный текст, либо ошибка, но не оба сразу.
// Виды ошибок различимы (см. errors.go), однако для вызывающего кода все они
// означают одно: разметки нет.
package sentiment

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/pribylovaa/thought-diary/internal/metrics"
	"github.com/pribylovaa/thought-diary/internal/pkg/log"
)

const (
	DefaultEndpoint  = "https://models.github.ai/inference/chat/completions"
	DefaultModel     = "openai/gpt-4o"
	DefaultMaxTokens = 1000
	DefaultTimeout   = 10 * time.Second

	// temperature фиксирована и не настраивается на уровне вызова.
	temperature = 0.3

	apiVersion   = "2022-11-28"
	maxBodyBytes = 1 << 20
	breakerName  = "sentiment-api"
)

const systemPrompt = "You are a sentiment analysis assistant. Analyze the user's text and " +
	"identify positive and negative emotions, thoughts, and feelings. " +
	"Wrap positive words/phrases with <span class=\"positive\">positive text</span> " +
	"and negative words/phrases with <span class=\"negative\">negative text</span>. " +
	"Only wrap the specific words/phrases, not entire sentences. " +
	"Return ONLY the wrapped text without any additional comments or analysis."

// Переменные окружения, из которых добираются незаданные параметры.
const (
	EnvAPIKey    = "GITHUB_API_KEY"
	EnvModel     = "GITHUB_MODEL"
	EnvMaxTokens = "GITHUB_MAX_TOKENS"
	EnvEndpoint  = "GITHUB_MODELS_URL"
)

// Config — явные параметры клиента. Пустые поля берутся из окружения,
// затем из значений по умолчанию.
type Config struct {
	APIKey    string
	Model     string
	MaxTokens int
	Endpoint  string
	Timeout   time.Duration
}

// Client — клиент GitHub Models. Безопасен для конкурентного использования.
type Client struct {
	apiKey    string
	model     string
	maxTokens int
	endpoint  string
	timeout   time.Duration

	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[string]
}

// Option — функциональная опция клиента.
type Option func(*Client)

// WithHTTPClient подменяет HTTP-клиент (тесты, прокси).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBreakerSettings подменяет настройки circuit breaker.
func WithBreakerSettings(st gobreaker.Settings) Option {
	return func(c *Client) { c.breaker = newBreaker(st) }
}

// New создаёт клиент. Параметры читаются один раз: явное значение,
// затем переменная окружения, затем значение по умолчанию.
func New(cfg Config, opts ...Option) *Client {
	lg := slog.Default()

	c := &Client{
		apiKey:    firstNonEmpty(cfg.APIKey, os.Getenv(EnvAPIKey)),
		model:     firstNonEmpty(cfg.Model, os.Getenv(EnvModel), DefaultModel),
		maxTokens: resolveMaxTokens(lg, cfg.MaxTokens),
		endpoint:  firstNonEmpty(cfg.Endpoint, os.Getenv(EnvEndpoint), DefaultEndpoint),
		timeout:   cfg.Timeout,
	}

	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}

	c.httpClient = &http.Client{}
	c.breaker = newBreaker(defaultBreakerSettings())

	for _, opt := range opts {
		opt(c)
	}

	if !c.IsConfigured() {
		lg.Warn("sentiment_api_key_missing",
			slog.String("hint", "set "+EnvAPIKey+" or sentiment.api_key"),
		)
	}

	lg.Info("sentiment_client_initialized",
		slog.String("model", c.model),
		slog.Int("max_tokens", c.maxTokens),
		slog.Duration("timeout", c.timeout),
	)

	return c
}

// IsConfigured сообщает, задан ли непустой ключ API.
func (c *Client) IsConfigured() bool {
	return strings.TrimSpace(c.apiKey) != ""
}

// Model возвращает идентификатор модели.
func (c *Client) Model() string { return c.model }

// MaxTokens возвращает лимит токенов ответа.
func (c *Client) MaxTokens() int { return c.maxTokens }

// Analyze размечает текст по тональности.
// Без ключа или с пустым текстом возвращает ошибку без сетевого вызова.
func (c *Client) Analyze(ctx context.Context, text string) (string, error) {
	const op = "sentiment.Analyze"

	lg := log.From(ctx)

	if !c.IsConfigured() {
		metrics.SentimentRequestsTotal.WithLabelValues("not_configured").Inc()
		return "", ErrNotConfigured
	}

	if strings.TrimSpace(text) == "" {
		metrics.SentimentRequestsTotal.WithLabelValues("empty_text").Inc()
		return "", ErrEmptyText
	}

	start := time.Now()
	analyzed, err := c.breaker.Execute(func() (string, error) {
		return c.call(ctx, text)
	})
	metrics.SentimentRequestDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = &RequestError{Err: err}
		}

		metrics.SentimentRequestsTotal.WithLabelValues(outcome(err)).Inc()
		lg.Error("sentiment_request_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return "", err
	}

	metrics.SentimentRequestsTotal.WithLabelValues("success").Inc()

	return analyzed, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message *struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// call выполняет один POST к провайдеру с ограничением по времени.
func (c *Client) call(ctx context.Context, text string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
		Temperature: temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", &RequestError{Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", &RequestError{Err: err}
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &RequestError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", &RequestError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		log.From(ctx).Warn("sentiment_response_not_json", slog.String("err", err.Error()))
		return "", ErrUnexpectedResponse
	}

	if len(out.Choices) == 0 || out.Choices[0].Message == nil || out.Choices[0].Message.Content == nil {
		return "", ErrUnexpectedResponse
	}

	return *out.Choices[0].Message.Content, nil
}

func outcome(err error) string {
	var statusErr *StatusError

	switch {
	case errors.As(err, &statusErr):
		return "bad_status"
	case errors.Is(err, ErrUnexpectedResponse):
		return "bad_response"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	default:
		return "transport"
	}
}

func resolveMaxTokens(lg *slog.Logger, explicit int) int {
	if explicit > 0 {
		return explicit
	}

	raw, ok := os.LookupEnv(EnvMaxTokens)
	if !ok || raw == "" {
		return DefaultMaxTokens
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		lg.Warn("sentiment_max_tokens_invalid",
			slog.String("value", raw),
			slog.Int("default", DefaultMaxTokens),
		)
		return DefaultMaxTokens
	}

	return n
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}

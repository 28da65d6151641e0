package sentiment

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/require"
)

// Тесты управляют окружением через t.Setenv, поэтому не используют t.Parallel().

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvAPIKey, EnvModel, EnvMaxTokens, EnvEndpoint} {
		t.Setenv(k, "")
	}
}

type fakeAPI struct {
	hits    atomic.Int32
	handler http.HandlerFunc
}

func newFakeAPI(t *testing.T, h http.HandlerFunc) (*fakeAPI, *httptest.Server) {
	t.Helper()

	api := &fakeAPI{handler: h}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.hits.Add(1)
		api.handler(w, r)
	}))
	t.Cleanup(srv.Close)

	return api, srv
}

func replyContent(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"choices": []any{
			map[string]any{"message": map[string]any{"role": "assistant", "content": content}},
		},
	})
}

func TestAnalyze_Success_SendsExpectedRequest(t *testing.T) {
	clearEnv(t)

	const annotated = `I am <span class="positive">happy</span> but <span class="negative">tired</span>`

	var got chatRequest
	var headers http.Header
	api, srv := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		headers = r.Header.Clone()
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		replyContent(w, annotated)
	})

	c := New(Config{APIKey: "secret", Endpoint: srv.URL, MaxTokens: 256})
	out, err := c.Analyze(context.Background(), "I am happy but tired")
	require.NoError(t, err)
	require.Equal(t, annotated, out)
	require.EqualValues(t, 1, api.hits.Load())

	require.Equal(t, "Bearer secret", headers.Get("Authorization"))
	require.Equal(t, "application/vnd.github+json", headers.Get("Accept"))
	require.Equal(t, "2022-11-28", headers.Get("X-GitHub-Api-Version"))
	require.Equal(t, "application/json", headers.Get("Content-Type"))

	require.Equal(t, DefaultModel, got.Model)
	require.InDelta(t, 0.3, got.Temperature, 1e-9)
	require.Equal(t, 256, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	require.Equal(t, "system", got.Messages[0].Role)
	require.Contains(t, got.Messages[0].Content, `<span class="positive">`)
	require.Equal(t, "user", got.Messages[1].Role)
	require.Equal(t, "I am happy but tired", got.Messages[1].Content)
}

func TestAnalyze_NotConfigured_NoNetworkCall(t *testing.T) {
	clearEnv(t)

	api, srv := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) { replyContent(w, "x") })

	c := New(Config{Endpoint: srv.URL})
	require.False(t, c.IsConfigured())

	_, err := c.Analyze(context.Background(), "some text")
	require.ErrorIs(t, err, ErrNotConfigured)
	require.Equal(t, "GitHub API key is not configured", err.Error())
	require.Zero(t, api.hits.Load())
}

func TestAnalyze_EmptyText_NoNetworkCall(t *testing.T) {
	clearEnv(t)

	api, srv := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) { replyContent(w, "x") })

	c := New(Config{APIKey: "k", Endpoint: srv.URL})
	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := c.Analyze(context.Background(), text)
		require.ErrorIs(t, err, ErrEmptyText)
	}
	require.Zero(t, api.hits.Load())
}

func TestAnalyze_NonOKStatus(t *testing.T) {
	clearEnv(t)

	_, srv := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	})

	c := New(Config{APIKey: "k", Endpoint: srv.URL})
	_, err := c.Analyze(context.Background(), "text")

	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusUnauthorized, se.StatusCode)
	require.Equal(t, "bad credentials", se.Body)
	require.Equal(t, "GitHub Models API request failed with status 401: bad credentials", err.Error())
}

func TestAnalyze_UnexpectedShape(t *testing.T) {
	clearEnv(t)

	bodies := map[string]string{
		"no_choices":    `{"id":"x"}`,
		"empty_choices": `{"choices":[]}`,
		"no_message":    `{"choices":[{"index":0}]}`,
		"no_content":    `{"choices":[{"message":{"role":"assistant"}}]}`,
		"not_json":      `<html>oops</html>`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			_, srv := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, body)
			})

			c := New(Config{APIKey: "k", Endpoint: srv.URL})
			_, err := c.Analyze(context.Background(), "text")
			require.ErrorIs(t, err, ErrUnexpectedResponse)
			require.EqualError(t, err, "Unexpected API response format")
		})
	}
}

func TestAnalyze_Timeout(t *testing.T) {
	clearEnv(t)

	_, srv := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	c := New(Config{APIKey: "k", Endpoint: srv.URL, Timeout: 30 * time.Millisecond})

	start := time.Now()
	_, err := c.Analyze(context.Background(), "text")
	require.Less(t, time.Since(start), time.Second)

	var re *RequestError
	require.ErrorAs(t, err, &re)
	require.True(t, errors.Is(err, context.DeadlineExceeded))
	require.Contains(t, err.Error(), "Error analyzing sentiment: ")
}

func TestAnalyze_BreakerOpensAfterFailures(t *testing.T) {
	clearEnv(t)

	api, srv := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	c := New(Config{APIKey: "k", Endpoint: srv.URL}, WithBreakerSettings(gobreaker.Settings{
		Name:    "test-breaker",
		Timeout: time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 2
		},
	}))

	for i := 0; i < 2; i++ {
		_, err := c.Analyze(context.Background(), "text")
		var se *StatusError
		require.ErrorAs(t, err, &se)
	}

	_, err := c.Analyze(context.Background(), "text")
	var re *RequestError
	require.ErrorAs(t, err, &re)
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	require.EqualValues(t, 2, api.hits.Load())
}

// TestAnalyze_ClientErrorsDoNotOpenBreaker — отказ по конкретному тексту
// (4xx) не выключает анализ для всех, а 429 и 5xx считаются сбоями.
func TestAnalyze_ClientErrorsDoNotOpenBreaker(t *testing.T) {
	clearEnv(t)

	status := atomic.Int32{}
	status.Store(http.StatusBadRequest)

	api, srv := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(int(status.Load()))
		_, _ = io.WriteString(w, "content filtered")
	})

	c := New(Config{APIKey: "k", Endpoint: srv.URL}, WithBreakerSettings(gobreaker.Settings{
		Name:    "test-breaker-4xx",
		Timeout: time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 2
		},
	}))

	for i := 0; i < 5; i++ {
		_, err := c.Analyze(context.Background(), "text")
		var se *StatusError
		require.ErrorAs(t, err, &se)
		require.Equal(t, http.StatusBadRequest, se.StatusCode)
	}
	require.EqualValues(t, 5, api.hits.Load())

	status.Store(http.StatusTooManyRequests)
	for i := 0; i < 2; i++ {
		_, err := c.Analyze(context.Background(), "text")
		var se *StatusError
		require.ErrorAs(t, err, &se)
	}

	_, err := c.Analyze(context.Background(), "text")
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	require.EqualValues(t, 7, api.hits.Load())
}

func TestIsProviderHealthy(t *testing.T) {
	cases := map[string]struct {
		err  error
		want bool
	}{
		"nil":          {nil, true},
		"canceled":     {&RequestError{Err: context.Canceled}, true},
		"bad_request":  {&StatusError{StatusCode: http.StatusBadRequest}, true},
		"unauthorized": {&StatusError{StatusCode: http.StatusUnauthorized}, true},
		"rate_limited": {&StatusError{StatusCode: http.StatusTooManyRequests}, false},
		"server_error": {&StatusError{StatusCode: http.StatusBadGateway}, false},
		"deadline":     {&RequestError{Err: context.DeadlineExceeded}, false},
		"bad_response": {ErrUnexpectedResponse, false},
	}

	for name, c := range cases {
		require.Equal(t, c.want, isProviderHealthy(c.err), name)
	}
}

func TestNew_ResolvesFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvModel, "openai/gpt-4o-mini")
	t.Setenv(EnvMaxTokens, "512")

	c := New(Config{})
	require.True(t, c.IsConfigured())
	require.Equal(t, "openai/gpt-4o-mini", c.Model())
	require.Equal(t, 512, c.MaxTokens())
}

func TestNew_ExplicitWinsOverEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvModel, "env-model")
	t.Setenv(EnvMaxTokens, "512")

	c := New(Config{Model: "explicit-model", MaxTokens: 64})
	require.Equal(t, "explicit-model", c.Model())
	require.Equal(t, 64, c.MaxTokens())
}

func TestNew_InvalidMaxTokensFallsBackToDefault(t *testing.T) {
	clearEnv(t)

	for _, raw := range []string{"abc", "-5", "0"} {
		t.Setenv(EnvMaxTokens, raw)
		c := New(Config{})
		require.Equal(t, DefaultMaxTokens, c.MaxTokens(), raw)
	}
}

func TestNew_Defaults(t *testing.T) {
	clearEnv(t)

	c := New(Config{})
	require.False(t, c.IsConfigured())
	require.Equal(t, DefaultModel, c.Model())
	require.Equal(t, DefaultMaxTokens, c.MaxTokens())
	require.Equal(t, DefaultEndpoint, c.endpoint)
	require.Equal(t, DefaultTimeout, c.timeout)
}

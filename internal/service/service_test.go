package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/pribylovaa/thought-diary/internal/cache"
	"github.com/pribylovaa/thought-diary/internal/config"
	"github.com/pribylovaa/thought-diary/mocks"
)

func testCfg() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:       "unit-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 30 * 24 * time.Hour,
		Issuer:          "thought-diary-test",
	}
}

// fakeAnalyzer считает вызовы и отдаёт заранее заданный результат.
type fakeAnalyzer struct {
	mu         sync.Mutex
	configured bool
	result     string
	err        error
	calls      int
	texts      []string
}

func (f *fakeAnalyzer) Analyze(_ context.Context, text string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.texts = append(f.texts, text)
	if f.err != nil {
		return "", f.err
	}
	return f.result, nil
}

func (f *fakeAnalyzer) IsConfigured() bool { return f.configured }

func (f *fakeAnalyzer) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// recordingBlocklist запоминает TTL отзыва поверх in-memory реализации.
type recordingBlocklist struct {
	*cache.MemoryBlocklist
	mu   sync.Mutex
	ttls map[string]time.Duration
}

func newRecordingBlocklist() *recordingBlocklist {
	return &recordingBlocklist{
		MemoryBlocklist: cache.NewMemoryBlocklist(),
		ttls:            make(map[string]time.Duration),
	}
}

func (r *recordingBlocklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	r.mu.Lock()
	r.ttls[jti] = ttl
	r.mu.Unlock()
	return r.MemoryBlocklist.Revoke(ctx, jti, ttl)
}

func (r *recordingBlocklist) TTL(jti string) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ttls[jti]
}

// failingBlocklist имитирует недоступный Redis.
type failingBlocklist struct{}

func (failingBlocklist) Revoke(context.Context, string, time.Duration) error {
	return errors.New("redis down")
}

func (failingBlocklist) IsRevoked(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

func (failingBlocklist) Close() error { return nil }

type fixture struct {
	svc       *Service
	st        *mocks.MockStorage
	blocklist *recordingBlocklist
	analyzer  *fakeAnalyzer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	bl := newRecordingBlocklist()
	an := &fakeAnalyzer{configured: true, result: `<span class="positive">ok</span>`}

	return &fixture{
		svc:       New(st, bl, an, testCfg()),
		st:        st,
		blocklist: bl,
		analyzer:  an,
	}
}

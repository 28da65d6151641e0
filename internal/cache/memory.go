package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryBlocklist — blocklist в памяти процесса.
// Не разделяется между процессами: при нескольких воркерах нужен Redis.
type MemoryBlocklist struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewMemoryBlocklist создаёт пустой in-memory blocklist.
func NewMemoryBlocklist() *MemoryBlocklist {
	return &MemoryBlocklist{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (m *MemoryBlocklist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	m.mu.Lock()
	m.entries[jti] = m.now().Add(ttl)
	m.mu.Unlock()

	return nil
}

// IsRevoked возвращает true, только если срок записи ещё не истёк.
// Истёкшая запись удаляется при обращении (ленивая очистка).
func (m *MemoryBlocklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	exp, ok := m.entries[jti]
	if !ok {
		return false, nil
	}

	if !m.now().Before(exp) {
		delete(m.entries, jti)
		return false, nil
	}

	return true, nil
}

// Len возвращает число хранимых записей (включая ещё не вычищенные).
func (m *MemoryBlocklist) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}

func (m *MemoryBlocklist) Close() error { return nil }

var (
	_ Blocklist = (*MemoryBlocklist)(nil)
	_ Blocklist = (*redisBlocklist)(nil)
)

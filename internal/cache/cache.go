// cache содержит реестр отозванных токенов (blocklist).
//
// JWT не имеют состояния, поэтому единственный способ сделать токен
// недействительным до истечения срока — запомнить его jti. Запись живёт
// ровно столько, сколько мог бы жить сам токен, после чего забывается.
//
// Реализации:
//   - Redis — общий для всех процессов, используется в production;
//   - Memory — карта в памяти процесса, только для одного воркера/dev.
package cache

import (
	"context"
	"time"
)

// Blocklist — контракт реестра отозванных токенов.
type Blocklist interface {
	// Revoke помечает jti отозванным на ttl.
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	// IsRevoked сообщает, отозван ли jti и не истёк ли срок записи.
	IsRevoked(ctx context.Context, jti string) (bool, error)
	// Close освобождает ресурсы.
	Close() error
}

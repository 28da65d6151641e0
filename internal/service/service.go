// service содержит бизнес-логику дневника мыслей:
// регистрацию/вход пользователей, выпуск/проверку/отзыв JWT,
// CRUD записей дневника с разметкой тональности и статистику.
//
// Основные аспекты:
//   - Service не хранит состояние запроса и безопасен для конкурентного
//     использования, если безопасны переданные storage/blocklist/analyzer;
//   - ошибки оборачиваются как "op: err" и различаются через errors.Is;
//     HTTP-слой маппит их в статусы (см. комментарии к переменным ниже);
//   - ошибки входных данных возвращаются как *validation.Errors (400).
package service

import (
	"context"
	"errors"
	"time"

	"github.com/pribylovaa/thought-diary/internal/cache"
	"github.com/pribylovaa/thought-diary/internal/config"
	"github.com/pribylovaa/thought-diary/internal/storage"
)

var (
	// ErrInvalidCredentials — неизвестный e-mail или неверный пароль (401).
	// Какая из половин неверна, не раскрывается.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken — неверная подпись/формат/тип токена (401).
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк (401).
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenRevoked — токен отозван через logout (401).
	ErrTokenRevoked = errors.New("token revoked")

	// ErrUserNotFound — пользователь из токена не существует (404).
	ErrUserNotFound = errors.New("user not found")

	// ErrDiaryNotFound — запись дневника не найдена (404).
	ErrDiaryNotFound = errors.New("thought diary not found")

	// ErrForbidden — запись принадлежит другому пользователю (403).
	ErrForbidden = errors.New("forbidden")

	// ErrEmailTaken — e-mail уже зарегистрирован (400, ошибка поля email).
	ErrEmailTaken = errors.New("email already registered")
)

// Analyzer — клиент анализа тональности (см. пакет sentiment).
type Analyzer interface {
	Analyze(ctx context.Context, text string) (string, error)
	IsConfigured() bool
}

// Service описывает бизнес-логику сервиса.
type Service struct {
	storage   storage.Storage
	blocklist cache.Blocklist
	analyzer  Analyzer
	cfg       config.AuthConfig
	now       func() time.Time
}

// New создаёт новый экземпляр Service.
// analyzer может быть nil: тогда записи сохраняются без разметки.
func New(storage storage.Storage, blocklist cache.Blocklist, analyzer Analyzer, cfg config.AuthConfig) *Service {
	return &Service{
		storage:   storage,
		blocklist: blocklist,
		analyzer:  analyzer,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Ping проверяет доступность БД (для /health).
func (s *Service) Ping(ctx context.Context) error {
	return s.storage.Ping(ctx)
}

package models

import "time"

// TokenType — назначение JWT.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims — разобранные и проверенные данные токена.
type Claims struct {
	UserID    int64
	JTI       string
	Type      TokenType
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ExpiryWindows — сроки жизни токенов из конфигурации.
type ExpiryWindows struct {
	Access  time.Duration
	Refresh time.Duration
}

package models

import "time"

// User — модель пользователя в системе.
// PasswordHash хранит только bcrypt-хэш, открытый пароль нигде не сохраняется.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

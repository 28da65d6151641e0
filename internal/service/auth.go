package service

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/thought-diary/internal/models"
	"github.com/pribylovaa/thought-diary/internal/pkg/log"
	"github.com/pribylovaa/thought-diary/internal/pkg/redact"
	"github.com/pribylovaa/thought-diary/internal/storage"
	"github.com/pribylovaa/thought-diary/internal/validation"
)

const bcryptMaxBytes = 72

type registerInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=100,password"`
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterUser регистрирует нового пользователя.
// E-mail обрезается и приводится к нижнему регистру.
func (s *Service) RegisterUser(ctx context.Context, email, password string) (*models.User, error) {
	const op = "service.auth.RegisterUser"

	lg := log.From(ctx)

	in := registerInput{Email: normalizeEmail(email), Password: password}
	if err := validation.Struct(&in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_, err := s.storage.UserByEmail(ctx, in.Email)
	if err == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()
	user := &models.User{
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("user_registered",
		slog.Int64("user_id", user.ID),
		slog.String("email", redact.Email(user.Email)),
	)

	return user, nil
}

// LoginUser проверяет пару e-mail/пароль и выпускает пару токенов.
func (s *Service) LoginUser(ctx context.Context, email, password string) (*models.User, *models.TokenPair, error) {
	const op = "service.auth.LoginUser"

	in := loginInput{Email: normalizeEmail(email), Password: password}
	if err := validation.Struct(&in); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.storage.UserByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(user.PasswordHash, in.Password) {
		log.From(ctx).Warn("login_wrong_password",
			slog.String("email", redact.Email(in.Email)),
		)
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	tokens, err := s.IssueTokens(ctx, user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, tokens, nil
}

// UserByID возвращает профиль пользователя.
func (s *Service) UserByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "service.auth.UserByID"

	user, err := s.storage.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// Logout отзывает предъявленный access-токен.
// Если передан refresh-токен того же пользователя — отзывается и он.
// Refresh-токен проверяется до любого отзыва: отклонённый запрос
// оставляет сессию нетронутой.
func (s *Service) Logout(ctx context.Context, access *models.Claims, refreshToken string) error {
	const op = "service.auth.Logout"

	var refresh *models.Claims
	if refreshToken != "" {
		claims, err := s.Authenticate(ctx, refreshToken, models.TokenTypeRefresh)
		switch {
		case errors.Is(err, ErrTokenRevoked):
		case err != nil:
			return fmt.Errorf("%s: %w", op, err)
		case claims.UserID != access.UserID:
			return fmt.Errorf("%s: %w", op, ErrInvalidToken)
		default:
			refresh = claims
		}
	}

	if err := s.revoke(ctx, access); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if refresh == nil {
		return nil
	}

	if err := s.revoke(ctx, refresh); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// hashPassword хэширует пароль с помощью bcrypt.
func hashPassword(password string) (string, error) {
	const op = "service.auth.hashPassword"

	bytes, err := bcrypt.GenerateFromPassword(passwordBytes(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(bytes), nil
}

// checkPassword сравнивает пароль с хэшем.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), passwordBytes(password)) == nil
}

// passwordBytes укладывает пароль в лимит bcrypt (72 байта): длинные
// пароли предварительно сворачиваются через SHA-256.
func passwordBytes(password string) []byte {
	if len(password) <= bcryptMaxBytes {
		return []byte(password)
	}

	sum := sha256.Sum256([]byte(password))
	return []byte(base64.RawStdEncoding.EncodeToString(sum[:]))
}

func normalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

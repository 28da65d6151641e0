package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pribylovaa/thought-diary/internal/metrics"
	"github.com/pribylovaa/thought-diary/internal/models"
	"github.com/pribylovaa/thought-diary/internal/pkg/log"
	"github.com/pribylovaa/thought-diary/internal/pkg/redact"
)

// tokenClaims — полезная нагрузка JWT. sub — строковый ID пользователя.
type tokenClaims struct {
	Type models.TokenType `json:"type"`
	jwt.RegisteredClaims
}

// ExpiryWindows возвращает сроки жизни токенов из конфигурации.
func (s *Service) ExpiryWindows() models.ExpiryWindows {
	return models.ExpiryWindows{
		Access:  s.cfg.AccessTokenTTL,
		Refresh: s.cfg.RefreshTokenTTL,
	}
}

// IssueTokens выпускает пару access/refresh для пользователя.
func (s *Service) IssueTokens(ctx context.Context, userID int64) (*models.TokenPair, error) {
	const op = "service.token.IssueTokens"

	now := s.now()

	access, accessExp, err := s.signToken(ctx, userID, models.TokenTypeAccess, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refresh, _, err := s.signToken(ctx, userID, models.TokenTypeRefresh, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		AccessToken:     access,
		RefreshToken:    refresh,
		AccessExpiresAt: accessExp,
	}, nil
}

// RefreshAccessToken выпускает новый access-токен по refresh-токену.
// Сам refresh-токен не ротируется и остаётся действительным до своего срока.
func (s *Service) RefreshAccessToken(ctx context.Context, refreshToken string) (string, time.Time, error) {
	const op = "service.token.RefreshAccessToken"

	claims, err := s.Authenticate(ctx, refreshToken, models.TokenTypeRefresh)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.UserByID(ctx, claims.UserID); err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	access, exp, err := s.signToken(ctx, claims.UserID, models.TokenTypeAccess, s.now())
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	return access, exp, nil
}

// Authenticate проверяет подпись, срок, издателя и тип токена,
// затем сверяется с blocklist. Вызывается на каждый защищённый запрос.
func (s *Service) Authenticate(ctx context.Context, tokenStr string, expected models.TokenType) (*models.Claims, error) {
	const op = "service.token.Authenticate"

	lg := log.From(ctx)

	claims, err := s.parseToken(tokenStr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if claims.Type != expected {
		lg.Warn("token_type_mismatch",
			slog.String("expected", string(expected)),
			slog.String("got", string(claims.Type)),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	revoked, err := s.blocklist.IsRevoked(ctx, claims.JTI)
	if err != nil {
		metrics.BlocklistOpsTotal.WithLabelValues("check", "error").Inc()
		lg.Error("blocklist_check_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if revoked {
		metrics.BlocklistOpsTotal.WithLabelValues("check", "revoked").Inc()
		lg.Warn("token_revoked",
			slog.Int64("user_id", claims.UserID),
			slog.String("jti", redact.ID(claims.JTI)),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrTokenRevoked)
	}

	metrics.BlocklistOpsTotal.WithLabelValues("check", "ok").Inc()

	return claims, nil
}

// signToken подписывает токен заданного типа со свежим jti.
func (s *Service) signToken(ctx context.Context, userID int64, typ models.TokenType, now time.Time) (string, time.Time, error) {
	const op = "service.token.signToken"

	exp := now.Add(s.ttl(typ))

	claims := tokenClaims{
		Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		log.From(ctx).Error("token_sign_failed",
			slog.String("op", op),
			slog.String("type", string(typ)),
			slog.String("err", err.Error()),
		)
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	return signed, exp, nil
}

// parseToken проверяет подпись и стандартные claims без обращения к blocklist.
func (s *Service) parseToken(tokenStr string) (*models.Claims, error) {
	const op = "service.token.parseToken"

	token, err := jwt.ParseWithClaims(tokenStr, &tokenClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return []byte(s.cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	out := &models.Claims{
		UserID: userID,
		JTI:    claims.ID,
		Type:   claims.Type,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}

// revoke заносит jti в blocklist на полный срок жизни токена данного типа.
func (s *Service) revoke(ctx context.Context, claims *models.Claims) error {
	const op = "service.token.revoke"

	if err := s.blocklist.Revoke(ctx, claims.JTI, s.ttl(claims.Type)); err != nil {
		metrics.BlocklistOpsTotal.WithLabelValues("revoke", "error").Inc()
		return fmt.Errorf("%s: %w", op, err)
	}

	metrics.BlocklistOpsTotal.WithLabelValues("revoke", "ok").Inc()
	log.From(ctx).Info("token_revoked",
		slog.Int64("user_id", claims.UserID),
		slog.String("type", string(claims.Type)),
		slog.String("jti", redact.ID(claims.JTI)),
	)

	return nil
}

func (s *Service) ttl(typ models.TokenType) time.Duration {
	if typ == models.TokenTypeRefresh {
		return s.cfg.RefreshTokenTTL
	}

	return s.cfg.AccessTokenTTL
}

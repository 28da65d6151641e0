package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/thought-diary/internal/config"
	"github.com/pribylovaa/thought-diary/internal/models"
	"github.com/pribylovaa/thought-diary/internal/storage"
)

func TestIssueTokens_ClaimsShape(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	tp, err := f.svc.IssueTokens(context.Background(), 7)
	require.NoError(t, err)

	for typ, tok := range map[models.TokenType]string{
		models.TokenTypeAccess:  tp.AccessToken,
		models.TokenTypeRefresh: tp.RefreshToken,
	} {
		mc := jwt.MapClaims{}
		_, _, err := jwt.NewParser().ParseUnverified(tok, mc)
		require.NoError(t, err)

		require.Equal(t, "7", mc["sub"], "sub должен быть строкой")
		require.Equal(t, string(typ), mc["type"])
		require.Equal(t, "thought-diary-test", mc["iss"])
		require.NotEmpty(t, mc["jti"])
		require.Contains(t, mc, "iat")
		require.Contains(t, mc, "exp")
	}

	access, err := f.svc.Authenticate(context.Background(), tp.AccessToken, models.TokenTypeAccess)
	require.NoError(t, err)
	refresh, err := f.svc.Authenticate(context.Background(), tp.RefreshToken, models.TokenTypeRefresh)
	require.NoError(t, err)

	require.NotEqual(t, access.JTI, refresh.JTI)
	require.Equal(t, 15*time.Minute, access.ExpiresAt.Sub(access.IssuedAt))
	require.Equal(t, 30*24*time.Hour, refresh.ExpiresAt.Sub(refresh.IssuedAt))
}

func TestExpiryWindows(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	w := f.svc.ExpiryWindows()

	require.Equal(t, 15*time.Minute, w.Access)
	require.Equal(t, 30*24*time.Hour, w.Refresh)
}

func TestRefreshAccessToken_OK(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	tp, err := f.svc.IssueTokens(ctx, 9)
	require.NoError(t, err)

	f.st.EXPECT().UserByID(gomock.Any(), int64(9)).Return(&models.User{ID: 9}, nil).Times(2)

	access, exp, err := f.svc.RefreshAccessToken(ctx, tp.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, tp.AccessToken, access)
	require.WithinDuration(t, time.Now().Add(15*time.Minute), exp, 5*time.Second)

	claims, err := f.svc.Authenticate(ctx, access, models.TokenTypeAccess)
	require.NoError(t, err)
	require.EqualValues(t, 9, claims.UserID)

	// Refresh не ротируется: им можно воспользоваться повторно.
	_, _, err = f.svc.RefreshAccessToken(ctx, tp.RefreshToken)
	require.NoError(t, err)
}

func TestRefreshAccessToken_WithAccessToken_Fails(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	tp, err := f.svc.IssueTokens(ctx, 9)
	require.NoError(t, err)

	_, _, err = f.svc.RefreshAccessToken(ctx, tp.AccessToken)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = f.svc.Authenticate(ctx, tp.RefreshToken, models.TokenTypeAccess)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshAccessToken_UserGone(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	tp, err := f.svc.IssueTokens(ctx, 9)
	require.NoError(t, err)

	f.st.EXPECT().UserByID(gomock.Any(), int64(9)).Return(nil, storage.ErrNotFound)

	_, _, err = f.svc.RefreshAccessToken(ctx, tp.RefreshToken)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthenticate_Expired(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	past := time.Now().Add(-time.Hour).UTC()
	f.svc.now = func() time.Time { return past }
	tp, err := f.svc.IssueTokens(ctx, 1)
	require.NoError(t, err)

	f.svc.now = func() time.Time { return time.Now().UTC() }

	_, err = f.svc.Authenticate(ctx, tp.AccessToken, models.TokenTypeAccess)
	require.ErrorIs(t, err, ErrTokenExpired)

	// Refresh живёт 30 дней и всё ещё действителен.
	_, err = f.svc.Authenticate(ctx, tp.RefreshToken, models.TokenTypeRefresh)
	require.NoError(t, err)
}

func TestAuthenticate_BadTokens(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	other := New(f.st, f.blocklist, f.analyzer, func() (c config.AuthConfig) {
		c = testCfg()
		c.JWTSecret = "another-secret"
		return c
	}())
	foreign, err := other.IssueTokens(ctx, 1)
	require.NoError(t, err)

	wrongIssuer := New(f.st, f.blocklist, f.analyzer, func() (c config.AuthConfig) {
		c = testCfg()
		c.Issuer = "someone-else"
		return c
	}())
	foreignIss, err := wrongIssuer.IssueTokens(ctx, 1)
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "1", "type": "access", "jti": "x", "iss": "thought-diary-test",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"garbage":      "not.a.jwt",
		"empty":        "",
		"wrong_secret": foreign.AccessToken,
		"wrong_issuer": foreignIss.AccessToken,
		"alg_none":     noneAlg,
	} {
		_, err := f.svc.Authenticate(ctx, tok, models.TokenTypeAccess)
		require.ErrorIs(t, err, ErrInvalidToken, name)
	}
}

func TestAuthenticate_NonNumericSubject(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	cfg := testCfg()
	now := time.Now()

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Type: models.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-1",
			Subject:   "alice",
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		},
	}).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	_, err = f.svc.Authenticate(context.Background(), tok, models.TokenTypeAccess)
	require.ErrorIs(t, err, ErrInvalidToken)
}

// TestLogout_RevokesOnlyThatToken — отозванный токен отклоняется,
// другой токен того же пользователя продолжает работать.
func TestLogout_RevokesOnlyThatToken(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.IssueTokens(ctx, 4)
	require.NoError(t, err)
	second, err := f.svc.IssueTokens(ctx, 4)
	require.NoError(t, err)

	claims, err := f.svc.Authenticate(ctx, first.AccessToken, models.TokenTypeAccess)
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(ctx, claims, ""))

	for i := 0; i < 3; i++ {
		_, err = f.svc.Authenticate(ctx, first.AccessToken, models.TokenTypeAccess)
		require.ErrorIs(t, err, ErrTokenRevoked)
	}

	_, err = f.svc.Authenticate(ctx, second.AccessToken, models.TokenTypeAccess)
	require.NoError(t, err)

	require.Equal(t, 15*time.Minute, f.blocklist.TTL(claims.JTI))
}

func TestLogout_WithRefreshToken(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	tp, err := f.svc.IssueTokens(ctx, 4)
	require.NoError(t, err)

	access, err := f.svc.Authenticate(ctx, tp.AccessToken, models.TokenTypeAccess)
	require.NoError(t, err)
	refresh, err := f.svc.Authenticate(ctx, tp.RefreshToken, models.TokenTypeRefresh)
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(ctx, access, tp.RefreshToken))

	_, _, err = f.svc.RefreshAccessToken(ctx, tp.RefreshToken)
	require.ErrorIs(t, err, ErrTokenRevoked)
	require.Equal(t, 30*24*time.Hour, f.blocklist.TTL(refresh.JTI))
}

func TestLogout_ForeignRefreshToken(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	mine, err := f.svc.IssueTokens(ctx, 4)
	require.NoError(t, err)
	theirs, err := f.svc.IssueTokens(ctx, 5)
	require.NoError(t, err)

	access, err := f.svc.Authenticate(ctx, mine.AccessToken, models.TokenTypeAccess)
	require.NoError(t, err)

	err = f.svc.Logout(ctx, access, theirs.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = f.svc.Authenticate(ctx, theirs.RefreshToken, models.TokenTypeRefresh)
	require.NoError(t, err)

	_, err = f.svc.Authenticate(ctx, mine.AccessToken, models.TokenTypeAccess)
	require.NoError(t, err)
}

// TestLogout_RejectedRefreshKeepsSession — если refresh-токен из тела
// отклонён, access-токен не отзывается и продолжает работать.
func TestLogout_RejectedRefreshKeepsSession(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	tp, err := f.svc.IssueTokens(ctx, 4)
	require.NoError(t, err)

	access, err := f.svc.Authenticate(ctx, tp.AccessToken, models.TokenTypeAccess)
	require.NoError(t, err)

	for name, bad := range map[string]string{
		"garbage":    "garbage",
		"wrong_type": tp.AccessToken,
	} {
		err := f.svc.Logout(ctx, access, bad)
		require.ErrorIs(t, err, ErrInvalidToken, name)

		_, err = f.svc.Authenticate(ctx, tp.AccessToken, models.TokenTypeAccess)
		require.NoError(t, err, name)
	}

	require.Zero(t, f.blocklist.Len())
}

// TestLogout_AlreadyRevokedRefresh — повторный выход с уже отозванным
// refresh-токеном всё равно отзывает текущий access-токен.
func TestLogout_AlreadyRevokedRefresh(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.IssueTokens(ctx, 4)
	require.NoError(t, err)
	firstAccess, err := f.svc.Authenticate(ctx, first.AccessToken, models.TokenTypeAccess)
	require.NoError(t, err)
	require.NoError(t, f.svc.Logout(ctx, firstAccess, first.RefreshToken))

	second, err := f.svc.IssueTokens(ctx, 4)
	require.NoError(t, err)
	secondAccess, err := f.svc.Authenticate(ctx, second.AccessToken, models.TokenTypeAccess)
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(ctx, secondAccess, first.RefreshToken))

	_, err = f.svc.Authenticate(ctx, second.AccessToken, models.TokenTypeAccess)
	require.ErrorIs(t, err, ErrTokenRevoked)
}

func TestAuthenticate_BlocklistUnavailable(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	svc := New(f.st, failingBlocklist{}, f.analyzer, testCfg())

	tp, err := svc.IssueTokens(context.Background(), 1)
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), tp.AccessToken, models.TokenTypeAccess)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidToken)
	require.Contains(t, err.Error(), "redis down")
}

func TestSignToken_LargeUserID(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	tok, _, err := f.svc.signToken(context.Background(), 1234567890123, models.TokenTypeAccess, time.Now())
	require.NoError(t, err)

	claims, err := f.svc.parseToken(tok)
	require.NoError(t, err)
	require.EqualValues(t, 1234567890123, claims.UserID)
}

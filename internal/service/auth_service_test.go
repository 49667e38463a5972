package service

import (
	"context"
	"testing"
	"time"

	"skillswap-hub/internal/config"
	"skillswap-hub/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "testsecretkeydontuseinproduction32bytes!"

func newTestAuthService(t *testing.T, allowDemo bool) *authServiceImpl {
	t.Helper()
	svc, err := NewAuthService(config.AuthConfig{
		JWTSecret:       testSecret,
		AccessTokenTTL:  15 * time.Minute,
		AllowDemoTokens: allowDemo,
	})
	require.NoError(t, err)
	impl := svc.(*authServiceImpl)
	impl.now = func() time.Time { return fixedNow }
	return impl
}

func TestNewAuthService_RejectsShortSecret(t *testing.T) {
	_, err := NewAuthService(config.AuthConfig{JWTSecret: "short"})
	assert.Error(t, err)
}

func TestAuthService_CreateAndValidate(t *testing.T) {
	svc := newTestAuthService(t, false)
	ctx := context.Background()

	token, expiresAt, err := svc.CreateJWT(ctx, "user-1", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(time.Hour), expiresAt)

	claims, err := svc.ValidateJWT(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, "skillswap-hub", claims.Issuer)
}

func TestAuthService_ValidateJWT_Failures(t *testing.T) {
	svc := newTestAuthService(t, false)
	ctx := context.Background()

	t.Run("expired", func(t *testing.T) {
		token, _, err := svc.CreateJWT(ctx, "user-1", time.Minute)
		require.NoError(t, err)
		svc.now = func() time.Time { return fixedNow.Add(2 * time.Minute) }
		defer func() { svc.now = func() time.Time { return fixedNow } }()

		_, err = svc.ValidateJWT(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidJWTToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewAuthService(config.AuthConfig{JWTSecret: "another-secret-of-enough-length"})
		require.NoError(t, err)
		token, _, err := other.CreateJWT(ctx, "user-1", time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateJWT(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidJWTToken)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		claims := &dto.AuthClaims{
			UserID:    "user-1",
			TokenType: TokenTypeAccess,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "someone-else",
				ExpiresAt: jwt.NewNumericDate(fixedNow.Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = svc.ValidateJWT(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidJWTToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateJWT(ctx, "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidJWTToken)
	})

	t.Run("missing user id", func(t *testing.T) {
		token, _, err := svc.CreateJWT(ctx, "", time.Hour)
		require.NoError(t, err)
		_, err = svc.ValidateJWT(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidJWTToken)
	})
}

func TestAuthService_IssueDemoToken(t *testing.T) {
	ctx := context.Background()

	_, _, err := newTestAuthService(t, false).IssueDemoToken(ctx, "demo")
	assert.ErrorIs(t, err, ErrDemoTokenDisabled)

	svc := newTestAuthService(t, true)
	token, expiresAt, err := svc.IssueDemoToken(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(15*time.Minute), expiresAt)

	claims, err := svc.ValidateJWT(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "demo", claims.UserID)
}

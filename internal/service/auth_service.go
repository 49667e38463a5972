package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skillswap-hub/internal/config"
	"skillswap-hub/internal/dto"
	"skillswap-hub/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	TokenTypeAccess = "access"
	tokenIssuer     = "skillswap-hub"
	minSecretLength = 16
)

var (
	ErrInvalidJWTToken   = errors.New("invalid jwt token")
	ErrDemoTokenDisabled = errors.New("demo tokens are disabled")
)

// AuthService issues and validates access tokens. Identity itself is out of
// scope: tokens are only handed out for demo users when enabled.
type AuthService interface {
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
	CreateJWT(ctx context.Context, userID string, ttl time.Duration) (string, time.Time, error)
	IssueDemoToken(ctx context.Context, userID string) (string, time.Time, error)
}

type authServiceImpl struct {
	secret    []byte
	accessTTL time.Duration
	allowDemo bool
	now       func() time.Time
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(cfg config.AuthConfig) (AuthService, error) {
	if len(cfg.JWTSecret) < minSecretLength {
		return nil, fmt.Errorf("auth.jwt_secret must be at least %d bytes long", minSecretLength)
	}
	ttl := cfg.AccessTokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &authServiceImpl{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: ttl,
		allowDemo: cfg.AllowDemoTokens,
		now:       time.Now,
	}, nil
}

func (s *authServiceImpl) CreateJWT(ctx context.Context, userID string, ttl time.Duration) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(ttl)
	claims := &dto.AuthClaims{
		UserID:    userID,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// IssueDemoToken hands out an access token for any user id when demo tokens
// are enabled in config.
func (s *authServiceImpl) IssueDemoToken(ctx context.Context, userID string) (string, time.Time, error) {
	if !s.allowDemo {
		return "", time.Time{}, ErrDemoTokenDisabled
	}
	logger.Get().Info("Issuing demo token", zap.String("userID", userID))
	return s.CreateJWT(ctx, userID, s.accessTTL)
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(tokenIssuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Warn("JWT token expired", zap.Error(err))
		} else {
			logger.Get().Warn("JWT validation failed", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	if claims, ok := token.Claims.(*dto.AuthClaims); ok && token.Valid && claims.UserID != "" {
		return claims, nil
	}
	return nil, ErrInvalidJWTToken
}

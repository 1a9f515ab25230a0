package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/cardex/cardex-api/internal/config"
)

// JWTVerifier verifies bearer tokens using HMAC-SHA signing. It stands in
// for the external identity provider behind the Verifier interface; the
// HTTP surface never sees past that boundary.
type JWTVerifier struct {
	signingKey    []byte
	tokenLifetime time.Duration
	timeFunc      func() time.Time // Injectable for testing
	clockSkew     time.Duration    // Allowed drift between issuer and verifier clocks
}

// tokenClaims defines the structure of the JWT claims we accept.
type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Ensure JWTVerifier implements both sides of the credential boundary
var (
	_ Verifier    = (*JWTVerifier)(nil)
	_ TokenMinter = (*JWTVerifier)(nil)
)

// NewJWTVerifier creates a Verifier (and paired TokenMinter) using
// HMAC-SHA256 signing with the configured secret.
func NewJWTVerifier(cfg config.AuthConfig) (*JWTVerifier, error) {
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}

	return &JWTVerifier{
		signingKey:    []byte(cfg.JWTSecret),
		tokenLifetime: time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		timeFunc:      time.Now,
		clockSkew:     2 * time.Minute,
	}, nil
}

// Verify implements Verifier. Expired tokens map to ErrExpiredToken; every
// other rejection maps to ErrInvalidToken so callers cannot distinguish the
// failure mode beyond what the response needs.
func (s *JWTVerifier) Verify(ctx context.Context, tokenString string) (*Identity, error) {
	now := s.timeFunc()

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(s.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&tokenClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			slog.Debug("token validation failed: token expired", "error", err)
			return nil, ErrExpiredToken
		}
		slog.Debug("token validation failed", "error", err)
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Email == "" {
		slog.Debug("token validation failed: missing email claim")
		return nil, ErrInvalidToken
	}

	return &Identity{Email: claims.Email, Subject: claims.Subject}, nil
}

// MintToken implements TokenMinter.
func (s *JWTVerifier) MintToken(ctx context.Context, email string) (string, error) {
	now := s.timeFunc()

	claims := tokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifetime)),
			ID:        uuid.New().String(), // Unique token ID
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.signingKey)
	if err != nil {
		slog.Error("failed to sign token", "error", err)
		return "", fmt.Errorf("failed to sign token with HMAC-SHA256: %w", err)
	}

	return signedToken, nil
}

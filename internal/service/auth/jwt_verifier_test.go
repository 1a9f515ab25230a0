package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardex/cardex-api/internal/config"
)

func testConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "test-secret-that-is-at-least-32-characters",
		TokenLifetimeMinutes: 60,
	}
}

func TestNewJWTVerifierRejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTVerifier(config.AuthConfig{JWTSecret: "too-short"})
	require.Error(t, err)
}

func TestMintAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	verifier, err := NewJWTVerifier(testConfig())
	require.NoError(t, err)

	token, err := verifier.MintToken(context.Background(), "ash@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "ash@example.com", identity.Email)
	assert.Equal(t, "ash@example.com", identity.Subject)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	verifier, err := NewJWTVerifier(testConfig())
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	t.Parallel()

	verifier, err := NewJWTVerifier(testConfig())
	require.NoError(t, err)

	token, err := verifier.MintToken(context.Background(), "ash@example.com")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	_, err = verifier.Verify(context.Background(), tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	t.Parallel()

	minter, err := NewJWTVerifier(testConfig())
	require.NoError(t, err)

	other, err := NewJWTVerifier(config.AuthConfig{
		JWTSecret:            "another-secret-that-is-also-32-characters-long",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	token, err := minter.MintToken(context.Background(), "ash@example.com")
	require.NoError(t, err)

	_, err = other.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	verifier, err := NewJWTVerifier(testConfig())
	require.NoError(t, err)

	// Mint in the past, verify in the present. The skew allowance is two
	// minutes, so back-date far beyond it.
	issuedAt := time.Now().Add(-24 * time.Hour)
	verifier.timeFunc = func() time.Time { return issuedAt }
	token, err := verifier.MintToken(context.Background(), "ash@example.com")
	require.NoError(t, err)

	verifier.timeFunc = time.Now
	_, err = verifier.Verify(context.Background(), token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

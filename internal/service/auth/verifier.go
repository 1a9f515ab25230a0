package auth

import "context"

// Identity is the verified subject of a request. The email claim is the
// minimum every provider must supply; Subject carries the provider's own
// stable identifier when present.
type Identity struct {
	Email   string
	Subject string
}

// Verifier is the capability boundary to the identity provider: it either
// vouches for a bearer credential or rejects it. Every data-access entry
// point is gated on it; there is no anonymous fallback.
type Verifier interface {
	// Verify checks the credential and returns the identity it attests to.
	// Returns ErrExpiredToken or ErrInvalidToken on rejection.
	Verify(ctx context.Context, token string) (*Identity, error)
}

// TokenMinter issues credentials the paired Verifier accepts. It exists for
// tests and local development; production tokens come from the external
// identity provider.
type TokenMinter interface {
	// MintToken creates a signed credential for the given email claim.
	MintToken(ctx context.Context, email string) (string, error)
}

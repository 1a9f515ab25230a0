package mocks

import (
	"context"

	"github.com/cardex/cardex-api/internal/service/auth"
)

// MockVerifier implements auth.Verifier for testing.
type MockVerifier struct {
	// Custom behavior function
	VerifyFn func(ctx context.Context, token string) (*auth.Identity, error)

	// Default response values
	Identity *auth.Identity
	Err      error

	// Call tracking for verification
	VerifyCalls []string
}

// Ensure MockVerifier implements auth.Verifier
var _ auth.Verifier = (*MockVerifier)(nil)

// Verify implements the auth.Verifier interface
func (m *MockVerifier) Verify(ctx context.Context, token string) (*auth.Identity, error) {
	m.VerifyCalls = append(m.VerifyCalls, token)
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, token)
	}
	return m.Identity, m.Err
}

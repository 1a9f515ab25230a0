package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardex/cardex-api/internal/mocks"
	"github.com/cardex/cardex-api/internal/service/auth"
)

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	identity := &auth.Identity{Email: "ash@example.com", Subject: "user-1"}

	tests := []struct {
		name        string
		header      string
		verifier    *mocks.MockVerifier
		wantStatus  int
		wantError   string
		wantReached bool
	}{
		{
			name:       "missing header",
			header:     "",
			verifier:   &mocks.MockVerifier{Identity: identity},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Unauthorized",
		},
		{
			name:       "wrong scheme",
			header:     "Basic dXNlcjpwYXNz",
			verifier:   &mocks.MockVerifier{Identity: identity},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Unauthorized",
		},
		{
			name:       "bearer with empty token",
			header:     "Bearer   ",
			verifier:   &mocks.MockVerifier{Identity: identity},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Unauthorized",
		},
		{
			name:       "verification failure",
			header:     "Bearer bad-token",
			verifier:   &mocks.MockVerifier{Err: auth.ErrInvalidToken},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid token",
		},
		{
			name:       "expired token",
			header:     "Bearer stale-token",
			verifier:   &mocks.MockVerifier{Err: auth.ErrExpiredToken},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid token",
		},
		{
			name:        "valid token",
			header:      "Bearer good-token",
			verifier:    &mocks.MockVerifier{Identity: identity},
			wantStatus:  http.StatusOK,
			wantReached: true,
		},
		{
			name:        "scheme is case insensitive",
			header:      "bearer good-token",
			verifier:    &mocks.MockVerifier{Identity: identity},
			wantStatus:  http.StatusOK,
			wantReached: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reached := false
			var gotIdentity *auth.Identity
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				gotIdentity, _ = IdentityFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			mw := NewAuthMiddleware(tt.verifier, nil)
			req := httptest.NewRequest(http.MethodGet, "/cards", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			mw.Authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantReached, reached, "handler reached")
			if tt.wantError != "" {
				body := decodeErrorBody(t, rec)
				assert.Equal(t, map[string]string{"error": tt.wantError}, body)
			}
			if tt.wantReached {
				require.NotNil(t, gotIdentity)
				assert.Equal(t, "ash@example.com", gotIdentity.Email)
			}
		})
	}
}

func TestAuthenticateShortCircuitsBeforeVerify(t *testing.T) {
	t.Parallel()

	verifier := &mocks.MockVerifier{
		VerifyFn: func(ctx context.Context, token string) (*auth.Identity, error) {
			return nil, errors.New("should not be called")
		},
	}
	mw := NewAuthMiddleware(verifier, nil)

	req := httptest.NewRequest(http.MethodGet, "/cards", nil)
	rec := httptest.NewRecorder()
	mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without credentials")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, verifier.VerifyCalls)
}

func TestNewAuthMiddlewarePanicsOnNilVerifier(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewAuthMiddleware(nil, nil)
	})
}

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cardex/cardex-api/internal/api/shared"
	"github.com/cardex/cardex-api/internal/service/auth"
)

// AuthMiddleware guards routes behind bearer token verification.
type AuthMiddleware struct {
	verifier auth.Verifier
	logger   *slog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware with the given verifier.
func NewAuthMiddleware(verifier auth.Verifier, logger *slog.Logger) *AuthMiddleware {
	if verifier == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("verifier cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger.With(slog.String("component", "auth_middleware")),
	}
}

// Authenticate extracts the bearer token from the Authorization header,
// verifies it, and stores the resulting identity in the request context.
// Requests without a well-formed "Bearer <token>" header are rejected with
// 401 "Unauthorized"; requests whose token fails verification are rejected
// with 401 "Invalid token".
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
			return
		}

		identity, err := m.verifier.Verify(r.Context(), token)
		if err != nil {
			m.logger.DebugContext(r.Context(), "token verification failed",
				slog.String("error", err.Error()),
				slog.String("trace_id", shared.GetTraceID(r.Context())))
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), shared.IdentityContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken parses an Authorization header value of the form
// "Bearer <token>". The scheme comparison is case-insensitive.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}

// IdentityFromContext retrieves the authenticated identity stored by
// Authenticate, returning false when the request was not authenticated.
func IdentityFromContext(ctx context.Context) (*auth.Identity, bool) {
	identity, ok := ctx.Value(shared.IdentityContextKey).(*auth.Identity)
	return identity, ok
}

package api

import (
	"fmt"
	"net/http"

	"github.com/cardex/cardex-api/internal/api/middleware"
	"github.com/cardex/cardex-api/internal/api/shared"
)

// StatusHandler serves the liveness and auth smoke-test endpoints.
type StatusHandler struct{}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

// Home handles GET /. It carries no dependencies so it answers even when the
// database is down.
func (h *StatusHandler) Home(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Protected handles GET /protected. It echoes the verified identity's email
// so operators can confirm a token end to end.
func (h *StatusHandler) Protected(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Hello %s!", identity.Email),
	})
}

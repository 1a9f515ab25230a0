package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is the body of every non-2xx response. Clients rely on the
// single "error" field, so nothing else may serialize into it.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondWithJSON writes the given payload as JSON with the given status
// code. Encoding failures are logged but cannot be reported to the client
// because the header has already been written.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode JSON response",
			slog.String("error", err.Error()),
			slog.String("trace_id", GetTraceID(r.Context())))
	}
}

// RespondWithError writes an ErrorResponse with the given status and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithJSON(w, r, status, ErrorResponse{Error: message})
}

// RespondWithErrorAndLog logs the underlying error with the request trace ID
// and then writes the safe client-facing message. The logged error and the
// client message are deliberately decoupled so internal details never leak.
func RespondWithErrorAndLog(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, status int, message string) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.ErrorContext(r.Context(), "request failed",
		slog.String("error", err.Error()),
		slog.Int("status", status),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("trace_id", GetTraceID(r.Context())))
	RespondWithError(w, r, status, message)
}

package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/cardex/cardex-api/internal/api/shared"
	"github.com/cardex/cardex-api/internal/platform/logger"
)

// TraceMiddleware assigns each request a trace ID, echoes it in the response
// headers, and attaches a request-scoped logger to the context.
type TraceMiddleware struct {
	logger *slog.Logger
}

// NewTraceMiddleware creates a new TraceMiddleware.
func NewTraceMiddleware(baseLogger *slog.Logger) *TraceMiddleware {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}
	return &TraceMiddleware{logger: baseLogger}
}

// Trace is the middleware function. It prefers the chi request ID when one is
// present so trace IDs line up with chi's own middleware output.
func (m *TraceMiddleware) Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := chimiddleware.GetReqID(r.Context())
		if traceID == "" {
			traceID = shared.NewTraceID()
		}

		ctx := shared.WithTraceID(r.Context(), traceID)
		reqLogger := m.logger.With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, reqLogger)

		w.Header().Set(shared.TraceIDHeader, traceID)

		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		reqLogger.InfoContext(ctx, "request completed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)))
	})
}

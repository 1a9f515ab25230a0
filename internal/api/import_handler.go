package api

import (
	"log/slog"
	"net/http"

	"github.com/cardex/cardex-api/internal/api/shared"
	"github.com/cardex/cardex-api/internal/platform/logger"
	"github.com/cardex/cardex-api/internal/store"
)

// ImportHandler exposes the bulk loader's bookkeeping.
type ImportHandler struct {
	importStore store.ImportStore
	logger      *slog.Logger
}

// NewImportHandler creates a new ImportHandler with the given import store.
func NewImportHandler(importStore store.ImportStore, baseLogger *slog.Logger) *ImportHandler {
	if importStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("importStore cannot be nil")
	}
	if baseLogger == nil {
		baseLogger = slog.Default()
	}
	return &ImportHandler{
		importStore: importStore,
		logger:      baseLogger.With(slog.String("component", "import_handler")),
	}
}

// Latest handles GET /imports/latest and returns the most recent import run.
func (h *ImportHandler) Latest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	meta, err := h.importStore.Latest(r.Context())
	if err != nil {
		status := MapErrorToStatusCode(err)
		if status == http.StatusInternalServerError {
			shared.RespondWithErrorAndLog(w, r, log, err, status, GetSafeErrorMessage(err))
			return
		}
		shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewImportStatusResponse(*meta))
}

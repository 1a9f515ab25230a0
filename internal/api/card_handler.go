package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/cardex/cardex-api/internal/api/shared"
	"github.com/cardex/cardex-api/internal/filter"
	"github.com/cardex/cardex-api/internal/platform/logger"
	"github.com/cardex/cardex-api/internal/store"
)

// CardHandler serves the card catalog endpoints.
type CardHandler struct {
	cardStore store.CardStore
	logger    *slog.Logger
}

// NewCardHandler creates a new CardHandler with the given card store.
func NewCardHandler(cardStore store.CardStore, baseLogger *slog.Logger) *CardHandler {
	if cardStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("cardStore cannot be nil")
	}
	if baseLogger == nil {
		baseLogger = slog.Default()
	}
	return &CardHandler{
		cardStore: cardStore,
		logger:    baseLogger.With(slog.String("component", "card_handler")),
	}
}

// List handles GET /cards. It compiles the query string into predicates,
// applies pagination, and returns one page of summaries together with the
// filtered total.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	preds, err := filter.Compile(r.URL.Query())
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	page, err := filter.ParsePage(r.URL.Query())
	if err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	cards, total, err := h.cardStore.List(r.Context(), preds, page)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, log, err, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CardListResponse{
		Page:       page.Number,
		PageSize:   page.Size,
		Total:      total,
		TotalPages: page.TotalPages(total),
		Cards:      NewCardSummaries(cards),
	})
}

// GetByID handles GET /cards/{id} and returns the full projection.
func (h *CardHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id := chi.URLParam(r, "id")
	card, err := h.cardStore.GetByID(r.Context(), id)
	if err != nil {
		status := MapErrorToStatusCode(err)
		if status == http.StatusInternalServerError {
			shared.RespondWithErrorAndLog(w, r, log, err, status, GetSafeErrorMessage(err))
			return
		}
		shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewCardDetail(*card))
}

// Facets handles GET /cards/filters. The aggregation ignores every query
// parameter so clients always see the complete option space.
func (h *CardHandler) Facets(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	facets, err := h.cardStore.Facets(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, log, err, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewFacetsResponse(*facets))
}

// bulkRequest is the body of POST /cards/bulk. IDs is typed as []interface{}
// so non-string entries can be filtered out instead of failing the decode.
type bulkRequest struct {
	IDs []interface{} `json:"ids"`
}

// BulkGet handles POST /cards/bulk. The ids field must be a list; entries
// that are not non-blank strings are dropped, and an empty remainder is a
// client error. Duplicate IDs do not duplicate output and unknown IDs are
// silently omitted.
func (h *CardHandler) BulkGet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req bulkRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	ids := make([]string, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, ok := raw.(string)
		if !ok || strings.TrimSpace(id) == "" {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, "ids must be a non-empty list of strings")
		return
	}

	cards, err := h.cardStore.GetByIDs(r.Context(), ids)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, log, err, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BulkCardsResponse{
		Count: len(cards),
		Cards: NewCardDetails(cards),
	})
}

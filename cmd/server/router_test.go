package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardex/cardex-api/internal/config"
	"github.com/cardex/cardex-api/internal/domain"
	"github.com/cardex/cardex-api/internal/mocks"
	"github.com/cardex/cardex-api/internal/service/auth"
)

func testApplication(cardStore *mocks.MockCardStore, importStore *mocks.MockImportStore, verifier *mocks.MockVerifier) *application {
	return &application{
		config: &config.Config{
			Server: config.ServerConfig{Port: 8080, LogLevel: "info"},
		},
		logger:      slog.Default(),
		cardStore:   cardStore,
		importStore: importStore,
		verifier:    verifier,
	}
}

func TestRouterProtectsDataRoutes(t *testing.T) {
	t.Parallel()

	cardStore := &mocks.MockCardStore{}
	importStore := &mocks.MockImportStore{}
	verifier := &mocks.MockVerifier{Identity: &identityFixture}
	router := testApplication(cardStore, importStore, verifier).setupRouter()

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/protected"},
		{http.MethodGet, "/cards"},
		{http.MethodGet, "/cards/filters"},
		{http.MethodGet, "/cards/base1-4"},
		{http.MethodPost, "/cards/bulk"},
		{http.MethodGet, "/imports/latest"},
	}

	for _, route := range protected {
		route := route
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(route.method, route.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error": "Unauthorized"}`, rec.Body.String())
		})
	}

	// No protected route may touch a store without credentials.
	assert.Empty(t, cardStore.ListCalls)
	assert.Empty(t, cardStore.GetByIDCalls)
	assert.Empty(t, cardStore.GetByIDsCalls)
	assert.Zero(t, cardStore.FacetsCalls)
	assert.Zero(t, importStore.LatestCalls)
}

var identityFixture = auth.Identity{Email: "misty@example.com", Subject: "user-2"}

func TestRouterLiveness(t *testing.T) {
	t.Parallel()

	router := testApplication(&mocks.MockCardStore{}, &mocks.MockImportStore{}, &mocks.MockVerifier{}).setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestRouterAuthenticatedFlow(t *testing.T) {
	t.Parallel()

	cardStore := &mocks.MockCardStore{
		Cards: []domain.Card{{ID: "base1-4", Name: "Charizard", Number: "4"}},
		Total: 1,
	}
	verifier := &mocks.MockVerifier{Identity: &identityFixture}
	router := testApplication(cardStore, &mocks.MockImportStore{}, verifier).setupRouter()

	t.Run("protected echoes the verified email", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer token-1")
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message": "Hello misty@example.com!"}`, rec.Body.String())
	})

	t.Run("card listing works end to end", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/cards?name=Charizard", nil)
		req.Header.Set("Authorization", "Bearer token-1")
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.JSONEq(t, "1", string(body["total"]))
		require.Len(t, cardStore.ListCalls, 1)
	})

	t.Run("bulk lookup works end to end", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/cards/bulk",
			strings.NewReader(`{"ids": ["base1-4"]}`))
		req.Header.Set("Authorization", "Bearer token-1")
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"count":1`)
	})

	t.Run("responses carry a trace ID header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
	})
}

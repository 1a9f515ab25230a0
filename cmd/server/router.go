package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cardex/cardex-api/internal/api"
	apiMiddleware "github.com/cardex/cardex-api/internal/api/middleware"
)

// setupRouter creates the application router and registers all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger).Trace)

	statusHandler := api.NewStatusHandler()
	cardHandler := api.NewCardHandler(app.cardStore, app.logger)
	importHandler := api.NewImportHandler(app.importStore, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.verifier, app.logger)

	// Public endpoints
	r.Get("/", statusHandler.Home)

	// Protected endpoints
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/protected", statusHandler.Protected)

		r.Get("/cards", cardHandler.List)
		r.Get("/cards/filters", cardHandler.Facets)
		r.Get("/cards/{id}", cardHandler.GetByID)
		r.Post("/cards/bulk", cardHandler.BulkGet)

		r.Get("/imports/latest", importHandler.Latest)
	})

	return r
}

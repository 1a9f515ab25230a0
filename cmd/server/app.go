package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cardex/cardex-api/internal/config"
	"github.com/cardex/cardex-api/internal/platform/postgres"
	"github.com/cardex/cardex-api/internal/service/auth"
	"github.com/cardex/cardex-api/internal/store"
)

// application holds the wired dependencies of a running server. Everything
// downstream of main receives its collaborators from here; no package reads
// configuration or opens connections on its own.
type application struct {
	config *config.Config
	logger *slog.Logger

	pool        *pgxpool.Pool
	cardStore   store.CardStore
	importStore store.ImportStore
	verifier    auth.Verifier
}

// newApplication connects to the database and builds the dependency graph.
func newApplication(ctx context.Context, cfg *config.Config, appLogger *slog.Logger) (*application, error) {
	pool, err := connectDatabase(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	appLogger.Info("Database connection established",
		slog.Int("max_conns", cfg.Database.MaxConns))

	verifier, err := auth.NewJWTVerifier(cfg.Auth)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create token verifier: %w", err)
	}

	return &application{
		config:      cfg,
		logger:      appLogger,
		pool:        pool,
		cardStore:   postgres.NewPostgresCardStore(pool, appLogger),
		importStore: postgres.NewPostgresImportStore(pool, appLogger),
		verifier:    verifier,
	}, nil
}

// cleanup releases resources held by the application. Safe to call more than
// once.
func (app *application) cleanup() {
	if app.pool != nil {
		app.pool.Close()
		app.pool = nil
		app.logger.Info("Database connection pool closed")
	}
}

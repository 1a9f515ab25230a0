package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cardex/cardex-api/internal/domain"
	"github.com/cardex/cardex-api/internal/store"
)

// PostgresImportStore implements the store.ImportStore interface using a
// PostgreSQL database as the storage backend.
type PostgresImportStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresImportStore creates a new PostgreSQL implementation of the
// ImportStore interface.
func NewPostgresImportStore(db store.DBTX, logger *slog.Logger) *PostgresImportStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresImportStore{
		db:     db,
		logger: logger.With(slog.String("component", "import_store")),
	}
}

// Ensure PostgresImportStore implements store.ImportStore interface
var _ store.ImportStore = (*PostgresImportStore)(nil)

// Latest implements store.ImportStore.Latest. The importer stores the
// completeness flag as an integer, so it is normalized to a bool here.
func (s *PostgresImportStore) Latest(ctx context.Context) (*domain.ImportMetadata, error) {
	const query = `
		SELECT id, "totalCount", "importedAt", COALESCE("isFullImport", 0) <> 0
		FROM "ImportMetadata"
		ORDER BY "importedAt" DESC NULLS LAST
		LIMIT 1
	`

	var m domain.ImportMetadata
	err := s.db.QueryRow(ctx, query).Scan(&m.ID, &m.TotalCount, &m.ImportedAt, &m.IsFullImport)
	if err != nil {
		if store.IsNotFoundError(mapError(err)) {
			return nil, store.ErrImportNotFound
		}
		return nil, fmt.Errorf("loading latest import: %w", err)
	}
	return &m, nil
}

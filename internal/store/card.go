package store

import (
	"context"

	"github.com/cardex/cardex-api/internal/domain"
	"github.com/cardex/cardex-api/internal/filter"
)

// CardStore defines the read operations the API performs against the card
// catalog. The catalog is populated by an external bulk importer; nothing
// here mutates it.
type CardStore interface {
	// GetByID retrieves a single card at full depth: owning set (with set
	// legalities), child rows, legalities, images, market snapshot and
	// marketplace record all loaded.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id string) (*domain.Card, error)

	// List retrieves one page of cards satisfying the conjunction of
	// predicates, loaded at summary depth (set reference, images, pricing
	// excerpts). Tables referenced by any predicate are outer-joined so a
	// card is only excluded by a failed predicate, never by a missing
	// joined row. The returned count is the total number of matching rows
	// before pagination.
	List(ctx context.Context, preds []filter.Predicate, page filter.Page) ([]domain.Card, int, error)

	// GetByIDs retrieves every existing card whose ID is in the given set,
	// at full depth. Missing IDs are silently absent from the result and
	// the result order is unspecified.
	GetByIDs(ctx context.Context, ids []string) ([]domain.Card, error)

	// Facets computes the store-wide min/max ranges and distinct value sets
	// used to populate filter UIs. It is always unfiltered.
	Facets(ctx context.Context) (*domain.Facets, error)
}

// ImportStore reads the bulk loader's bookkeeping rows.
type ImportStore interface {
	// Latest returns the most recent import record.
	// Returns ErrImportNotFound when no import has ever run.
	Latest(ctx context.Context) (*domain.ImportMetadata, error)
}

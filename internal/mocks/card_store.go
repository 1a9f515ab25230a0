package mocks

import (
	"context"

	"github.com/cardex/cardex-api/internal/domain"
	"github.com/cardex/cardex-api/internal/filter"
	"github.com/cardex/cardex-api/internal/store"
)

// MockCardStore implements store.CardStore for testing.
type MockCardStore struct {
	// Custom behavior functions
	GetByIDFn  func(ctx context.Context, id string) (*domain.Card, error)
	ListFn     func(ctx context.Context, preds []filter.Predicate, page filter.Page) ([]domain.Card, int, error)
	GetByIDsFn func(ctx context.Context, ids []string) ([]domain.Card, error)
	FacetsFn   func(ctx context.Context) (*domain.Facets, error)

	// Default response values
	Card       *domain.Card
	Cards      []domain.Card
	Total      int
	FacetsData *domain.Facets
	Err        error

	// Call tracking for verification
	GetByIDCalls  []string
	ListCalls     []ListCall
	GetByIDsCalls [][]string
	FacetsCalls   int
}

// ListCall records the arguments of one List invocation.
type ListCall struct {
	Preds []filter.Predicate
	Page  filter.Page
}

// Ensure MockCardStore implements store.CardStore
var _ store.CardStore = (*MockCardStore)(nil)

// GetByID implements the store.CardStore interface
func (m *MockCardStore) GetByID(ctx context.Context, id string) (*domain.Card, error) {
	m.GetByIDCalls = append(m.GetByIDCalls, id)
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Card, m.Err
}

// List implements the store.CardStore interface
func (m *MockCardStore) List(ctx context.Context, preds []filter.Predicate, page filter.Page) ([]domain.Card, int, error) {
	m.ListCalls = append(m.ListCalls, ListCall{Preds: preds, Page: page})
	if m.ListFn != nil {
		return m.ListFn(ctx, preds, page)
	}
	return m.Cards, m.Total, m.Err
}

// GetByIDs implements the store.CardStore interface
func (m *MockCardStore) GetByIDs(ctx context.Context, ids []string) ([]domain.Card, error) {
	m.GetByIDsCalls = append(m.GetByIDsCalls, ids)
	if m.GetByIDsFn != nil {
		return m.GetByIDsFn(ctx, ids)
	}
	return m.Cards, m.Err
}

// Facets implements the store.CardStore interface
func (m *MockCardStore) Facets(ctx context.Context) (*domain.Facets, error) {
	m.FacetsCalls++
	if m.FacetsFn != nil {
		return m.FacetsFn(ctx)
	}
	return m.FacetsData, m.Err
}

// MockImportStore implements store.ImportStore for testing.
type MockImportStore struct {
	LatestFn func(ctx context.Context) (*domain.ImportMetadata, error)

	Meta *domain.ImportMetadata
	Err  error

	LatestCalls int
}

// Ensure MockImportStore implements store.ImportStore
var _ store.ImportStore = (*MockImportStore)(nil)

// Latest implements the store.ImportStore interface
func (m *MockImportStore) Latest(ctx context.Context) (*domain.ImportMetadata, error) {
	m.LatestCalls++
	if m.LatestFn != nil {
		return m.LatestFn(ctx)
	}
	return m.Meta, m.Err
}

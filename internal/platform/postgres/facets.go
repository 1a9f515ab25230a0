package postgres

import (
	"context"
	"fmt"

	"github.com/cardex/cardex-api/internal/domain"
)

var (
	hpNum     = numericOrNull("c.hp")
	levelNum  = numericOrNull("c.level")
	numberNum = numericOrNull("c.number")
)

// Card columns store numbers as text, so the card-level ranges go through
// the same guarded cast the range filters use.
var facetRangeQuery = `
SELECT MIN(` + hpNum + `), MAX(` + hpNum + `),
       MIN(` + levelNum + `), MAX(` + levelNum + `),
       MIN(` + numberNum + `), MAX(` + numberNum + `)
FROM "Card" c
`

const marketRangeQuery = `
SELECT MIN("averageSellPrice"), MAX("averageSellPrice"),
       MIN("trendPrice"), MAX("trendPrice"),
       MIN("lowPrice"), MAX("lowPrice")
FROM "CardMarket"
`

const marketplaceRangeQuery = `
SELECT MIN("normalMarket"), MAX("normalMarket"),
       MIN("holofoilMarket"), MAX("holofoilMarket"),
       MIN("reverseHolofoilMarket"), MAX("reverseHolofoilMarket")
FROM "TcgPlayerPrices"
`

// Facets implements store.CardStore.Facets. The aggregation deliberately
// ignores all request-time filters: it describes the complete option space
// of the store so clients can populate filter-selection UIs.
func (s *PostgresCardStore) Facets(ctx context.Context) (*domain.Facets, error) {
	facets := &domain.Facets{Ranges: make(map[string]domain.FloatRange)}

	var hp, level, number domain.FloatRange
	err := s.db.QueryRow(ctx, facetRangeQuery).Scan(
		&hp.Min, &hp.Max, &level.Min, &level.Max, &number.Min, &number.Max)
	if err != nil {
		return nil, fmt.Errorf("aggregating card ranges: %w", err)
	}
	facets.Ranges["hp"] = hp
	facets.Ranges["level"] = level
	facets.Ranges["number"] = number

	var avgSell, trend, low domain.FloatRange
	err = s.db.QueryRow(ctx, marketRangeQuery).Scan(
		&avgSell.Min, &avgSell.Max, &trend.Min, &trend.Max, &low.Min, &low.Max)
	if err != nil {
		return nil, fmt.Errorf("aggregating market ranges: %w", err)
	}
	facets.Ranges["averageSellPrice"] = avgSell
	facets.Ranges["trendPrice"] = trend
	facets.Ranges["lowPrice"] = low

	var normal, holo, reverse domain.FloatRange
	err = s.db.QueryRow(ctx, marketplaceRangeQuery).Scan(
		&normal.Min, &normal.Max, &holo.Min, &holo.Max, &reverse.Min, &reverse.Max)
	if err != nil {
		return nil, fmt.Errorf("aggregating marketplace ranges: %w", err)
	}
	facets.Ranges["normalMarket"] = normal
	facets.Ranges["holofoilMarket"] = holo
	facets.Ranges["reverseHolofoilMarket"] = reverse

	for _, q := range []struct {
		column string
		dest   *[]string
	}{
		{"artist", &facets.Artists},
		{"rarity", &facets.Rarities},
		{"supertype", &facets.Supertypes},
	} {
		values, err := s.distinctColumn(ctx, q.column)
		if err != nil {
			return nil, err
		}
		*q.dest = values
	}

	types, err := s.distinctTypes(ctx)
	if err != nil {
		return nil, err
	}
	facets.Types = types

	sets, err := s.setRefs(ctx)
	if err != nil {
		return nil, err
	}
	facets.Sets = sets

	return facets, nil
}

// distinctColumn returns the sorted distinct non-empty values of a Card
// column. The column name comes from the fixed list in Facets, never from
// request input.
func (s *PostgresCardStore) distinctColumn(ctx context.Context, column string) ([]string, error) {
	query := fmt.Sprintf(
		`SELECT DISTINCT %s FROM "Card" WHERE %s IS NOT NULL AND %s <> '' ORDER BY %s`,
		column, column, column, column)

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("aggregating distinct %s: %w", column, err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning distinct %s: %w", column, err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// distinctTypes flattens the list-valued types column across all cards and
// returns the sorted distinct elements.
func (s *PostgresCardStore) distinctTypes(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx,
		`SELECT DISTINCT t FROM "Card" c, unnest(c.types) AS t WHERE t <> '' ORDER BY t`)
	if err != nil {
		return nil, fmt.Errorf("aggregating distinct types: %w", err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning distinct type: %w", err)
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// setRefs returns every set as an (id, name) pair, sorted by name.
func (s *PostgresCardStore) setRefs(ctx context.Context) ([]domain.SetRef, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, COALESCE(name, '') FROM "CardSet" ORDER BY 2, 1`)
	if err != nil {
		return nil, fmt.Errorf("aggregating sets: %w", err)
	}
	defer rows.Close()

	refs := []domain.SetRef{}
	for rows.Next() {
		var ref domain.SetRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, fmt.Errorf("scanning set: %w", err)
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

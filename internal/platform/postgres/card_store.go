package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cardex/cardex-api/internal/domain"
	"github.com/cardex/cardex-api/internal/filter"
	"github.com/cardex/cardex-api/internal/store"
)

// PostgresCardStore implements the store.CardStore interface using a
// PostgreSQL database as the storage backend.
type PostgresCardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the
// CardStore interface. It accepts a pool or transaction that is initialized
// and managed by the caller. If logger is nil, the default logger is used.
func NewPostgresCardStore(db store.DBTX, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// Ensure PostgresCardStore implements store.CardStore interface
var _ store.CardStore = (*PostgresCardStore)(nil)

// numericOrNull wraps a numeric-as-string column in a guarded cast: rows
// whose value is not numeric compare as NULL instead of raising a cast
// error mid-query.
func numericOrNull(column string) string {
	return `(CASE WHEN ` + column + ` ~ '^[0-9]+(\.[0-9]+)?$' THEN ` + column + `::numeric END)`
}

// fieldExprs maps each filterable field to the SQL expression that evaluates
// it, using the fixed aliases of listJoins/filterJoinClauses (c, cm, tpp).
var fieldExprs = map[filter.Field]string{
	filter.FieldID:        `c.id`,
	filter.FieldName:      `c.name`,
	filter.FieldSupertype: `c.supertype`,
	filter.FieldRarity:    `c.rarity`,
	filter.FieldHP:        `c.hp`,
	filter.FieldLevel:     `c.level`,
	filter.FieldNumber:    `c.number`,
	filter.FieldSetID:     `c."setId"`,
	filter.FieldArtist:    `c.artist`,

	filter.FieldHPRange:          numericOrNull("c.hp"),
	filter.FieldAverageSellPrice: `cm."averageSellPrice"`,
	filter.FieldTrendPrice:       `cm."trendPrice"`,
	filter.FieldLowPrice:         `cm."lowPrice"`,

	filter.FieldNormalMarket:          `tpp."normalMarket"`,
	filter.FieldHolofoilMarket:        `tpp."holofoilMarket"`,
	filter.FieldReverseHolofoilMarket: `tpp."reverseHolofoilMarket"`,
}

// opSQL maps comparison kinds to their SQL operator.
var opSQL = map[filter.Op]string{
	filter.OpEq:  "=",
	filter.OpGTE: ">=",
	filter.OpLTE: "<=",
	filter.OpGT:  ">",
	filter.OpLT:  "<",
}

// joinSQL holds the outer-join fragments a predicate can demand. The
// TCGplayer prices sit two hops away, so that join brings in both tables.
var joinSQL = map[filter.Join]string{
	filter.JoinCardMarket:      `LEFT JOIN "CardMarket" cm ON cm."cardId" = c.id`,
	filter.JoinTCGPlayerPrices: `LEFT JOIN "TcgPlayer" tp ON tp."cardId" = c.id LEFT JOIN "TcgPlayerPrices" tpp ON tpp.id = tp."pricesId"`,
}

// whereClause renders the predicate conjunction as SQL with positional
// arguments starting at $1. An empty predicate list yields an empty clause.
func whereClause(preds []filter.Predicate) (string, []any) {
	if len(preds) == 0 {
		return "", nil
	}
	conds := make([]string, 0, len(preds))
	args := make([]any, 0, len(preds))
	for _, p := range preds {
		conds = append(conds, fmt.Sprintf("%s %s $%d", fieldExprs[p.Field], opSQL[p.Op], len(args)+1))
		if p.Op == filter.OpEq {
			args = append(args, p.Str)
		} else {
			args = append(args, p.Num)
		}
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// filterJoinClauses renders the outer joins the predicates demand.
func filterJoinClauses(preds []filter.Predicate) string {
	joins := filter.Joins(preds)
	if len(joins) == 0 {
		return ""
	}
	parts := make([]string, 0, len(joins))
	for _, j := range joins {
		parts = append(parts, joinSQL[j])
	}
	return strings.Join(parts, " ")
}

// listSelect loads one page of cards at summary depth. Every relation the
// summary projection needs is outer-joined unconditionally, which also
// covers any join a predicate asked for.
const listSelect = `
SELECT c.id, c.name, c.supertype, c.subtypes, c.level, c.hp, c.types,
       c.artist, c.rarity, c.number, c."nationalPokedexNumbers", c."setId",
       s.id, s.name, s.series,
       ci.id, ci.small, ci.large,
       cm.id, cm."averageSellPrice", cm."lowPrice", cm."trendPrice",
       tp.id, tp.url,
       tpp.id, tpp."normalMarket", tpp."holofoilMarket", tpp."reverseHolofoilMarket"
FROM "Card" c
LEFT JOIN "CardSet" s ON s.id = c."setId"
LEFT JOIN "CardImages" ci ON ci."cardId" = c.id
LEFT JOIN "CardMarket" cm ON cm."cardId" = c.id
LEFT JOIN "TcgPlayer" tp ON tp."cardId" = c.id
LEFT JOIN "TcgPlayerPrices" tpp ON tpp.id = tp."pricesId"
`

// List implements store.CardStore.List. The total is counted against the
// filtered set before LIMIT/OFFSET so pagination metadata reflects the
// whole match, not the page.
func (s *PostgresCardStore) List(
	ctx context.Context,
	preds []filter.Predicate,
	page filter.Page,
) ([]domain.Card, int, error) {
	where, args := whereClause(preds)

	countSQL := `SELECT COUNT(*) FROM "Card" c ` + filterJoinClauses(preds)
	if where != "" {
		countSQL += " " + where
	}

	var total int
	if err := s.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting cards: %w", err)
	}

	dataSQL := listSelect
	if where != "" {
		dataSQL += where + "\n"
	}
	dataSQL += fmt.Sprintf("ORDER BY c.id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, page.Limit(), page.Offset())

	rows, err := s.db.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing cards: %w", err)
	}
	defer rows.Close()

	var cards []domain.Card
	for rows.Next() {
		card, err := scanSummaryRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning card row: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating card rows: %w", err)
	}

	s.logger.Debug("listed cards",
		slog.Int("predicates", len(preds)),
		slog.Int("total", total),
		slog.Int("returned", len(cards)))
	return cards, total, nil
}

// GetByID implements store.CardStore.GetByID.
// Returns store.ErrCardNotFound if the card does not exist.
func (s *PostgresCardStore) GetByID(ctx context.Context, id string) (*domain.Card, error) {
	cards, err := s.loadFull(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, store.ErrCardNotFound
	}
	return &cards[0], nil
}

// GetByIDs implements store.CardStore.GetByIDs. The lookup is a single
// set-membership query; IDs with no matching card are silently absent from
// the result.
func (s *PostgresCardStore) GetByIDs(ctx context.Context, ids []string) ([]domain.Card, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.loadFull(ctx, ids)
}

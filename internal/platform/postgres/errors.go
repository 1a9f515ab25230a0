package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cardex/cardex-api/internal/store"
)

// mapError maps a database error to the store-level sentinel it corresponds
// to, wrapping the original error to preserve context. Queries in this
// package funnel row-lookup failures through here so callers only ever match
// against the store package's sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}
	return err
}

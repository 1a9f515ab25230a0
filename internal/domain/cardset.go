package domain

import "time"

// CardSet is an expansion a card was printed in.
type CardSet struct {
	ID           string
	Name         *string
	Series       *string
	PrintedTotal *int
	Total        *int
	PTCGOCode    *string
	ReleaseDate  *time.Time
	UpdatedAt    *time.Time
	Symbol       *string
	Logo         *string

	Legalities *Legalities
}

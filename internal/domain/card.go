package domain

import "time"

// Card is the aggregate root of the catalog. A card belongs to at most one
// CardSet and owns its child rows (abilities, attacks, weaknesses,
// resistances) plus up to one each of Legalities, CardImages, CardMarket and
// TCGPlayer. All relations are loaded explicitly by the store; there is no
// lazy traversal.
type Card struct {
	ID                     string
	Name                   string
	Supertype              *string
	Subtypes               []string
	Level                  *string
	HP                     *string
	Types                  []string
	EvolvesFrom            *string
	EvolvesTo              []string
	Rules                  []string
	FlavorText             *string
	Artist                 *string
	Rarity                 *string
	Number                 string
	NationalPokedexNumbers []int
	SetID                  *string
	RetreatCost            []string
	ConvertedRetreatCost   *int
	CreatedAt              *time.Time
	UpdatedAt              *time.Time

	Set         *CardSet
	Abilities   []Ability
	Attacks     []Attack
	Weaknesses  []Weakness
	Resistances []Resistance
	Legalities  *Legalities
	Images      *CardImages
	Market      *CardMarket
	TCGPlayer   *TCGPlayer
}

// Ability is a named power printed on a card.
type Ability struct {
	ID     string
	CardID string
	Name   *string
	Text   *string
	Type   *string
}

// Attack is a single attack row owned by a card.
type Attack struct {
	ID                  string
	CardID              string
	Name                *string
	Cost                []string
	ConvertedEnergyCost *int
	Damage              *string
	Text                *string
}

// Weakness records a type the card is weak against and the multiplier.
type Weakness struct {
	ID     string
	CardID string
	Type   *string
	Value  *string
}

// Resistance records a type the card resists and the modifier.
type Resistance struct {
	ID     string
	CardID string
	Type   *string
	Value  *string
}

// Legalities holds per-format legality strings. The same shape is used for
// the per-card and per-set variants; which one it is depends on the owner.
type Legalities struct {
	ID        string
	Unlimited *string
	Standard  *string
	Expanded  *string
}

// CardImages holds the asset URLs for a card.
type CardImages struct {
	ID     string
	CardID string
	Small  *string
	Large  *string
}

package domain

import "time"

// CardMarket is the Cardmarket price snapshot for a single card.
type CardMarket struct {
	ID        string
	CardID    string
	URL       *string
	UpdatedAt *time.Time

	AverageSellPrice *float64
	LowPrice         *float64
	TrendPrice       *float64
	GermanProLow     *float64
	SuggestedPrice   *float64
	ReverseHoloSell  *float64
	ReverseHoloLow   *float64
	ReverseHoloTrend *float64
	LowPriceExPlus   *float64
	Avg1             *float64
	Avg7             *float64
	Avg30            *float64
	ReverseHoloAvg1  *float64
	ReverseHoloAvg7  *float64
	ReverseHoloAvg30 *float64
}

// TCGPlayer is the TCGplayer marketplace record for a card. Prices is nil
// when the marketplace row exists but carries no price block.
type TCGPlayer struct {
	ID        string
	CardID    string
	URL       *string
	UpdatedAt *time.Time
	Prices    *TCGPlayerPrices
}

// TCGPlayerPrices holds the TCGplayer price points across the three card
// finishes (normal, holofoil, reverse holofoil).
type TCGPlayerPrices struct {
	ID string

	NormalLow       *float64
	NormalMid       *float64
	NormalHigh      *float64
	NormalMarket    *float64
	NormalDirectLow *float64

	HolofoilLow       *float64
	HolofoilMid       *float64
	HolofoilHigh      *float64
	HolofoilMarket    *float64
	HolofoilDirectLow *float64

	ReverseHolofoilLow       *float64
	ReverseHolofoilMid       *float64
	ReverseHolofoilHigh      *float64
	ReverseHolofoilMarket    *float64
	ReverseHolofoilDirectLow *float64
}

package api

import (
	"time"

	"github.com/cardex/cardex-api/internal/domain"
)

// The view types in this file are the wire shapes of the API. They are
// deliberately separate from the domain types so that renaming a database
// column never silently changes a response field.

// CardDetail is the full projection of a card aggregate. Optional relations
// render as null; list fields always render as arrays, never null.
type CardDetail struct {
	ID                     string          `json:"id"`
	Name                   string          `json:"name"`
	Supertype              *string         `json:"supertype"`
	Subtypes               []string        `json:"subtypes"`
	Level                  *string         `json:"level"`
	HP                     *string         `json:"hp"`
	Types                  []string        `json:"types"`
	EvolvesFrom            *string         `json:"evolvesFrom"`
	EvolvesTo              []string        `json:"evolvesTo"`
	Rules                  []string        `json:"rules"`
	FlavorText             *string         `json:"flavorText"`
	Artist                 *string         `json:"artist"`
	Rarity                 *string         `json:"rarity"`
	Number                 string          `json:"number"`
	NationalPokedexNumbers []int           `json:"nationalPokedexNumbers"`
	RetreatCost            []string        `json:"retreatCost"`
	ConvertedRetreatCost   *int            `json:"convertedRetreatCost"`
	CreatedAt              *string         `json:"createdAt"`
	UpdatedAt              *string         `json:"updatedAt"`
	Set                    *SetDetail      `json:"set"`
	Abilities              []AbilityView   `json:"abilities"`
	Attacks                []AttackView    `json:"attacks"`
	Weaknesses             []TypeValueView `json:"weaknesses"`
	Resistances            []TypeValueView `json:"resistances"`
	Legalities             *LegalitiesView `json:"legalities"`
	Images                 *ImagesView     `json:"images"`
	CardMarket             *CardMarketView `json:"cardmarket"`
	TCGPlayer              *TCGPlayerView  `json:"tcgplayer"`
}

// CardSummary is the reduced projection used for list results.
type CardSummary struct {
	ID         string                  `json:"id"`
	Name       string                  `json:"name"`
	Supertype  *string                 `json:"supertype"`
	Subtypes   []string                `json:"subtypes"`
	Level      *string                 `json:"level"`
	HP         *string                 `json:"hp"`
	Types      []string                `json:"types"`
	Artist     *string                 `json:"artist"`
	Rarity     *string                 `json:"rarity"`
	Number     string                  `json:"number"`
	Set        *SetRefView             `json:"set"`
	Images     *ImagesView             `json:"images"`
	CardMarket *CardMarketExcerpt      `json:"cardmarket"`
	TCGPlayer  *TCGPlayerPricesExcerpt `json:"tcgplayer"`
}

// SetDetail is the full projection of a card's owning set.
type SetDetail struct {
	ID           string          `json:"id"`
	Name         *string         `json:"name"`
	Series       *string         `json:"series"`
	PrintedTotal *int            `json:"printedTotal"`
	Total        *int            `json:"total"`
	PTCGOCode    *string         `json:"ptcgoCode"`
	ReleaseDate  *string         `json:"releaseDate"`
	UpdatedAt    *string         `json:"updatedAt"`
	Symbol       *string         `json:"symbol"`
	Logo         *string         `json:"logo"`
	Legalities   *LegalitiesView `json:"legalities"`
}

// SetRefView is the minimal set reference carried by summaries.
type SetRefView struct {
	ID     string  `json:"id"`
	Name   *string `json:"name"`
	Series *string `json:"series"`
}

// AbilityView is a single ability in a card projection.
type AbilityView struct {
	Name *string `json:"name"`
	Text *string `json:"text"`
	Type *string `json:"type"`
}

// AttackView is a single attack in a card projection.
type AttackView struct {
	Name                *string  `json:"name"`
	Cost                []string `json:"cost"`
	ConvertedEnergyCost *int     `json:"convertedEnergyCost"`
	Damage              *string  `json:"damage"`
	Text                *string  `json:"text"`
}

// TypeValueView is the shared shape of weaknesses and resistances.
type TypeValueView struct {
	Type  *string `json:"type"`
	Value *string `json:"value"`
}

// LegalitiesView holds per-format legality strings.
type LegalitiesView struct {
	Unlimited *string `json:"unlimited"`
	Standard  *string `json:"standard"`
	Expanded  *string `json:"expanded"`
}

// ImagesView holds the card asset URLs.
type ImagesView struct {
	Small *string `json:"small"`
	Large *string `json:"large"`
}

// CardMarketView is the full Cardmarket price snapshot.
type CardMarketView struct {
	URL              *string  `json:"url"`
	UpdatedAt        *string  `json:"updatedAt"`
	AverageSellPrice *float64 `json:"averageSellPrice"`
	LowPrice         *float64 `json:"lowPrice"`
	TrendPrice       *float64 `json:"trendPrice"`
	GermanProLow     *float64 `json:"germanProLow"`
	SuggestedPrice   *float64 `json:"suggestedPrice"`
	ReverseHoloSell  *float64 `json:"reverseHoloSell"`
	ReverseHoloLow   *float64 `json:"reverseHoloLow"`
	ReverseHoloTrend *float64 `json:"reverseHoloTrend"`
	LowPriceExPlus   *float64 `json:"lowPriceExPlus"`
	Avg1             *float64 `json:"avg1"`
	Avg7             *float64 `json:"avg7"`
	Avg30            *float64 `json:"avg30"`
	ReverseHoloAvg1  *float64 `json:"reverseHoloAvg1"`
	ReverseHoloAvg7  *float64 `json:"reverseHoloAvg7"`
	ReverseHoloAvg30 *float64 `json:"reverseHoloAvg30"`
}

// CardMarketExcerpt is the three-field Cardmarket excerpt used in summaries.
type CardMarketExcerpt struct {
	AverageSellPrice *float64 `json:"averageSellPrice"`
	TrendPrice       *float64 `json:"trendPrice"`
	LowPrice         *float64 `json:"lowPrice"`
}

// TCGPlayerView is the full TCGplayer record including its price block.
type TCGPlayerView struct {
	URL       *string              `json:"url"`
	UpdatedAt *string              `json:"updatedAt"`
	Prices    *TCGPlayerPricesView `json:"prices"`
}

// TCGPlayerPricesView holds all fifteen TCGplayer price points.
type TCGPlayerPricesView struct {
	NormalLow       *float64 `json:"normalLow"`
	NormalMid       *float64 `json:"normalMid"`
	NormalHigh      *float64 `json:"normalHigh"`
	NormalMarket    *float64 `json:"normalMarket"`
	NormalDirectLow *float64 `json:"normalDirectLow"`

	HolofoilLow       *float64 `json:"holofoilLow"`
	HolofoilMid       *float64 `json:"holofoilMid"`
	HolofoilHigh      *float64 `json:"holofoilHigh"`
	HolofoilMarket    *float64 `json:"holofoilMarket"`
	HolofoilDirectLow *float64 `json:"holofoilDirectLow"`

	ReverseHolofoilLow       *float64 `json:"reverseHolofoilLow"`
	ReverseHolofoilMid       *float64 `json:"reverseHolofoilMid"`
	ReverseHolofoilHigh      *float64 `json:"reverseHolofoilHigh"`
	ReverseHolofoilMarket    *float64 `json:"reverseHolofoilMarket"`
	ReverseHolofoilDirectLow *float64 `json:"reverseHolofoilDirectLow"`
}

// TCGPlayerPricesExcerpt is the three-field marketplace excerpt used in
// summaries.
type TCGPlayerPricesExcerpt struct {
	NormalMarket          *float64 `json:"normalMarket"`
	HolofoilMarket        *float64 `json:"holofoilMarket"`
	ReverseHolofoilMarket *float64 `json:"reverseHolofoilMarket"`
}

// CardListResponse is the paginated envelope returned by the list endpoint.
type CardListResponse struct {
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	Total      int           `json:"total"`
	TotalPages int           `json:"total_pages"`
	Cards      []CardSummary `json:"cards"`
}

// BulkCardsResponse is the envelope returned by the bulk lookup endpoint.
type BulkCardsResponse struct {
	Count int          `json:"count"`
	Cards []CardDetail `json:"cards"`
}

// FacetsResponse groups the facet aggregation output for the filters
// endpoint.
type FacetsResponse struct {
	Ranges     map[string]domain.FloatRange `json:"ranges"`
	Categories FacetCategories              `json:"categories"`
}

// FacetCategories holds the distinct-value sets of the categorical facets.
type FacetCategories struct {
	Artists    []string        `json:"artists"`
	Rarities   []string        `json:"rarities"`
	Supertypes []string        `json:"supertypes"`
	Types      []string        `json:"types"`
	Sets       []domain.SetRef `json:"sets"`
}

// ImportStatusResponse describes the most recent bulk import run.
type ImportStatusResponse struct {
	ID           string  `json:"id"`
	TotalCount   *int    `json:"totalCount"`
	ImportedAt   *string `json:"importedAt"`
	IsFullImport bool    `json:"isFullImport"`
}

// NewCardDetail builds the full projection from a loaded card aggregate.
func NewCardDetail(card domain.Card) CardDetail {
	return CardDetail{
		ID:                     card.ID,
		Name:                   card.Name,
		Supertype:              card.Supertype,
		Subtypes:               nonNilStrings(card.Subtypes),
		Level:                  card.Level,
		HP:                     card.HP,
		Types:                  nonNilStrings(card.Types),
		EvolvesFrom:            card.EvolvesFrom,
		EvolvesTo:              nonNilStrings(card.EvolvesTo),
		Rules:                  nonNilStrings(card.Rules),
		FlavorText:             card.FlavorText,
		Artist:                 card.Artist,
		Rarity:                 card.Rarity,
		Number:                 card.Number,
		NationalPokedexNumbers: nonNilInts(card.NationalPokedexNumbers),
		RetreatCost:            nonNilStrings(card.RetreatCost),
		ConvertedRetreatCost:   card.ConvertedRetreatCost,
		CreatedAt:              formatTime(card.CreatedAt),
		UpdatedAt:              formatTime(card.UpdatedAt),
		Set:                    newSetDetail(card.Set),
		Abilities:              newAbilityViews(card.Abilities),
		Attacks:                newAttackViews(card.Attacks),
		Weaknesses:             newWeaknessViews(card.Weaknesses),
		Resistances:            newResistanceViews(card.Resistances),
		Legalities:             newLegalitiesView(card.Legalities),
		Images:                 newImagesView(card.Images),
		CardMarket:             newCardMarketView(card.Market),
		TCGPlayer:              newTCGPlayerView(card.TCGPlayer),
	}
}

// NewCardDetails builds full projections for a slice of cards, always
// returning a non-nil slice.
func NewCardDetails(cards []domain.Card) []CardDetail {
	out := make([]CardDetail, 0, len(cards))
	for _, card := range cards {
		out = append(out, NewCardDetail(card))
	}
	return out
}

// NewCardSummary builds the reduced projection from a loaded card aggregate.
func NewCardSummary(card domain.Card) CardSummary {
	summary := CardSummary{
		ID:        card.ID,
		Name:      card.Name,
		Supertype: card.Supertype,
		Subtypes:  nonNilStrings(card.Subtypes),
		Level:     card.Level,
		HP:        card.HP,
		Types:     nonNilStrings(card.Types),
		Artist:    card.Artist,
		Rarity:    card.Rarity,
		Number:    card.Number,
		Images:    newImagesView(card.Images),
	}
	if card.Set != nil {
		summary.Set = &SetRefView{
			ID:     card.Set.ID,
			Name:   card.Set.Name,
			Series: card.Set.Series,
		}
	}
	if card.Market != nil {
		summary.CardMarket = &CardMarketExcerpt{
			AverageSellPrice: card.Market.AverageSellPrice,
			TrendPrice:       card.Market.TrendPrice,
			LowPrice:         card.Market.LowPrice,
		}
	}
	if card.TCGPlayer != nil && card.TCGPlayer.Prices != nil {
		summary.TCGPlayer = &TCGPlayerPricesExcerpt{
			NormalMarket:          card.TCGPlayer.Prices.NormalMarket,
			HolofoilMarket:        card.TCGPlayer.Prices.HolofoilMarket,
			ReverseHolofoilMarket: card.TCGPlayer.Prices.ReverseHolofoilMarket,
		}
	}
	return summary
}

// NewCardSummaries builds summaries for a slice of cards, always returning a
// non-nil slice.
func NewCardSummaries(cards []domain.Card) []CardSummary {
	out := make([]CardSummary, 0, len(cards))
	for _, card := range cards {
		out = append(out, NewCardSummary(card))
	}
	return out
}

// NewFacetsResponse shapes the facet aggregation for the wire.
func NewFacetsResponse(facets domain.Facets) FacetsResponse {
	ranges := facets.Ranges
	if ranges == nil {
		ranges = map[string]domain.FloatRange{}
	}
	sets := facets.Sets
	if sets == nil {
		sets = []domain.SetRef{}
	}
	return FacetsResponse{
		Ranges: ranges,
		Categories: FacetCategories{
			Artists:    nonNilStrings(facets.Artists),
			Rarities:   nonNilStrings(facets.Rarities),
			Supertypes: nonNilStrings(facets.Supertypes),
			Types:      nonNilStrings(facets.Types),
			Sets:       sets,
		},
	}
}

// NewImportStatusResponse shapes the latest import metadata for the wire.
func NewImportStatusResponse(meta domain.ImportMetadata) ImportStatusResponse {
	return ImportStatusResponse{
		ID:           meta.ID,
		TotalCount:   meta.TotalCount,
		ImportedAt:   formatTime(meta.ImportedAt),
		IsFullImport: meta.IsFullImport,
	}
}

func newSetDetail(set *domain.CardSet) *SetDetail {
	if set == nil {
		return nil
	}
	return &SetDetail{
		ID:           set.ID,
		Name:         set.Name,
		Series:       set.Series,
		PrintedTotal: set.PrintedTotal,
		Total:        set.Total,
		PTCGOCode:    set.PTCGOCode,
		ReleaseDate:  formatTime(set.ReleaseDate),
		UpdatedAt:    formatTime(set.UpdatedAt),
		Symbol:       set.Symbol,
		Logo:         set.Logo,
		Legalities:   newLegalitiesView(set.Legalities),
	}
}

func newLegalitiesView(l *domain.Legalities) *LegalitiesView {
	if l == nil {
		return nil
	}
	return &LegalitiesView{
		Unlimited: l.Unlimited,
		Standard:  l.Standard,
		Expanded:  l.Expanded,
	}
}

func newImagesView(images *domain.CardImages) *ImagesView {
	if images == nil {
		return nil
	}
	return &ImagesView{Small: images.Small, Large: images.Large}
}

func newAbilityViews(abilities []domain.Ability) []AbilityView {
	out := make([]AbilityView, 0, len(abilities))
	for _, a := range abilities {
		out = append(out, AbilityView{Name: a.Name, Text: a.Text, Type: a.Type})
	}
	return out
}

func newAttackViews(attacks []domain.Attack) []AttackView {
	out := make([]AttackView, 0, len(attacks))
	for _, a := range attacks {
		out = append(out, AttackView{
			Name:                a.Name,
			Cost:                nonNilStrings(a.Cost),
			ConvertedEnergyCost: a.ConvertedEnergyCost,
			Damage:              a.Damage,
			Text:                a.Text,
		})
	}
	return out
}

func newWeaknessViews(weaknesses []domain.Weakness) []TypeValueView {
	out := make([]TypeValueView, 0, len(weaknesses))
	for _, w := range weaknesses {
		out = append(out, TypeValueView{Type: w.Type, Value: w.Value})
	}
	return out
}

func newResistanceViews(resistances []domain.Resistance) []TypeValueView {
	out := make([]TypeValueView, 0, len(resistances))
	for _, r := range resistances {
		out = append(out, TypeValueView{Type: r.Type, Value: r.Value})
	}
	return out
}

func newCardMarketView(market *domain.CardMarket) *CardMarketView {
	if market == nil {
		return nil
	}
	return &CardMarketView{
		URL:              market.URL,
		UpdatedAt:        formatTime(market.UpdatedAt),
		AverageSellPrice: market.AverageSellPrice,
		LowPrice:         market.LowPrice,
		TrendPrice:       market.TrendPrice,
		GermanProLow:     market.GermanProLow,
		SuggestedPrice:   market.SuggestedPrice,
		ReverseHoloSell:  market.ReverseHoloSell,
		ReverseHoloLow:   market.ReverseHoloLow,
		ReverseHoloTrend: market.ReverseHoloTrend,
		LowPriceExPlus:   market.LowPriceExPlus,
		Avg1:             market.Avg1,
		Avg7:             market.Avg7,
		Avg30:            market.Avg30,
		ReverseHoloAvg1:  market.ReverseHoloAvg1,
		ReverseHoloAvg7:  market.ReverseHoloAvg7,
		ReverseHoloAvg30: market.ReverseHoloAvg30,
	}
}

func newTCGPlayerView(tp *domain.TCGPlayer) *TCGPlayerView {
	if tp == nil {
		return nil
	}
	view := &TCGPlayerView{
		URL:       tp.URL,
		UpdatedAt: formatTime(tp.UpdatedAt),
	}
	if tp.Prices != nil {
		p := tp.Prices
		view.Prices = &TCGPlayerPricesView{
			NormalLow:       p.NormalLow,
			NormalMid:       p.NormalMid,
			NormalHigh:      p.NormalHigh,
			NormalMarket:    p.NormalMarket,
			NormalDirectLow: p.NormalDirectLow,

			HolofoilLow:       p.HolofoilLow,
			HolofoilMid:       p.HolofoilMid,
			HolofoilHigh:      p.HolofoilHigh,
			HolofoilMarket:    p.HolofoilMarket,
			HolofoilDirectLow: p.HolofoilDirectLow,

			ReverseHolofoilLow:       p.ReverseHolofoilLow,
			ReverseHolofoilMid:       p.ReverseHolofoilMid,
			ReverseHolofoilHigh:      p.ReverseHolofoilHigh,
			ReverseHolofoilMarket:    p.ReverseHolofoilMarket,
			ReverseHolofoilDirectLow: p.ReverseHolofoilDirectLow,
		}
	}
	return view
}

// formatTime renders a timestamp as RFC 3339 in UTC, or nil when unset.
func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilInts(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}

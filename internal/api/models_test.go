package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardex/cardex-api/internal/domain"
)

// bareCard returns a card with nothing but the required columns set, the
// shape of a row whose import carried no optional data.
func bareCard() domain.Card {
	return domain.Card{ID: "sv1-1", Name: "Sprigatito", Number: "1"}
}

func TestNewCardDetailNullSafety(t *testing.T) {
	t.Parallel()

	detail := NewCardDetail(bareCard())

	raw, err := json.Marshal(detail)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))

	// Absent relations render as null.
	for _, key := range []string{"set", "legalities", "images", "cardmarket", "tcgplayer"} {
		assert.JSONEq(t, "null", string(doc[key]), key)
	}

	// Absent lists render as empty arrays, never null.
	for _, key := range []string{
		"subtypes", "types", "evolvesTo", "rules", "nationalPokedexNumbers",
		"retreatCost", "abilities", "attacks", "weaknesses", "resistances",
	} {
		assert.JSONEq(t, "[]", string(doc[key]), key)
	}

	assert.JSONEq(t, "null", string(doc["createdAt"]))
}

func TestNewCardDetailFullAggregate(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	card := sampleCard()
	card.CreatedAt = &created
	card.Abilities = []domain.Ability{
		{ID: "ab-1", CardID: card.ID, Name: strPtr("Energy Burn"), Type: strPtr("Pokémon Power")},
	}
	card.Attacks = []domain.Attack{
		{ID: "at-1", CardID: card.ID, Name: strPtr("Fire Spin"), Cost: []string{"Fire", "Fire"}, ConvertedEnergyCost: intPtr(4), Damage: strPtr("100")},
	}
	card.Weaknesses = []domain.Weakness{{ID: "w-1", CardID: card.ID, Type: strPtr("Water"), Value: strPtr("×2")}}
	card.Legalities = &domain.Legalities{ID: "l-1", Unlimited: strPtr("Legal")}
	card.Set.Legalities = &domain.Legalities{ID: "sl-1", Standard: strPtr("Banned")}

	detail := NewCardDetail(card)

	assert.Equal(t, "2024-03-01T12:30:00Z", *detail.CreatedAt)
	require.NotNil(t, detail.Set)
	require.NotNil(t, detail.Set.Legalities)
	assert.Equal(t, "Banned", *detail.Set.Legalities.Standard)
	require.Len(t, detail.Abilities, 1)
	assert.Equal(t, "Energy Burn", *detail.Abilities[0].Name)
	require.Len(t, detail.Attacks, 1)
	assert.Equal(t, []string{"Fire", "Fire"}, detail.Attacks[0].Cost)
	assert.Equal(t, 4, *detail.Attacks[0].ConvertedEnergyCost)
	require.Len(t, detail.Weaknesses, 1)
	assert.Equal(t, "×2", *detail.Weaknesses[0].Value)
	assert.Empty(t, detail.Resistances)
	require.NotNil(t, detail.Legalities)
	assert.Equal(t, "Legal", *detail.Legalities.Unlimited)
	require.NotNil(t, detail.TCGPlayer)
	require.NotNil(t, detail.TCGPlayer.Prices)
	assert.Equal(t, 420.0, *detail.TCGPlayer.Prices.HolofoilMarket)
}

func TestNewCardSummaryNullSafety(t *testing.T) {
	t.Parallel()

	summary := NewCardSummary(bareCard())

	raw, err := json.Marshal(summary)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))

	for _, key := range []string{"set", "images", "cardmarket", "tcgplayer"} {
		assert.JSONEq(t, "null", string(doc[key]), key)
	}
	for _, key := range []string{"subtypes", "types"} {
		assert.JSONEq(t, "[]", string(doc[key]), key)
	}
}

// The two projections must agree wherever their shapes overlap.
func TestSummaryAgreesWithDetail(t *testing.T) {
	t.Parallel()

	card := sampleCard()
	detail := NewCardDetail(card)
	summary := NewCardSummary(card)

	assert.Equal(t, detail.ID, summary.ID)
	assert.Equal(t, detail.Name, summary.Name)
	assert.Equal(t, detail.Supertype, summary.Supertype)
	assert.Equal(t, detail.Subtypes, summary.Subtypes)
	assert.Equal(t, detail.HP, summary.HP)
	assert.Equal(t, detail.Types, summary.Types)
	assert.Equal(t, detail.Artist, summary.Artist)
	assert.Equal(t, detail.Rarity, summary.Rarity)
	assert.Equal(t, detail.Number, summary.Number)

	require.NotNil(t, summary.Set)
	assert.Equal(t, detail.Set.ID, summary.Set.ID)
	assert.Equal(t, detail.Set.Name, summary.Set.Name)
	assert.Equal(t, detail.Set.Series, summary.Set.Series)

	require.NotNil(t, summary.Images)
	assert.Equal(t, detail.Images.Small, summary.Images.Small)

	require.NotNil(t, summary.CardMarket)
	assert.Equal(t, detail.CardMarket.AverageSellPrice, summary.CardMarket.AverageSellPrice)
	assert.Equal(t, detail.CardMarket.TrendPrice, summary.CardMarket.TrendPrice)
	assert.Equal(t, detail.CardMarket.LowPrice, summary.CardMarket.LowPrice)

	require.NotNil(t, summary.TCGPlayer)
	assert.Equal(t, detail.TCGPlayer.Prices.NormalMarket, summary.TCGPlayer.NormalMarket)
	assert.Equal(t, detail.TCGPlayer.Prices.HolofoilMarket, summary.TCGPlayer.HolofoilMarket)
	assert.Equal(t, detail.TCGPlayer.Prices.ReverseHolofoilMarket, summary.TCGPlayer.ReverseHolofoilMarket)
}

// A marketplace row without a price block yields a record with a null prices
// field at full depth and no excerpt at summary depth.
func TestTCGPlayerWithoutPrices(t *testing.T) {
	t.Parallel()

	card := bareCard()
	card.TCGPlayer = &domain.TCGPlayer{ID: "tp-9", CardID: card.ID, URL: strPtr("https://prices.example/sv1-1")}

	detail := NewCardDetail(card)
	require.NotNil(t, detail.TCGPlayer)
	assert.Nil(t, detail.TCGPlayer.Prices)

	summary := NewCardSummary(card)
	assert.Nil(t, summary.TCGPlayer)
}

func TestNewImportStatusResponse(t *testing.T) {
	t.Parallel()

	imported := time.Date(2025, 1, 15, 4, 0, 0, 0, time.UTC)
	resp := NewImportStatusResponse(domain.ImportMetadata{
		ID:           "run-7",
		TotalCount:   intPtr(18234),
		ImportedAt:   &imported,
		IsFullImport: true,
	})

	assert.Equal(t, "run-7", resp.ID)
	assert.Equal(t, 18234, *resp.TotalCount)
	assert.Equal(t, "2025-01-15T04:00:00Z", *resp.ImportedAt)
	assert.True(t, resp.IsFullImport)
}

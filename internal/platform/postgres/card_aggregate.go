package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cardex/cardex-api/internal/domain"
)

// scanSummaryRow maps one row of listSelect onto a summary-depth card.
// Joined rows are assembled only when their primary key came back non-NULL,
// so a card missing any relation simply carries nil there.
func scanSummaryRow(rows pgx.Rows) (domain.Card, error) {
	var (
		c domain.Card

		setID, setName, setSeries  *string
		imgID, imgSmall, imgLarge  *string
		cmID                       *string
		cmAvgSell, cmLow, cmTrend  *float64
		tpID, tpURL                *string
		tppID                      *string
		tppNormal, tppHolo, tppRev *float64
	)

	err := rows.Scan(
		&c.ID, &c.Name, &c.Supertype, &c.Subtypes, &c.Level, &c.HP, &c.Types,
		&c.Artist, &c.Rarity, &c.Number, &c.NationalPokedexNumbers, &c.SetID,
		&setID, &setName, &setSeries,
		&imgID, &imgSmall, &imgLarge,
		&cmID, &cmAvgSell, &cmLow, &cmTrend,
		&tpID, &tpURL,
		&tppID, &tppNormal, &tppHolo, &tppRev,
	)
	if err != nil {
		return domain.Card{}, err
	}

	if setID != nil {
		c.Set = &domain.CardSet{ID: *setID, Name: setName, Series: setSeries}
	}
	if imgID != nil {
		c.Images = &domain.CardImages{ID: *imgID, CardID: c.ID, Small: imgSmall, Large: imgLarge}
	}
	if cmID != nil {
		c.Market = &domain.CardMarket{
			ID:               *cmID,
			CardID:           c.ID,
			AverageSellPrice: cmAvgSell,
			LowPrice:         cmLow,
			TrendPrice:       cmTrend,
		}
	}
	if tpID != nil {
		c.TCGPlayer = &domain.TCGPlayer{ID: *tpID, CardID: c.ID, URL: tpURL}
		if tppID != nil {
			c.TCGPlayer.Prices = &domain.TCGPlayerPrices{
				ID:                    *tppID,
				NormalMarket:          tppNormal,
				HolofoilMarket:        tppHolo,
				ReverseHolofoilMarket: tppRev,
			}
		}
	}
	return c, nil
}

// fullSelect loads cards at full depth: every scalar plus the complete set,
// both legalities variants, images and the two pricing records. Child
// collections come from separate batched queries.
const fullSelect = `
SELECT c.id, c.name, c.supertype, c.subtypes, c.level, c.hp, c.types,
       c."evolvesFrom", c."evolvesTo", c.rules, c."flavorText",
       c.artist, c.rarity, c.number, c."nationalPokedexNumbers", c."setId",
       c."retreatCost", c."convertedRetreatCost", c."createdAt", c."updatedAt",
       s.id, s.name, s.series, s."printedTotal", s.total, s."ptcgoCode",
       s."releaseDate", s."updatedAt", s.symbol, s.logo,
       sl.id, sl.unlimited, sl.standard, sl.expanded,
       cl.id, cl.unlimited, cl.standard, cl.expanded,
       ci.id, ci.small, ci.large,
       cm.id, cm.url, cm."updatedAt",
       cm."averageSellPrice", cm."lowPrice", cm."trendPrice",
       cm."germanProLow", cm."suggestedPrice",
       cm."reverseHoloSell", cm."reverseHoloLow", cm."reverseHoloTrend",
       cm."lowPriceExPlus", cm.avg1, cm.avg7, cm.avg30,
       cm."reverseHoloAvg1", cm."reverseHoloAvg7", cm."reverseHoloAvg30",
       tp.id, tp.url, tp."updatedAt",
       tpp.id,
       tpp."normalLow", tpp."normalMid", tpp."normalHigh",
       tpp."normalMarket", tpp."normalDirectLow",
       tpp."holofoilLow", tpp."holofoilMid", tpp."holofoilHigh",
       tpp."holofoilMarket", tpp."holofoilDirectLow",
       tpp."reverseHolofoilLow", tpp."reverseHolofoilMid", tpp."reverseHolofoilHigh",
       tpp."reverseHolofoilMarket", tpp."reverseHolofoilDirectLow"
FROM "Card" c
LEFT JOIN "CardSet" s ON s.id = c."setId"
LEFT JOIN "SetLegalities" sl ON sl."setId" = s.id
LEFT JOIN "CardLegalities" cl ON cl."cardId" = c.id
LEFT JOIN "CardImages" ci ON ci."cardId" = c.id
LEFT JOIN "CardMarket" cm ON cm."cardId" = c.id
LEFT JOIN "TcgPlayer" tp ON tp."cardId" = c.id
LEFT JOIN "TcgPlayerPrices" tpp ON tpp.id = tp."pricesId"
WHERE c.id = ANY($1)
ORDER BY c.id
`

// loadFull retrieves the given cards at full depth and stitches their child
// rows on in memory. One round trip for the parents, one per child table.
func (s *PostgresCardStore) loadFull(ctx context.Context, ids []string) ([]domain.Card, error) {
	rows, err := s.db.Query(ctx, fullSelect, ids)
	if err != nil {
		return nil, fmt.Errorf("loading cards: %w", err)
	}
	defer rows.Close()

	var cards []domain.Card
	index := map[string]int{}
	for rows.Next() {
		card, err := scanFullRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning card row: %w", err)
		}
		index[card.ID] = len(cards)
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating card rows: %w", err)
	}
	if len(cards) == 0 {
		return nil, nil
	}

	loaded := make([]string, 0, len(cards))
	for _, c := range cards {
		loaded = append(loaded, c.ID)
	}

	if err := s.attachChildren(ctx, cards, index, loaded); err != nil {
		return nil, err
	}
	return cards, nil
}

// scanFullRow maps one row of fullSelect onto a full-depth card.
func scanFullRow(rows pgx.Rows) (domain.Card, error) {
	var (
		c domain.Card

		setID, setName, setSeries, setPTCGO *string
		setPrinted, setTotal                *int
		setRelease, setUpdated              *time.Time
		setSymbol, setLogo                  *string

		slID, slUnlimited, slStandard, slExpanded *string
		clID, clUnlimited, clStandard, clExpanded *string
		imgID, imgSmall, imgLarge                 *string

		cmID, cmURL *string
		cmUpdated   *time.Time
		cmPrices    [15]*float64

		tpID, tpURL *string
		tpUpdated   *time.Time
		tppID       *string
		tppPrices   [15]*float64
	)

	err := rows.Scan(
		&c.ID, &c.Name, &c.Supertype, &c.Subtypes, &c.Level, &c.HP, &c.Types,
		&c.EvolvesFrom, &c.EvolvesTo, &c.Rules, &c.FlavorText,
		&c.Artist, &c.Rarity, &c.Number, &c.NationalPokedexNumbers, &c.SetID,
		&c.RetreatCost, &c.ConvertedRetreatCost, &c.CreatedAt, &c.UpdatedAt,
		&setID, &setName, &setSeries, &setPrinted, &setTotal, &setPTCGO,
		&setRelease, &setUpdated, &setSymbol, &setLogo,
		&slID, &slUnlimited, &slStandard, &slExpanded,
		&clID, &clUnlimited, &clStandard, &clExpanded,
		&imgID, &imgSmall, &imgLarge,
		&cmID, &cmURL, &cmUpdated,
		&cmPrices[0], &cmPrices[1], &cmPrices[2], &cmPrices[3], &cmPrices[4],
		&cmPrices[5], &cmPrices[6], &cmPrices[7], &cmPrices[8], &cmPrices[9],
		&cmPrices[10], &cmPrices[11], &cmPrices[12], &cmPrices[13], &cmPrices[14],
		&tpID, &tpURL, &tpUpdated,
		&tppID,
		&tppPrices[0], &tppPrices[1], &tppPrices[2], &tppPrices[3], &tppPrices[4],
		&tppPrices[5], &tppPrices[6], &tppPrices[7], &tppPrices[8], &tppPrices[9],
		&tppPrices[10], &tppPrices[11], &tppPrices[12], &tppPrices[13], &tppPrices[14],
	)
	if err != nil {
		return domain.Card{}, err
	}

	if setID != nil {
		c.Set = &domain.CardSet{
			ID:           *setID,
			Name:         setName,
			Series:       setSeries,
			PrintedTotal: setPrinted,
			Total:        setTotal,
			PTCGOCode:    setPTCGO,
			ReleaseDate:  setRelease,
			UpdatedAt:    setUpdated,
			Symbol:       setSymbol,
			Logo:         setLogo,
		}
		if slID != nil {
			c.Set.Legalities = &domain.Legalities{
				ID:        *slID,
				Unlimited: slUnlimited,
				Standard:  slStandard,
				Expanded:  slExpanded,
			}
		}
	}
	if clID != nil {
		c.Legalities = &domain.Legalities{
			ID:        *clID,
			Unlimited: clUnlimited,
			Standard:  clStandard,
			Expanded:  clExpanded,
		}
	}
	if imgID != nil {
		c.Images = &domain.CardImages{ID: *imgID, CardID: c.ID, Small: imgSmall, Large: imgLarge}
	}
	if cmID != nil {
		c.Market = &domain.CardMarket{
			ID:               *cmID,
			CardID:           c.ID,
			URL:              cmURL,
			UpdatedAt:        cmUpdated,
			AverageSellPrice: cmPrices[0],
			LowPrice:         cmPrices[1],
			TrendPrice:       cmPrices[2],
			GermanProLow:     cmPrices[3],
			SuggestedPrice:   cmPrices[4],
			ReverseHoloSell:  cmPrices[5],
			ReverseHoloLow:   cmPrices[6],
			ReverseHoloTrend: cmPrices[7],
			LowPriceExPlus:   cmPrices[8],
			Avg1:             cmPrices[9],
			Avg7:             cmPrices[10],
			Avg30:            cmPrices[11],
			ReverseHoloAvg1:  cmPrices[12],
			ReverseHoloAvg7:  cmPrices[13],
			ReverseHoloAvg30: cmPrices[14],
		}
	}
	if tpID != nil {
		c.TCGPlayer = &domain.TCGPlayer{ID: *tpID, CardID: c.ID, URL: tpURL, UpdatedAt: tpUpdated}
		if tppID != nil {
			c.TCGPlayer.Prices = &domain.TCGPlayerPrices{
				ID:                       *tppID,
				NormalLow:                tppPrices[0],
				NormalMid:                tppPrices[1],
				NormalHigh:               tppPrices[2],
				NormalMarket:             tppPrices[3],
				NormalDirectLow:          tppPrices[4],
				HolofoilLow:              tppPrices[5],
				HolofoilMid:              tppPrices[6],
				HolofoilHigh:             tppPrices[7],
				HolofoilMarket:           tppPrices[8],
				HolofoilDirectLow:        tppPrices[9],
				ReverseHolofoilLow:       tppPrices[10],
				ReverseHolofoilMid:       tppPrices[11],
				ReverseHolofoilHigh:      tppPrices[12],
				ReverseHolofoilMarket:    tppPrices[13],
				ReverseHolofoilDirectLow: tppPrices[14],
			}
		}
	}
	return c, nil
}

// attachChildren loads the four child tables for the given cards in one
// batched query each and stitches the rows onto their parents.
func (s *PostgresCardStore) attachChildren(
	ctx context.Context,
	cards []domain.Card,
	index map[string]int,
	ids []string,
) error {
	abilityRows, err := s.db.Query(ctx,
		`SELECT id, "cardId", name, text, type FROM "Ability" WHERE "cardId" = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return fmt.Errorf("loading abilities: %w", err)
	}
	defer abilityRows.Close()
	for abilityRows.Next() {
		var a domain.Ability
		if err := abilityRows.Scan(&a.ID, &a.CardID, &a.Name, &a.Text, &a.Type); err != nil {
			return fmt.Errorf("scanning ability: %w", err)
		}
		if i, ok := index[a.CardID]; ok {
			cards[i].Abilities = append(cards[i].Abilities, a)
		}
	}
	if err := abilityRows.Err(); err != nil {
		return fmt.Errorf("iterating abilities: %w", err)
	}

	attackRows, err := s.db.Query(ctx,
		`SELECT id, "cardId", name, cost, "convertedEnergyCost", damage, text
		 FROM "Attack" WHERE "cardId" = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return fmt.Errorf("loading attacks: %w", err)
	}
	defer attackRows.Close()
	for attackRows.Next() {
		var a domain.Attack
		if err := attackRows.Scan(&a.ID, &a.CardID, &a.Name, &a.Cost, &a.ConvertedEnergyCost, &a.Damage, &a.Text); err != nil {
			return fmt.Errorf("scanning attack: %w", err)
		}
		if i, ok := index[a.CardID]; ok {
			cards[i].Attacks = append(cards[i].Attacks, a)
		}
	}
	if err := attackRows.Err(); err != nil {
		return fmt.Errorf("iterating attacks: %w", err)
	}

	weaknessRows, err := s.db.Query(ctx,
		`SELECT id, "cardId", type, value FROM "Weakness" WHERE "cardId" = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return fmt.Errorf("loading weaknesses: %w", err)
	}
	defer weaknessRows.Close()
	for weaknessRows.Next() {
		var w domain.Weakness
		if err := weaknessRows.Scan(&w.ID, &w.CardID, &w.Type, &w.Value); err != nil {
			return fmt.Errorf("scanning weakness: %w", err)
		}
		if i, ok := index[w.CardID]; ok {
			cards[i].Weaknesses = append(cards[i].Weaknesses, w)
		}
	}
	if err := weaknessRows.Err(); err != nil {
		return fmt.Errorf("iterating weaknesses: %w", err)
	}

	resistanceRows, err := s.db.Query(ctx,
		`SELECT id, "cardId", type, value FROM "Resistance" WHERE "cardId" = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return fmt.Errorf("loading resistances: %w", err)
	}
	defer resistanceRows.Close()
	for resistanceRows.Next() {
		var r domain.Resistance
		if err := resistanceRows.Scan(&r.ID, &r.CardID, &r.Type, &r.Value); err != nil {
			return fmt.Errorf("scanning resistance: %w", err)
		}
		if i, ok := index[r.CardID]; ok {
			cards[i].Resistances = append(cards[i].Resistances, r)
		}
	}
	if err := resistanceRows.Err(); err != nil {
		return fmt.Errorf("iterating resistances: %w", err)
	}

	return nil
}

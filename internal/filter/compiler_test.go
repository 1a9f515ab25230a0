package filter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileEqualityFields(t *testing.T) {
	t.Parallel()

	params := url.Values{}
	params.Set("name", "Charizard")
	params.Set("rarity", "Rare Holo")

	preds, err := Compile(params)
	require.NoError(t, err)
	require.Len(t, preds, 2)

	byField := map[Field]Predicate{}
	for _, p := range preds {
		byField[p.Field] = p
	}

	require.Contains(t, byField, FieldName)
	assert.Equal(t, OpEq, byField[FieldName].Op)
	assert.Equal(t, "Charizard", byField[FieldName].Str)

	require.Contains(t, byField, FieldRarity)
	assert.Equal(t, "Rare Holo", byField[FieldRarity].Str)
}

func TestCompileEqualityKeepsRawString(t *testing.T) {
	t.Parallel()

	// hp= is an exact string match even though the column holds numbers;
	// no coercion happens on the equality path.
	params := url.Values{}
	params.Set("hp", "100")

	preds, err := Compile(params)
	require.NoError(t, err)
	require.Len(t, preds, 1)
	assert.Equal(t, FieldHP, preds[0].Field)
	assert.Equal(t, OpEq, preds[0].Op)
	assert.Equal(t, "100", preds[0].Str)
}

func TestCompileRangeSuffixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		key       string
		value     string
		wantField Field
		wantOp    Op
		wantNum   float64
	}{
		{"gte on card column", "hp_gte", "100", FieldHPRange, OpGTE, 100},
		{"lte on card column", "hp_lte", "250.5", FieldHPRange, OpLTE, 250.5},
		{"gt on market column", "averageSellPrice_gt", "10", FieldAverageSellPrice, OpGT, 10},
		{"lt on market column", "trendPrice_lt", "3.25", FieldTrendPrice, OpLT, 3.25},
		{"gte on marketplace column", "normalMarket_gte", "1", FieldNormalMarket, OpGTE, 1},
		{"lte on marketplace column", "reverseHolofoilMarket_lte", "99", FieldReverseHolofoilMarket, OpLTE, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := url.Values{}
			params.Set(tt.key, tt.value)

			preds, err := Compile(params)
			require.NoError(t, err)
			require.Len(t, preds, 1)
			assert.Equal(t, tt.wantField, preds[0].Field)
			assert.Equal(t, tt.wantOp, preds[0].Op)
			assert.Equal(t, tt.wantNum, preds[0].Num)
		})
	}
}

func TestCompileUnparseableRangeValue(t *testing.T) {
	t.Parallel()

	params := url.Values{}
	params.Set("hp_gte", "abc")

	_, err := Compile(params)
	require.Error(t, err)

	var perr *InvalidParameterError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "hp_gte", perr.Parameter)
	assert.Equal(t, "abc", perr.Value)
}

func TestCompileIgnoresUnknownAndPaginationKeys(t *testing.T) {
	t.Parallel()

	params := url.Values{}
	params.Set("page", "2")
	params.Set("page_size", "50")
	params.Set("unknown", "whatever")
	params.Set("damage_gte", "30") // suffix matches but base is not filterable
	params.Set("name_gte", "x")    // equality field, but not a range field

	preds, err := Compile(params)
	require.NoError(t, err)
	assert.Empty(t, preds)
}

func TestJoinsDeduplicatesAndOrders(t *testing.T) {
	t.Parallel()

	preds := []Predicate{
		{Field: FieldNormalMarket, Op: OpGTE, Num: 1},
		{Field: FieldAverageSellPrice, Op: OpGTE, Num: 2},
		{Field: FieldTrendPrice, Op: OpLT, Num: 9},
		{Field: FieldName, Op: OpEq, Str: "Pikachu"},
	}

	joins := Joins(preds)
	assert.Equal(t, []Join{JoinCardMarket, JoinTCGPlayerPrices}, joins)
}

func TestJoinsEmptyWithoutJoinedFields(t *testing.T) {
	t.Parallel()

	preds := []Predicate{
		{Field: FieldHPRange, Op: OpGTE, Num: 50},
		{Field: FieldArtist, Op: OpEq, Str: "Ken Sugimori"},
	}

	assert.Empty(t, Joins(preds))
}

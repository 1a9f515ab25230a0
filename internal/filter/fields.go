package filter

// Join identifies a joined table a predicate depends on. The store must
// outer-join every table any active predicate references so cards lacking
// the joined row are excluded by the predicate, never by the join itself.
type Join int

const (
	// JoinNone means the field lives on the Card row itself.
	JoinNone Join = iota

	// JoinCardMarket brings in the Cardmarket price snapshot.
	JoinCardMarket

	// JoinTCGPlayerPrices brings in the TCGplayer record and its nested
	// price block (two tables, requested as one unit).
	JoinTCGPlayerPrices
)

// Field is a tagged identifier for a filterable column. The tag carries
// everything the store needs to dispatch: which parameter it answers to and
// which join it requires. SQL expressions are the store's concern.
type Field int

const (
	// Equality fields, all on the Card row.
	FieldID Field = iota
	FieldName
	FieldSupertype
	FieldRarity
	FieldHP
	FieldLevel
	FieldNumber
	FieldSetID
	FieldArtist

	// Range fields. FieldHPRange is deliberately distinct from FieldHP:
	// hp= compares the stored string exactly while hp_gte= compares
	// numerically, mirroring the importer's numeric-as-string column.
	FieldHPRange
	FieldAverageSellPrice
	FieldTrendPrice
	FieldLowPrice
	FieldNormalMarket
	FieldHolofoilMarket
	FieldReverseHolofoilMarket
)

// equalityFields maps an exact parameter name to the Card column it filters.
var equalityFields = map[string]Field{
	"id":        FieldID,
	"name":      FieldName,
	"supertype": FieldSupertype,
	"rarity":    FieldRarity,
	"hp":        FieldHP,
	"level":     FieldLevel,
	"number":    FieldNumber,
	"setId":     FieldSetID,
	"artist":    FieldArtist,
}

// rangeFields maps the base parameter name (suffix already stripped) to the
// numeric column it filters.
var rangeFields = map[string]Field{
	"hp":                    FieldHPRange,
	"averageSellPrice":      FieldAverageSellPrice,
	"trendPrice":            FieldTrendPrice,
	"lowPrice":              FieldLowPrice,
	"normalMarket":          FieldNormalMarket,
	"holofoilMarket":        FieldHolofoilMarket,
	"reverseHolofoilMarket": FieldReverseHolofoilMarket,
}

// fieldJoins records which joined table each field lives on. Fields absent
// from the map are on the Card row.
var fieldJoins = map[Field]Join{
	FieldAverageSellPrice:      JoinCardMarket,
	FieldTrendPrice:            JoinCardMarket,
	FieldLowPrice:              JoinCardMarket,
	FieldNormalMarket:          JoinTCGPlayerPrices,
	FieldHolofoilMarket:        JoinTCGPlayerPrices,
	FieldReverseHolofoilMarket: JoinTCGPlayerPrices,
}

// JoinFor returns the joined table the field lives on, or JoinNone when it
// is a plain Card column.
func (f Field) JoinFor() Join {
	if j, ok := fieldJoins[f]; ok {
		return j
	}
	return JoinNone
}

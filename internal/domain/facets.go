package domain

// FloatRange is the store-wide minimum and maximum of a numeric facet field.
// Both ends are nil when no card carries a value for the field.
type FloatRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// SetRef is the minimal identification of a set used in facet output.
type SetRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Facets is the unfiltered option space clients use to build filter UIs.
// It always reflects the whole store, never a filtered subset.
type Facets struct {
	Ranges     map[string]FloatRange
	Artists    []string
	Rarities   []string
	Supertypes []string
	Types      []string
	Sets       []SetRef
}

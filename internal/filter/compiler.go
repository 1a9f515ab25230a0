package filter

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Op is the comparison kind of a predicate.
type Op int

const (
	OpEq Op = iota
	OpGTE
	OpLTE
	OpGT
	OpLT
)

// rangeSuffixes maps the recognized parameter suffixes to comparison ops.
var rangeSuffixes = []struct {
	suffix string
	op     Op
}{
	{"_gte", OpGTE},
	{"_lte", OpLTE},
	{"_gt", OpGT},
	{"_lt", OpLT},
}

// Predicate is a single typed condition to conjoin. Equality predicates
// carry the raw string value untouched; range predicates carry the parsed
// number.
type Predicate struct {
	Field Field
	Op    Op
	Str   string
	Num   float64
}

// Compile translates request query parameters into the conjunction of
// predicates they describe. Pagination keys are skipped, keys outside both
// allow-lists are silently ignored, and only the first value of a repeated
// key is considered. The only failure mode is an unparseable number on a
// range-suffixed key. Keys are processed in sorted order so the same
// request always compiles to the same predicate list.
func Compile(params url.Values) ([]Predicate, error) {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var preds []Predicate
	for _, key := range keys {
		if key == "page" || key == "page_size" {
			continue
		}
		value := params.Get(key)

		if f, ok := equalityFields[key]; ok {
			preds = append(preds, Predicate{Field: f, Op: OpEq, Str: value})
			continue
		}

		for _, rs := range rangeSuffixes {
			if !strings.HasSuffix(key, rs.suffix) {
				continue
			}
			base := strings.TrimSuffix(key, rs.suffix)
			f, ok := rangeFields[base]
			if !ok {
				break
			}
			n, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, &InvalidParameterError{Parameter: key, Value: value}
			}
			preds = append(preds, Predicate{Field: f, Op: rs.op, Num: n})
			break
		}
	}
	return preds, nil
}

// Joins returns the distinct joined tables the predicates reference, in a
// stable order. The store outer-joins each of them before applying the
// predicate list.
func Joins(preds []Predicate) []Join {
	seen := map[Join]bool{}
	for _, p := range preds {
		if j := p.Field.JoinFor(); j != JoinNone {
			seen[j] = true
		}
	}
	var joins []Join
	for _, j := range []Join{JoinCardMarket, JoinTCGPlayerPrices} {
		if seen[j] {
			joins = append(joins, j)
		}
	}
	return joins
}

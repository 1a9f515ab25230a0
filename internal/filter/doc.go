// Package filter compiles request query parameters into typed predicates
// over the card catalog. The set of filterable fields is a fixed allow-list;
// parameters outside it are ignored rather than rejected. The package is a
// pure translation layer: it never touches storage, it only describes which
// columns a predicate targets and which joined tables the store must bring
// in to evaluate it.
package filter

// Package store defines the persistence boundary of the API: the
// entity-shaped read operations handlers consume, and the sentinel errors
// implementations translate database failures into. Concrete
// implementations live in internal/platform/postgres.
package store

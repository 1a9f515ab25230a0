// Package postgres provides PostgreSQL-specific implementations for the
// read-only storage interfaces defined in the internal/store package. It
// handles predicate-to-SQL translation, join-on-demand query assembly, and
// mapping between database rows and domain entities. The schema is owned by
// the external bulk importer; table and column names are quoted CamelCase
// exactly as it creates them.
package postgres

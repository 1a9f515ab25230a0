package domain

import "time"

// ImportMetadata is the bookkeeping row the bulk loader writes after each
// run. The API only ever reads it.
type ImportMetadata struct {
	ID           string
	TotalCount   *int
	ImportedAt   *time.Time
	IsFullImport bool
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// SearchLogEntry records one search call. Entries are written once and
// never changed.
type SearchLogEntry struct {
	ID        uuid.UUID
	Term      string
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time
}

// TermCount is one row of the most-searched terms report.
type TermCount struct {
	Term  string
	Count int64
}

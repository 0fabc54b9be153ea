package model

import (
	"time"

	"github.com/google/uuid"
)

// SearchLogModel mirrors the append-only 'search_logs' table.
type SearchLogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Term      string    `gorm:"type:varchar(255);not null;index:idx_search_logs_term"`
	Latitude  *float64  `gorm:"type:decimal(10,8)"`
	Longitude *float64  `gorm:"type:decimal(11,8)"`
	CreatedAt time.Time `gorm:"index:idx_search_logs_created_at"`
}

func (SearchLogModel) TableName() string {
	return "search_logs"
}

// TermCountRow is the scan target of the top-terms aggregate.
type TermCountRow struct {
	Term  string
	Count int64
}

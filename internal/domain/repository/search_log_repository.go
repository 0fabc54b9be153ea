package repository

import (
	"context"

	"feira/internal/domain/entity"
)

// SearchLogRepository is append-only: there is no update or delete.
type SearchLogRepository interface {
	Append(ctx context.Context, entry *entity.SearchLogEntry) error
	Count(ctx context.Context) (int64, error)

	// TopTerms groups case-folded terms, most frequent first.
	TopTerms(ctx context.Context, limit int) ([]entity.TermCount, error)

	// Recent returns the newest entries first.
	Recent(ctx context.Context, limit int) ([]*entity.SearchLogEntry, error)
}

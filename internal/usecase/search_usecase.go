package usecase

import (
	"context"

	"feira/internal/domain/entity"
)

// EntityType selects which lists a search fills.
type EntityType string

const (
	EntityProduct EntityType = "product"
	EntityStall   EntityType = "stall"
	EntityAll     EntityType = "all"
)

// IncludesProducts reports whether products are searched.
func (t EntityType) IncludesProducts() bool {
	return t == EntityProduct || t == EntityAll
}

// IncludesStalls reports whether stalls are searched.
func (t EntityType) IncludesStalls() bool {
	return t == EntityStall || t == EntityAll
}

// SortBy is the single sort criterion of a search. Empty means no sort.
type SortBy string

const (
	SortByPrice    SortBy = "price"
	SortByDistance SortBy = "distance"
)

// SearchInput holds a search request. Nil pointers are filters not given.
// The reference point is RefLat/RefLon when both are set, else the
// searcher's own position when both of those are set.
type SearchInput struct {
	Term              string
	EntityType        EntityType
	SearcherLat       *float64
	SearcherLon       *float64
	MaxPrice          *float64
	MaxDistanceMeters *float64
	SortBy            SortBy
	RefLat            *float64
	RefLon            *float64
}

// SearchResult never carries nil lists.
type SearchResult struct {
	Query    string
	Products []*entity.Product
	Stalls   []*entity.Stall
}

// SearchReport summarizes the search log.
type SearchReport struct {
	TotalSearches int64
	TopTerms      []entity.TermCount
	Recent        []*entity.SearchLogEntry
}

// SearchUsecase answers combined-filter searches and reports on them.
type SearchUsecase interface {
	Search(ctx context.Context, input SearchInput) (*SearchResult, error)
}

// ReportUsecase builds the search report.
type ReportUsecase interface {
	SearchReport(ctx context.Context, top int) (*SearchReport, error)
}

package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "feira/internal/delivery/context"
	"feira/internal/domain/entity"
	"feira/internal/domain/geo"
	"feira/internal/domain/repository"
	"feira/internal/domain/service"
	"feira/internal/errors"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

type searchService struct {
	searchLogRepo repository.SearchLogRepository
	productRepo   repository.ProductRepository
	stallRepo     repository.StallRepository
	publisher     service.EventPublisher
	now           func() time.Time
	logger        *slog.Logger
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	SearchLogRepo repository.SearchLogRepository
	ProductRepo   repository.ProductRepository
	StallRepo     repository.StallRepository
	Publisher     service.EventPublisher
	Logger        *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		searchLogRepo: params.SearchLogRepo,
		productRepo:   params.ProductRepo,
		stallRepo:     params.StallRepo,
		publisher:     params.Publisher,
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// searchQuery is a SearchInput with the reference point resolved.
type searchQuery struct {
	term       string
	ref        orb.Point
	hasRef     bool
	maxKm      float64
	hasMaxKm   bool
	maxPrice   *float64
	sortBy     usecase.SortBy
	entityType usecase.EntityType
}

func newSearchQuery(input usecase.SearchInput) searchQuery {
	q := searchQuery{
		term:       strings.ToLower(input.Term),
		maxPrice:   input.MaxPrice,
		sortBy:     input.SortBy,
		entityType: input.EntityType,
	}

	switch {
	case input.RefLat != nil && input.RefLon != nil:
		q.ref, q.hasRef = geo.Point(*input.RefLat, *input.RefLon), true
	case input.SearcherLat != nil && input.SearcherLon != nil:
		q.ref, q.hasRef = geo.Point(*input.SearcherLat, *input.SearcherLon), true
	}

	if input.MaxDistanceMeters != nil {
		q.maxKm, q.hasMaxKm = geo.MetersToKm(*input.MaxDistanceMeters), true
	}

	return q
}

// filterByDistance is active only with both a reference point and a limit.
func (q searchQuery) filterByDistance() bool {
	return q.hasRef && q.hasMaxKm
}

// sortByDistance without a reference point is a no-op.
func (q searchQuery) sortByDistance() bool {
	return q.hasRef && q.sortBy == usecase.SortByDistance
}

func (q searchQuery) matches(name string) bool {
	return strings.Contains(strings.ToLower(name), q.term)
}

// distanceTo measures from the reference point to an address. Addresses
// without coordinates report false.
func (q searchQuery) distanceTo(address *entity.Address) (float64, bool) {
	lat, lon, ok := address.Coordinates()
	if !ok {
		return 0, false
	}

	return geo.Between(q.ref, geo.Point(lat, lon)), true
}

// Search logs the call, then filters and sorts in memory. The log write
// happens before any filtering, so it is recorded even for empty results.
func (srv *searchService) Search(ctx context.Context, input usecase.SearchInput) (*usecase.SearchResult, error) {
	entry := &entity.SearchLogEntry{
		ID:        uuid.New(),
		Term:      input.Term,
		Latitude:  input.SearcherLat,
		Longitude: input.SearcherLon,
		CreatedAt: srv.now(),
	}
	if err := srv.searchLogRepo.Append(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to log search")
	}

	q := newSearchQuery(input)
	result := &usecase.SearchResult{
		Query:    input.Term,
		Products: []*entity.Product{},
		Stalls:   []*entity.Stall{},
	}

	var (
		stalls       []*entity.Stall
		stallsLoaded bool
	)
	loadStalls := func() ([]*entity.Stall, error) {
		if stallsLoaded {
			return stalls, nil
		}

		loaded, err := srv.stallRepo.ListAll(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load stalls")
		}
		stalls, stallsLoaded = loaded, true

		return stalls, nil
	}

	if q.entityType.IncludesProducts() {
		products, err := srv.searchProducts(ctx, q, loadStalls)
		if err != nil {
			return nil, err
		}
		result.Products = products
	}

	if q.entityType.IncludesStalls() {
		all, err := loadStalls()
		if err != nil {
			return nil, err
		}
		result.Stalls = searchStalls(q, all)
	}

	srv.log(ctx).Debug("Search completed",
		slog.String("term", input.Term),
		slog.Int("products", len(result.Products)),
		slog.Int("stalls", len(result.Stalls)),
	)

	srv.publishSearch(ctx, input, entry, result)

	return result, nil
}

func (srv *searchService) searchProducts(
	ctx context.Context,
	q searchQuery,
	loadStalls func() ([]*entity.Stall, error),
) ([]*entity.Product, error) {
	all, err := srv.productRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}

	products := make([]*entity.Product, 0, len(all))
	for _, product := range all {
		if !q.matches(product.Name) {
			continue
		}
		if q.maxPrice != nil && product.Price > *q.maxPrice {
			continue
		}
		products = append(products, product)
	}

	if q.sortBy == usecase.SortByPrice {
		slices.SortStableFunc(products, func(a, b *entity.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})

		if !q.filterByDistance() {
			return products, nil
		}
	}

	if !q.filterByDistance() && !q.sortByDistance() {
		return products, nil
	}

	stalls, err := loadStalls()
	if err != nil {
		return nil, err
	}

	addressByStall := make(map[uuid.UUID]*entity.Address, len(stalls))
	for _, stall := range stalls {
		addressByStall[stall.ID] = stall.Address
	}

	distanceOf := func(product *entity.Product) (float64, bool) {
		return q.distanceTo(addressByStall[product.StallID])
	}

	if q.filterByDistance() {
		products = withinDistance(products, distanceOf, q.maxKm)
	}
	if q.sortByDistance() {
		products = sortedByDistance(products, distanceOf)
	}

	return products, nil
}

func searchStalls(q searchQuery, all []*entity.Stall) []*entity.Stall {
	stalls := make([]*entity.Stall, 0, len(all))
	for _, stall := range all {
		if q.matches(stall.Name) {
			stalls = append(stalls, stall)
		}
	}

	distanceOf := func(stall *entity.Stall) (float64, bool) {
		return q.distanceTo(stall.Address)
	}

	if q.filterByDistance() {
		stalls = withinDistance(stalls, distanceOf, q.maxKm)
	}
	if q.sortByDistance() {
		stalls = sortedByDistance(stalls, distanceOf)
	}

	return stalls
}

// withinDistance drops items without coordinates and those beyond maxKm.
func withinDistance[T any](items []T, distanceOf func(T) (float64, bool), maxKm float64) []T {
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if km, ok := distanceOf(item); ok && km <= maxKm {
			kept = append(kept, item)
		}
	}

	return kept
}

// sortedByDistance orders items nearest first with a stable sort. Items
// without coordinates go last, in their original relative order.
func sortedByDistance[T any](items []T, distanceOf func(T) (float64, bool)) []T {
	type measured struct {
		item T
		km   float64
		ok   bool
	}

	measuredItems := make([]measured, len(items))
	for i, item := range items {
		km, ok := distanceOf(item)
		measuredItems[i] = measured{item: item, km: km, ok: ok}
	}

	slices.SortStableFunc(measuredItems, func(a, b measured) int {
		switch {
		case a.ok && b.ok:
			return cmp.Compare(a.km, b.km)
		case a.ok:
			return -1
		case b.ok:
			return 1
		default:
			return 0
		}
	})

	sorted := make([]T, len(items))
	for i, m := range measuredItems {
		sorted[i] = m.item
	}

	return sorted
}

// publishSearch is best effort: a failure is logged and the search still succeeds.
func (srv *searchService) publishSearch(
	ctx context.Context,
	input usecase.SearchInput,
	entry *entity.SearchLogEntry,
	result *usecase.SearchResult,
) {
	if srv.publisher == nil {
		return
	}

	event := &service.SearchPerformedEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		Term:         input.Term,
		EntityType:   string(input.EntityType),
		ProductCount: len(result.Products),
		StallCount:   len(result.Stalls),
		Latitude:     input.SearcherLat,
		Longitude:    input.SearcherLon,
		SearchedAt:   entry.CreatedAt,
	}

	if err := srv.publisher.PublishSearchPerformed(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish search event", slog.String("term", input.Term), slog.Any("error", err))
	}
}

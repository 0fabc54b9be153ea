package impl

import (
	"context"
	"testing"

	"feira/internal/domain/entity"
	"feira/internal/domain/service"
	"feira/internal/errors"
	mockRepo "feira/internal/mocks/repository"
	mockSvc "feira/internal/mocks/service"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type searchServiceFixtures struct {
	service       *searchService
	searchLogRepo *mockRepo.MockSearchLogRepository
	productRepo   *mockRepo.MockProductRepository
	stallRepo     *mockRepo.MockStallRepository
	publisher     *mockSvc.MockEventPublisher
}

func createTestSearchService(t *testing.T) searchServiceFixtures {
	searchLogRepo := mockRepo.NewMockSearchLogRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	stallRepo := mockRepo.NewMockStallRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewSearchService(SearchServiceParams{
		SearchLogRepo: searchLogRepo,
		ProductRepo:   productRepo,
		StallRepo:     stallRepo,
		Publisher:     publisher,
		Logger:        newDiscardLogger(),
	}).(*searchService)
	svc.now = fixedClock

	return searchServiceFixtures{
		service:       svc,
		searchLogRepo: searchLogRepo,
		productRepo:   productRepo,
		stallRepo:     stallRepo,
		publisher:     publisher,
	}
}

// Stall A sits on Praça da Sé, stall B about 1 km south, stall C has no
// coordinates.
var (
	latA, lonA = -23.5505, -46.6333
	latB, lonB = -23.5595, -46.6333

	stallA = &entity.Stall{
		ID:      uuid.MustParse("00000000-0000-0000-0000-00000000000a"),
		Name:    "Banca da Sé",
		Address: &entity.Address{Latitude: ptr(latA), Longitude: ptr(lonA)},
	}
	stallB = &entity.Stall{
		ID:      uuid.MustParse("00000000-0000-0000-0000-00000000000b"),
		Name:    "Banca do Glicério",
		Address: &entity.Address{Latitude: ptr(latB), Longitude: ptr(lonB)},
	}
	stallC = &entity.Stall{
		ID:      uuid.MustParse("00000000-0000-0000-0000-00000000000c"),
		Name:    "Banca Sem Mapa",
		Address: &entity.Address{Latitude: ptr(latA)},
	}
)

func product(name string, price float64, stall *entity.Stall) *entity.Product {
	return &entity.Product{ID: uuid.New(), StallID: stall.ID, Name: name, Price: price}
}

func names[T any](items []T, name func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, name(item))
	}

	return out
}

func productNames(products []*entity.Product) []string {
	return names(products, func(p *entity.Product) string { return p.Name })
}

func stallNames(stalls []*entity.Stall) []string {
	return names(stalls, func(s *entity.Stall) string { return s.Name })
}

func (fx searchServiceFixtures) expectLog(term string) {
	fx.searchLogRepo.EXPECT().
		Append(mock.Anything, mock.MatchedBy(func(entry *entity.SearchLogEntry) bool {
			return entry.Term == term && entry.CreatedAt.Equal(fixedNow) && entry.ID != uuid.Nil
		})).
		Return(nil).
		Once()
}

func (fx searchServiceFixtures) expectPublish() {
	fx.publisher.EXPECT().
		PublishSearchPerformed(mock.Anything, mock.AnythingOfType("*service.SearchPerformedEvent")).
		Return(nil).
		Once()
}

func TestSearchService_MaxPriceFilter(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	fx.expectLog("tomate")
	fx.productRepo.EXPECT().ListAll(ctx).Return([]*entity.Product{
		product("Tomate Italiano", 8.5, stallA),
		product("Tomate Cereja", 12.0, stallA),
	}, nil)
	fx.expectPublish()

	result, err := fx.service.Search(ctx, usecase.SearchInput{
		Term:       "tomate",
		EntityType: usecase.EntityProduct,
		MaxPrice:   ptr(10.0),
	})

	require.NoError(t, err)
	assert.Equal(t, "tomate", result.Query)
	assert.Equal(t, []string{"Tomate Italiano"}, productNames(result.Products))
	assert.Empty(t, result.Stalls)
}

func TestSearchService_SortByPriceIsStable(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	fx.expectLog("TOMATE")
	fx.productRepo.EXPECT().ListAll(ctx).Return([]*entity.Product{
		product("Tomate Cereja", 12.0, stallA),
		product("Tomate Primeiro", 10.0, stallB),
		product("Alface", 1.0, stallA),
		product("Tomate Italiano", 8.5, stallA),
		product("Tomate Segundo", 10.0, stallC),
	}, nil)
	fx.expectPublish()

	result, err := fx.service.Search(ctx, usecase.SearchInput{
		Term:       "TOMATE",
		EntityType: usecase.EntityProduct,
		SortBy:     usecase.SortByPrice,
	})

	require.NoError(t, err)
	assert.Equal(t,
		[]string{"Tomate Italiano", "Tomate Primeiro", "Tomate Segundo", "Tomate Cereja"},
		productNames(result.Products),
	)
	for i := 1; i < len(result.Products); i++ {
		assert.LessOrEqual(t, result.Products[i-1].Price, result.Products[i].Price)
	}
}

func TestSearchService_DistanceFilterExcludesFarAndUnmapped(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	fx.expectLog("a")
	fx.productRepo.EXPECT().ListAll(ctx).Return([]*entity.Product{
		product("Tomate Italiano", 8.5, stallA),
		product("Tomate Cereja", 12.0, stallB),
		product("Batata", 4.0, stallC),
	}, nil)
	fx.stallRepo.EXPECT().ListAll(ctx).Return([]*entity.Stall{stallA, stallB, stallC}, nil).Once()
	fx.expectPublish()

	result, err := fx.service.Search(ctx, usecase.SearchInput{
		Term:              "a",
		EntityType:        usecase.EntityAll,
		MaxDistanceMeters: ptr(500.0),
		RefLat:            ptr(latA),
		RefLon:            ptr(lonA),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Tomate Italiano"}, productNames(result.Products))
	assert.Equal(t, []string{"Banca da Sé"}, stallNames(result.Stalls))
}

func TestSearchService_ReferencePointPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.SearchInput
		want  []string
	}{
		{
			name: "ref point wins over searcher",
			input: usecase.SearchInput{
				SearcherLat: ptr(latB), SearcherLon: ptr(lonB),
				RefLat: ptr(latA), RefLon: ptr(lonA),
			},
			want: []string{"Banca da Sé"},
		},
		{
			name: "searcher used when ref is incomplete",
			input: usecase.SearchInput{
				SearcherLat: ptr(latB), SearcherLon: ptr(lonB),
				RefLat: ptr(latA),
			},
			want: []string{"Banca do Glicério"},
		},
		{
			name:  "no point disables the filter",
			input: usecase.SearchInput{RefLat: ptr(latA)},
			want:  []string{"Banca da Sé", "Banca do Glicério", "Banca Sem Mapa"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSearchService(t)
			ctx := context.Background()

			input := tt.input
			input.Term = "banca"
			input.EntityType = usecase.EntityStall
			input.MaxDistanceMeters = ptr(500.0)

			fx.expectLog("banca")
			fx.stallRepo.EXPECT().ListAll(ctx).Return([]*entity.Stall{stallA, stallB, stallC}, nil)
			fx.expectPublish()

			result, err := fx.service.Search(ctx, input)

			require.NoError(t, err)
			assert.Equal(t, tt.want, stallNames(result.Stalls))
			assert.Empty(t, result.Products)
		})
	}
}

func TestSearchService_SortByDistanceWithoutPointIsNoop(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	fx.expectLog("tomate")
	fx.productRepo.EXPECT().ListAll(ctx).Return([]*entity.Product{
		product("Tomate Cereja", 12.0, stallB),
		product("Tomate Italiano", 8.5, stallA),
	}, nil)
	fx.expectPublish()

	result, err := fx.service.Search(ctx, usecase.SearchInput{
		Term:       "tomate",
		EntityType: usecase.EntityProduct,
		SortBy:     usecase.SortByDistance,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Tomate Cereja", "Tomate Italiano"}, productNames(result.Products))
	fx.stallRepo.AssertNotCalled(t, "ListAll", mock.Anything)
}

func TestSearchService_SortByDistancePutsUnmappedLast(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	fx.expectLog("tomate")
	fx.productRepo.EXPECT().ListAll(ctx).Return([]*entity.Product{
		product("Tomate Seco", 10.0, stallC),
		product("Tomate Cereja", 12.0, stallB),
		product("Tomate Verde", 6.0, stallC),
		product("Tomate Italiano", 8.5, stallA),
	}, nil)
	fx.stallRepo.EXPECT().ListAll(ctx).Return([]*entity.Stall{stallA, stallB, stallC}, nil)
	fx.expectPublish()

	result, err := fx.service.Search(ctx, usecase.SearchInput{
		Term:        "tomate",
		EntityType:  usecase.EntityProduct,
		SortBy:      usecase.SortByDistance,
		SearcherLat: ptr(latA),
		SearcherLon: ptr(lonA),
	})

	require.NoError(t, err)
	assert.Equal(t,
		[]string{"Tomate Italiano", "Tomate Cereja", "Tomate Seco", "Tomate Verde"},
		productNames(result.Products),
	)
}

func TestSearchService_NoMatchesIsNotAnError(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	fx.searchLogRepo.EXPECT().
		Append(ctx, mock.MatchedBy(func(entry *entity.SearchLogEntry) bool {
			return entry.Term == "Abacaxi" &&
				entry.Latitude != nil && *entry.Latitude == latA &&
				entry.Longitude != nil && *entry.Longitude == lonA
		})).
		Return(nil).
		Once()
	fx.productRepo.EXPECT().ListAll(ctx).Return([]*entity.Product{product("Tomate", 1, stallA)}, nil)
	fx.stallRepo.EXPECT().ListAll(ctx).Return([]*entity.Stall{stallA}, nil)
	fx.publisher.EXPECT().
		PublishSearchPerformed(ctx, mock.MatchedBy(func(event *service.SearchPerformedEvent) bool {
			return event.Term == "Abacaxi" && event.ProductCount == 0 && event.StallCount == 0 &&
				event.EntityType == "all" && event.SearchedAt.Equal(fixedNow)
		})).
		Return(nil)

	result, err := fx.service.Search(ctx, usecase.SearchInput{
		Term:        "Abacaxi",
		EntityType:  usecase.EntityAll,
		SearcherLat: ptr(latA),
		SearcherLon: ptr(lonA),
	})

	require.NoError(t, err)
	assert.Equal(t, "Abacaxi", result.Query)
	assert.NotNil(t, result.Products)
	assert.NotNil(t, result.Stalls)
	assert.Empty(t, result.Products)
	assert.Empty(t, result.Stalls)
}

func TestSearchService_LogFailureStopsSearch(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	fx.searchLogRepo.EXPECT().Append(ctx, mock.Anything).Return(dbErr)

	result, err := fx.service.Search(ctx, usecase.SearchInput{Term: "tomate", EntityType: usecase.EntityAll})

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, result)
}

func TestSearchService_StorageErrorPropagates(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()
	dbErr := errors.New("timeout")

	fx.expectLog("tomate")
	fx.productRepo.EXPECT().ListAll(ctx).Return(nil, dbErr)

	_, err := fx.service.Search(ctx, usecase.SearchInput{Term: "tomate", EntityType: usecase.EntityProduct})

	assert.ErrorIs(t, err, dbErr)
}

func TestSearchService_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	fx.expectLog("banca")
	fx.stallRepo.EXPECT().ListAll(ctx).Return([]*entity.Stall{stallA}, nil)
	fx.publisher.EXPECT().PublishSearchPerformed(ctx, mock.Anything).Return(errors.New("broker down"))

	result, err := fx.service.Search(ctx, usecase.SearchInput{Term: "banca", EntityType: usecase.EntityStall})

	require.NoError(t, err)
	assert.Equal(t, []string{"Banca da Sé"}, stallNames(result.Stalls))
}

func TestSortedByDistance_KeepsTiesInOrder(t *testing.T) {
	distances := map[string]float64{"a": 2, "b": 1, "c": 2, "d": 1}

	sorted := sortedByDistance([]string{"a", "b", "c", "d", "x"}, func(s string) (float64, bool) {
		km, ok := distances[s]
		return km, ok
	})

	assert.Equal(t, []string{"b", "d", "a", "c", "x"}, sorted)
}

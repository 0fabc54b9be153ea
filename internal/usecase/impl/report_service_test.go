package impl

import (
	"context"
	"testing"

	"feira/config"
	"feira/internal/domain/entity"
	mockRepo "feira/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportService_SearchReport(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		top     int
		wantTop int
	}{
		{name: "explicit top", cfg: nil, top: 3, wantTop: 3},
		{name: "built-in default", cfg: nil, top: 0, wantTop: 10},
		{name: "configured default", cfg: &config.Config{Search: &config.SearchConfig{ReportTopTerms: 5}}, top: -1, wantTop: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			searchLogRepo := mockRepo.NewMockSearchLogRepository(t)
			service := NewReportService(ReportServiceParams{
				SearchLogRepo: searchLogRepo,
				Config:        tt.cfg,
				Logger:        newDiscardLogger(),
			})
			ctx := context.Background()

			terms := []entity.TermCount{{Term: "tomate", Count: 4}, {Term: "alface", Count: 1}}
			recent := []*entity.SearchLogEntry{{Term: "Tomate"}}

			searchLogRepo.EXPECT().Count(ctx).Return(int64(5), nil)
			searchLogRepo.EXPECT().TopTerms(ctx, tt.wantTop).Return(terms, nil)
			searchLogRepo.EXPECT().Recent(ctx, 10).Return(recent, nil)

			report, err := service.SearchReport(ctx, tt.top)

			require.NoError(t, err)
			assert.Equal(t, int64(5), report.TotalSearches)
			assert.Equal(t, terms, report.TopTerms)
			assert.Equal(t, recent, report.Recent)
		})
	}
}

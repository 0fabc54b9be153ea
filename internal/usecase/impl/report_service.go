package impl

import (
	"context"
	"log/slog"

	"feira/config"
	"feira/internal/domain/repository"
	"feira/internal/errors"
	"feira/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultReportTopTerms = 10
	reportRecentSearches  = 10
)

type reportService struct {
	searchLogRepo repository.SearchLogRepository
	defaultTop    int
	logger        *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	SearchLogRepo repository.SearchLogRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	defaultTop := defaultReportTopTerms
	if params.Config != nil && params.Config.Search != nil && params.Config.Search.ReportTopTerms > 0 {
		defaultTop = params.Config.Search.ReportTopTerms
	}

	return &reportService{
		searchLogRepo: params.SearchLogRepo,
		defaultTop:    defaultTop,
		logger:        params.Logger,
	}
}

// SearchReport returns the total, the top terms and the last searches. A
// non-positive top uses the configured default.
func (srv *reportService) SearchReport(ctx context.Context, top int) (*usecase.SearchReport, error) {
	if top <= 0 {
		top = srv.defaultTop
	}

	total, err := srv.searchLogRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count searches")
	}

	terms, err := srv.searchLogRepo.TopTerms(ctx, top)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate search terms")
	}

	recent, err := srv.searchLogRepo.Recent(ctx, reportRecentSearches)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent searches")
	}

	return &usecase.SearchReport{
		TotalSearches: total,
		TopTerms:      terms,
		Recent:        recent,
	}, nil
}

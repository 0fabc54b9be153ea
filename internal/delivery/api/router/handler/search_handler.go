package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"feira/internal/delivery/api/response"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// SearchHandler serves /api/v1/search.
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// SearchRequest mirrors the query string of GET /search. The pointer
// filters are filled by readFloats; their form tags only name them in
// validation errors.
type SearchRequest struct {
	Term   string `query:"term" validate:"required,max=100"`
	Type   string `query:"type" validate:"required,oneof=product stall all"`
	SortBy string `query:"sort_by" validate:"omitempty,oneof=price distance"`

	Lat         *float64 `form:"lat" validate:"omitempty,gte=-90,lte=90"`
	Lon         *float64 `form:"lon" validate:"omitempty,gte=-180,lte=180"`
	MaxPrice    *float64 `form:"max_price" validate:"omitempty,gte=0"`
	MaxDistance *float64 `form:"max_distance" validate:"omitempty,gte=0"`
	RefLat      *float64 `form:"ref_lat" validate:"omitempty,gte=-90,lte=90"`
	RefLon      *float64 `form:"ref_lon" validate:"omitempty,gte=-180,lte=180"`
}

func (r *SearchRequest) readFloats(c echo.Context) error {
	fields := []struct {
		name string
		dst  **float64
	}{
		{"lat", &r.Lat},
		{"lon", &r.Lon},
		{"max_price", &r.MaxPrice},
		{"max_distance", &r.MaxDistance},
		{"ref_lat", &r.RefLat},
		{"ref_lon", &r.RefLon},
	}
	for _, f := range fields {
		v, err := queryFloat(c, f.name)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	return nil
}

func (r *SearchRequest) toInput() usecase.SearchInput {
	return usecase.SearchInput{
		Term:              r.Term,
		EntityType:        usecase.EntityType(r.Type),
		SearcherLat:       r.Lat,
		SearcherLon:       r.Lon,
		MaxPrice:          r.MaxPrice,
		MaxDistanceMeters: r.MaxDistance,
		SortBy:            usecase.SortBy(r.SortBy),
		RefLat:            r.RefLat,
		RefLon:            r.RefLon,
	}
}

// Search runs a combined-filter search over products and stalls.
func (h *SearchHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return response.BindingError(c, "Parâmetros de busca inválidos.")
	}
	if err := req.readFloats(c); err != nil {
		return response.BindingError(c, "Parâmetros de busca inválidos.")
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	result, err := h.searchUC.Search(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSearchResponse(result))
}

// SearchReport summarizes the search log. ?top= caps the term ranking;
// without it the configured default applies.
func (h *SearchHandler) SearchReport(c echo.Context) error {
	top := 0
	if raw := c.QueryParam("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "Parâmetro top inválido.")
		}
		top = n
	}

	report, err := h.reportUC.SearchReport(c.Request().Context(), top)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSearchReportResponse(report))
}

package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"partsHub/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	SearchHandler struct {
		validate       *validator.Validate
		rankingService RankingService
		timeout        time.Duration
	}

	RankingService interface {
		Search(ctx context.Context, query string, vehicle *domain.Vehicle, category string, sortBy string, limit int) ([]domain.RankedProduct, error)
		Trending(ctx context.Context, limit int) ([]domain.RankedProduct, error)
		CheckFitment(ctx context.Context, productID uint64, vehicle *domain.Vehicle) (domain.FitmentCheck, error)
	}

	SearchQuery struct {
		Q           string `query:"q"`
		Category    string `query:"category"`
		Sort        string `query:"sort" validate:"omitempty,oneof=relevance trending fitment price_asc price_desc newest"`
		Limit       int    `query:"limit"`
		Make        string `query:"make"`
		Model       string `query:"model"`
		Year        int    `query:"year"`
		Trim        string `query:"trim"`
		Engine      string `query:"engine"`
		VehicleType string `query:"vehicle_type"`
		Style       string `query:"style"`
	}

	TrendingQuery struct {
		Limit int `query:"limit"`
	}
)

func NewSearchHandler(svc RankingService) *SearchHandler {
	return &SearchHandler{
		validate:       validator.New(),
		rankingService: svc,
		timeout:        10 * time.Second,
	}
}

func vehicleFromQuery(q SearchQuery) *domain.Vehicle {
	v := domain.Vehicle{
		Make:   q.Make,
		Model:  q.Model,
		Year:   q.Year,
		Trim:   q.Trim,
		Engine: q.Engine,
		Type:   q.VehicleType,
		Style:  q.Style,
	}
	if v.IsZero() {
		return nil
	}
	return &v
}

// GET /api/v1/search?q=brake+pads&make=Yamaha&year=2022&sort=relevance
func (h *SearchHandler) Search(c echo.Context) error {
	var q SearchQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	results, err := h.rankingService.Search(ctx, q.Q, vehicleFromQuery(q), q.Category, q.Sort, q.Limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(results))
}

// GET /api/v1/trending?limit=20
func (h *SearchHandler) Trending(c echo.Context) error {
	var q TrendingQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if q.Limit <= 0 {
		q.Limit = 20
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	results, err := h.rankingService.Trending(ctx, q.Limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(results))
}

// GET /api/v1/fitment/:product_id?make=Yamaha&model=MT-07&year=2022
func (h *SearchHandler) CheckFitment(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var q SearchQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	check, err := h.rankingService.CheckFitment(ctx, productID, vehicleFromQuery(q))
	if err != nil {
		if err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(check))
}

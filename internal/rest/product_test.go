//go:build !integration

package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"partsHub/domain"

	"github.com/labstack/echo/v4"
)

type fakeProductService struct {
	ratings []float64
}

func (f *fakeProductService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	return nil, nil
}

func (f *fakeProductService) GetProductByID(ctx context.Context, id uint64) (*domain.Product, error) {
	return &domain.Product{ID: id}, nil
}

func (f *fakeProductService) GetProductsByStore(ctx context.Context, storeID uint) ([]domain.Product, error) {
	return nil, nil
}

func (f *fakeProductService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return product, nil
}

func (f *fakeProductService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return product, nil
}

func (f *fakeProductService) DeleteProduct(ctx context.Context, id uint64) error { return nil }

func (f *fakeProductService) RateProduct(ctx context.Context, id uint64, rating float64) error {
	f.ratings = append(f.ratings, rating)
	return nil
}

func rateRequest(t *testing.T, handler *ProductHandler, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	return rec, handler.RateProduct(c)
}

func TestRateProduct_AcceptsZeroRating(t *testing.T) {
	svc := &fakeProductService{}
	handler := NewProductHandler(svc)

	rec, err := rateRequest(t, handler, `{"rating": 0}`)
	if err != nil {
		t.Fatalf("RateProduct: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if len(svc.ratings) != 1 || svc.ratings[0] != 0 {
		t.Errorf("rating 0 should reach the service, got %v", svc.ratings)
	}
}

func TestRateProduct_RejectsMissingAndOutOfRange(t *testing.T) {
	svc := &fakeProductService{}
	handler := NewProductHandler(svc)

	cases := []struct {
		name string
		body string
	}{
		{"missing rating", `{}`},
		{"above range", `{"rating": 5.5}`},
		{"negative", `{"rating": -1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := rateRequest(t, handler, tc.body)
			if err != nil {
				t.Fatalf("RateProduct: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400, body %s", rec.Code, rec.Body.String())
			}
		})
	}

	if len(svc.ratings) != 0 {
		t.Errorf("invalid requests must not reach the service, got %v", svc.ratings)
	}
}

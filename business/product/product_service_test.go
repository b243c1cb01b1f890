//go:build !integration

package product

import (
	"context"
	"errors"
	"testing"

	"partsHub/domain"
)

type fakeProductRepo struct {
	products  map[uint64]domain.Product
	viewBumps []uint64
	viewErr   error
	ratings   []float64
}

func newFakeProductRepo(products ...domain.Product) *fakeProductRepo {
	f := &fakeProductRepo{products: map[uint64]domain.Product{}}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeProductRepo) Create(ctx context.Context, product *domain.Product) error {
	product.ID = uint64(len(f.products) + 1)
	f.products[product.ID] = *product
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, errors.New("product not found")
	}
	return p, nil
}

func (f *fakeProductRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) FindByStore(ctx context.Context, storeID uint) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if p.StoreID == storeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *domain.Product) error {
	f.products[product.ID] = *product
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uint64) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) IncrementViewCount(ctx context.Context, id uint64) error {
	if f.viewErr != nil {
		return f.viewErr
	}
	f.viewBumps = append(f.viewBumps, id)
	return nil
}

func (f *fakeProductRepo) RecordSale(ctx context.Context, id uint64, quantity int) error { return nil }

func (f *fakeProductRepo) AddRating(ctx context.Context, id uint64, rating float64) error {
	f.ratings = append(f.ratings, rating)
	return nil
}

func TestCreateProduct_Validation(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())
	below := 10.0

	cases := []struct {
		name    string
		product domain.Product
	}{
		{"missing name", domain.Product{ProductCategory: "Brakes", Price: 20}},
		{"missing category", domain.Product{ProductName: "Brake Pads", Price: 20}},
		{"zero price", domain.Product{ProductName: "Brake Pads", ProductCategory: "Brakes"}},
		{"compare-at below price", domain.Product{ProductName: "Brake Pads", ProductCategory: "Brakes", Price: 20, CompareAtPrice: &below}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateProduct(context.Background(), &tc.product); err == nil {
				t.Error("invalid product should be rejected")
			}
		})
	}

	valid := domain.Product{ProductName: "Brake Pads", ProductCategory: "Brakes", Price: 20}
	created, err := svc.CreateProduct(context.Background(), &valid)
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if created.ID == 0 {
		t.Error("created product should carry an id")
	}
}

func TestGetProductByID_BumpsViewCount(t *testing.T) {
	repo := newFakeProductRepo(domain.Product{ID: 5, ProductName: "Oil Filter", Price: 8})
	svc := NewProductService(repo)

	p, err := svc.GetProductByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetProductByID: %v", err)
	}
	if p.ProductName != "Oil Filter" {
		t.Errorf("got %q, want Oil Filter", p.ProductName)
	}
	if len(repo.viewBumps) != 1 || repo.viewBumps[0] != 5 {
		t.Errorf("view counter should be bumped once for product 5, got %v", repo.viewBumps)
	}

	// A failed bump never hides the listing.
	repo.viewErr = errors.New("db down")
	if _, err := svc.GetProductByID(context.Background(), 5); err != nil {
		t.Errorf("view bump failure should not fail the read, got %v", err)
	}
}

func TestUpdateProduct_PreservesCounters(t *testing.T) {
	existing := domain.Product{
		ID: 5, ProductName: "Oil Filter", ProductCategory: "Filters", Price: 8,
		SoldCount: 30, ViewCount: 400, RatingAverage: 4.2, RatingsCount: 12,
	}
	repo := newFakeProductRepo(existing)
	svc := NewProductService(repo)

	edit := domain.Product{ID: 5, ProductName: "Oil Filter Pro", ProductCategory: "Filters", Price: 9}
	updated, err := svc.UpdateProduct(context.Background(), &edit)
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}

	if updated.ProductName != "Oil Filter Pro" || updated.Price != 9 {
		t.Errorf("edit not applied: %+v", updated)
	}
	if updated.SoldCount != 30 || updated.ViewCount != 400 || updated.RatingsCount != 12 {
		t.Errorf("edit must not reset counters: %+v", updated)
	}
}

func TestRateProduct(t *testing.T) {
	repo := newFakeProductRepo(domain.Product{ID: 5, ProductName: "Oil Filter", Price: 8})
	svc := NewProductService(repo)

	if err := svc.RateProduct(context.Background(), 5, 4.5); err != nil {
		t.Fatalf("RateProduct: %v", err)
	}
	if len(repo.ratings) != 1 || repo.ratings[0] != 4.5 {
		t.Errorf("rating should reach the repository, got %v", repo.ratings)
	}

	if err := svc.RateProduct(context.Background(), 5, 5.5); err == nil {
		t.Error("rating above 5 should be rejected")
	}
	if err := svc.RateProduct(context.Background(), 5, -1); err == nil {
		t.Error("negative rating should be rejected")
	}
	if err := svc.RateProduct(context.Background(), 99, 4); err == nil {
		t.Error("rating a missing product should fail")
	}
}

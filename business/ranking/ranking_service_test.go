//go:build !integration

package ranking

import (
	"context"
	"errors"
	"testing"
	"time"

	"partsHub/domain"
)

type fakeProductRepo struct {
	products     []domain.Product
	err          error
	findAllCalls int
}

func (f *fakeProductRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	f.findAllCalls++
	return f.products, f.err
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	if f.err != nil {
		return domain.Product{}, f.err
	}
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, errors.New("product not found")
}

type fakeTrendingCache struct {
	feed    []domain.RankedProduct
	getErr  error
	setKey  string
	setFeed []domain.RankedProduct
	setTTL  time.Duration
}

func (f *fakeTrendingCache) Get(ctx context.Context, key string) ([]domain.RankedProduct, error) {
	return f.feed, f.getErr
}

func (f *fakeTrendingCache) Set(ctx context.Context, key string, ranked []domain.RankedProduct, ttl time.Duration) error {
	f.setKey = key
	f.setFeed = ranked
	f.setTTL = ttl
	return nil
}

type fakeEventRepo struct {
	events []domain.SearchEvent
}

func (f *fakeEventRepo) SaveEvent(ctx context.Context, event domain.SearchEvent) error {
	f.events = append(f.events, event)
	return nil
}

func searchCatalog(now time.Time) []domain.Product {
	return []domain.Product{
		{
			ID:              1,
			ProductName:     "Ninja 400 Foot Pegs",
			ProductCategory: "Controls",
			Price:           45,
			ViewCount:       100,
			SoldCount:       10,
			RatingAverage:   4.0,
			RatingsCount:    12,
			CreatedAt:       now.AddDate(0, 0, -5),
			VehicleCompatibility: &domain.CompatibilityRule{
				Makes:  []string{"Kawasaki"},
				Models: []string{"Ninja 400"},
			},
		},
		{
			ID:              2,
			ProductName:     "Universal Ninja Tank Pad",
			ProductCategory: "Accessories",
			Price:           15,
			ViewCount:       400,
			SoldCount:       40,
			RatingAverage:   4.8,
			RatingsCount:    30,
			CreatedAt:       now.AddDate(0, 0, -2),
			VehicleCompatibility: &domain.CompatibilityRule{
				IsUniversalFit: true,
			},
		},
		{
			ID:              3,
			ProductName:     "Cabin Air Filter",
			ProductCategory: "Filters",
			Price:           12,
			ViewCount:       50,
			SoldCount:       1,
			RatingAverage:   3.5,
			RatingsCount:    2,
			CreatedAt:       now.AddDate(0, 0, -90),
		},
	}
}

func TestSearch_RelevanceFiltering(t *testing.T) {
	repo := &fakeProductRepo{products: searchCatalog(time.Now())}
	svc := NewRankingService(repo, nil, nil, time.Minute, 50)

	results, err := svc.Search(context.Background(), "ninja", nil, "", SortRelevance, 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 (filter should drop the air filter)", len(results))
	}
	for _, r := range results {
		if r.Product.ID == 3 {
			t.Error("listing with no relevance to the query survived the threshold")
		}
		if r.Score <= RelevanceThreshold {
			t.Errorf("listing %d kept with score %v at or below the cut", r.Product.ID, r.Score)
		}
	}
}

func TestSearch_CompatibilityFiltering(t *testing.T) {
	repo := &fakeProductRepo{products: searchCatalog(time.Now())}
	svc := NewRankingService(repo, nil, nil, time.Minute, 50)

	vehicle := &domain.Vehicle{Make: "Honda", Model: "CBR500R"}
	results, err := svc.Search(context.Background(), "ninja", vehicle, "", SortRelevance, 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(results) != 1 || results[0].Product.ID != 2 {
		t.Fatalf("only the universal-fit listing should survive a Honda vehicle, got %+v", results)
	}
}

func TestSearch_CategoryFilterIsCaseInsensitive(t *testing.T) {
	repo := &fakeProductRepo{products: searchCatalog(time.Now())}
	svc := NewRankingService(repo, nil, nil, time.Minute, 50)

	results, err := svc.Search(context.Background(), "", nil, "controls", "", 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(results) != 1 || results[0].Product.ID != 1 {
		t.Fatalf("category filter should keep only the Controls listing, got %+v", results)
	}
}

func TestSearch_PriceSortAndLimit(t *testing.T) {
	repo := &fakeProductRepo{products: searchCatalog(time.Now())}
	svc := NewRankingService(repo, nil, nil, time.Minute, 50)

	results, err := svc.Search(context.Background(), "", nil, "", SortPriceAsc, 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("limit should cap results at 2, got %d", len(results))
	}
	if results[0].Product.Price > results[1].Product.Price {
		t.Errorf("price_asc out of order: %v then %v", results[0].Product.Price, results[1].Product.Price)
	}
	if results[0].Product.ID != 3 {
		t.Errorf("cheapest listing should come first, got product %d", results[0].Product.ID)
	}
}

func TestSearch_RecordsEvent(t *testing.T) {
	repo := &fakeProductRepo{products: searchCatalog(time.Now())}
	events := &fakeEventRepo{}
	svc := NewRankingService(repo, nil, events, time.Minute, 50)

	vehicle := &domain.Vehicle{Make: "Kawasaki", Model: "Ninja 400", Year: 2021}
	results, err := svc.Search(context.Background(), "ninja", vehicle, "", SortRelevance, 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(events.events) != 1 {
		t.Fatalf("expected one recorded search event, got %d", len(events.events))
	}
	ev := events.events[0]
	if ev.Query != "ninja" || ev.Results != len(results) {
		t.Errorf("event captured %q with %d results, want %q with %d", ev.Query, ev.Results, "ninja", len(results))
	}
	if ev.Context["make"] != "Kawasaki" {
		t.Errorf("event context make = %v, want Kawasaki", ev.Context["make"])
	}

	// Browsing without a query is not a search event.
	if _, err := svc.Search(context.Background(), "", nil, "", "", 0); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(events.events) != 1 {
		t.Errorf("empty query should not record an event, got %d events", len(events.events))
	}
}

func TestTrending_CacheHit(t *testing.T) {
	repo := &fakeProductRepo{products: searchCatalog(time.Now())}
	cache := &fakeTrendingCache{
		feed: []domain.RankedProduct{
			{Product: domain.Product{ID: 2}, Score: 80},
			{Product: domain.Product{ID: 1}, Score: 40},
			{Product: domain.Product{ID: 3}, Score: 5},
		},
	}
	svc := NewRankingService(repo, cache, nil, time.Minute, 50)

	results, err := svc.Trending(context.Background(), 2)
	if err != nil {
		t.Fatalf("Trending: %v", err)
	}

	if repo.findAllCalls != 0 {
		t.Errorf("cache hit should not touch the catalog, FindAll called %d times", repo.findAllCalls)
	}
	if len(results) != 2 || results[0].Product.ID != 2 {
		t.Errorf("cached feed should come back truncated to the limit, got %+v", results)
	}
}

func TestTrending_CacheMissRecomputes(t *testing.T) {
	now := time.Now()
	repo := &fakeProductRepo{products: searchCatalog(now)}
	cache := &fakeTrendingCache{getErr: errors.New("cache miss")}
	svc := NewRankingService(repo, cache, nil, 5*time.Minute, 50)

	results, err := svc.Trending(context.Background(), 10)
	if err != nil {
		t.Fatalf("Trending: %v", err)
	}

	if repo.findAllCalls != 1 {
		t.Errorf("cache miss should load the catalog once, got %d calls", repo.findAllCalls)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].Score < results[i].Score {
			t.Errorf("trending feed out of order at %d: %v then %v", i, results[i-1].Score, results[i].Score)
		}
	}

	if cache.setKey != trendingCacheKey {
		t.Errorf("recomputed feed cached under %q, want %q", cache.setKey, trendingCacheKey)
	}
	if cache.setTTL != 5*time.Minute {
		t.Errorf("cache TTL = %v, want 5m", cache.setTTL)
	}
}

func TestTrending_WorksWithoutCache(t *testing.T) {
	repo := &fakeProductRepo{products: searchCatalog(time.Now())}
	svc := NewRankingService(repo, nil, nil, time.Minute, 50)

	results, err := svc.Trending(context.Background(), 0)
	if err != nil {
		t.Fatalf("Trending: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("got %d results, want the whole catalog under the default limit", len(results))
	}
}

func TestCheckFitment(t *testing.T) {
	repo := &fakeProductRepo{products: searchCatalog(time.Now())}
	svc := NewRankingService(repo, nil, nil, time.Minute, 50)

	fits, err := svc.CheckFitment(context.Background(), 1, &domain.Vehicle{Make: "Kawasaki", Model: "Ninja 400"})
	if err != nil {
		t.Fatalf("CheckFitment: %v", err)
	}
	if !fits.Compatible {
		t.Error("Kawasaki Ninja 400 should fit its own foot pegs")
	}

	noFit, err := svc.CheckFitment(context.Background(), 1, &domain.Vehicle{Make: "Honda", Model: "CBR500R"})
	if err != nil {
		t.Fatalf("CheckFitment: %v", err)
	}
	if noFit.Compatible {
		t.Error("Honda vehicle should not fit a Kawasaki-only listing")
	}

	if _, err := svc.CheckFitment(context.Background(), 0, nil); err == nil {
		t.Error("product id 0 should be rejected")
	}
}

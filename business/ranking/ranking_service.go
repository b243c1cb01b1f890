package ranking

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"partsHub/domain"
	"partsHub/pkg/logger"
	"partsHub/pkg/metrics"

	"gorm.io/datatypes"
)

const (
	SortRelevance = "relevance"
	SortTrending  = "trending"
	SortFitment   = "fitment"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNewest    = "newest"
)

const trendingCacheKey = "trending:top"

// ProductRepository is the slice of the catalog the engine needs.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
}

// TrendingCache holds a precomputed trending feed for a short TTL.
// Ranking works without it; cache errors only cost a recompute.
type TrendingCache interface {
	Get(ctx context.Context, key string) ([]domain.RankedProduct, error)
	Set(ctx context.Context, key string, ranked []domain.RankedProduct, ttl time.Duration) error
}

// SearchEventRepository records search traffic for later analysis.
type SearchEventRepository interface {
	SaveEvent(ctx context.Context, event domain.SearchEvent) error
}

type rankingService struct {
	productRepo ProductRepository
	cache       TrendingCache
	eventRepo   SearchEventRepository
	cacheTTL    time.Duration
	feedSize    int
}

func NewRankingService(
	productRepo ProductRepository,
	cache TrendingCache,
	eventRepo SearchEventRepository,
	cacheTTL time.Duration,
	feedSize int,
) *rankingService {
	if feedSize <= 0 {
		feedSize = 50
	}
	return &rankingService{
		productRepo: productRepo,
		cache:       cache,
		eventRepo:   eventRepo,
		cacheTTL:    cacheTTL,
		feedSize:    feedSize,
	}
}

// Search filters the catalog against a free-text query and an optional
// vehicle, then sorts by the requested order. Listings scoring at or
// below RelevanceThreshold are dropped, as are listings whose declared
// compatibility rejects the vehicle.
func (s *rankingService) Search(
	ctx context.Context,
	query string,
	vehicle *domain.Vehicle,
	category string,
	sortBy string,
	limit int,
) ([]domain.RankedProduct, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when searching products")
		return nil, fmt.Errorf("context error: %w", err)
	}

	start := time.Now()
	defer func() {
		metrics.SearchLatency.Observe(time.Since(start).Seconds())
	}()
	metrics.SearchRequests.Inc()

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to load catalog for search", err)
		return nil, err
	}

	now := time.Now()
	ranked := make([]domain.RankedProduct, 0, len(products))

	for i := range products {
		p := &products[i]

		if category != "" && !strings.EqualFold(p.ProductCategory, category) {
			continue
		}
		if !IsCompatible(p.VehicleCompatibility, vehicle) {
			continue
		}

		relevance := 0.0
		if query != "" {
			relevance = MatchScore(SearchText(p), query)
			if relevance <= RelevanceThreshold {
				continue
			}
		}

		entry := domain.RankedProduct{Product: *p}
		switch sortBy {
		case SortTrending:
			entry.Score = TrendingScore(p, now)
		case SortFitment:
			entry.Score = FitmentScore(p, vehicle)
		default:
			entry.Score = relevance
		}
		ranked = append(ranked, entry)
	}

	sortResults(ranked, sortBy)

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	s.recordSearchEvent(ctx, query, vehicle, len(ranked))

	return ranked, nil
}

// Trending returns the top listings by trending score, served from the
// cache when a fresh feed exists.
func (s *rankingService) Trending(ctx context.Context, limit int) ([]domain.RankedProduct, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when building trending feed")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		limit = 20
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, trendingCacheKey)
		if err == nil && len(cached) > 0 {
			metrics.TrendingCacheHits.Inc()
			if len(cached) > limit {
				cached = cached[:limit]
			}
			return cached, nil
		}
		metrics.TrendingCacheMisses.Inc()
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to load catalog for trending feed", err)
		return nil, err
	}

	ranked := ScoreAll(products, time.Now())
	SortByScore(ranked)

	// Only the top of the feed is worth keeping around
	if len(ranked) > s.feedSize {
		ranked = ranked[:s.feedSize]
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, trendingCacheKey, ranked, s.cacheTTL); err != nil {
			logger.Warn("failed to cache trending feed", "error", err)
		}
	}

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked, nil
}

// CheckFitment answers the product-page question: does this part fit my
// vehicle, and how strong is the soft fitment signal.
func (s *rankingService) CheckFitment(ctx context.Context, productID uint64, vehicle *domain.Vehicle) (domain.FitmentCheck, error) {
	if productID == 0 {
		return domain.FitmentCheck{}, fmt.Errorf("invalid product id")
	}
	if err := ctx.Err(); err != nil {
		return domain.FitmentCheck{}, fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		logger.Error("failed to find product for fitment check", err)
		return domain.FitmentCheck{}, err
	}

	return domain.FitmentCheck{
		ProductID:    product.ID,
		Compatible:   IsCompatible(product.VehicleCompatibility, vehicle),
		FitmentScore: FitmentScore(&product, vehicle),
	}, nil
}

func (s *rankingService) recordSearchEvent(ctx context.Context, query string, vehicle *domain.Vehicle, results int) {
	if s.eventRepo == nil || query == "" {
		return
	}

	eventCtx := datatypes.JSONMap{}
	if vehicle != nil && !vehicle.IsZero() {
		eventCtx["make"] = vehicle.Make
		eventCtx["model"] = vehicle.Model
		eventCtx["year"] = vehicle.Year
	}

	event := domain.SearchEvent{
		Query:     query,
		Context:   eventCtx,
		Results:   results,
		CreatedAt: time.Now(),
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		logger.Warn("failed to record search event", "error", err)
	}
}

func sortResults(ranked []domain.RankedProduct, sortBy string) {
	switch sortBy {
	case SortPriceAsc:
		sort.SliceStable(ranked, func(i, j int) bool {
			if ranked[i].Product.Price != ranked[j].Product.Price {
				return ranked[i].Product.Price < ranked[j].Product.Price
			}
			return ranked[i].Product.ID < ranked[j].Product.ID
		})
	case SortPriceDesc:
		sort.SliceStable(ranked, func(i, j int) bool {
			if ranked[i].Product.Price != ranked[j].Product.Price {
				return ranked[i].Product.Price > ranked[j].Product.Price
			}
			return ranked[i].Product.ID < ranked[j].Product.ID
		})
	case SortNewest:
		sort.SliceStable(ranked, func(i, j int) bool {
			if !ranked[i].Product.CreatedAt.Equal(ranked[j].Product.CreatedAt) {
				return ranked[i].Product.CreatedAt.After(ranked[j].Product.CreatedAt)
			}
			return ranked[i].Product.ID < ranked[j].Product.ID
		})
	default:
		SortByScore(ranked)
	}
}

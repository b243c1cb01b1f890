package ranking

import (
	"runtime"
	"sort"
	"time"

	"partsHub/domain"
	"partsHub/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// ScoreAll computes trending scores for a whole catalog slice. Products
// are independent, so scoring fans out across workers. A failure while
// scoring one listing degrades that listing to score 0 and the rest of
// the batch is unaffected.
func ScoreAll(products []domain.Product, now time.Time) []domain.RankedProduct {
	ranked := make([]domain.RankedProduct, len(products))
	for i := range products {
		ranked[i].Product = products[i]
	}

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range ranked {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					ranked[i].Score = 0
					logger.Warn("trending score failed for product",
						"product_id", ranked[i].Product.ID, "panic", r)
				}
			}()
			ranked[i].Score = TrendingScore(&ranked[i].Product, now)
			return nil
		})
	}
	_ = g.Wait()

	return ranked
}

// SortByScore orders ranked products by descending score. The sort is
// stable and ties fall back to ascending product ID so identical scores
// always come out in the same order.
func SortByScore(ranked []domain.RankedProduct) {
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Product.ID < ranked[j].Product.ID
	})
}

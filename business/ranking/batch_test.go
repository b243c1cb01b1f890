//go:build !integration

package ranking

import (
	"testing"
	"time"

	"partsHub/domain"
)

func TestScoreAll(t *testing.T) {
	now := time.Now()
	products := []domain.Product{
		{ID: 1, SoldCount: 50, ViewCount: 500, RatingAverage: 4.5, RatingsCount: 25, CreatedAt: now.AddDate(0, 0, -10)},
		{ID: 2}, // no timestamp, no traffic
		{ID: 3, SoldCount: 5, ViewCount: 200, RatingAverage: 4.0, RatingsCount: 8, CreatedAt: now.AddDate(0, 0, -5)},
	}

	ranked := ScoreAll(products, now)

	if len(ranked) != len(products) {
		t.Fatalf("ScoreAll returned %d entries, want %d", len(ranked), len(products))
	}
	for i := range ranked {
		if ranked[i].Product.ID != products[i].ID {
			t.Errorf("entry %d carries product %d, want %d", i, ranked[i].Product.ID, products[i].ID)
		}
	}

	if ranked[0].Score <= 0 {
		t.Errorf("healthy listing should score above 0, got %v", ranked[0].Score)
	}
	if ranked[1].Score != 0 {
		t.Errorf("listing with no signal should score 0 without failing the batch, got %v", ranked[1].Score)
	}
	if ranked[2].Score <= 0 {
		t.Errorf("healthy listing should score above 0, got %v", ranked[2].Score)
	}
}

func TestScoreAll_Empty(t *testing.T) {
	ranked := ScoreAll(nil, time.Now())
	if len(ranked) != 0 {
		t.Errorf("empty catalog should yield an empty batch, got %d entries", len(ranked))
	}
}

func TestSortByScore(t *testing.T) {
	ranked := []domain.RankedProduct{
		{Product: domain.Product{ID: 9}, Score: 10},
		{Product: domain.Product{ID: 2}, Score: 50},
		{Product: domain.Product{ID: 7}, Score: 50},
		{Product: domain.Product{ID: 1}, Score: 30},
	}

	SortByScore(ranked)

	wantOrder := []uint64{2, 7, 1, 9}
	for i, id := range wantOrder {
		if ranked[i].Product.ID != id {
			t.Errorf("position %d: got product %d, want %d", i, ranked[i].Product.ID, id)
		}
	}
}

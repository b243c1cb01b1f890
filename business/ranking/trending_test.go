//go:build !integration

package ranking

import (
	"math"
	"testing"
	"time"

	"partsHub/domain"
)

func trendingFixture(now time.Time) domain.Product {
	return domain.Product{
		ID:            1,
		Price:         100,
		SoldCount:     50,
		ViewCount:     500,
		RatingAverage: 4.5,
		RatingsCount:  25,
		CreatedAt:     now.AddDate(0, 0, -30),
	}
}

func TestTrendingScore_ZeroWithoutViews(t *testing.T) {
	now := time.Now()
	p := trendingFixture(now)
	p.ViewCount = 0
	p.SoldCount = 0

	if got := TrendingScore(&p, now); got != 0 {
		t.Errorf("no views should mean no trending signal, got %v", got)
	}
}

func TestTrendingScore_ZeroWithoutCreatedAt(t *testing.T) {
	now := time.Now()
	p := trendingFixture(now)
	p.CreatedAt = time.Time{}

	if got := TrendingScore(&p, now); got != 0 {
		t.Errorf("listing without a usable timestamp should score 0, got %v", got)
	}
	if got := TrendingScore(nil, now); got != 0 {
		t.Errorf("nil product should score 0, got %v", got)
	}
}

func TestTrendingScore_MonotoneInSales(t *testing.T) {
	now := time.Now()
	prev := -1.0
	for _, sold := range []int64{0, 1, 5, 10, 40} {
		p := trendingFixture(now)
		p.SoldCount = sold
		got := TrendingScore(&p, now)
		if got < prev {
			t.Errorf("score dropped from %v to %v when soldCount rose to %d", prev, got, sold)
		}
		prev = got
	}
}

func TestTrendingScore_CredibilityRewardsRatingVolume(t *testing.T) {
	now := time.Now()

	few := trendingFixture(now)
	few.RatingsCount = 3

	many := trendingFixture(now)
	many.RatingsCount = 25

	if TrendingScore(&few, now) >= TrendingScore(&many, now) {
		t.Error("25 ratings at the same average should outscore 3 ratings")
	}
}

func TestVelocityFactor(t *testing.T) {
	p := &domain.Product{SoldCount: 10, ViewCount: 100}
	// velocity 10*10 + 100*1 = 200, conversion 0.1 * 2.5 = 0.25
	if got := velocityFactor(p); got != 50 {
		t.Errorf("velocityFactor = %v, want 50", got)
	}

	hot := &domain.Product{SoldCount: 80, ViewCount: 100}
	// conversion multiplier caps at 1.0
	if got := velocityFactor(hot); got != 900 {
		t.Errorf("capped velocityFactor = %v, want 900", got)
	}
}

func TestFreshnessFactor(t *testing.T) {
	now := time.Now()

	if got := freshnessFactor(now.AddDate(0, 0, -30), now); got != 1.0 {
		t.Errorf("inside the window: got %v, want 1.0", got)
	}
	if got := freshnessFactor(now.AddDate(0, 0, -60), now); got != 1.0 {
		t.Errorf("window boundary: got %v, want 1.0", got)
	}

	day61 := freshnessFactor(now.Add(-61*24*time.Hour), now)
	if math.Abs(day61-math.Exp(-0.01)) > 1e-9 {
		t.Errorf("one day past the window: got %v, want %v", day61, math.Exp(-0.01))
	}
	if day61 >= 1.0 {
		t.Errorf("decay should pull the factor below 1.0, got %v", day61)
	}

	if got := freshnessFactor(now.AddDate(0, 0, -1000), now); got != freshnessFloor {
		t.Errorf("very old listing should sit on the floor, got %v", got)
	}
}

func TestValueFactor(t *testing.T) {
	price := func(v float64) *float64 { return &v }

	cases := []struct {
		name    string
		product domain.Product
		want    float64
	}{
		{"no compare-at", domain.Product{Price: 100}, 1.0},
		{"compare-at below price", domain.Product{Price: 100, CompareAtPrice: price(80)}, 1.0},
		{"compare-at zero", domain.Product{Price: 100, CompareAtPrice: price(0)}, 1.0},
		{"deep discount flat boost", domain.Product{Price: 80, CompareAtPrice: price(100)}, 1.1},
		{"shallow discount scales", domain.Product{Price: 90, CompareAtPrice: price(100)}, 1.05},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := valueFactor(&tc.product)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("valueFactor = %v, want %v", got, tc.want)
			}
		})
	}
}

package ranking

import (
	"math"
	"time"

	"partsHub/domain"
)

const (
	soldWeight = 10.0
	viewWeight = 1.0

	conversionBoost = 2.5

	freshnessWindowDays = 60.0
	freshnessDecayRate  = 0.01
	freshnessFloor      = 0.1

	discountFlatThreshold = 0.15
	discountFlatBoost     = 1.1
	discountLinearWeight  = 0.5
)

// TrendingScore computes the composite popularity ranking for a listing
// at the given instant. The four factors multiply, so any factor at
// zero kills the whole score: a part nobody viewed does not trend no
// matter how fresh or discounted it is.
//
// A listing whose CreatedAt never carried a usable timestamp scores 0
// rather than erroring; ranking degrades, it does not fail.
func TrendingScore(p *domain.Product, now time.Time) float64 {
	if p == nil || p.CreatedAt.IsZero() {
		return 0
	}

	return velocityFactor(p) *
		credibilityFactor(p) *
		freshnessFactor(p.CreatedAt, now) *
		valueFactor(p)
}

// velocityFactor combines raw sales velocity with the view-to-sale
// conversion rate. Zero views means zero signal.
func velocityFactor(p *domain.Product) float64 {
	if p.ViewCount <= 0 {
		return 0
	}

	velocity := float64(p.SoldCount)*soldWeight + float64(p.ViewCount)*viewWeight
	conversion := float64(p.SoldCount) / float64(p.ViewCount)

	return velocity * math.Min(conversion*conversionBoost, 1.0)
}

// credibilityFactor weights the rating average by how many ratings back
// it. Listings past 20 ratings earn a boost beyond parity.
func credibilityFactor(p *domain.Product) float64 {
	var confidence float64
	switch {
	case p.RatingsCount < 5:
		confidence = 0.3
	case p.RatingsCount < 10:
		confidence = 0.6
	case p.RatingsCount < 20:
		confidence = 0.8
	default:
		confidence = 1.2
	}

	return confidence * math.Max(0, p.RatingAverage/5.0)
}

// freshnessFactor holds at 1.0 for the first 60 days of a listing's
// life, then decays exponentially with a floor so old listings never
// fully vanish from trending.
func freshnessFactor(createdAt, now time.Time) float64 {
	days := now.Sub(createdAt).Hours() / 24
	if days <= freshnessWindowDays {
		return 1.0
	}

	decay := math.Exp(-freshnessDecayRate * (days - freshnessWindowDays))
	return math.Max(decay, freshnessFloor)
}

// valueFactor rewards a real discount against the compare-at price:
// 15% off or more earns a flat boost, smaller discounts scale linearly.
func valueFactor(p *domain.Product) float64 {
	if p.CompareAtPrice == nil {
		return 1.0
	}

	was := *p.CompareAtPrice
	if was <= 0 || was <= p.Price {
		return 1.0
	}

	fraction := (was - p.Price) / was
	if fraction >= discountFlatThreshold {
		return discountFlatBoost
	}
	return 1.0 + fraction*discountLinearWeight
}

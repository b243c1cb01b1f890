package ranking

import (
	"math"
	"strings"

	"partsHub/domain"
)

const (
	exactMatchScore     = 100.0
	substringMatchScore = 90.0

	// RelevanceThreshold is the cut below which a listing is treated as
	// irrelevant to the query and dropped from results.
	RelevanceThreshold = 30.0

	baseCharPoints  = 10
	streakPoints    = 2
	wordPrefixBonus = 20.0
)

// MatchScore rates how well a free-text query matches a candidate text,
// from 0 to 100. Exact equality scores 100 and a contiguous substring
// 90, both after case-folding. Anything else falls through to an
// ordered subsequence scan that rewards adjacent runs of matching
// characters over scattered ones, scaled down linearly when not every
// query character was found.
func MatchScore(text, query string) float64 {
	if text == "" || query == "" {
		return 0
	}

	t := strings.ToLower(text)
	q := strings.ToLower(query)

	if t == q {
		return exactMatchScore
	}
	if strings.Contains(t, q) {
		return substringMatchScore
	}

	qr := []rune(q)
	score := 0.0
	matched := 0
	run := 0

	for _, c := range t {
		if matched < len(qr) && c == qr[matched] {
			matched++
			run++
			score += float64(baseCharPoints + streakPoints*run)
		} else {
			run = 0
		}
	}

	if matched < len(qr) {
		score *= float64(matched) / float64(len(qr))
	}

	for _, word := range strings.Fields(t) {
		if strings.HasPrefix(word, q) {
			score += wordPrefixBonus
			break
		}
	}

	return math.Min(math.Max(score, 0), exactMatchScore)
}

// SearchText concatenates the searchable fields of a listing into the
// single haystack MatchScore runs against.
func SearchText(p *domain.Product) string {
	if p == nil {
		return ""
	}

	parts := make([]string, 0, 8)
	for _, s := range []string{p.ProductName, p.Description, p.ProductCategory, p.StoreName} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if p.VehicleCompatibility != nil {
		parts = append(parts, p.VehicleCompatibility.Makes...)
		parts = append(parts, p.VehicleCompatibility.Models...)
	}
	parts = append(parts, p.Tags...)

	return strings.Join(parts, " ")
}

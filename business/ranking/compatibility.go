package ranking

import (
	"strings"

	"partsHub/domain"
)

const (
	fitmentTypePoints     = 40.0
	fitmentStylePoints    = 20.0
	fitmentCategoryPoints = 20.0
	fitmentTagPoints      = 10.0
)

// IsCompatible decides whether a part fits the given vehicle. The
// default is permissive: listings that never declared fitment, and
// queries that never supplied a vehicle, pass. Declared constraints are
// conjunctive, and a constraint only applies when the vehicle actually
// carries the field it checks.
func IsCompatible(rule *domain.CompatibilityRule, v *domain.Vehicle) bool {
	if rule == nil || v == nil || v.IsZero() {
		return true
	}
	if rule.IsUniversalFit {
		return true
	}

	if len(rule.Makes) > 0 && v.Make != "" && !containsFold(rule.Makes, v.Make) {
		return false
	}
	if len(rule.Models) > 0 && v.Model != "" && !containsFold(rule.Models, v.Model) {
		return false
	}
	if rule.YearRange != nil && v.Year != 0 {
		if v.Year < rule.YearRange.From {
			return false
		}
		if rule.YearRange.To > 0 && v.Year > rule.YearRange.To {
			return false
		}
	}
	if len(rule.Trims) > 0 && v.Trim != "" && !anyTrimMatches(rule.Trims, v.Trim) {
		return false
	}
	if len(rule.Engines) > 0 && v.Engine != "" && !containsFold(rule.Engines, v.Engine) {
		return false
	}

	return true
}

// FitmentScore is the soft 0-90 relevance number over the listing's
// discovery metadata. It is only ever used for sorting; IsCompatible
// owns exclusion.
func FitmentScore(p *domain.Product, v *domain.Vehicle) float64 {
	if p == nil || p.VehicleFitment == nil || v == nil || v.IsZero() {
		return 0
	}

	fit := p.VehicleFitment
	score := 0.0

	if v.Type != "" && containsFold(fit.VehicleTypes, v.Type) {
		score += fitmentTypePoints
	}

	if v.Style != "" {
		style := strings.ToLower(v.Style)
		for _, s := range fit.Styles {
			declared := strings.ToLower(s)
			if declared == "" {
				continue
			}
			if strings.Contains(declared, style) || strings.Contains(style, declared) {
				score += fitmentStylePoints
				break
			}
		}
	}

	if p.ProductCategory != "" && containsFold(fit.Categories, p.ProductCategory) {
		score += fitmentCategoryPoints
	}

	if v.Model != "" {
		model := strings.ToLower(v.Model)
		for _, tag := range p.Tags {
			if tag != "" && strings.Contains(model, strings.ToLower(tag)) {
				score += fitmentTagPoints
				break
			}
		}
	}

	return score
}

func containsFold(set []string, s string) bool {
	for _, member := range set {
		if strings.EqualFold(member, s) {
			return true
		}
	}
	return false
}

func anyTrimMatches(declared []string, vehicleTrim string) bool {
	trim := strings.ToLower(vehicleTrim)
	for _, d := range declared {
		if d != "" && strings.Contains(trim, strings.ToLower(d)) {
			return true
		}
	}
	return false
}

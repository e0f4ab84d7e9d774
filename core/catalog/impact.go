package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"casecost/core/types"
)

var impactMultipliers = map[types.ImpactCategory]decimal.Decimal{
	types.ImpactIndividual:     decimal.RequireFromString("1.0"),
	types.ImpactPublicInterest: decimal.RequireFromString("3.0"),
	types.ImpactSystemic:       decimal.RequireFromString("5.0"),
	types.ImpactJusCogens:      decimal.RequireFromString("10.0"),
}

var precedentMultipliers = map[types.PrecedentValue]decimal.Decimal{
	types.PrecedentNone:          decimal.RequireFromString("1.0"),
	types.PrecedentRegional:      decimal.RequireFromString("1.2"),
	types.PrecedentNational:      decimal.RequireFromString("1.5"),
	types.PrecedentInternational: decimal.RequireFromString("2.0"),
}

var hrImpactMultipliers = map[types.HumanRightsImpact]decimal.Decimal{
	types.HRImpactLow:      decimal.RequireFromString("1.0"),
	types.HRImpactModerate: decimal.RequireFromString("1.3"),
	types.HRImpactHigh:     decimal.RequireFromString("1.6"),
	types.HRImpactSevere:   decimal.RequireFromString("2.0"),
}

// ImpactCategories returns the impact tiers in ascending order
func ImpactCategories() []types.ImpactCategory {
	return []types.ImpactCategory{
		types.ImpactIndividual,
		types.ImpactPublicInterest,
		types.ImpactSystemic,
		types.ImpactJusCogens,
	}
}

// PrecedentValues returns the precedent tiers in ascending order
func PrecedentValues() []types.PrecedentValue {
	return []types.PrecedentValue{
		types.PrecedentNone,
		types.PrecedentRegional,
		types.PrecedentNational,
		types.PrecedentInternational,
	}
}

// HumanRightsImpacts returns the human-rights-impact tiers in ascending order
func HumanRightsImpacts() []types.HumanRightsImpact {
	return []types.HumanRightsImpact{
		types.HRImpactLow,
		types.HRImpactModerate,
		types.HRImpactHigh,
		types.HRImpactSevere,
	}
}

// ImpactMultiplier returns the base multiplier of an impact category.
// Unknown categories fall back to the lowest tier.
func ImpactMultiplier(c types.ImpactCategory) decimal.Decimal {
	if m, ok := impactMultipliers[c]; ok {
		return m
	}
	return impactMultipliers[types.ImpactIndividual]
}

// PrecedentMultiplier returns the multiplier of a precedent tier.
// Unknown values fall back to PrecedentNone.
func PrecedentMultiplier(p types.PrecedentValue) decimal.Decimal {
	if m, ok := precedentMultipliers[p]; ok {
		return m
	}
	return precedentMultipliers[types.PrecedentNone]
}

// HRImpactMultiplier returns the multiplier of a human-rights-impact tier.
// Unknown values fall back to HRImpactLow.
func HRImpactMultiplier(h types.HumanRightsImpact) decimal.Decimal {
	if m, ok := hrImpactMultipliers[h]; ok {
		return m
	}
	return hrImpactMultipliers[types.HRImpactLow]
}

// ParsePrecedent parses a precedent tier name, case-insensitively
func ParsePrecedent(s string) (types.PrecedentValue, bool) {
	p := types.PrecedentValue(strings.ToLower(strings.TrimSpace(s)))
	_, ok := precedentMultipliers[p]
	return p, ok
}

// ParseImpactCategory parses an impact category name, case-insensitively
func ParseImpactCategory(s string) (types.ImpactCategory, bool) {
	c := types.ImpactCategory(strings.ToLower(strings.TrimSpace(s)))
	_, ok := impactMultipliers[c]
	return c, ok
}

// ParseHumanRightsImpact parses a human-rights-impact tier name,
// case-insensitively
func ParseHumanRightsImpact(s string) (types.HumanRightsImpact, bool) {
	h := types.HumanRightsImpact(strings.ToLower(strings.TrimSpace(s)))
	_, ok := hrImpactMultipliers[h]
	return h, ok
}

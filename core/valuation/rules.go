// Package valuation - Legal context rule table
// Free-text legal classifications are mapped to impact tiers by ordered
// keyword rules. The first rule with a matching keyword wins, so rules are
// listed from the most to the least severe tier.
package valuation

import (
	"strings"

	"casecost/core/types"
)

// KeywordRule maps a keyword set to a tier
type KeywordRule[T any] struct {
	Keywords []string
	Tier     T
}

// ImpactRules maps legal contexts to impact categories
var ImpactRules = []KeywordRule[types.ImpactCategory]{
	{
		Keywords: []string{"jus cogens", "ius cogens", "genocide", "crimes against humanity", "war crime", "torture", "slavery"},
		Tier:     types.ImpactJusCogens,
	},
	{
		Keywords: []string{"systemic", "systematic", "widespread", "structural", "pattern of"},
		Tier:     types.ImpactSystemic,
	},
	{
		Keywords: []string{"public interest", "strategic litigation", "collective", "class action", "community"},
		Tier:     types.ImpactPublicInterest,
	},
}

// HumanRightsRules maps legal contexts to human-rights-impact tiers
var HumanRightsRules = []KeywordRule[types.HumanRightsImpact]{
	{
		Keywords: []string{"jus cogens", "ius cogens", "genocide", "crimes against humanity", "war crime",
			"torture", "enforced disappearance", "extrajudicial", "slavery"},
		Tier: types.HRImpactSevere,
	},
	{
		Keywords: []string{"systemic", "systematic", "widespread", "arbitrary detention", "persecution"},
		Tier:     types.HRImpactHigh,
	},
	{
		Keywords: []string{"public interest", "discrimination", "freedom of expression", "freedom of assembly",
			"fair trial", "privacy"},
		Tier: types.HRImpactModerate,
	},
}

// ClassifyImpact returns the impact category of a legal context
func ClassifyImpact(text string) types.ImpactCategory {
	return match(ImpactRules, text, types.ImpactIndividual)
}

// ClassifyHumanRightsImpact returns the human-rights-impact tier of a
// legal context
func ClassifyHumanRightsImpact(text string) types.HumanRightsImpact {
	return match(HumanRightsRules, text, types.HRImpactLow)
}

// ClassifyLegalContext returns both tiers of a legal context
func ClassifyLegalContext(text string) (types.ImpactCategory, types.HumanRightsImpact) {
	return ClassifyImpact(text), ClassifyHumanRightsImpact(text)
}

func match[T any](rules []KeywordRule[T], text string, fallback T) T {
	lower := strings.ToLower(text)
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Tier
			}
		}
	}
	return fallback
}

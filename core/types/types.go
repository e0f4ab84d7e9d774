// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

// Currency represents a currency code
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Category is the cost category of an item
type Category string

const (
	CategoryMaterial      Category = "material"
	CategoryPersonnel     Category = "personnel"
	CategoryOperational   Category = "operational"
	CategoryMiscellaneous Category = "miscellaneous"
)

// Categories returns all categories in display order
func Categories() []Category {
	return []Category{
		CategoryMaterial,
		CategoryPersonnel,
		CategoryOperational,
		CategoryMiscellaneous,
	}
}

// String returns the string representation
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the category is known
func (c Category) IsValid() bool {
	switch c {
	case CategoryMaterial, CategoryPersonnel, CategoryOperational, CategoryMiscellaneous:
		return true
	default:
		return false
	}
}

// FactorKind tags the catalog a factor was drawn from
type FactorKind string

const (
	FactorQuality    FactorKind = "quality"
	FactorExperience FactorKind = "experience"
	FactorComplexity FactorKind = "complexity"
	FactorRisk       FactorKind = "risk"
	FactorTime       FactorKind = "time"

	// FactorDerived marks a factor computed from other rates, e.g. overhead
	FactorDerived FactorKind = "derived"

	// FactorSurcharge marks a proportional surcharge recorded as 1+rate
	FactorSurcharge FactorKind = "surcharge"
)

// ImpactCategory is the social impact tier of a case, in ascending order
type ImpactCategory string

const (
	ImpactIndividual     ImpactCategory = "individual"
	ImpactPublicInterest ImpactCategory = "public_interest"
	ImpactSystemic       ImpactCategory = "systemic"
	ImpactJusCogens      ImpactCategory = "jus_cogens"
)

// PrecedentValue is the expected precedent-setting reach of a case
type PrecedentValue string

const (
	PrecedentNone          PrecedentValue = "none"
	PrecedentRegional      PrecedentValue = "regional"
	PrecedentNational      PrecedentValue = "national"
	PrecedentInternational PrecedentValue = "international"
)

// HumanRightsImpact is the severity tier of the rights affected
type HumanRightsImpact string

const (
	HRImpactLow      HumanRightsImpact = "low"
	HRImpactModerate HumanRightsImpact = "moderate"
	HRImpactHigh     HumanRightsImpact = "high"
	HRImpactSevere   HumanRightsImpact = "severe"
)

// EfficiencyTier classifies an economic ROI
type EfficiencyTier string

const (
	EfficiencyExcellent EfficiencyTier = "Excellent"
	EfficiencyHigh      EfficiencyTier = "High"
	EfficiencyMedium    EfficiencyTier = "Medium"
	EfficiencyLow       EfficiencyTier = "Low"

	// EfficiencyUndefined is reported when total costs are zero
	EfficiencyUndefined EfficiencyTier = "Undefined"
)

// SROIAssessment is the qualitative band of a portfolio ROI
type SROIAssessment string

const (
	SROIExcellent   SROIAssessment = "excellent"
	SROIStrong      SROIAssessment = "strong"
	SROIBreakEven   SROIAssessment = "break-even"
	SROINeedsReview SROIAssessment = "needs review"

	// SROINotAssessable is reported when total investment is zero
	SROINotAssessable SROIAssessment = "not assessable"
)

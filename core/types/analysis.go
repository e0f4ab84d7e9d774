// Package types - Valuation and portfolio analysis types
package types

import "github.com/shopspring/decimal"

// EconomicAnalysis compares aggregate cost to the value at stake
type EconomicAnalysis struct {
	ObjectValue decimal.Decimal `json:"object_value"`
	TotalCosts  decimal.Decimal `json:"total_costs"`

	// ROI is (ObjectValue - TotalCosts) / TotalCosts; zero when undefined
	ROI decimal.Decimal `json:"roi"`

	// Defined is false when TotalCosts is zero and ROI cannot be computed
	Defined bool `json:"defined"`

	Threshold      decimal.Decimal `json:"threshold"`
	Efficiency     EfficiencyTier  `json:"efficiency"`
	IsViable       bool            `json:"is_viable"`
	Recommendation string          `json:"recommendation"`
}

// ProBonoAnalysis certifies the social market value of donated work
type ProBonoAnalysis struct {
	StandardCosts         decimal.Decimal   `json:"standard_costs"`
	ImpactCategory        ImpactCategory    `json:"impact_category"`
	DirectBeneficiaries   int               `json:"direct_beneficiaries"`
	IndirectBeneficiaries int               `json:"indirect_beneficiaries"`
	Precedent             PrecedentValue    `json:"precedent"`
	HumanRightsImpact     HumanRightsImpact `json:"human_rights_impact"`

	BaseMultiplier      decimal.Decimal `json:"base_multiplier"`
	PrecedentMultiplier decimal.Decimal `json:"precedent_multiplier"`
	HRImpactMultiplier  decimal.Decimal `json:"hr_impact_multiplier"`
	BeneficiariesFactor decimal.Decimal `json:"beneficiaries_factor"`

	// SocialImpactFactor is the product of the four multipliers
	SocialImpactFactor decimal.Decimal `json:"social_impact_factor"`

	// ProBonoValue is StandardCosts * SocialImpactFactor
	ProBonoValue decimal.Decimal `json:"pro_bono_value"`

	// PublicInterestLevel is in [0, 100]
	PublicInterestLevel decimal.Decimal `json:"public_interest_level"`

	Justification   string `json:"justification"`
	ImpactStatement string `json:"impact_statement"`
}

// ROIInputParams are the aggregate terms of the portfolio SROI model
type ROIInputParams struct {
	ActorCount         int             `json:"actor_count" validate:"gte=0"`
	HourlyRate         decimal.Decimal `json:"hourly_rate" validate:"gte=0"`
	AnnualHours        decimal.Decimal `json:"annual_hours" validate:"gte=0"`
	InfrastructureCost decimal.Decimal `json:"infrastructure_cost" validate:"gte=0"`

	// PreventedVolume is the monetary volume of harm that could be prevented
	PreventedVolume decimal.Decimal `json:"prevented_volume" validate:"gte=0"`

	// PreventionProbability is the share of PreventedVolume actually prevented
	PreventionProbability  decimal.Decimal `json:"prevention_probability" validate:"gte=0,lte=1"`
	AvoidedLitigationCosts decimal.Decimal `json:"avoided_litigation_costs" validate:"gte=0"`
	AvoidedSocialCosts     decimal.Decimal `json:"avoided_social_costs" validate:"gte=0"`
}

// ROICalculationResult is the output of the portfolio SROI model
type ROICalculationResult struct {
	Params ROIInputParams `json:"params"`

	StaffingCost      decimal.Decimal `json:"staffing_cost"`
	TotalInvestment   decimal.Decimal `json:"total_investment"`
	PreventionBenefit decimal.Decimal `json:"prevention_benefit"`
	TotalBenefit      decimal.Decimal `json:"total_benefit"`
	NPV               decimal.Decimal `json:"npv"`

	// ROIPercent is NPV / TotalInvestment * 100; zero when undefined
	ROIPercent decimal.Decimal `json:"roi_percent"`
	ROIDefined bool            `json:"roi_defined"`

	// BenefitCostRatio is TotalBenefit / TotalInvestment; zero when undefined
	BenefitCostRatio decimal.Decimal `json:"benefit_cost_ratio"`

	// BreakEvenPoint is the minimum prevention probability for NPV = 0
	BreakEvenPoint     decimal.Decimal `json:"break_even_point"`
	BreakEvenDefined   bool            `json:"break_even_defined"`
	BreakEvenReachable bool            `json:"break_even_reachable"`

	Assessment SROIAssessment `json:"assessment"`
	Summary    string         `json:"summary"`
}

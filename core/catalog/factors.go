package catalog

import "casecost/core/types"

// Factor names of the built-in catalog
const (
	QualityStandard = "quality.standard"
	QualityEnhanced = "quality.enhanced"
	QualityPremium  = "quality.premium"
	QualityForensic = "quality.forensic"

	ExperienceJunior       = "experience.junior"
	ExperienceProfessional = "experience.professional"
	ExperienceSenior       = "experience.senior"
	ExperienceExpert       = "experience.expert"

	ComplexitySimple        = "complexity.simple"
	ComplexityModerate      = "complexity.moderate"
	ComplexityComplex       = "complexity.complex"
	ComplexityHighlyComplex = "complexity.highly_complex"

	RiskLow      = "risk.low"
	RiskElevated = "risk.elevated"
	RiskHigh     = "risk.high"
	RiskCritical = "risk.critical"

	TimeRegular   = "time.regular"
	TimeExpedited = "time.expedited"
	TimeUrgent    = "time.urgent"
	TimeEmergency = "time.emergency"
)

func defaultFactors() []types.Factor {
	return []types.Factor{
		factor(types.FactorQuality, "standard", "1.0", "Ordinary consumables and equipment"),
		factor(types.FactorQuality, "enhanced", "1.25", "Archival-grade or certified material"),
		factor(types.FactorQuality, "premium", "1.5", "Tamper-evident or evidentiary-grade material"),
		factor(types.FactorQuality, "forensic", "2.0", "Forensic chain-of-custody material"),

		factor(types.FactorExperience, "junior", "0.8", "Less than two years of documentation practice"),
		factor(types.FactorExperience, "professional", "1.0", "Independent documentation practice"),
		factor(types.FactorExperience, "senior", "1.3", "Recognised specialist in the field"),
		factor(types.FactorExperience, "expert", "1.6", "Court-accepted expert witness"),

		factor(types.FactorComplexity, "simple", "1.0", "Single source, single jurisdiction"),
		factor(types.FactorComplexity, "moderate", "1.3", "Multiple sources or translation required"),
		factor(types.FactorComplexity, "complex", "1.6", "Cross-border evidence or contested facts"),
		factor(types.FactorComplexity, "highly_complex", "2.0", "Mass-casualty or multi-perpetrator documentation"),

		factor(types.FactorRisk, "low", "1.0", "No security concerns"),
		factor(types.FactorRisk, "elevated", "1.1", "Witness protection measures required"),
		factor(types.FactorRisk, "high", "1.25", "Work in an active conflict area"),
		factor(types.FactorRisk, "critical", "1.5", "Documenters under direct threat"),

		factor(types.FactorTime, "regular", "1.0", "Regular turnaround"),
		factor(types.FactorTime, "expedited", "1.25", "Turnaround within one week"),
		factor(types.FactorTime, "urgent", "1.5", "Turnaround within 48 hours"),
		factor(types.FactorTime, "emergency", "2.0", "Same-day turnaround"),
	}
}

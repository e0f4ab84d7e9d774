package valuation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"casecost/core/types"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEconomicsExample(t *testing.T) {
	a := EvaluateEconomics(d("10000"), d("2000"), DefaultViabilityThreshold)

	assert.True(t, a.Defined)
	assert.True(t, a.ROI.Equal(d("4")))
	assert.Equal(t, types.EfficiencyMedium, a.Efficiency)
	assert.True(t, a.IsViable)
	assert.Contains(t, a.Recommendation, "Economically viable")
	assert.Contains(t, a.Recommendation, "ROI of 4.00")
}

func TestEconomicsTiers(t *testing.T) {
	tests := []struct {
		objectValue string
		want        types.EfficiencyTier
		viable      bool
	}{
		{"22000", types.EfficiencyExcellent, true}, // roi 10
		{"12000", types.EfficiencyHigh, true},      // roi 5
		{"8000", types.EfficiencyMedium, true},     // roi 3
		{"7999", types.EfficiencyLow, false},
		{"1000", types.EfficiencyLow, false}, // roi -0.5
	}

	for _, tt := range tests {
		t.Run(tt.objectValue, func(t *testing.T) {
			a := EvaluateEconomics(d(tt.objectValue), d("2000"), DefaultViabilityThreshold)
			assert.Equal(t, tt.want, a.Efficiency)
			assert.Equal(t, tt.viable, a.IsViable)
			assert.NotEmpty(t, a.Recommendation)
		})
	}
}

func TestEconomicsNotViableTemplate(t *testing.T) {
	a := EvaluateEconomics(d("3000"), d("2000"), DefaultViabilityThreshold)
	assert.Equal(t,
		"Not economically viable: the ROI of 0.50 is below the required threshold of 3.0 (object value 3000.00, total costs 2000.00). Recommendation: decline the case or take it on pro bono.",
		a.Recommendation)
}

func TestEconomicsZeroCosts(t *testing.T) {
	a := EvaluateEconomics(d("10000"), decimal.Zero, DefaultViabilityThreshold)

	assert.False(t, a.Defined)
	assert.False(t, a.IsViable)
	assert.Equal(t, types.EfficiencyUndefined, a.Efficiency)
	assert.True(t, a.ROI.IsZero())
	assert.NotEmpty(t, a.Recommendation)
}

func TestEconomicsCustomThreshold(t *testing.T) {
	a := EvaluateEconomics(d("13000"), d("2000"), d("6"))
	// roi 5.5: High tier but below the custom threshold
	assert.Equal(t, types.EfficiencyHigh, a.Efficiency)
	assert.False(t, a.IsViable)
}

func TestProBonoExample(t *testing.T) {
	a := EvaluateProBono(ProBonoInput{
		StandardCosts:       d("1000"),
		ImpactCategory:      types.ImpactSystemic,
		DirectBeneficiaries: 1,
		Precedent:           types.PrecedentNational,
		HumanRightsImpact:   types.HRImpactHigh,
	})

	assert.True(t, a.SocialImpactFactor.Equal(d("12")), a.SocialImpactFactor.String())
	assert.True(t, a.ProBonoValue.Equal(d("12000")))
	assert.True(t, a.PublicInterestLevel.Equal(d("100")))
	assert.True(t, a.BeneficiariesFactor.Equal(d("1")))
	assert.Contains(t, a.Justification, "12000.00")
	assert.Contains(t, a.ImpactStatement, "1 direct and 0 indirect")
}

func TestProBonoBeneficiaries(t *testing.T) {
	assert.True(t, BeneficiariesFactor(0).Equal(d("1")))
	assert.True(t, BeneficiariesFactor(-4).Equal(d("1")))
	assert.True(t, BeneficiariesFactor(10).Equal(d("1.2")))
	assert.True(t, BeneficiariesFactor(1000).Equal(d("1.6")))

	a := EvaluateProBono(ProBonoInput{
		StandardCosts:         d("500"),
		DirectBeneficiaries:   10,
		IndirectBeneficiaries: 90,
	})
	// 1 × 1 × 1 × 1.4
	assert.True(t, a.SocialImpactFactor.Equal(d("1.4")))
	assert.True(t, a.ProBonoValue.Equal(d("700")))
	assert.True(t, a.PublicInterestLevel.Equal(d("14")))
}

func TestProBonoKeepsFactorPrecision(t *testing.T) {
	a := EvaluateProBono(ProBonoInput{
		StandardCosts:       d("100000"),
		ImpactCategory:      types.ImpactJusCogens,
		DirectBeneficiaries: 2,
		Precedent:           types.PrecedentInternational,
		HumanRightsImpact:   types.HRImpactSevere,
	})
	// 10 × 2 × 2 × (1 + 0.2 × log10 2)
	assert.True(t, a.BeneficiariesFactor.Equal(d("1.0602059991")), a.BeneficiariesFactor.String())
	assert.True(t, a.SocialImpactFactor.Equal(d("42.408239964")), a.SocialImpactFactor.String())
	assert.True(t, a.ProBonoValue.Equal(d("4240824")), a.ProBonoValue.String())
}

func TestProBonoNormalizesTiers(t *testing.T) {
	a := EvaluateProBono(ProBonoInput{
		StandardCosts:     d("100"),
		ImpactCategory:    "Systemic",
		Precedent:         "unheard-of",
		HumanRightsImpact: "SEVERE",
	})
	assert.Equal(t, types.ImpactSystemic, a.ImpactCategory)
	assert.Equal(t, types.PrecedentNone, a.Precedent)
	assert.Equal(t, types.HRImpactSevere, a.HumanRightsImpact)
	assert.True(t, a.SocialImpactFactor.Equal(d("10")))
}

func TestPublicInterestLevelBounded(t *testing.T) {
	for _, c := range []types.ImpactCategory{types.ImpactIndividual, types.ImpactPublicInterest, types.ImpactSystemic, types.ImpactJusCogens} {
		for _, p := range []types.PrecedentValue{types.PrecedentNone, types.PrecedentRegional, types.PrecedentNational, types.PrecedentInternational} {
			for _, h := range []types.HumanRightsImpact{types.HRImpactLow, types.HRImpactModerate, types.HRImpactHigh, types.HRImpactSevere} {
				for _, n := range []int{0, 1, 50, 1000000} {
					a := EvaluateProBono(ProBonoInput{StandardCosts: d("1"), ImpactCategory: c, Precedent: p, HumanRightsImpact: h, DirectBeneficiaries: n})
					assert.True(t, a.PublicInterestLevel.GreaterThanOrEqual(decimal.Zero))
					assert.True(t, a.PublicInterestLevel.LessThanOrEqual(d("100")), "%s/%s/%s/%d: %s", c, p, h, n, a.PublicInterestLevel)
				}
			}
		}
	}
}

func TestClassifyLegalContext(t *testing.T) {
	tests := []struct {
		text   string
		impact types.ImpactCategory
		hr     types.HumanRightsImpact
	}{
		{"Violation of jus cogens norms (prohibition of torture)", types.ImpactJusCogens, types.HRImpactSevere},
		{"Systemic discrimination in housing allocation", types.ImpactSystemic, types.HRImpactHigh},
		{"Public interest litigation on freedom of expression", types.ImpactPublicInterest, types.HRImpactModerate},
		{"Individual labour dispute", types.ImpactIndividual, types.HRImpactLow},
		{"Enforced disappearance of a journalist", types.ImpactIndividual, types.HRImpactSevere},
		{"", types.ImpactIndividual, types.HRImpactLow},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			impact, hr := ClassifyLegalContext(tt.text)
			assert.Equal(t, tt.impact, impact)
			assert.Equal(t, tt.hr, hr)
		})
	}
}

func TestRuleOrderIsMostSevereFirst(t *testing.T) {
	// both "systemic" and "genocide" match; the jus cogens rule is listed first
	assert.Equal(t, types.ImpactJusCogens, ClassifyImpact("systemic acts amounting to genocide"))
}

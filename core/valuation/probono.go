package valuation

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"casecost/core/catalog"
	"casecost/core/money"
	"casecost/core/types"
)

// ProBonoInput describes the social reach of a case
type ProBonoInput struct {
	StandardCosts         decimal.Decimal
	ImpactCategory        types.ImpactCategory
	DirectBeneficiaries   int
	IndirectBeneficiaries int
	Precedent             types.PrecedentValue
	HumanRightsImpact     types.HumanRightsImpact
}

var (
	beneficiaryWeight = 0.2
	ten               = decimal.NewFromInt(10)
)

// factorPrecision only strips float noise; money is rounded at the end
const factorPrecision = 10

// BeneficiariesFactor returns 1 + 0.2 × log10(max(1, n)).
// It is at least 1 and grows slowly with n.
func BeneficiariesFactor(n int) decimal.Decimal {
	if n < 1 {
		n = 1
	}
	f := 1 + beneficiaryWeight*math.Log10(float64(n))
	return decimal.NewFromFloat(f).Round(factorPrecision)
}

// EvaluateProBono converts standard costs into a certified social market
// value. Negative beneficiary counts are treated as zero.
func EvaluateProBono(in ProBonoInput) types.ProBonoAnalysis {
	direct := max(in.DirectBeneficiaries, 0)
	indirect := max(in.IndirectBeneficiaries, 0)
	impact := normalizeImpact(in.ImpactCategory)
	precedentTier := normalizePrecedent(in.Precedent)
	hrTier := normalizeHRImpact(in.HumanRightsImpact)

	base := catalog.ImpactMultiplier(impact)
	precedent := catalog.PrecedentMultiplier(precedentTier)
	hr := catalog.HRImpactMultiplier(hrTier)
	beneficiaries := BeneficiariesFactor(direct + indirect)

	factor := base.Mul(precedent).Mul(hr).Mul(beneficiaries)
	level := decimal.Min(money.Hundred, factor.Div(ten).Mul(money.Hundred)).Round(2)

	a := types.ProBonoAnalysis{
		StandardCosts:         in.StandardCosts,
		ImpactCategory:        impact,
		DirectBeneficiaries:   direct,
		IndirectBeneficiaries: indirect,
		Precedent:             precedentTier,
		HumanRightsImpact:     hrTier,
		BaseMultiplier:        base,
		PrecedentMultiplier:   precedent,
		HRImpactMultiplier:    hr,
		BeneficiariesFactor:   beneficiaries,
		SocialImpactFactor:    factor,
		ProBonoValue:          money.Round(in.StandardCosts.Mul(factor)),
		PublicInterestLevel:   decimal.Max(decimal.Zero, level),
	}

	a.Justification = fmt.Sprintf(
		"Pro-bono value of %s certified as standard costs of %s × social impact factor %s (%s impact ×%s, %s precedent ×%s, %s human-rights impact ×%s, beneficiaries ×%s).",
		money.Format(a.ProBonoValue), money.Format(a.StandardCosts), a.SocialImpactFactor.Round(4).String(),
		a.ImpactCategory, a.BaseMultiplier.String(),
		a.Precedent, a.PrecedentMultiplier.String(),
		a.HumanRightsImpact, a.HRImpactMultiplier.String(),
		a.BeneficiariesFactor.Round(4).String())
	a.ImpactStatement = fmt.Sprintf(
		"The work reaches %d direct and %d indirect beneficiaries and carries a public interest level of %s/100.",
		a.DirectBeneficiaries, a.IndirectBeneficiaries, a.PublicInterestLevel.String())
	return a
}

// normalizeImpact and its siblings map unknown names to the lowest tier.
func normalizeImpact(c types.ImpactCategory) types.ImpactCategory {
	if parsed, ok := catalog.ParseImpactCategory(string(c)); ok {
		return parsed
	}
	return types.ImpactIndividual
}

func normalizePrecedent(p types.PrecedentValue) types.PrecedentValue {
	if parsed, ok := catalog.ParsePrecedent(string(p)); ok {
		return parsed
	}
	return types.PrecedentNone
}

func normalizeHRImpact(h types.HumanRightsImpact) types.HumanRightsImpact {
	if parsed, ok := catalog.ParseHumanRightsImpact(string(h)); ok {
		return parsed
	}
	return types.HRImpactLow
}

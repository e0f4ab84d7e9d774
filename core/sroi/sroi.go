// Package sroi implements the portfolio Social-Return-on-Investment model.
// It works on independently supplied aggregate parameters and is not
// derived from per-case cost items.
package sroi

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"casecost/core/money"
	"casecost/core/types"
	"casecost/internal/errors"
)

var (
	excellentROIPercent = decimal.NewFromInt(500)
	strongROIPercent    = decimal.NewFromInt(100)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Compare decimals as numbers in gte/lte tags
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Validate checks the shape of the parameters: counts, amounts and volumes
// must be non-negative and the prevention probability must lie in [0, 1]
func Validate(p types.ROIInputParams) error {
	if err := validate.Struct(p); err != nil {
		return errors.Wrap(errors.TypeInput, "invalid SROI parameters", err)
	}
	return nil
}

// Calculate evaluates the SROI model.
// Only malformed parameters produce an error. A zero investment yields
// ROIDefined=false with assessment "not assessable"; a zero prevented volume
// yields BreakEvenDefined=false with a break-even point of zero.
func Calculate(p types.ROIInputParams) (*types.ROICalculationResult, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}

	staffing := decimal.NewFromInt(int64(p.ActorCount)).Mul(p.AnnualHours).Mul(p.HourlyRate)
	investment := money.Round(staffing.Add(p.InfrastructureCost))
	prevention := money.Round(p.PreventedVolume.Mul(p.PreventionProbability))
	benefit := money.Round(prevention.Add(p.AvoidedLitigationCosts).Add(p.AvoidedSocialCosts))
	npv := benefit.Sub(investment)

	r := &types.ROICalculationResult{
		Params:            p,
		StaffingCost:      money.Round(staffing),
		TotalInvestment:   investment,
		PreventionBenefit: prevention,
		TotalBenefit:      benefit,
		NPV:               npv,
	}

	if investment.IsPositive() {
		r.ROIDefined = true
		roiPercent := npv.Div(investment).Mul(money.Hundred)
		r.ROIPercent = money.Round(roiPercent)
		r.BenefitCostRatio = benefit.Div(investment).Round(4)
		r.Assessment = Assess(roiPercent)
	} else {
		r.Assessment = types.SROINotAssessable
	}

	if p.PreventedVolume.IsPositive() {
		r.BreakEvenDefined = true
		uncovered := investment.Sub(p.AvoidedLitigationCosts).Sub(p.AvoidedSocialCosts)
		r.BreakEvenPoint = decimal.Max(decimal.Zero, uncovered.Div(p.PreventedVolume)).Round(6)
		r.BreakEvenReachable = r.BreakEvenPoint.LessThanOrEqual(money.One)
	}

	r.Summary = summarize(r)
	return r, nil
}

// Assess maps an ROI percentage to its qualitative band.
// Bands are evaluated top-down and do not overlap.
func Assess(roiPercent decimal.Decimal) types.SROIAssessment {
	switch {
	case roiPercent.GreaterThan(excellentROIPercent):
		return types.SROIExcellent
	case roiPercent.GreaterThan(strongROIPercent):
		return types.SROIStrong
	case roiPercent.GreaterThan(decimal.Zero):
		return types.SROIBreakEven
	default:
		return types.SROINeedsReview
	}
}

func summarize(r *types.ROICalculationResult) string {
	if !r.ROIDefined {
		return fmt.Sprintf("No investment recorded; total benefit of %s cannot be set against costs.",
			money.Format(r.TotalBenefit))
	}
	s := fmt.Sprintf("An investment of %s yields a benefit of %s (NPV %s, ROI %s%%, %s).",
		money.Format(r.TotalInvestment), money.Format(r.TotalBenefit), money.Format(r.NPV),
		r.ROIPercent.StringFixed(2), r.Assessment)
	if r.BreakEvenDefined {
		s += fmt.Sprintf(" Break-even requires a prevention probability of %s%%.",
			r.BreakEvenPoint.Mul(money.Hundred).StringFixed(2))
	}
	return s
}

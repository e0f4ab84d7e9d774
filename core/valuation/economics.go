package valuation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"casecost/core/money"
	"casecost/core/types"
)

// DefaultViabilityThreshold is the minimum ROI of a viable case
var DefaultViabilityThreshold = decimal.RequireFromString("3.0")

var (
	excellentROI = decimal.NewFromInt(10)
	highROI      = decimal.NewFromInt(5)
)

// EvaluateEconomics compares the value at stake with the aggregate cost.
// When totalCosts is not positive the ROI is undefined: the analysis is
// returned with Defined=false, EfficiencyUndefined and IsViable=false.
func EvaluateEconomics(objectValue, totalCosts, threshold decimal.Decimal) types.EconomicAnalysis {
	a := types.EconomicAnalysis{
		ObjectValue: objectValue,
		TotalCosts:  totalCosts,
		Threshold:   threshold,
	}

	if !totalCosts.IsPositive() {
		a.Efficiency = types.EfficiencyUndefined
		a.Recommendation = fmt.Sprintf(
			"Economic viability cannot be assessed: total costs are %s. Record the cost items before certifying the case.",
			money.Format(totalCosts))
		return a
	}

	roi := objectValue.Sub(totalCosts).Div(totalCosts)
	a.ROI = roi.Round(4)
	a.Defined = true
	a.Efficiency = classifyEfficiency(roi, threshold)
	a.IsViable = roi.GreaterThanOrEqual(threshold)
	a.Recommendation = recommend(a)
	return a
}

func classifyEfficiency(roi, threshold decimal.Decimal) types.EfficiencyTier {
	switch {
	case roi.GreaterThanOrEqual(excellentROI):
		return types.EfficiencyExcellent
	case roi.GreaterThanOrEqual(highROI):
		return types.EfficiencyHigh
	case roi.GreaterThanOrEqual(threshold):
		return types.EfficiencyMedium
	default:
		return types.EfficiencyLow
	}
}

func recommend(a types.EconomicAnalysis) string {
	if a.IsViable {
		return fmt.Sprintf(
			"Economically viable: an object value of %s against total costs of %s yields an ROI of %s (%s efficiency, threshold %s). Recommendation: accept the case.",
			money.Format(a.ObjectValue), money.Format(a.TotalCosts), a.ROI.StringFixed(2), a.Efficiency, a.Threshold.StringFixed(1))
	}
	return fmt.Sprintf(
		"Not economically viable: the ROI of %s is below the required threshold of %s (object value %s, total costs %s). Recommendation: decline the case or take it on pro bono.",
		a.ROI.StringFixed(2), a.Threshold.StringFixed(1), money.Format(a.ObjectValue), money.Format(a.TotalCosts))
}

package sroi

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casecost/core/types"
	"casecost/internal/errors"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func exampleParams() types.ROIInputParams {
	return types.ROIInputParams{
		ActorCount:             5,
		HourlyRate:             d("50"),
		AnnualHours:            d("1600"),
		InfrastructureCost:     d("100000"),
		PreventedVolume:        d("50000000"),
		PreventionProbability:  d("0.05"),
		AvoidedLitigationCosts: d("200000"),
		AvoidedSocialCosts:     d("100000"),
	}
}

func TestCalculateExample(t *testing.T) {
	r, err := Calculate(exampleParams())
	require.NoError(t, err)

	assert.True(t, r.TotalInvestment.Equal(d("500000")), r.TotalInvestment.String())
	assert.True(t, r.PreventionBenefit.Equal(d("2500000")))
	assert.True(t, r.TotalBenefit.Equal(d("2800000")))
	assert.True(t, r.NPV.Equal(d("2300000")))
	assert.True(t, r.ROIPercent.Equal(d("460")), r.ROIPercent.String())
	assert.Equal(t, types.SROIStrong, r.Assessment)
	assert.True(t, r.ROIDefined)
	assert.True(t, r.BenefitCostRatio.Equal(d("5.6")))

	// (500000 - 300000) / 50000000
	assert.True(t, r.BreakEvenPoint.Equal(d("0.004")), r.BreakEvenPoint.String())
	assert.True(t, r.BreakEvenDefined)
	assert.True(t, r.BreakEvenReachable)
	assert.Contains(t, r.Summary, "ROI 460.00%")
}

func TestAssessBands(t *testing.T) {
	tests := []struct {
		roi  string
		want types.SROIAssessment
	}{
		{"500.01", types.SROIExcellent},
		{"500", types.SROIStrong},
		{"100.01", types.SROIStrong},
		{"100.004", types.SROIStrong},
		{"100", types.SROIBreakEven},
		{"0.01", types.SROIBreakEven},
		{"0.004", types.SROIBreakEven},
		{"0", types.SROINeedsReview},
		{"-50", types.SROINeedsReview},
	}

	for _, tt := range tests {
		t.Run(tt.roi, func(t *testing.T) {
			assert.Equal(t, tt.want, Assess(d(tt.roi)))
		})
	}
}

func TestAssessUsesUnroundedROI(t *testing.T) {
	tests := []struct {
		name       string
		litigation string
		reported   string
		want       types.SROIAssessment
	}{
		// exact ROI 100.004%
		{"just above strong", "200004", "100", types.SROIStrong},
		// exact ROI 0.004%
		{"just above break-even", "100004", "0", types.SROIBreakEven},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Calculate(types.ROIInputParams{
				InfrastructureCost:     d("100000"),
				AvoidedLitigationCosts: d(tt.litigation),
			})
			require.NoError(t, err)
			assert.True(t, r.ROIPercent.Equal(d(tt.reported)), r.ROIPercent.String())
			assert.Equal(t, tt.want, r.Assessment)
		})
	}
}

func TestZeroInvestment(t *testing.T) {
	p := exampleParams()
	p.ActorCount = 0
	p.InfrastructureCost = decimal.Zero

	r, err := Calculate(p)
	require.NoError(t, err)
	assert.False(t, r.ROIDefined)
	assert.True(t, r.ROIPercent.IsZero())
	assert.Equal(t, types.SROINotAssessable, r.Assessment)
	assert.NotEmpty(t, r.Summary)
	// other benefits already exceed a zero investment
	assert.True(t, r.BreakEvenPoint.IsZero())
}

func TestZeroPreventedVolume(t *testing.T) {
	p := exampleParams()
	p.PreventedVolume = decimal.Zero

	r, err := Calculate(p)
	require.NoError(t, err)
	assert.False(t, r.BreakEvenDefined)
	assert.False(t, r.BreakEvenReachable)
	assert.True(t, r.BreakEvenPoint.IsZero())
	assert.True(t, r.TotalBenefit.Equal(d("300000")))
	assert.Equal(t, types.SROINeedsReview, r.Assessment)
}

func TestUnreachableBreakEven(t *testing.T) {
	p := exampleParams()
	p.PreventedVolume = d("100000")

	r, err := Calculate(p)
	require.NoError(t, err)
	assert.True(t, r.BreakEvenPoint.Equal(d("2")))
	assert.False(t, r.BreakEvenReachable)
}

func TestMalformedParams(t *testing.T) {
	tests := map[string]func(*types.ROIInputParams){
		"negative actors":      func(p *types.ROIInputParams) { p.ActorCount = -1 },
		"negative rate":        func(p *types.ROIInputParams) { p.HourlyRate = d("-1") },
		"probability above 1":  func(p *types.ROIInputParams) { p.PreventionProbability = d("1.5") },
		"negative social cost": func(p *types.ROIInputParams) { p.AvoidedSocialCosts = d("-0.01") },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			p := exampleParams()
			mutate(&p)
			r, err := Calculate(p)
			assert.Nil(t, r)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.TypeInput))
		})
	}
}

package cost

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casecost/core/builder"
	"casecost/core/catalog"
	"casecost/core/types"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleItems() []types.CostItem {
	cat := catalog.Default()
	return []types.CostItem{
		builder.Material(builder.MaterialInput{Name: "Evidence bags", Quantity: d("2"), UnitPrice: d("50"),
			Quality: cat.MustLookup(catalog.QualityPremium)}),
		builder.StatutoryPersonnel(builder.StatutoryPersonnelInput{Name: "Analysis", Hours: d("5"), Tier: catalog.Tier3,
			Complexity: cat.MustLookup(catalog.ComplexityHighlyComplex), ApplyComplexity: true}),
		builder.Operational(builder.OperationalInput{Name: "Server", FixedCost: d("120"), VariableCost: d("300"), UsageFactor: d("0.25")}),
		builder.Travel(builder.TravelInput{Name: "Field trip", DistanceKm: d("250"), RatePerKm: d("0.30"),
			Accommodation: d("89.50"), Meals: d("28")}),
		builder.Material(builder.MaterialInput{Name: "Sealing tape", Quantity: d("1"), UnitPrice: d("10"),
			Quality: cat.MustLookup(catalog.QualityPremium)}),
	}
}

func TestAggregateTotals(t *testing.T) {
	r := Aggregate(sampleItems(), DefaultConfig())

	assert.Equal(t, "165", r.CategoryTotal(types.CategoryMaterial).String())
	assert.Equal(t, "1310", r.CategoryTotal(types.CategoryPersonnel).String())
	assert.Equal(t, "195", r.CategoryTotal(types.CategoryOperational).String())
	assert.Equal(t, "192.5", r.CategoryTotal(types.CategoryMiscellaneous).String())

	assert.True(t, r.Subtotal.Equal(d("1862.50")))
	assert.True(t, r.TotalWithRisk.Equal(d("2048.75")), r.TotalWithRisk.String())
	assert.True(t, r.RiskAmount.Equal(d("186.25")))
	assert.True(t, r.FinalTotal.Equal(r.TotalWithRisk))
	assert.True(t, r.TaxAmount.IsZero())
	assert.Equal(t, types.CurrencyEUR, r.Currency)
}

func TestAggregateAdditivity(t *testing.T) {
	cases := map[string][]types.CostItem{
		"empty":  nil,
		"single": sampleItems()[:1],
		"all":    sampleItems(),
	}

	for name, items := range cases {
		t.Run(name, func(t *testing.T) {
			r := Aggregate(items, DefaultConfig())
			sum := decimal.Zero
			for _, c := range types.Categories() {
				sum = sum.Add(r.CategoryTotal(c))
			}
			assert.True(t, r.Subtotal.Equal(sum))
			assert.Len(t, r.CategoryTotals, 4)
		})
	}

	empty := Aggregate(nil, DefaultConfig())
	assert.True(t, empty.Subtotal.IsZero())
	assert.True(t, empty.FinalTotal.IsZero())
	assert.NotEmpty(t, empty.Methodology)
}

func TestAggregateWithTax(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IncludeTax = true

	r := Aggregate(sampleItems(), cfg)
	// 2048.75 × 1.19 = 2438.0125
	assert.True(t, r.FinalTotal.Equal(d("2438.01")), r.FinalTotal.String())
	assert.True(t, r.TaxAmount.Equal(d("389.26")), r.TaxAmount.String())
	assert.True(t, r.TaxIncluded)
}

func TestAggregateConfigsAreIndependent(t *testing.T) {
	items := sampleItems()
	noRisk := Config{RiskSurcharge: decimal.Zero}
	highRisk := Config{RiskSurcharge: d("0.5")}

	a := Aggregate(items, noRisk)
	b := Aggregate(items, highRisk)

	assert.True(t, a.TotalWithRisk.Equal(a.Subtotal))
	assert.True(t, b.TotalWithRisk.Equal(d("2793.75")))
	assert.True(t, Aggregate(items, noRisk).TotalWithRisk.Equal(a.TotalWithRisk))
}

func TestAggregateDoesNotShareItems(t *testing.T) {
	items := sampleItems()
	r := Aggregate(items, DefaultConfig())
	items[0].Total = d("999999")
	assert.True(t, r.Items[0].Total.Equal(d("150")))
}

func TestAppliedFactorsDeduplicated(t *testing.T) {
	r := Aggregate(sampleItems(), DefaultConfig())

	require.Len(t, r.AppliedFactors, 2)
	assert.Equal(t, catalog.QualityPremium, r.AppliedFactors[0].Name)
	assert.Equal(t, catalog.ComplexityHighlyComplex, r.AppliedFactors[1].Name)
}

func TestAppliedFactorsKeepDistinctValues(t *testing.T) {
	items := []types.CostItem{
		{Factors: []types.Factor{{Name: "surcharge.statutory", Multiplier: d("1.2")}}},
		{Factors: []types.Factor{{Name: "surcharge.statutory", Multiplier: d("1.20")}}},
		{Factors: []types.Factor{{Name: "surcharge.statutory", Multiplier: d("1.3")}}},
	}
	assert.Len(t, AppliedFactors(items), 2)
}

func TestMethodologyIsDeterministic(t *testing.T) {
	a := Aggregate(sampleItems(), DefaultConfig())
	b := Aggregate(sampleItems(), DefaultConfig())

	assert.Equal(t, a.Methodology, b.Methodology)
	assert.Equal(t, a.ID, b.ID)
	assert.NotEmpty(t, a.ID)
	assert.Contains(t, a.Methodology, "5 item(s) across 4 categories using 4 distinct formula(s)")
	assert.Contains(t, a.Methodology, "risk surcharge of 10%")
	assert.Equal(t, []string{"MAT-01", "OPS-01", "PER-01", "TRV-01"}, a.Formulas)
}

func TestAssumptionsMentionStatutoryRates(t *testing.T) {
	r := Aggregate(sampleItems(), DefaultConfig())
	assert.Contains(t, r.Assumptions, "Statutory hourly rates follow § 9 JVEG fee groups (68.00, 95.00, 131.00, 155.00)")
	assert.Contains(t, r.Assumptions, "Amounts are net of tax")
}

func TestUnknownCategoryCountsAsMiscellaneous(t *testing.T) {
	r := Aggregate([]types.CostItem{{Category: "legal", Total: d("10")}}, DefaultConfig())
	assert.True(t, r.CategoryTotal(types.CategoryMiscellaneous).Equal(d("10")))
}

func TestWithAnalysesRefreshesFingerprint(t *testing.T) {
	base := Aggregate(sampleItems(), DefaultConfig())
	assert.Equal(t, SnapshotID(base), base.ID)

	high := types.EconomicAnalysis{Defined: true, Efficiency: types.EfficiencyHigh}
	excellent := types.EconomicAnalysis{Defined: true, Efficiency: types.EfficiencyExcellent}

	a := WithAnalyses(base, &high, nil)
	b := WithAnalyses(base, &excellent, nil)
	c := WithAnalyses(base, &high, &types.ProBonoAnalysis{})

	assert.NotEqual(t, base.ID, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)
	assert.Equal(t, a.ID, WithAnalyses(base, &high, nil).ID)

	// the input snapshot is untouched
	assert.Nil(t, base.Economic)
	assert.Equal(t, SnapshotID(base), base.ID)
}

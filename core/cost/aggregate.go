// Package cost - Case cost aggregation
// Items (with factors already applied) → category totals → subtotal →
// global risk surcharge → optional tax. No item-level pricing happens here.
package cost

import (
	"sort"

	"github.com/shopspring/decimal"

	"casecost/core/catalog"
	"casecost/core/determinism"
	"casecost/core/money"
	"casecost/core/types"
)

// Config is the immutable case-level configuration of an aggregation
type Config struct {
	// RiskSurcharge is applied once to the subtotal, never per item
	RiskSurcharge decimal.Decimal

	// TaxRate is applied to the risk-adjusted total if IncludeTax is set
	TaxRate    decimal.Decimal
	IncludeTax bool

	// Currency labels the result
	Currency types.Currency
}

// DefaultConfig returns a 10% risk surcharge with tax excluded
func DefaultConfig() Config {
	return Config{
		RiskSurcharge: decimal.RequireFromString("0.10"),
		TaxRate:       decimal.RequireFromString("0.19"),
		IncludeTax:    false,
		Currency:      types.CurrencyEUR,
	}
}

// Aggregate builds the cost snapshot of one case.
// It does not modify items; the result holds its own copy.
func Aggregate(items []types.CostItem, cfg Config) *types.CostCalculationResult {
	totals := make(map[types.Category]decimal.Decimal, 4)
	for _, c := range types.Categories() {
		totals[c] = decimal.Zero
	}
	for _, item := range items {
		c := item.Category
		if !c.IsValid() {
			c = types.CategoryMiscellaneous
		}
		totals[c] = totals[c].Add(item.Total)
	}

	subtotal := decimal.Zero
	for _, c := range types.Categories() {
		totals[c] = money.Round(totals[c])
		subtotal = subtotal.Add(totals[c])
	}

	withRisk := money.Round(subtotal.Mul(money.One.Add(cfg.RiskSurcharge)))
	final := withRisk
	if cfg.IncludeTax {
		final = money.Round(withRisk.Mul(money.One.Add(cfg.TaxRate)))
	}

	currency := cfg.Currency
	if currency == "" {
		currency = types.CurrencyEUR
	}

	result := &types.CostCalculationResult{
		Currency:       currency,
		Items:          append([]types.CostItem(nil), items...),
		CategoryTotals: totals,
		Subtotal:       subtotal,
		RiskSurcharge:  cfg.RiskSurcharge,
		RiskAmount:     withRisk.Sub(subtotal),
		TotalWithRisk:  withRisk,
		TaxIncluded:    cfg.IncludeTax,
		TaxRate:        cfg.TaxRate,
		TaxAmount:      final.Sub(withRisk),
		FinalTotal:     final,
		AppliedFactors: AppliedFactors(items),
		Formulas:       distinctFormulas(items),
	}
	result.Methodology = Methodology(result)
	result.Assumptions = assumptions(result)

	result.ID = SnapshotID(result)
	return result
}

// WithAnalyses attaches the analyses to a copy of r and re-derives its ID,
// so the fingerprint covers everything the snapshot certifies
func WithAnalyses(r *types.CostCalculationResult, econ *types.EconomicAnalysis, proBono *types.ProBonoAnalysis) *types.CostCalculationResult {
	out := r.WithAnalyses(econ, proBono)
	out.ID = SnapshotID(out)
	return out
}

// SnapshotID is the content fingerprint of a snapshot, ignoring its current ID
func SnapshotID(r *types.CostCalculationResult) string {
	cp := *r
	cp.ID = ""
	hash, err := determinism.Fingerprint(&cp)
	if err != nil {
		return ""
	}
	return hash.String()
}

// AppliedFactors returns every factor applied across items, deduplicated by
// name and value, in first-seen order
func AppliedFactors(items []types.CostItem) []types.Factor {
	seen := make(map[string]bool)
	var result []types.Factor
	for _, item := range items {
		for _, f := range item.Factors {
			key := f.Name + "=" + f.Multiplier.String()
			if seen[key] {
				continue
			}
			seen[key] = true
			result = append(result, f)
		}
	}
	return result
}

// CountUsedCategories returns how many categories have a non-zero total
func CountUsedCategories(r *types.CostCalculationResult) int {
	n := 0
	for _, c := range types.Categories() {
		if !r.CategoryTotal(c).IsZero() {
			n++
		}
	}
	return n
}

func distinctFormulas(items []types.CostItem) []string {
	seen := make(map[string]bool)
	var result []string
	for _, item := range items {
		if item.FormulaID == "" || seen[item.FormulaID] {
			continue
		}
		seen[item.FormulaID] = true
		result = append(result, item.FormulaID)
	}
	sort.Strings(result)
	return result
}

func assumptions(r *types.CostCalculationResult) []string {
	list := []string{
		"Item totals already include all item-level factors",
		"Global risk surcharge of " + money.Percent(r.RiskSurcharge) + " applied once to the subtotal",
	}
	if r.TaxIncluded {
		list = append(list, "Tax of "+money.Percent(r.TaxRate)+" applied to the risk-adjusted total")
	} else {
		list = append(list, "Amounts are net of tax")
	}
	for _, item := range r.Items {
		if catalog.ReferencesStatutoryScheme(item.LegalBasis) {
			list = append(list, "Statutory hourly rates follow § 9 "+catalog.StatutoryScheme+" fee groups ("+catalog.FormatRates()+")")
			break
		}
	}
	return list
}

// Package types - Cost item and aggregate result types
package types

import "github.com/shopspring/decimal"

// Factor is a named multiplier drawn from a static catalog
type Factor struct {
	// Name is the catalog key (e.g. "quality.premium")
	Name string `json:"name" yaml:"name"`

	// Description explains when the factor applies
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Multiplier is the factor value (>= 0)
	Multiplier decimal.Decimal `json:"multiplier" yaml:"multiplier"`

	// Kind is the catalog the factor belongs to
	Kind FactorKind `json:"kind" yaml:"kind"`
}

// CostFormula documents a calculation. It is never executed.
type CostFormula struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Formula   string   `json:"formula"`
	Variables []string `json:"variables"`
}

// Addition is an additive term of an item total, e.g. a fixed cost
type Addition struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// CostItem represents a single billable line item
type CostItem struct {
	// ID uniquely identifies this item within its case
	ID string `json:"id"`

	// Name is a human-readable label
	Name string `json:"name"`

	// Category is the cost category
	Category Category `json:"category"`

	// Quantity is the billed quantity (> 0)
	Quantity decimal.Decimal `json:"quantity"`

	// Unit is the billing unit (e.g. "hours", "km", "pieces")
	Unit string `json:"unit"`

	// UnitPrice is the price per unit (>= 0)
	UnitPrice decimal.Decimal `json:"unit_price"`

	// Factors are the multipliers applied on top of the subtotal
	Factors []Factor `json:"factors,omitempty"`

	// Additions are additive terms added after the factors
	Additions []Addition `json:"additions,omitempty"`

	// Subtotal is Quantity * UnitPrice
	Subtotal decimal.Decimal `json:"subtotal"`

	// Total is Subtotal * product(Factors) + sum(Additions)
	Total decimal.Decimal `json:"total"`

	// FormulaID references the catalog formula used
	FormulaID string `json:"formula_id"`

	// Explanation is the filled-in formula, e.g. "5 h × 131.00 = 655.00"
	Explanation string `json:"explanation,omitempty"`

	// LegalBasis is the statutory citation, if any
	LegalBasis string `json:"legal_basis,omitempty"`
}

// CostCalculationResult is the immutable snapshot of one case's costs.
// It is recomputed wholesale when inputs change; treat it as read-only.
type CostCalculationResult struct {
	// ID is a content fingerprint of the snapshot
	ID string `json:"id"`

	// Currency is the cost currency
	Currency Currency `json:"currency"`

	// Items are the items the snapshot was built from
	Items []CostItem `json:"items"`

	// CategoryTotals holds one entry per category, zero if unused
	CategoryTotals map[Category]decimal.Decimal `json:"category_totals"`

	// Subtotal is the sum of CategoryTotals
	Subtotal decimal.Decimal `json:"subtotal"`

	// RiskSurcharge is the global surcharge rate applied once
	RiskSurcharge decimal.Decimal `json:"risk_surcharge"`

	// RiskAmount is TotalWithRisk - Subtotal
	RiskAmount decimal.Decimal `json:"risk_amount"`

	// TotalWithRisk is Subtotal * (1 + RiskSurcharge)
	TotalWithRisk decimal.Decimal `json:"total_with_risk"`

	// TaxIncluded reports whether tax was applied
	TaxIncluded bool `json:"tax_included"`

	// TaxRate is the configured tax rate
	TaxRate decimal.Decimal `json:"tax_rate"`

	// TaxAmount is FinalTotal - TotalWithRisk
	TaxAmount decimal.Decimal `json:"tax_amount"`

	// FinalTotal is the certified total
	FinalTotal decimal.Decimal `json:"final_total"`

	// AppliedFactors lists every distinct factor applied, for audit
	AppliedFactors []Factor `json:"applied_factors,omitempty"`

	// Formulas lists the distinct formula IDs used
	Formulas []string `json:"formulas,omitempty"`

	// Methodology describes the calculation for display
	Methodology string `json:"methodology"`

	// Assumptions documents calculation assumptions
	Assumptions []string `json:"assumptions,omitempty"`

	// Economic is the optional viability analysis
	Economic *EconomicAnalysis `json:"economic,omitempty"`

	// ProBono is the optional social value analysis
	ProBono *ProBonoAnalysis `json:"pro_bono,omitempty"`
}

// CategoryTotal returns the total for a category, zero if absent
func (r *CostCalculationResult) CategoryTotal(c Category) decimal.Decimal {
	if r == nil || r.CategoryTotals == nil {
		return decimal.Zero
	}
	return r.CategoryTotals[c]
}

// WithAnalyses returns a copy of the result carrying the given analyses.
// The receiver is left unchanged and the ID is copied as is; cost.WithAnalyses
// also refreshes the fingerprint.
func (r *CostCalculationResult) WithAnalyses(econ *EconomicAnalysis, proBono *ProBonoAnalysis) *CostCalculationResult {
	cp := *r
	cp.Economic = econ
	cp.ProBono = proBono
	return &cp
}

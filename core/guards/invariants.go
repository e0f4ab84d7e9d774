// Package guards - Snapshot invariant guards
// Check re-derives a finished cost snapshot and reports every violated
// invariant. A snapshot with violations must not be certified.
package guards

import (
	"fmt"

	"github.com/shopspring/decimal"

	"casecost/core/builder"
	"casecost/core/cost"
	"casecost/core/money"
	"casecost/core/types"
)

// Violation describes one broken invariant
type Violation struct {
	Invariant string
	Detail    string
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Invariant, v.Detail)
}

// Check re-derives the totals of a snapshot and reports every mismatch
func Check(r *types.CostCalculationResult) []Violation {
	if r == nil {
		return []Violation{{Invariant: "snapshot", Detail: "result is nil"}}
	}

	var vs []Violation
	add := func(invariant, format string, args ...interface{}) {
		vs = append(vs, Violation{Invariant: invariant, Detail: fmt.Sprintf(format, args...)})
	}

	if id := cost.SnapshotID(r); id != r.ID {
		add("fingerprint", "ID %q, content hashes to %q", r.ID, id)
	}

	for _, item := range r.Items {
		if !builder.IsReproducible(item) {
			add("item reproducible", "%q: total %s, inputs give %s",
				item.Name, money.Format(item.Total), money.Format(builder.Reproduce(item)))
		}
	}

	sums := make(map[types.Category][]types.CostItem)
	for _, item := range r.Items {
		c := item.Category
		if !c.IsValid() {
			c = types.CategoryMiscellaneous
		}
		sums[c] = append(sums[c], item)
	}
	for _, c := range types.Categories() {
		got, ok := r.CategoryTotals[c]
		if !ok {
			add("category totals", "%s missing", c)
			continue
		}
		want := decimal.Zero
		for _, item := range sums[c] {
			want = want.Add(item.Total)
		}
		if !money.Round(want).Equal(got) {
			add("category totals", "%s is %s, items sum to %s", c, money.Format(got), money.Format(want))
		}
	}

	subtotal := decimal.Zero
	for _, c := range types.Categories() {
		subtotal = subtotal.Add(r.CategoryTotal(c))
	}
	if !subtotal.Equal(r.Subtotal) {
		add("subtotal", "%s, categories sum to %s", money.Format(r.Subtotal), money.Format(subtotal))
	}

	withRisk := money.Round(r.Subtotal.Mul(money.One.Add(r.RiskSurcharge)))
	if !withRisk.Equal(r.TotalWithRisk) {
		add("risk surcharge", "total with risk %s, expected %s", money.Format(r.TotalWithRisk), money.Format(withRisk))
	}
	if !r.TotalWithRisk.Sub(r.Subtotal).Equal(r.RiskAmount) {
		add("risk surcharge", "risk amount %s does not close the gap", money.Format(r.RiskAmount))
	}

	final := r.TotalWithRisk
	if r.TaxIncluded {
		final = money.Round(r.TotalWithRisk.Mul(money.One.Add(r.TaxRate)))
	}
	if !final.Equal(r.FinalTotal) {
		add("final total", "%s, expected %s", money.Format(r.FinalTotal), money.Format(final))
	}
	if !r.FinalTotal.Sub(r.TotalWithRisk).Equal(r.TaxAmount) {
		add("final total", "tax amount %s does not close the gap", money.Format(r.TaxAmount))
	}

	if e := r.Economic; e != nil {
		if e.Defined != e.TotalCosts.IsPositive() {
			add("economic analysis", "defined=%t with total costs %s", e.Defined, money.Format(e.TotalCosts))
		}
		if !e.Defined && e.IsViable {
			add("economic analysis", "undefined ROI reported as viable")
		}
	}

	if p := r.ProBono; p != nil {
		if p.PublicInterestLevel.IsNegative() || p.PublicInterestLevel.GreaterThan(money.Hundred) {
			add("pro-bono bounds", "public interest level %s outside [0, 100]", p.PublicInterestLevel)
		}
		if !p.StandardCosts.IsNegative() && p.ProBonoValue.IsNegative() {
			add("pro-bono bounds", "negative value %s", money.Format(p.ProBonoValue))
		}
	}

	return vs
}

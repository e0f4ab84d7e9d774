package cost

import (
	"fmt"
	"strings"

	"casecost/core/catalog"
	"casecost/core/money"
	"casecost/core/types"
)

// Methodology renders the display-only description of a calculation.
// The text depends only on the result, so it is deterministic.
func Methodology(r *types.CostCalculationResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Costs were aggregated from %d item(s) across %d categor%s using %d distinct formula(s)",
		len(r.Items), CountUsedCategories(r), plural(CountUsedCategories(r), "y", "ies"), len(r.Formulas))
	if len(r.Formulas) > 0 {
		names := make([]string, 0, len(r.Formulas))
		for _, id := range r.Formulas {
			if f, ok := catalog.Formula(id); ok {
				names = append(names, f.Name)
			} else {
				names = append(names, id)
			}
		}
		fmt.Fprintf(&b, " (%s)", strings.Join(names, "; "))
	}
	b.WriteString(". ")

	fmt.Fprintf(&b, "A global risk surcharge of %s was applied once to the subtotal of %s %s.",
		money.Percent(r.RiskSurcharge), money.Format(r.Subtotal), r.Currency)

	if r.TaxIncluded {
		fmt.Fprintf(&b, " Tax of %s was added to the risk-adjusted total.", money.Percent(r.TaxRate))
	} else {
		b.WriteString(" Tax is not included.")
	}
	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

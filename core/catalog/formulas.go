package catalog

import (
	"sort"

	"casecost/core/types"
)

// Formula IDs
const (
	FormulaMaterial           = "MAT-01"
	FormulaStatutoryPersonnel = "PER-01"
	FormulaOverheadPersonnel  = "PER-02"
	FormulaOperational        = "OPS-01"
	FormulaTravel             = "TRV-01"
	FormulaGeneric            = "GEN-01"
)

var formulas = map[string]types.CostFormula{
	FormulaMaterial: {
		ID:        FormulaMaterial,
		Name:      "Material cost",
		Formula:   "quantity × unitPrice × qualityFactor",
		Variables: []string{"quantity", "unitPrice", "qualityFactor"},
	},
	FormulaStatutoryPersonnel: {
		ID:        FormulaStatutoryPersonnel,
		Name:      "Statutory personnel cost (JVEG)",
		Formula:   "hours × tierRate × (1 + surcharge) × complexityFactor",
		Variables: []string{"hours", "tierRate", "surcharge", "complexityFactor"},
	},
	FormulaOverheadPersonnel: {
		ID:        FormulaOverheadPersonnel,
		Name:      "Personnel cost with overhead",
		Formula:   "hours × hourlyRate × (1 + overheadRate + socialContributionRate)",
		Variables: []string{"hours", "hourlyRate", "overheadRate", "socialContributionRate"},
	},
	FormulaOperational: {
		ID:        FormulaOperational,
		Name:      "Operational cost",
		Formula:   "fixedCost + variableCost × usageFactor",
		Variables: []string{"fixedCost", "variableCost", "usageFactor"},
	},
	FormulaTravel: {
		ID:        FormulaTravel,
		Name:      "Travel and miscellaneous cost",
		Formula:   "distance × ratePerKm + accommodation + meals",
		Variables: []string{"distance", "ratePerKm", "accommodation", "meals"},
	},
	FormulaGeneric: {
		ID:        FormulaGeneric,
		Name:      "Generic task cost",
		Formula:   "quantity × rate",
		Variables: []string{"quantity", "rate"},
	},
}

// Formula returns the documented formula for an ID
func Formula(id string) (types.CostFormula, bool) {
	f, ok := formulas[id]
	return f, ok
}

// Formulas returns all documented formulas ordered by ID
func Formulas() []types.CostFormula {
	result := make([]types.CostFormula, 0, len(formulas))
	for _, f := range formulas {
		result = append(result, f)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

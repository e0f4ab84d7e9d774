package builder

import (
	"casecost/core/catalog"
	"casecost/core/types"
)

// FromTask converts an extracted task into a cost item.
// A task whose legal basis names a JVEG fee group and whose unit denotes
// hours becomes a statutory personnel item billed at the tier rate; every
// other task becomes a generic quantity × rate item.
func FromTask(task types.Task) types.CostItem {
	if tier, ok := StatutoryTier(task); ok {
		return StatutoryPersonnel(StatutoryPersonnelInput{
			Name:  task.Name,
			Hours: task.Quantity,
			Tier:  tier,
		})
	}
	return Generic(task)
}

// StatutoryTier returns the fee group of a task if it is a statutory
// personnel task
func StatutoryTier(task types.Task) (catalog.StatutoryTier, bool) {
	if !catalog.IsHourUnit(task.Unit) {
		return catalog.TierNone, false
	}
	return catalog.ParseTier(task.LegalBasis)
}

// Generic builds a plain quantity × rate item from a task
func Generic(task types.Task) types.CostItem {
	return finish(types.CostItem{
		Name:       task.Name,
		Category:   categoryForUnit(task.Unit),
		Quantity:   task.Quantity,
		Unit:       task.Unit,
		UnitPrice:  task.Rate,
		FormulaID:  catalog.FormulaGeneric,
		LegalBasis: task.LegalBasis,
	})
}

func categoryForUnit(unit string) types.Category {
	kind, _ := catalog.ClassifyUnit(unit)
	switch kind {
	case catalog.UnitHours, catalog.UnitDays:
		return types.CategoryPersonnel
	case catalog.UnitPieces, catalog.UnitPages:
		return types.CategoryMaterial
	case catalog.UnitPeriod, catalog.UnitUsage:
		return types.CategoryOperational
	default:
		return types.CategoryMiscellaneous
	}
}

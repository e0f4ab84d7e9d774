// Package builder produces cost items for each cost archetype.
// Builders are pure: they never reject inputs. Non-positive quantities or
// negative prices pass through and are reported by the validation package.
package builder

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"casecost/core/catalog"
	"casecost/core/money"
	"casecost/core/types"
)

// MaterialInput describes a material purchase
type MaterialInput struct {
	Name      string
	Quantity  decimal.Decimal
	Unit      string
	UnitPrice decimal.Decimal
	Quality   types.Factor
}

// StatutoryPersonnelInput describes work billed at a JVEG fee group
type StatutoryPersonnelInput struct {
	Name  string
	Hours decimal.Decimal
	Tier  catalog.StatutoryTier

	// Surcharge is a proportional markup, e.g. 0.2 for 20%
	Surcharge decimal.Decimal

	// Complexity is applied only if ApplyComplexity is set
	Complexity      types.Factor
	ApplyComplexity bool
}

// OverheadPersonnelInput describes employed staff billed with overhead
type OverheadPersonnelInput struct {
	Name                   string
	Hours                  decimal.Decimal
	HourlyRate             decimal.Decimal
	OverheadRate           decimal.Decimal
	SocialContributionRate decimal.Decimal
}

// OperationalInput describes a running cost with fixed and variable parts
type OperationalInput struct {
	Name         string
	FixedCost    decimal.Decimal
	VariableCost decimal.Decimal

	// UsageFactor is the used share of the variable cost (0.0 - 1.0)
	UsageFactor decimal.Decimal
}

// TravelInput describes travel and subsistence
type TravelInput struct {
	Name          string
	DistanceKm    decimal.Decimal
	RatePerKm     decimal.Decimal
	Accommodation decimal.Decimal
	Meals         decimal.Decimal
}

// Material builds: total = quantity × unitPrice × qualityFactor
func Material(in MaterialInput) types.CostItem {
	unit := in.Unit
	if unit == "" {
		unit = "pieces"
	}
	return finish(types.CostItem{
		Name:      in.Name,
		Category:  types.CategoryMaterial,
		Quantity:  in.Quantity,
		Unit:      unit,
		UnitPrice: in.UnitPrice,
		Factors:   []types.Factor{in.Quality},
		FormulaID: catalog.FormulaMaterial,
	})
}

// StatutoryPersonnel builds:
// total = hours × tierRate × (1 + surcharge) × complexityFactor.
// The tier citation is recorded as legal basis.
func StatutoryPersonnel(in StatutoryPersonnelInput) types.CostItem {
	var factors []types.Factor
	if !in.Surcharge.IsZero() {
		factors = append(factors, types.Factor{
			Name:        "surcharge.statutory",
			Description: "Proportional surcharge of " + money.Percent(in.Surcharge),
			Multiplier:  money.One.Add(in.Surcharge),
			Kind:        types.FactorSurcharge,
		})
	}
	if in.ApplyComplexity {
		factors = append(factors, in.Complexity)
	}

	return finish(types.CostItem{
		Name:       in.Name,
		Category:   types.CategoryPersonnel,
		Quantity:   in.Hours,
		Unit:       "hours",
		UnitPrice:  in.Tier.Rate(),
		Factors:    factors,
		FormulaID:  catalog.FormulaStatutoryPersonnel,
		LegalBasis: in.Tier.Citation(),
	})
}

// OverheadPersonnel builds:
// total = hours × hourlyRate × (1 + overheadRate + socialContributionRate).
// The combined multiplier is recorded as one derived factor.
func OverheadPersonnel(in OverheadPersonnelInput) types.CostItem {
	combined := money.One.Add(in.OverheadRate).Add(in.SocialContributionRate)
	return finish(types.CostItem{
		Name:      in.Name,
		Category:  types.CategoryPersonnel,
		Quantity:  in.Hours,
		Unit:      "hours",
		UnitPrice: in.HourlyRate,
		Factors: []types.Factor{{
			Name: "derived.overhead_social",
			Description: fmt.Sprintf("Overhead %s + social contributions %s",
				money.Percent(in.OverheadRate), money.Percent(in.SocialContributionRate)),
			Multiplier: combined,
			Kind:       types.FactorDerived,
		}},
		FormulaID: catalog.FormulaOverheadPersonnel,
	})
}

// Operational builds: total = fixedCost + variableCost × usageFactor
func Operational(in OperationalInput) types.CostItem {
	return finish(types.CostItem{
		Name:      in.Name,
		Category:  types.CategoryOperational,
		Quantity:  in.UsageFactor,
		Unit:      "usage",
		UnitPrice: in.VariableCost,
		Additions: nonZero(types.Addition{Label: "fixed cost", Amount: in.FixedCost}),
		FormulaID: catalog.FormulaOperational,
	})
}

// Travel builds: total = distance × ratePerKm + accommodation + meals
func Travel(in TravelInput) types.CostItem {
	return finish(types.CostItem{
		Name:      in.Name,
		Category:  types.CategoryMiscellaneous,
		Quantity:  in.DistanceKm,
		Unit:      "km",
		UnitPrice: in.RatePerKm,
		Additions: nonZero(
			types.Addition{Label: "accommodation", Amount: in.Accommodation},
			types.Addition{Label: "meals", Amount: in.Meals},
		),
		FormulaID: catalog.FormulaTravel,
	})
}

// Reproduce re-derives an item total from its inputs:
// round(quantity × unitPrice × ∏factors + Σadditions).
func Reproduce(item types.CostItem) decimal.Decimal {
	product := item.Quantity.Mul(item.UnitPrice)
	for _, f := range item.Factors {
		product = product.Mul(f.Multiplier)
	}
	for _, a := range item.Additions {
		product = product.Add(a.Amount)
	}
	return money.Round(product)
}

// IsReproducible reports whether the stated total matches Reproduce
func IsReproducible(item types.CostItem) bool {
	return money.Within(Reproduce(item), item.Total)
}

// finish computes subtotal, total and the filled-in explanation
func finish(item types.CostItem) types.CostItem {
	item.Subtotal = money.Round(item.Quantity.Mul(item.UnitPrice))
	item.Total = Reproduce(item)
	item.Explanation = explain(item)
	return item
}

func explain(item types.CostItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s × %s", item.Quantity.String(), item.Unit, money.Format(item.UnitPrice))
	for _, f := range item.Factors {
		fmt.Fprintf(&b, " × %s", f.Multiplier.String())
	}
	for _, a := range item.Additions {
		fmt.Fprintf(&b, " + %s", money.Format(a.Amount))
	}
	fmt.Fprintf(&b, " = %s", money.Format(item.Total))
	return b.String()
}

func nonZero(adds ...types.Addition) []types.Addition {
	var result []types.Addition
	for _, a := range adds {
		if !a.Amount.IsZero() {
			result = append(result, a)
		}
	}
	return result
}

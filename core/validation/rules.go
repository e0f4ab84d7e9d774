package validation

import (
	"fmt"
	"strings"

	"casecost/core/catalog"
	"casecost/core/money"
	"casecost/core/types"
)

// checkArithmetic compares the stated total with quantity × rate
func checkArithmetic(task types.Task, opts Options, r *Report) {
	expected := ExpectedTotal(task)
	if money.Within(expected, task.Total) {
		return
	}

	msg := fmt.Sprintf("Arithmetic mismatch: %s × %s = %s (not %s)",
		task.Quantity.String(), task.Rate.String(), money.Format(expected), money.Format(task.Total))
	if opts.Strict {
		r.Error(msg)
	} else {
		r.Warn(msg)
	}
	r.Suggest("Correct total to " + money.Format(expected))
}

// checkStatutoryRate checks rates cited under the statutory scheme
func checkStatutoryRate(task types.Task, _ Options, r *Report) {
	if !catalog.CitesStatutoryScheme(task.LegalBasis) {
		return
	}

	rateTier, isStatutory := catalog.TierForRate(task.Rate)
	if !isStatutory {
		r.Warn(fmt.Sprintf("Rate %s is not a statutory %s rate (valid: %s)",
			money.Format(task.Rate), catalog.StatutoryScheme, catalog.FormatRates()))
	}

	citedTier, cited := catalog.ParseTier(task.LegalBasis)
	if cited && !isStatutory && catalog.IsHourUnit(task.Unit) {
		r.Suggest(fmt.Sprintf("Bill at %s/h as cited (%s)", money.Format(citedTier.Rate()), citedTier.Identifier()))
	}
	switch {
	case !cited:
		r.Warn("Legal basis does not name a " + catalog.StatutoryScheme + " fee group (Honorargruppe 1-4)")
		if isStatutory {
			r.Suggest("Cite " + rateTier.Citation())
		}
	case isStatutory && citedTier != rateTier:
		r.Warn(fmt.Sprintf("Cited %s does not match rate %s (%s)",
			citedTier.Identifier(), money.Format(task.Rate), rateTier.Identifier()))
	}
}

// checkNarrative requires a written calculation
func checkNarrative(task types.Task, _ Options, r *Report) {
	if !isBlank(task.Formula) {
		return
	}
	r.Warn("No calculation explanation given")
	r.Suggest("Add explanation: " + Narrative(task))
}

// checkPlausibility enforces value bounds
func checkPlausibility(task types.Task, opts Options, r *Report) {
	if !task.Quantity.IsPositive() {
		r.Error(fmt.Sprintf("Quantity must be positive (got %s)", task.Quantity.String()))
	}
	if !task.Rate.IsPositive() {
		r.Error(fmt.Sprintf("Rate must be positive (got %s)", task.Rate.String()))
	}
	if task.Total.IsNegative() {
		r.Error(fmt.Sprintf("Total must not be negative (got %s)", money.Format(task.Total)))
	}
	if task.Quantity.GreaterThan(opts.MaxQuantity) {
		r.Warn(fmt.Sprintf("Quantity %s exceeds %s; check the unit", task.Quantity.String(), opts.MaxQuantity.String()))
	}
	if task.Rate.GreaterThan(opts.MarketRateCeiling) {
		r.Warn(fmt.Sprintf("Rate %s exceeds the market ceiling of %s",
			money.Format(task.Rate), money.Format(opts.MarketRateCeiling)))
	}
}

// checkRequiredFields requires a name and recommends a legal basis
func checkRequiredFields(task types.Task, _ Options, r *Report) {
	if isBlank(task.Name) {
		r.Error("Task name is required")
	}
	if isBlank(task.LegalBasis) {
		r.Warn("No legal basis given")
	}
}

// checkUnit requires a recognised billing unit
func checkUnit(task types.Task, _ Options, r *Report) {
	if isBlank(task.Unit) {
		r.Warn("Unit is missing")
		return
	}
	if _, ok := catalog.ClassifyUnit(task.Unit); !ok {
		r.Warn(fmt.Sprintf("Unit %q is not a recognised billing unit", task.Unit))
	}
}

// checkEscalation requires a senior fee group for international crimes
func checkEscalation(task types.Task, _ Options, r *Report) {
	if !catalog.CitesStatutoryScheme(task.LegalBasis) {
		return
	}
	if !catalog.MentionsInternationalCrimes(task.Name, task.Reason, task.LegalBasis, task.Formula) {
		return
	}
	minimum := catalog.MinimumInternationalCrimesTier
	if task.Rate.GreaterThanOrEqual(minimum.Rate()) {
		return
	}
	r.Warn(fmt.Sprintf("Work on international crimes requires at least %s (%s/h), got %s",
		minimum.Identifier(), money.Format(minimum.Rate()), money.Format(task.Rate)))
	r.Suggest("Escalate to " + minimum.Citation())
}

// Narrative renders "<quantity> <unit> × <rate> = <total>"
func Narrative(task types.Task) string {
	unit := strings.TrimSpace(task.Unit)
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%s %s × %s = %s",
		task.Quantity.String(), unit, task.Rate.String(), money.Format(ExpectedTotal(task)))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Package catalog - Catalog validation
// Ensures catalog integrity and enforces invariants.
package catalog

import (
	"fmt"
	"strings"

	"casecost/core/types"
)

// ValidationRule is a catalog validation rule
type ValidationRule func(types.Factor) error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateNonNegativeMultiplier,
		validateKind,
		validateNamePrefix,
	}
}

// Validate checks a catalog against validation rules
func (c *Catalog) Validate(rules []ValidationRule) []error {
	var errors []error

	for _, f := range c.Factors() {
		for _, rule := range rules {
			if err := rule(f); err != nil {
				errors = append(errors, fmt.Errorf("%s: %w", f.Name, err))
			}
		}
	}

	return errors
}

// ValidateTiers checks that statutory rates strictly increase with tier
func ValidateTiers() error {
	tiers := Tiers()
	for i := 1; i < len(tiers); i++ {
		if !tiers[i].Rate().GreaterThan(tiers[i-1].Rate()) {
			return fmt.Errorf("%s rate %s does not exceed %s rate %s",
				tiers[i], tiers[i].Rate(), tiers[i-1], tiers[i-1].Rate())
		}
	}
	return nil
}

// validateNonNegativeMultiplier ensures multipliers are >= 0
func validateNonNegativeMultiplier(f types.Factor) error {
	if f.Multiplier.IsNegative() {
		return fmt.Errorf("negative multiplier %s", f.Multiplier)
	}
	return nil
}

// validateKind ensures the factor carries a known catalog tag
func validateKind(f types.Factor) error {
	switch f.Kind {
	case types.FactorQuality, types.FactorExperience, types.FactorComplexity,
		types.FactorRisk, types.FactorTime, types.FactorDerived, types.FactorSurcharge:
		return nil
	}
	return fmt.Errorf("unknown factor kind %q", f.Kind)
}

// validateNamePrefix ensures catalog names are namespaced by kind
func validateNamePrefix(f types.Factor) error {
	if !strings.HasPrefix(f.Name, string(f.Kind)+".") {
		return fmt.Errorf("name must start with %q", string(f.Kind)+".")
	}
	return nil
}

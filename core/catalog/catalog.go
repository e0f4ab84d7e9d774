// Package catalog - Static factor and formula catalogs
// Defines the multiplicative factors, documented formulas and statutory
// rate tiers. This is the source of truth for every multiplier the engine
// applies.
package catalog

import (
	"sort"

	"github.com/shopspring/decimal"

	"casecost/core/types"
)

// Catalog holds the immutable factor table
type Catalog struct {
	factors map[string]types.Factor
}

// New builds a catalog from factor definitions.
// Later entries with the same name replace earlier ones.
func New(factors ...types.Factor) *Catalog {
	c := &Catalog{factors: make(map[string]types.Factor, len(factors))}
	for _, f := range factors {
		c.factors[f.Name] = f
	}
	return c
}

var defaultCatalog = New(defaultFactors()...)

// Default returns the built-in catalog
func Default() *Catalog {
	return defaultCatalog
}

// Lookup returns a factor by name
func (c *Catalog) Lookup(name string) (types.Factor, bool) {
	f, ok := c.factors[name]
	return f, ok
}

// MustLookup returns a factor by name and panics if it does not exist.
// Only use with names from this package's constants.
func (c *Catalog) MustLookup(name string) types.Factor {
	f, ok := c.factors[name]
	if !ok {
		panic("catalog: unknown factor " + name)
	}
	return f
}

// ByKind returns the factors of one kind, ordered by multiplier
func (c *Catalog) ByKind(kind types.FactorKind) []types.Factor {
	var result []types.Factor
	for _, f := range c.factors {
		if f.Kind == kind {
			result = append(result, f)
		}
	}
	sortFactors(result)
	return result
}

// Factors returns every factor ordered by kind, then multiplier
func (c *Catalog) Factors() []types.Factor {
	result := make([]types.Factor, 0, len(c.factors))
	for _, f := range c.factors {
		result = append(result, f)
	}
	sortFactors(result)
	return result
}

// Len returns the number of factors
func (c *Catalog) Len() int {
	return len(c.factors)
}

func sortFactors(fs []types.Factor) {
	sort.Slice(fs, func(i, j int) bool {
		if fs[i].Kind != fs[j].Kind {
			return fs[i].Kind < fs[j].Kind
		}
		if !fs[i].Multiplier.Equal(fs[j].Multiplier) {
			return fs[i].Multiplier.LessThan(fs[j].Multiplier)
		}
		return fs[i].Name < fs[j].Name
	})
}

func factor(kind types.FactorKind, name, value, description string) types.Factor {
	return types.Factor{
		Name:        string(kind) + "." + name,
		Description: description,
		Multiplier:  decimal.RequireFromString(value),
		Kind:        kind,
	}
}

// Package money provides the rounding and formatting rules shared by every
// total-producing step of the engine.
// All amounts are rounded half-up to whole cents on the scaled integer value.
package money

import (
	"github.com/shopspring/decimal"
)

// Tolerance is the maximum accepted deviation between a stated and a
// re-derived amount.
var Tolerance = decimal.RequireFromString("0.01")

var (
	// One is the multiplicative identity
	One = decimal.NewFromInt(1)

	// Hundred converts ratios to percentages
	Hundred = decimal.NewFromInt(100)

	half = decimal.RequireFromString("0.5")
)

// Round rounds d to two decimal places, half-up.
// The value is scaled to cents, 0.5 is added and the result floored, so
// -0.125 becomes -0.12 and 0.125 becomes 0.13.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Shift(2).Add(half).Floor().Shift(-2)
}

// Cents returns the rounded amount as an integer number of cents.
func Cents(d decimal.Decimal) int64 {
	return Round(d).Shift(2).IntPart()
}

// FromCents builds an amount from an integer number of cents.
func FromCents(c int64) decimal.Decimal {
	return decimal.New(c, -2)
}

// Sum adds amounts without intermediate rounding.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Product multiplies factors together; the empty product is one.
func Product(factors ...decimal.Decimal) decimal.Decimal {
	p := One
	for _, f := range factors {
		p = p.Mul(f)
	}
	return p
}

// Within reports whether a and b differ by no more than Tolerance.
func Within(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Tolerance)
}

// Format renders an amount with exactly two decimals.
func Format(d decimal.Decimal) string {
	return Round(d).StringFixed(2)
}

// Percent renders a ratio such as 0.1 as "10%".
func Percent(ratio decimal.Decimal) string {
	return ratio.Mul(Hundred).Round(2).String() + "%"
}

// Package validation checks extracted tasks for arithmetic, regulatory and
// plausibility problems.
// Every rule runs independently; a task with several problems reports all
// of them. Validation never fails: problems are returned, not raised.
package validation

import (
	"github.com/shopspring/decimal"

	"casecost/core/money"
	"casecost/core/types"
)

// Options controls strictness and plausibility bounds
type Options struct {
	// Strict reports arithmetic mismatches as errors instead of warnings
	Strict bool

	// MaxQuantity is the quantity above which a warning is raised
	MaxQuantity decimal.Decimal

	// MarketRateCeiling is the rate above which a warning is raised
	MarketRateCeiling decimal.Decimal
}

// DefaultOptions returns lenient options with standard bounds
func DefaultOptions() Options {
	return Options{
		Strict:            false,
		MaxQuantity:       decimal.NewFromInt(1000),
		MarketRateCeiling: decimal.NewFromInt(300),
	}
}

// Rule inspects a task and records its findings in the report
type Rule func(task types.Task, opts Options, r *Report)

// DefaultRules returns the standard rules in reporting order
func DefaultRules() []Rule {
	return []Rule{
		checkArithmetic,
		checkStatutoryRate,
		checkNarrative,
		checkPlausibility,
		checkRequiredFields,
		checkUnit,
		checkEscalation,
	}
}

// Validator applies rules to tasks. It holds only immutable options.
type Validator struct {
	opts  Options
	rules []Rule
}

// New creates a validator with the default rules
func New(opts Options) *Validator {
	return &Validator{opts: opts, rules: DefaultRules()}
}

// NewWithRules creates a validator with custom rules
func NewWithRules(opts Options, rules ...Rule) *Validator {
	return &Validator{opts: opts, rules: rules}
}

// Options returns the validator options
func (v *Validator) Options() Options {
	return v.opts
}

// Validate checks a task without modifying it
func (v *Validator) Validate(task types.Task) types.ValidationResult {
	r := newReport()
	for _, rule := range v.rules {
		rule(task, v.opts, r)
	}
	return r.result()
}

// ValidateAll checks every task in order
func (v *Validator) ValidateAll(tasks []types.Task) []types.ValidationResult {
	results := make([]types.ValidationResult, len(tasks))
	for i, t := range tasks {
		results[i] = v.Validate(t)
	}
	return results
}

// Correct returns an auto-corrected copy of the task and the validation of
// the original. Only the total and a missing formula are corrected; the
// input task is left unchanged.
func (v *Validator) Correct(task types.Task) (types.Task, types.ValidationResult) {
	result := v.Validate(task)

	corrected := task
	expected := ExpectedTotal(task)
	if !money.Within(expected, task.Total) {
		corrected.Total = expected
	}
	if isBlank(corrected.Formula) {
		corrected.Formula = Narrative(corrected)
	}
	return corrected, result
}

// Validate checks a task with the given options
func Validate(task types.Task, opts Options) types.ValidationResult {
	return New(opts).Validate(task)
}

// ExpectedTotal re-derives a task total as quantity × rate
func ExpectedTotal(task types.Task) decimal.Decimal {
	return money.Round(task.Quantity.Mul(task.Rate))
}

// Report collects findings of one validation run
type Report struct {
	warnings    []string
	errors      []string
	suggestions []string
}

func newReport() *Report {
	return &Report{
		warnings:    []string{},
		errors:      []string{},
		suggestions: []string{},
	}
}

// Warn records a non-blocking finding
func (r *Report) Warn(msg string) {
	r.warnings = append(r.warnings, msg)
}

// Error records a blocking finding
func (r *Report) Error(msg string) {
	r.errors = append(r.errors, msg)
}

// Suggest records a suggested fix
func (r *Report) Suggest(msg string) {
	r.suggestions = append(r.suggestions, msg)
}

func (r *Report) result() types.ValidationResult {
	return types.ValidationResult{
		IsValid:     len(r.errors) == 0,
		Warnings:    r.warnings,
		Errors:      r.errors,
		Suggestions: r.suggestions,
	}
}

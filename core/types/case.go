// Package types - Case input and validation types
package types

import "github.com/shopspring/decimal"

// Task is a work entry extracted by the document-analysis service
type Task struct {
	Name       string          `json:"name"`
	Quantity   decimal.Decimal `json:"quantity"`
	Unit       string          `json:"unit"`
	Rate       decimal.Decimal `json:"rate"`
	LegalBasis string          `json:"legal_basis,omitempty"`
	Reason     string          `json:"reason,omitempty"`
	Total      decimal.Decimal `json:"total"`

	// Formula is the narrative calculation, e.g. "5 hours × 131 = 655.00"
	Formula string `json:"formula,omitempty"`
}

// Case is the input of one assessment
type Case struct {
	// ID is a stable identifier of the case
	ID string `json:"id"`

	// Name is a human-readable label
	Name string `json:"name"`

	// Currency is the case currency
	Currency Currency `json:"currency"`

	// Tasks are extracted work entries
	Tasks []Task `json:"tasks,omitempty"`

	// Items are pre-built items (materials, travel, ...)
	Items []CostItem `json:"items,omitempty"`

	// ObjectValue is the value at stake; nil skips the economic analysis
	ObjectValue *decimal.Decimal `json:"object_value,omitempty"`

	// LegalContext is the free-text legal classification of the case
	LegalContext string `json:"legal_context,omitempty"`

	DirectBeneficiaries   int            `json:"direct_beneficiaries"`
	IndirectBeneficiaries int            `json:"indirect_beneficiaries"`
	Precedent             PrecedentValue `json:"precedent,omitempty"`

	// ProBono requests the pro-bono valuation
	ProBono bool `json:"pro_bono"`
}

// ValidationResult is the outcome of checking one task.
// It is never persisted; recompute it from the current task.
type ValidationResult struct {
	IsValid     bool     `json:"is_valid"`
	Warnings    []string `json:"warnings"`
	Errors      []string `json:"errors"`
	Suggestions []string `json:"suggestions"`
}

// HasIssues reports whether any warning or error was raised
func (v ValidationResult) HasIssues() bool {
	return len(v.Warnings) > 0 || len(v.Errors) > 0
}

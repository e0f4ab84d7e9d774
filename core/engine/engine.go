// Package engine provides the API-primary assessment engine.
// CLI is a thin wrapper around this engine.
//
// An assessment runs four steps on one case:
// 1. Build cost items from extracted tasks and pre-built items
// 2. Validate every task
// 3. Aggregate items into a cost snapshot
// 4. Attach economic and pro-bono analyses
package engine

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"casecost/core/builder"
	"casecost/core/cost"
	"casecost/core/determinism"
	"casecost/core/guards"
	"casecost/core/types"
	"casecost/core/validation"
	"casecost/core/valuation"
	"casecost/internal/logging"
)

// Config configures the engine. It is immutable once passed to New.
type Config struct {
	// Cost is the case-level aggregation configuration
	Cost cost.Config

	// Validation controls task validation
	Validation validation.Options

	// ViabilityThreshold is the minimum ROI of a viable case
	ViabilityThreshold decimal.Decimal

	// Concurrency bounds AssessAll; 0 or less means one per case
	Concurrency int
}

// DefaultConfig returns the default engine configuration
func DefaultConfig() Config {
	return Config{
		Cost:               cost.DefaultConfig(),
		Validation:         validation.DefaultOptions(),
		ViabilityThreshold: valuation.DefaultViabilityThreshold,
		Concurrency:        4,
	}
}

// Engine is the primary API for case assessment.
// It holds no session state; one Engine can assess any number of cases
// concurrently.
type Engine struct {
	config    Config
	validator *validation.Validator
	ids       *determinism.IDGenerator
}

// New creates an engine
func New(cfg Config) *Engine {
	return &Engine{
		config:    cfg,
		validator: validation.New(cfg.Validation),
		ids:       determinism.NewIDGenerator("item"),
	}
}

// Config returns the engine configuration
func (e *Engine) Config() Config {
	return e.config
}

// TaskValidation is the validation outcome of one task
type TaskValidation struct {
	Index  int                    `json:"index"`
	Task   types.Task             `json:"task"`
	ItemID string                 `json:"item_id"`
	Result types.ValidationResult `json:"result"`
}

// Assessment is the output of assessing one case
type Assessment struct {
	CaseID   string `json:"case_id"`
	CaseName string `json:"case_name"`

	// Result is the certified cost snapshot
	Result *types.CostCalculationResult `json:"result"`

	// Validations holds one entry per extracted task
	Validations []TaskValidation `json:"validations,omitempty"`

	// Certifiable is false if any task has a blocking validation error
	Certifiable bool `json:"certifiable"`

	// Duration is how long the assessment took
	Duration time.Duration `json:"-"`
}

// WarningCount returns the number of validation warnings
func (a *Assessment) WarningCount() int {
	n := 0
	for _, v := range a.Validations {
		n += len(v.Result.Warnings)
	}
	return n
}

// ErrorCount returns the number of blocking validation errors
func (a *Assessment) ErrorCount() int {
	n := 0
	for _, v := range a.Validations {
		n += len(v.Result.Errors)
	}
	return n
}

// Assess builds, validates and values one case
func (e *Engine) Assess(c types.Case) *Assessment {
	start := time.Now()
	caseID := c.ID
	if caseID == "" {
		caseID = determinism.CaseID(c.Name)
	}
	log := logging.ForCase(caseID)

	items := make([]types.CostItem, 0, len(c.Tasks)+len(c.Items))
	validations := make([]TaskValidation, 0, len(c.Tasks))
	certifiable := true

	for i, task := range c.Tasks {
		item := builder.FromTask(task)
		item.ID = string(e.ids.Generate(caseID, "task", strconv.Itoa(i), task.Name))
		items = append(items, item)

		result := e.validator.Validate(task)
		if !result.IsValid {
			certifiable = false
		}
		validations = append(validations, TaskValidation{
			Index:  i,
			Task:   task,
			ItemID: item.ID,
			Result: result,
		})
	}
	for i, item := range c.Items {
		if item.ID == "" {
			item.ID = string(e.ids.Generate(caseID, "item", strconv.Itoa(i), item.Name))
		}
		items = append(items, item)
	}

	cfg := e.config.Cost
	if c.Currency != "" {
		cfg.Currency = c.Currency
	}
	result := cost.Aggregate(items, cfg)
	result = cost.WithAnalyses(result, e.economics(c, result), e.proBono(c, result))
	if violations := guards.Check(result); len(violations) > 0 {
		for _, v := range violations {
			log.Error("snapshot invariant violated", zap.String("invariant", v.Invariant), zap.String("detail", v.Detail))
		}
		certifiable = false
	}

	a := &Assessment{
		CaseID:      caseID,
		CaseName:    c.Name,
		Result:      result,
		Validations: validations,
		Certifiable: certifiable,
		Duration:    time.Since(start),
	}

	log.Debug("case assessed",
		zap.Int("items", len(items)),
		zap.String("final_total", result.FinalTotal.StringFixed(2)),
		zap.Int("warnings", a.WarningCount()),
		zap.Int("errors", a.ErrorCount()),
		zap.Duration("duration", a.Duration))
	if !certifiable {
		log.Warn("case has blocking validation errors", zap.Int("errors", a.ErrorCount()))
	}
	return a
}

// AssessAll assesses independent cases concurrently.
// Results are returned in input order. Assessment itself cannot fail; the
// only error is cancellation of ctx.
func (e *Engine) AssessAll(ctx context.Context, cases []types.Case) ([]*Assessment, error) {
	results := make([]*Assessment, len(cases))

	g, gctx := errgroup.WithContext(ctx)
	if e.config.Concurrency > 0 {
		g.SetLimit(e.config.Concurrency)
	}

	for i := range cases {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.Assess(cases[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *Engine) economics(c types.Case, r *types.CostCalculationResult) *types.EconomicAnalysis {
	if c.ObjectValue == nil {
		return nil
	}
	a := valuation.EvaluateEconomics(*c.ObjectValue, r.FinalTotal, e.config.ViabilityThreshold)
	return &a
}

func (e *Engine) proBono(c types.Case, r *types.CostCalculationResult) *types.ProBonoAnalysis {
	if !c.ProBono {
		return nil
	}
	impact, hrImpact := valuation.ClassifyLegalContext(c.LegalContext)

	direct := c.DirectBeneficiaries
	if direct == 0 && c.IndirectBeneficiaries == 0 {
		direct = 1
	}

	a := valuation.EvaluateProBono(valuation.ProBonoInput{
		StandardCosts:         r.FinalTotal,
		ImpactCategory:        impact,
		DirectBeneficiaries:   direct,
		IndirectBeneficiaries: c.IndirectBeneficiaries,
		Precedent:             c.Precedent,
		HumanRightsImpact:     hrImpact,
	})
	return &a
}

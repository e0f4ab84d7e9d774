package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"casecost/core/engine"
	"casecost/core/money"
	"casecost/core/types"
)

const (
	boxTop    = "┌─────────────────────────────────────────────────────────────────────────┐"
	boxRule   = "├─────────────────────────────────────────────────────────────────────────┤"
	boxBottom = "└─────────────────────────────────────────────────────────────────────────┘"
)

// CLIFormatter renders boxed text summaries for a terminal
type CLIFormatter struct {
	opts Options
}

// NewCLIFormatter creates a CLI formatter
func NewCLIFormatter(opts Options) *CLIFormatter {
	return &CLIFormatter{opts: opts}
}

// Format returns FormatCLI
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes every assessment, then the SROI result if present
func (f *CLIFormatter) Render(w io.Writer, report *Report) error {
	p := &printer{w: w}
	for i, a := range report.Assessments {
		if i > 0 {
			p.line("")
		}
		f.renderAssessment(p, a)
	}
	if report.SROI != nil {
		if len(report.Assessments) > 0 {
			p.line("")
		}
		f.renderSROI(p, report.SROI)
	}
	if report.Metadata.Duration != "" {
		p.line("")
		p.printf("Completed in %s\n", report.Metadata.Duration)
	}
	return p.err
}

func (f *CLIFormatter) renderAssessment(p *printer, a *engine.Assessment) {
	r := a.Result
	cur := string(r.Currency)

	p.line(boxTop)
	p.row("CASE: "+a.CaseName, certification(a))
	p.line(boxRule)

	if f.opts.ShowItems {
		for _, item := range r.Items {
			p.row(item.Name, amount(item.Total, cur))
			if item.Explanation != "" {
				p.row("  └─ "+item.Explanation, "")
			}
		}
		p.line(boxRule)
	}

	for _, c := range types.Categories() {
		total := r.CategoryTotal(c)
		if total.IsZero() {
			continue
		}
		p.row(titleCase(c.String()), amount(total, cur))
	}
	p.line(boxRule)
	p.row("Subtotal", amount(r.Subtotal, cur))
	p.row("Risk surcharge ("+money.Percent(r.RiskSurcharge)+")", amount(r.RiskAmount, cur))
	if r.TaxIncluded {
		p.row("Tax ("+money.Percent(r.TaxRate)+")", amount(r.TaxAmount, cur))
	}
	p.row("FINAL TOTAL", amount(r.FinalTotal, cur))
	p.line(boxBottom)

	if e := r.Economic; e != nil {
		if e.Defined {
			p.printf("Economic viability: ROI %s (%s, threshold %s) - %s\n",
				e.ROI.StringFixed(2), e.Efficiency, e.Threshold.String(), viable(e.IsViable))
		} else {
			p.printf("Economic viability: %s\n", e.Efficiency)
		}
		p.printf("  %s\n", e.Recommendation)
	}
	if pb := r.ProBono; pb != nil {
		p.printf("Pro-bono value: %s (factor %s, public interest %s/100)\n",
			amount(pb.ProBonoValue, cur), pb.SocialImpactFactor.Round(4).String(), pb.PublicInterestLevel.StringFixed(1))
		p.printf("  %s\n", pb.ImpactStatement)
	}

	if f.opts.ShowValidation {
		for _, v := range a.Validations {
			if !v.Result.HasIssues() {
				continue
			}
			p.printf("Task %d %q:\n", v.Index+1, v.Task.Name)
			for _, e := range v.Result.Errors {
				p.printf("  ✗ %s\n", e)
			}
			for _, w := range v.Result.Warnings {
				p.printf("  ! %s\n", w)
			}
			for _, s := range v.Result.Suggestions {
				p.printf("  → %s\n", s)
			}
		}
	}
}

func (f *CLIFormatter) renderSROI(p *printer, r *types.ROICalculationResult) {
	p.line(boxTop)
	p.row("PORTFOLIO SROI", string(r.Assessment))
	p.line(boxRule)
	p.row("Staffing cost", money.Format(r.StaffingCost))
	p.row("Infrastructure cost", money.Format(r.Params.InfrastructureCost))
	p.row("Total investment", money.Format(r.TotalInvestment))
	p.row("Prevention benefit", money.Format(r.PreventionBenefit))
	p.row("Total benefit", money.Format(r.TotalBenefit))
	p.line(boxRule)
	p.row("Net present value", money.Format(r.NPV))
	p.row("ROI", notAvailable(r.ROIDefined, r.ROIPercent.StringFixed(2)+"%"))
	p.row("Benefit/cost ratio", notAvailable(r.ROIDefined, r.BenefitCostRatio.StringFixed(2)))
	p.row("Break-even probability", notAvailable(r.BreakEvenDefined, money.Percent(r.BreakEvenPoint)))
	p.line(boxBottom)
	p.printf("%s\n", r.Summary)
}

func certification(a *engine.Assessment) string {
	if a.Certifiable {
		return "certifiable"
	}
	return fmt.Sprintf("%d blocking error(s)", a.ErrorCount())
}

func viable(ok bool) string {
	if ok {
		return "viable"
	}
	return "not viable"
}

func notAvailable(defined bool, s string) string {
	if !defined {
		return "n/a"
	}
	return s
}

func amount(d decimal.Decimal, currency string) string {
	return money.Format(d) + " " + currency
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// printer writes box rows and remembers the first write error
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) line(s string) {
	p.printf("%s\n", s)
}

func (p *printer) row(label, value string) {
	p.printf("│ %-50s %20s │\n", truncate(label, 50), truncate(value, 20))
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

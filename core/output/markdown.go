package output

import (
	"io"
	"strings"

	"casecost/core/engine"
	"casecost/core/money"
	"casecost/core/types"
)

// MarkdownFormatter renders reports for pull requests and case files
type MarkdownFormatter struct {
	opts Options
}

// NewMarkdownFormatter creates a markdown formatter
func NewMarkdownFormatter(opts Options) *MarkdownFormatter {
	return &MarkdownFormatter{opts: opts}
}

// Format returns FormatMarkdown
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render writes the report as markdown
func (f *MarkdownFormatter) Render(w io.Writer, report *Report) error {
	p := &printer{w: w}
	for _, a := range report.Assessments {
		f.renderAssessment(p, a)
	}
	if report.SROI != nil {
		f.renderSROI(p, report.SROI)
	}
	return p.err
}

func (f *MarkdownFormatter) renderAssessment(p *printer, a *engine.Assessment) {
	r := a.Result
	cur := string(r.Currency)

	p.printf("## %s\n\n", a.CaseName)
	p.printf("Case `%s`, snapshot `%s`\n\n", a.CaseID, r.ID)

	if f.opts.ShowItems && len(r.Items) > 0 {
		p.line("| Item | Category | Calculation | Total |")
		p.line("|---|---|---|---:|")
		for _, item := range r.Items {
			p.printf("| %s | %s | %s | %s |\n",
				cell(item.Name), item.Category, cell(item.Explanation), amount(item.Total, cur))
		}
		p.line("")
	}

	p.line("| | Amount |")
	p.line("|---|---:|")
	for _, c := range types.Categories() {
		p.printf("| %s | %s |\n", titleCase(c.String()), amount(r.CategoryTotal(c), cur))
	}
	p.printf("| Subtotal | %s |\n", amount(r.Subtotal, cur))
	p.printf("| Risk surcharge (%s) | %s |\n", money.Percent(r.RiskSurcharge), amount(r.RiskAmount, cur))
	if r.TaxIncluded {
		p.printf("| Tax (%s) | %s |\n", money.Percent(r.TaxRate), amount(r.TaxAmount, cur))
	}
	p.printf("| **Final total** | **%s** |\n\n", amount(r.FinalTotal, cur))

	p.printf("**Methodology.** %s\n\n", r.Methodology)

	if e := r.Economic; e != nil {
		p.printf("**Economic viability.** %s\n\n", e.Recommendation)
	}
	if pb := r.ProBono; pb != nil {
		p.printf("**Pro-bono value.** %s (social impact factor %s). %s\n\n",
			amount(pb.ProBonoValue, cur), pb.SocialImpactFactor.Round(4).String(), pb.Justification)
	}

	if !a.Certifiable {
		p.printf("> **Not certifiable:** %d blocking validation error(s).\n\n", a.ErrorCount())
	}
	if f.opts.ShowValidation {
		for _, v := range a.Validations {
			if !v.Result.HasIssues() {
				continue
			}
			p.printf("- Task %d, %s\n", v.Index+1, cell(v.Task.Name))
			for _, e := range v.Result.Errors {
				p.printf("  - Error: %s\n", e)
			}
			for _, w := range v.Result.Warnings {
				p.printf("  - Warning: %s\n", w)
			}
		}
		p.line("")
	}
}

func (f *MarkdownFormatter) renderSROI(p *printer, r *types.ROICalculationResult) {
	p.printf("## Portfolio SROI (%s)\n\n", r.Assessment)
	p.line("| Term | Value |")
	p.line("|---|---:|")
	p.printf("| Total investment | %s |\n", money.Format(r.TotalInvestment))
	p.printf("| Total benefit | %s |\n", money.Format(r.TotalBenefit))
	p.printf("| Net present value | %s |\n", money.Format(r.NPV))
	p.printf("| ROI | %s |\n", notAvailable(r.ROIDefined, r.ROIPercent.StringFixed(2)+"%"))
	p.printf("| Break-even probability | %s |\n\n", notAvailable(r.BreakEvenDefined, money.Percent(r.BreakEvenPoint)))
	p.printf("%s\n", r.Summary)
}

// cell escapes table separators
func cell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

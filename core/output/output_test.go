package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casecost/core/engine"
	"casecost/core/sroi"
	"casecost/core/types"
	"casecost/internal/errors"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleReport(t *testing.T) *Report {
	t.Helper()
	objectValue := d("20000")
	c := types.Case{
		Name: "Detention review",
		Tasks: []types.Task{
			{
				Name:       "Expert legal analysis",
				Quantity:   d("5"),
				Unit:       "hours",
				Rate:       d("131"),
				LegalBasis: "§ 9 Abs. 1 JVEG, Honorargruppe 3",
				Total:      d("655"),
				Formula:    "5 hours × 131 = 655.00",
			},
			{
				Name:       "Copies",
				Quantity:   d("3"),
				Unit:       "pages",
				Rate:       d("100"),
				LegalBasis: "Engagement letter",
				Total:      d("250"),
			},
		},
		ObjectValue:  &objectValue,
		LegalContext: "Systemic arbitrary detention",
		ProBono:      true,
	}
	a := engine.New(engine.DefaultConfig()).Assess(c)
	return &Report{
		Assessments: []*engine.Assessment{a},
		Metadata:    Metadata{Version: "test"},
	}
}

func TestCLIFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCLIFormatter(DefaultOptions()).Render(&buf, sampleReport(t)))
	out := buf.String()

	assert.Contains(t, out, "CASE: Detention review")
	assert.Contains(t, out, "certifiable")
	assert.Contains(t, out, "Expert legal analysis")
	assert.Contains(t, out, "Subtotal")
	assert.Contains(t, out, "955.00 EUR")
	assert.Contains(t, out, "Risk surcharge (10%)")
	assert.Contains(t, out, "1050.50 EUR")
	assert.Contains(t, out, "Economic viability: ROI")
	assert.Contains(t, out, "Pro-bono value:")
	assert.Contains(t, out, "Arithmetic mismatch: 3 × 100 = 300.00 (not 250.00)")
	assert.NotContains(t, out, "Tax (")

	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "│") {
			assert.Equal(t, 75, len([]rune(line)), "misaligned row %q", line)
		}
	}
}

func TestCLIFormatterHidesDetails(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCLIFormatter(Options{}).Render(&buf, sampleReport(t)))

	assert.NotContains(t, buf.String(), "Expert legal analysis")
	assert.NotContains(t, buf.String(), "Arithmetic mismatch")
	assert.Contains(t, buf.String(), "FINAL TOTAL")
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Render(&buf, sampleReport(t)))

	var decoded struct {
		Assessments []struct {
			CaseName    string `json:"case_name"`
			Certifiable bool   `json:"certifiable"`
			Result      struct {
				FinalTotal decimal.Decimal `json:"final_total"`
			} `json:"result"`
		} `json:"assessments"`
		Metadata Metadata `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Assessments, 1)
	assert.Equal(t, "Detention review", decoded.Assessments[0].CaseName)
	assert.True(t, decoded.Assessments[0].Certifiable)
	assert.True(t, decoded.Assessments[0].Result.FinalTotal.Equal(d("1050.5")))
	assert.Equal(t, "test", decoded.Metadata.Version)
}

func TestMarkdownFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter(DefaultOptions()).Render(&buf, sampleReport(t)))
	out := buf.String()

	assert.Contains(t, out, "## Detention review")
	assert.Contains(t, out, "| Item | Category | Calculation | Total |")
	assert.Contains(t, out, "| **Final total** | **1050.50 EUR** |")
	assert.Contains(t, out, "**Methodology.**")
	assert.Contains(t, out, "Warning: Arithmetic mismatch")
}

func TestSROIRendering(t *testing.T) {
	result, err := sroi.Calculate(types.ROIInputParams{
		ActorCount:             2,
		HourlyRate:             d("50"),
		AnnualHours:            d("1000"),
		InfrastructureCost:     d("0"),
		PreventedVolume:        d("1000000"),
		PreventionProbability:  d("0.5"),
		AvoidedLitigationCosts: d("60000"),
		AvoidedSocialCosts:     d("0"),
	})
	require.NoError(t, err)
	report := &Report{SROI: result}

	var cli bytes.Buffer
	require.NoError(t, NewCLIFormatter(DefaultOptions()).Render(&cli, report))
	assert.Contains(t, cli.String(), "PORTFOLIO SROI")
	assert.Contains(t, cli.String(), "460.00%")
	assert.Contains(t, cli.String(), "strong")

	var md bytes.Buffer
	require.NoError(t, NewMarkdownFormatter(DefaultOptions()).Render(&md, report))
	assert.Contains(t, md.String(), "## Portfolio SROI (strong)")
}

func TestSROIUndefinedRatios(t *testing.T) {
	result, err := sroi.Calculate(types.ROIInputParams{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewCLIFormatter(DefaultOptions()).Render(&buf, &Report{SROI: result}))
	assert.Contains(t, buf.String(), "n/a")
	assert.Contains(t, buf.String(), "not assessable")
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(DefaultOptions())
	assert.Equal(t, []Format{FormatCLI, FormatJSON, FormatMarkdown}, r.Formats())

	f, ok := r.GetFormatter(FormatJSON)
	require.True(t, ok)
	assert.Equal(t, FormatJSON, f.Format())

	assert.Error(t, r.Register(NewJSONFormatter()))

	_, err := r.Lookup("html")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotSupported))

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "markdown", sampleReport(t)))
	assert.Contains(t, buf.String(), "## Detention review")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.Internal("disk full", nil)
}

func TestRenderReportsWriteErrors(t *testing.T) {
	err := NewCLIFormatter(DefaultOptions()).Render(failingWriter{}, sampleReport(t))
	assert.Error(t, err)
}

package caseinput

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"casecost/core/builder"
	"casecost/core/determinism"
	"casecost/core/types"
	"casecost/internal/errors"
	"casecost/internal/logging"
)

func TestLoadFormatsAgree(t *testing.T) {
	fromJSON, err := Load(filepath.Join("testdata", "detention.json"))
	require.NoError(t, err)

	for _, name := range []string{"detention.yaml", "detention.hcl"} {
		t.Run(name, func(t *testing.T) {
			c, err := Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			if diff := cmp.Diff(fromJSON, c); diff != "" {
				t.Errorf("case mismatch (-json +%s):\n%s", name, diff)
			}
		})
	}
}

func TestLoadJSON(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "detention.json"))
	require.NoError(t, err)

	assert.Equal(t, "Arbitrary detention review", c.Name)
	assert.Equal(t, determinism.CaseID("Arbitrary detention review"), c.ID)
	assert.Equal(t, types.CurrencyEUR, c.Currency)
	assert.Equal(t, types.PrecedentNational, c.Precedent)
	assert.Equal(t, 12, c.DirectBeneficiaries)
	assert.Equal(t, 400, c.IndirectBeneficiaries)
	assert.True(t, c.ProBono)
	require.NotNil(t, c.ObjectValue)
	assert.True(t, c.ObjectValue.Equal(decimal.NewFromInt(20000)))

	require.Len(t, c.Tasks, 1)
	task := c.Tasks[0]
	assert.Equal(t, "hours", task.Unit)
	assert.True(t, task.Rate.Equal(decimal.NewFromInt(131)))
	assert.True(t, task.Total.Equal(decimal.NewFromInt(655)))

	require.Len(t, c.Items, 2)
	material, travel := c.Items[0], c.Items[1]
	assert.Equal(t, types.CategoryMaterial, material.Category)
	assert.Equal(t, "150", material.Total.String())
	assert.Equal(t, "30", travel.Total.String())
	assert.True(t, builder.IsReproducible(material))
	assert.True(t, builder.IsReproducible(travel))
}

func TestParseStatutoryAndStaff(t *testing.T) {
	data := []byte(`
name: Witness interviews
statutory:
  - name: Interview analysis
    hours: 10
    tier: 2
    surcharge: 0.2
    complexity: complex
staff:
  - name: Case coordinator
    hours: 10
    hourly_rate: 40
    overhead_rate: 0.25
    social_contribution_rate: 0.2
operational:
  - name: Secure server
    fixed_cost: 50
    variable_cost: 200
    usage_factor: 0.5
`)
	c, err := Parse(data, FormatYAML, "inline.yaml")
	require.NoError(t, err)
	require.Len(t, c.Items, 3)

	// 10 × 95 × 1.2 × 1.6
	assert.Equal(t, "1824", c.Items[0].Total.String())
	assert.Contains(t, c.Items[0].LegalBasis, "Honorargruppe 2")
	// 10 × 40 × 1.45
	assert.Equal(t, "580", c.Items[1].Total.String())
	// 0.5 × 200 + 50
	assert.Equal(t, "150", c.Items[2].Total.String())
}

func TestExplicitIDIsKept(t *testing.T) {
	c, err := Parse([]byte(`{"id": "case-7", "name": "x"}`), FormatJSON, "inline.json")
	require.NoError(t, err)
	assert.Equal(t, "case-7", c.ID)
	assert.Nil(t, c.ObjectValue)
}

func TestTaskContentIsNotShapeChecked(t *testing.T) {
	// Data-quality problems belong to the task validator
	data := []byte(`{"name": "x", "tasks": [{"name": "", "quantity": -1, "rate": 0}]}`)
	c, err := Parse(data, FormatJSON, "inline.json")
	require.NoError(t, err)
	require.Len(t, c.Tasks, 1)
	assert.True(t, c.Tasks[0].Quantity.IsNegative())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		format  Format
		errType errors.Type
	}{
		{"malformed json", `{"name": `, FormatJSON, errors.TypeParsing},
		{"unknown json field", `{"name": "x", "budget": 3}`, FormatJSON, errors.TypeParsing},
		{"malformed hcl", `case "x" {`, FormatHCL, errors.TypeParsing},
		{"hcl without case block", `name = "x"`, FormatHCL, errors.TypeParsing},
		{"missing name", `{"currency": "EUR"}`, FormatJSON, errors.TypeInput},
		{"unsupported currency", `{"name": "x", "currency": "JPY"}`, FormatJSON, errors.TypeInput},
		{"negative object value", `{"name": "x", "object_value": -1}`, FormatJSON, errors.TypeInput},
		{"tier out of range", `{"name": "x", "statutory": [{"name": "a", "hours": 1, "tier": 5}]}`, FormatJSON, errors.TypeInput},
		{"usage factor above one", `{"name": "x", "operational": [{"name": "a", "usage_factor": 1.5}]}`, FormatJSON, errors.TypeInput},
		{"unknown precedent", `{"name": "x", "precedent": "galactic"}`, FormatJSON, errors.TypeInput},
		{"unknown quality", `{"name": "x", "materials": [{"name": "a", "quantity": 1, "unit_price": 1, "quality": "gold"}]}`, FormatJSON, errors.TypeNotFound},
		{"unknown format", `{}`, Format("toml"), errors.TypeNotSupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format, "inline")
			require.Error(t, err)
			assert.True(t, errors.IsType(err, tt.errType), "got %v", err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}

func TestLoadLogsCaseSummary(t *testing.T) {
	prev := logging.Logger
	defer logging.Replace(prev)

	core, logs := observer.New(zapcore.DebugLevel)
	logging.Replace(zap.New(core))

	path := filepath.Join("testdata", "detention.json")
	c, err := Load(path)
	require.NoError(t, err)

	entries := logs.FilterMessage("case file loaded").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, path, fields["path"])
	assert.Equal(t, string(FormatJSON), fields["format"])
	assert.Equal(t, c.ID, fields["case_id"])
}

func TestDetectFormat(t *testing.T) {
	for path, want := range map[string]Format{
		"a.json": FormatJSON,
		"a.YAML": FormatYAML,
		"a.yml":  FormatYAML,
		"a.hcl":  FormatHCL,
	} {
		got, err := DetectFormat(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, path)
	}

	_, err := DetectFormat("a.txt")
	assert.True(t, errors.IsType(err, errors.TypeNotSupported))
}

func TestLoadAll(t *testing.T) {
	cases, err := LoadAll([]string{
		filepath.Join("testdata", "detention.json"),
		filepath.Join("testdata", "detention.hcl"),
	})
	require.NoError(t, err)
	assert.Len(t, cases, 2)

	_, err = LoadAll([]string{filepath.Join("testdata", "detention.json"), "missing.yaml"})
	assert.Error(t, err)
}

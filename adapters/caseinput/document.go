package caseinput

import (
	"strings"

	"github.com/shopspring/decimal"

	"casecost/core/builder"
	"casecost/core/catalog"
	"casecost/core/determinism"
	"casecost/core/types"
	"casecost/internal/errors"
)

// document is the on-disk shape of a case file. Numbers are plain floats
// so that the same struct decodes from JSON, YAML and HCL.
type document struct {
	ID                    string   `json:"id" yaml:"id" hcl:"id,optional"`
	Name                  string   `json:"name" yaml:"name" hcl:"name,label" validate:"required"`
	Currency              string   `json:"currency" yaml:"currency" hcl:"currency,optional" validate:"omitempty,oneof=EUR USD GBP eur usd gbp"`
	ObjectValue           *float64 `json:"object_value" yaml:"object_value" hcl:"object_value,optional" validate:"omitempty,gte=0"`
	LegalContext          string   `json:"legal_context" yaml:"legal_context" hcl:"legal_context,optional"`
	DirectBeneficiaries   int      `json:"direct_beneficiaries" yaml:"direct_beneficiaries" hcl:"direct_beneficiaries,optional" validate:"gte=0"`
	IndirectBeneficiaries int      `json:"indirect_beneficiaries" yaml:"indirect_beneficiaries" hcl:"indirect_beneficiaries,optional" validate:"gte=0"`
	Precedent             string   `json:"precedent" yaml:"precedent" hcl:"precedent,optional"`
	ProBono               bool     `json:"pro_bono" yaml:"pro_bono" hcl:"pro_bono,optional"`

	Tasks       []taskEntry        `json:"tasks" yaml:"tasks" hcl:"task,block" validate:"dive"`
	Materials   []materialEntry    `json:"materials" yaml:"materials" hcl:"material,block" validate:"dive"`
	Statutory   []statutoryEntry   `json:"statutory" yaml:"statutory" hcl:"statutory,block" validate:"dive"`
	Staff       []staffEntry       `json:"staff" yaml:"staff" hcl:"staff,block" validate:"dive"`
	Operational []operationalEntry `json:"operational" yaml:"operational" hcl:"operational,block" validate:"dive"`
	Travel      []travelEntry      `json:"travel" yaml:"travel" hcl:"travel,block" validate:"dive"`
}

// taskEntry is an extracted work entry. Its content is checked by the
// task validator, not here, so that data-quality issues surface as findings.
type taskEntry struct {
	Name       string  `json:"name" yaml:"name" hcl:"name,label"`
	Quantity   float64 `json:"quantity" yaml:"quantity" hcl:"quantity,optional"`
	Unit       string  `json:"unit" yaml:"unit" hcl:"unit,optional"`
	Rate       float64 `json:"rate" yaml:"rate" hcl:"rate,optional"`
	LegalBasis string  `json:"legal_basis" yaml:"legal_basis" hcl:"legal_basis,optional"`
	Reason     string  `json:"reason" yaml:"reason" hcl:"reason,optional"`
	Total      float64 `json:"total" yaml:"total" hcl:"total,optional"`
	Formula    string  `json:"formula" yaml:"formula" hcl:"formula,optional"`
}

type materialEntry struct {
	Name      string  `json:"name" yaml:"name" hcl:"name,label" validate:"required"`
	Quantity  float64 `json:"quantity" yaml:"quantity" hcl:"quantity" validate:"gt=0"`
	Unit      string  `json:"unit" yaml:"unit" hcl:"unit,optional"`
	UnitPrice float64 `json:"unit_price" yaml:"unit_price" hcl:"unit_price" validate:"gte=0"`
	Quality   string  `json:"quality" yaml:"quality" hcl:"quality,optional"`
}

type statutoryEntry struct {
	Name       string  `json:"name" yaml:"name" hcl:"name,label" validate:"required"`
	Hours      float64 `json:"hours" yaml:"hours" hcl:"hours" validate:"gt=0"`
	Tier       int     `json:"tier" yaml:"tier" hcl:"tier" validate:"min=1,max=4"`
	Surcharge  float64 `json:"surcharge" yaml:"surcharge" hcl:"surcharge,optional" validate:"gte=0"`
	Complexity string  `json:"complexity" yaml:"complexity" hcl:"complexity,optional"`
}

type staffEntry struct {
	Name                   string  `json:"name" yaml:"name" hcl:"name,label" validate:"required"`
	Hours                  float64 `json:"hours" yaml:"hours" hcl:"hours" validate:"gt=0"`
	HourlyRate             float64 `json:"hourly_rate" yaml:"hourly_rate" hcl:"hourly_rate" validate:"gte=0"`
	OverheadRate           float64 `json:"overhead_rate" yaml:"overhead_rate" hcl:"overhead_rate,optional" validate:"gte=0"`
	SocialContributionRate float64 `json:"social_contribution_rate" yaml:"social_contribution_rate" hcl:"social_contribution_rate,optional" validate:"gte=0"`
}

type operationalEntry struct {
	Name         string  `json:"name" yaml:"name" hcl:"name,label" validate:"required"`
	FixedCost    float64 `json:"fixed_cost" yaml:"fixed_cost" hcl:"fixed_cost,optional" validate:"gte=0"`
	VariableCost float64 `json:"variable_cost" yaml:"variable_cost" hcl:"variable_cost,optional" validate:"gte=0"`
	UsageFactor  float64 `json:"usage_factor" yaml:"usage_factor" hcl:"usage_factor,optional" validate:"gte=0,lte=1"`
}

type travelEntry struct {
	Name          string  `json:"name" yaml:"name" hcl:"name,label" validate:"required"`
	DistanceKm    float64 `json:"distance_km" yaml:"distance_km" hcl:"distance_km,optional" validate:"gte=0"`
	RatePerKm     float64 `json:"rate_per_km" yaml:"rate_per_km" hcl:"rate_per_km,optional" validate:"gte=0"`
	Accommodation float64 `json:"accommodation" yaml:"accommodation" hcl:"accommodation,optional" validate:"gte=0"`
	Meals         float64 `json:"meals" yaml:"meals" hcl:"meals,optional" validate:"gte=0"`
}

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// toCase converts a shape-checked document into a case
func (d *document) toCase() (*types.Case, error) {
	c := &types.Case{
		ID:                    d.ID,
		Name:                  d.Name,
		Currency:              types.Currency(strings.ToUpper(d.Currency)),
		LegalContext:          d.LegalContext,
		DirectBeneficiaries:   d.DirectBeneficiaries,
		IndirectBeneficiaries: d.IndirectBeneficiaries,
		ProBono:               d.ProBono,
	}
	if c.ID == "" {
		c.ID = determinism.CaseID(d.Name)
	}
	if d.ObjectValue != nil {
		v := dec(*d.ObjectValue)
		c.ObjectValue = &v
	}
	if d.Precedent != "" {
		p, ok := catalog.ParsePrecedent(d.Precedent)
		if !ok {
			return nil, errors.Input("unknown precedent value: " + d.Precedent).
				WithContext("valid", catalog.PrecedentValues())
		}
		c.Precedent = p
	}

	for _, t := range d.Tasks {
		c.Tasks = append(c.Tasks, types.Task{
			Name:       t.Name,
			Quantity:   dec(t.Quantity),
			Unit:       t.Unit,
			Rate:       dec(t.Rate),
			LegalBasis: t.LegalBasis,
			Reason:     t.Reason,
			Total:      dec(t.Total),
			Formula:    t.Formula,
		})
	}

	for _, m := range d.Materials {
		quality, err := lookupFactor(types.FactorQuality, m.Quality, "standard")
		if err != nil {
			return nil, err
		}
		c.Items = append(c.Items, builder.Material(builder.MaterialInput{
			Name:      m.Name,
			Quantity:  dec(m.Quantity),
			Unit:      m.Unit,
			UnitPrice: dec(m.UnitPrice),
			Quality:   quality,
		}))
	}

	for _, s := range d.Statutory {
		in := builder.StatutoryPersonnelInput{
			Name:      s.Name,
			Hours:     dec(s.Hours),
			Tier:      catalog.StatutoryTier(s.Tier),
			Surcharge: dec(s.Surcharge),
		}
		if s.Complexity != "" {
			complexity, err := lookupFactor(types.FactorComplexity, s.Complexity, "")
			if err != nil {
				return nil, err
			}
			in.Complexity = complexity
			in.ApplyComplexity = true
		}
		c.Items = append(c.Items, builder.StatutoryPersonnel(in))
	}

	for _, s := range d.Staff {
		c.Items = append(c.Items, builder.OverheadPersonnel(builder.OverheadPersonnelInput{
			Name:                   s.Name,
			Hours:                  dec(s.Hours),
			HourlyRate:             dec(s.HourlyRate),
			OverheadRate:           dec(s.OverheadRate),
			SocialContributionRate: dec(s.SocialContributionRate),
		}))
	}

	for _, o := range d.Operational {
		c.Items = append(c.Items, builder.Operational(builder.OperationalInput{
			Name:         o.Name,
			FixedCost:    dec(o.FixedCost),
			VariableCost: dec(o.VariableCost),
			UsageFactor:  dec(o.UsageFactor),
		}))
	}

	for _, tr := range d.Travel {
		c.Items = append(c.Items, builder.Travel(builder.TravelInput{
			Name:          tr.Name,
			DistanceKm:    dec(tr.DistanceKm),
			RatePerKm:     dec(tr.RatePerKm),
			Accommodation: dec(tr.Accommodation),
			Meals:         dec(tr.Meals),
		}))
	}

	return c, nil
}

func lookupFactor(kind types.FactorKind, level, fallback string) (types.Factor, error) {
	if level == "" {
		level = fallback
	}
	name := string(kind) + "." + strings.ToLower(strings.TrimSpace(level))
	f, ok := factors.Lookup(name)
	if !ok {
		return types.Factor{}, errors.NotFound("factor", name)
	}
	return f, nil
}

var factors = catalog.Default()

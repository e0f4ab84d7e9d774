// Package cmd - sroi command
package cmd

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"casecost/core/output"
	"casecost/core/sroi"
	"casecost/core/types"
)

var (
	sroiActors      int
	sroiHourlyRate  float64
	sroiAnnualHours float64
	sroiInfra       float64
	sroiPrevented   float64
	sroiProbability float64
	sroiLitigation  float64
	sroiSocial      float64
)

// sroiCmd evaluates the portfolio SROI model
var sroiCmd = &cobra.Command{
	Use:   "sroi",
	Short: "Evaluate the portfolio social return on investment",
	Long: `Evaluate the portfolio SROI model from aggregate parameters.

  investment = actors × annual hours × hourly rate + infrastructure
  benefit    = prevented volume × probability + avoided litigation + avoided social costs
  ROI        = (benefit - investment) / investment × 100

Example:
  casecost sroi --actors 2 --hourly-rate 50 --annual-hours 1000 \
    --prevented-volume 1000000 --probability 0.5 --avoided-litigation 60000`,
	Args: cobra.NoArgs,
	RunE: runSROI,
}

func init() {
	f := sroiCmd.Flags()
	f.IntVar(&sroiActors, "actors", 0, "number of actors")
	f.Float64Var(&sroiHourlyRate, "hourly-rate", 0, "hourly rate per actor")
	f.Float64Var(&sroiAnnualHours, "annual-hours", 0, "annual hours per actor")
	f.Float64Var(&sroiInfra, "infrastructure", 0, "annual infrastructure cost")
	f.Float64Var(&sroiPrevented, "prevented-volume", 0, "monetary volume of preventable harm")
	f.Float64Var(&sroiProbability, "probability", 0, "prevention probability (0-1)")
	f.Float64Var(&sroiLitigation, "avoided-litigation", 0, "avoided litigation costs")
	f.Float64Var(&sroiSocial, "avoided-social", 0, "avoided social costs")
	f.StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")
}

func runSROI(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	result, err := sroi.Calculate(types.ROIInputParams{
		ActorCount:             sroiActors,
		HourlyRate:             decimal.NewFromFloat(sroiHourlyRate),
		AnnualHours:            decimal.NewFromFloat(sroiAnnualHours),
		InfrastructureCost:     decimal.NewFromFloat(sroiInfra),
		PreventedVolume:        decimal.NewFromFloat(sroiPrevented),
		PreventionProbability:  decimal.NewFromFloat(sroiProbability),
		AvoidedLitigationCosts: decimal.NewFromFloat(sroiLitigation),
		AvoidedSocialCosts:     decimal.NewFromFloat(sroiSocial),
	})
	if err != nil {
		return err
	}

	return render(cmd, &output.Report{
		SROI: result,
		Metadata: output.Metadata{
			Timestamp: startTime.UTC().Format(time.RFC3339),
			Version:   Version,
		},
	}, true)
}

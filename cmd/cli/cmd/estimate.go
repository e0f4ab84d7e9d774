// Package cmd - estimate command
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"casecost/adapters/caseinput"
	"casecost/core/engine"
	"casecost/core/output"
	"casecost/internal/config"
	"casecost/internal/logging"
)

var (
	outputFormat       string
	showDetails        bool
	includeTax         bool
	strictValidation   bool
	requireCertifiable bool
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate <case-file>...",
	Short: "Assess the costs and value of one or more cases",
	Long: `Build cost items from the tasks and explicit entries of each case file,
validate every task, aggregate the case and attach economic and pro-bono
analyses.

Case files may be JSON, YAML or HCL. Independent cases are assessed
concurrently.

Examples:
  casecost estimate case.yaml
  casecost estimate --format json a.json b.hcl
  casecost estimate --include-tax --require-certifiable case.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")
	estimateCmd.Flags().BoolVarP(&showDetails, "details", "d", true, "show item breakdown and validation findings")
	estimateCmd.Flags().BoolVar(&includeTax, "include-tax", false, "add tax to the final total")
	estimateCmd.Flags().BoolVar(&strictValidation, "strict", false, "treat arithmetic mismatches as errors")
	estimateCmd.Flags().BoolVar(&requireCertifiable, "require-certifiable", false, "fail if any case has blocking validation errors")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	startTime := time.Now()
	cfg := config.Get()

	cases, err := caseinput.LoadAll(args)
	if err != nil {
		return err
	}
	logging.Info("Starting case assessment", zap.Int("cases", len(cases)))

	engineCfg := cfg.EngineConfig()
	if cmd.Flags().Changed("include-tax") {
		engineCfg.Cost.IncludeTax = includeTax
	}
	if cmd.Flags().Changed("strict") {
		engineCfg.Validation.Strict = strictValidation
	}

	assessments, err := engine.New(engineCfg).AssessAll(cmd.Context(), cases)
	if err != nil {
		return fmt.Errorf("assessment interrupted: %w", err)
	}
	for i, a := range assessments {
		if !a.Certifiable {
			logging.Warn("Case is not certifiable",
				zap.String("file", args[i]),
				zap.String("case", a.CaseName),
				zap.Int("errors", a.ErrorCount()))
		}
	}

	report := &output.Report{
		Assessments: assessments,
		Metadata: output.Metadata{
			Timestamp: startTime.UTC().Format(time.RFC3339),
			Duration:  time.Since(startTime).String(),
			Version:   Version,
			Sources:   args,
		},
	}
	if err := render(cmd, report, showDetails); err != nil {
		return err
	}

	if requireCertifiable {
		blocked := 0
		for _, a := range assessments {
			if !a.Certifiable {
				blocked++
			}
		}
		if blocked > 0 {
			return fmt.Errorf("%d of %d case(s) are not certifiable", blocked, len(assessments))
		}
	}
	return nil
}

// render prints the report in the --format flag's format, falling back to
// the configured default
func render(cmd *cobra.Command, report *output.Report, details bool) error {
	cfg := config.Get()
	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	opts := output.Options{
		ShowItems:      details && cfg.Output.ShowItems,
		ShowValidation: details && cfg.Output.ShowValidation,
	}
	return output.NewRegistry(opts).Render(cmd.OutOrStdout(), format, report)
}

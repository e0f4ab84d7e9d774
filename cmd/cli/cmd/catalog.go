// Package cmd - catalog command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"casecost/core/catalog"
	"casecost/core/types"
)

// catalogCmd lists factors, statutory tiers and formulas
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List factors, statutory fee groups and formulas",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		cat := catalog.Default()
		if errs := cat.Validate(catalog.DefaultValidationRules()); len(errs) > 0 {
			return fmt.Errorf("catalog is inconsistent: %v", errs[0])
		}

		fmt.Fprintf(out, "Statutory fee groups (%s):\n", catalog.StatutoryScheme)
		for _, t := range catalog.Tiers() {
			fmt.Fprintf(out, "  %-36s %8s/h  %s\n", t.Citation(), t.Rate().StringFixed(2), t.Description())
		}

		kinds := []types.FactorKind{
			types.FactorQuality, types.FactorExperience, types.FactorComplexity,
			types.FactorRisk, types.FactorTime,
		}
		for _, kind := range kinds {
			fmt.Fprintf(out, "\nFactors (%s):\n", kind)
			for _, f := range cat.ByKind(kind) {
				fmt.Fprintf(out, "  %-28s ×%-5s %s\n", f.Name, f.Multiplier.String(), f.Description)
			}
		}

		fmt.Fprintln(out, "\nFormulas:")
		for _, f := range catalog.Formulas() {
			fmt.Fprintf(out, "  %-7s %-24s %s\n", f.ID, f.Name, f.Formula)
		}
		return nil
	},
}

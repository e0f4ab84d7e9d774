// Package cmd - validate command
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"casecost/adapters/caseinput"
	"casecost/core/money"
	"casecost/core/types"
	"casecost/core/validation"
	"casecost/internal/config"
	"casecost/internal/logging"
)

var (
	validateStrict bool
	validateFix    bool
)

// validateCmd checks extracted tasks without assessing the case
var validateCmd = &cobra.Command{
	Use:   "validate <case-file>...",
	Short: "Check the extracted tasks of case files",
	Long: `Run the task validator on every extracted task and report warnings,
blocking errors and suggestions.

With --fix, the auto-corrected total of every mismatching task is shown.

Examples:
  casecost validate case.yaml
  casecost validate --strict --fix case.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "treat arithmetic mismatches as errors")
	validateCmd.Flags().BoolVar(&validateFix, "fix", false, "show auto-corrected totals")
}

func runValidate(cmd *cobra.Command, args []string) error {
	opts := config.Get().EngineConfig().Validation
	if cmd.Flags().Changed("strict") {
		opts.Strict = validateStrict
	}
	v := validation.New(opts)

	out := cmd.OutOrStdout()
	blocking := 0
	for _, path := range args {
		c, err := caseinput.Load(path)
		if err != nil {
			return err
		}
		log := logging.With(zap.String("file", path), zap.String("case_id", c.ID))
		fmt.Fprintf(out, "%s (%d task(s))\n", c.Name, len(c.Tasks))
		for i, task := range c.Tasks {
			var result types.ValidationResult
			if validateFix {
				var corrected types.Task
				corrected, result = v.Correct(task)
				printTaskResult(out, i, task, result)
				if !corrected.Total.Equal(task.Total) {
					fmt.Fprintf(out, "    fixed: total %s → %s\n",
						money.Format(task.Total), money.Format(corrected.Total))
				}
			} else {
				result = v.Validate(task)
				printTaskResult(out, i, task, result)
			}
			if !result.IsValid {
				log.Info("Task has blocking errors", zap.Int("task", i+1), zap.Strings("errors", result.Errors))
			}
			blocking += len(result.Errors)
		}
	}

	if blocking > 0 {
		return fmt.Errorf("%d blocking validation error(s)", blocking)
	}
	return nil
}

func printTaskResult(w io.Writer, i int, task types.Task, r types.ValidationResult) {
	status := "ok"
	switch {
	case !r.IsValid:
		status = "invalid"
	case len(r.Warnings) > 0:
		status = "warnings"
	}
	fmt.Fprintf(w, "  [%d] %-40s %s\n", i+1, task.Name, status)
	for _, e := range r.Errors {
		fmt.Fprintf(w, "    ✗ %s\n", e)
	}
	for _, msg := range r.Warnings {
		fmt.Fprintf(w, "    ! %s\n", msg)
	}
	for _, s := range r.Suggestions {
		fmt.Fprintf(w, "    → %s\n", s)
	}
}

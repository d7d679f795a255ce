package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kdeldycke/extra-platforms-sub001/internal/config"
	"github.com/kdeldycke/extra-platforms-sub001/internal/doctor"
	"github.com/kdeldycke/extra-platforms-sub001/internal/errors"
	"github.com/kdeldycke/extra-platforms-sub001/internal/logging"
	"github.com/kdeldycke/extra-platforms-sub001/internal/output"
	"github.com/kdeldycke/extra-platforms-sub001/pkg/catalog"
)

var doctorAll bool

func init() {
	doctorCmd.Flags().BoolVarP(&doctorAll, "all", "a", false,
		"show every check, including passed ones")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose detection and configuration issues",
	Long: `Run diagnostic checks on the configuration and on trait detection.

Every detection predicate is evaluated, not only up to the first match, so
shadowed traits (several matches in one category) and panicking predicates
are reported.

Exit codes:
  0 - No errors or warnings
  1 - Warnings present, no errors
  2 - Errors present`,
	Example: `  # Problems only
  extra-platforms doctor

  # Every check, as JSON
  extra-platforms doctor --all --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, err := newPrinter(cmd)
		if err != nil {
			return err
		}
		mode, err := colorMode(cmd)
		if err != nil {
			return err
		}
		cat, err := newCatalog(cmd)
		if err != nil {
			return err
		}

		report := runDoctor(cmd.Context(), cat,
			&doctor.ConfigCheck{File: config.FileUsed(), Err: configLoadErr},
			&doctor.ColorCheck{Writer: cmd.OutOrStdout(), Mode: mode})
		logging.FromContext(cmd.Context()).Debug("doctor finished",
			"passed", report.Summary.Passed, "warnings", report.Summary.Warnings, "errors", report.Summary.Errors)

		if !quiet {
			if err := printDoctorReport(p, report, doctorAll); err != nil {
				return err
			}
		}

		if code := report.ExitCode(); code != errors.ExitSuccess {
			return errors.NewExitError(nil, code)
		}
		return nil
	},
}

func runDoctor(ctx context.Context, cat *catalog.Catalog, extra ...doctor.Check) *doctor.Report {
	return doctor.NewRunner(extra...).
		Add(doctor.NewDetectionChecks(cat.Registries())...).
		Run(ctx)
}

func printDoctorReport(p *output.Printer, report *doctor.Report, showAll bool) error {
	if p.Structured() {
		return p.Encode(report)
	}

	w := p.Writer()
	hasOutput := false
	for _, result := range report.Results {
		problem := result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning
		if !showAll && !problem {
			continue
		}

		hasOutput = true
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)
		if result.FixHint != "" && problem {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	if hasOutput {
		fmt.Fprintln(w)
	}

	_, err := fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
	return errors.Wrap(err, "writing report")
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return "✓"
	case doctor.SeverityInfo:
		return "ℹ"
	case doctor.SeverityWarning:
		return "⚠"
	case doctor.SeverityError:
		return "✗"
	default:
		return "?"
	}
}

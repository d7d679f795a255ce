package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/kdeldycke/extra-platforms-sub001/internal/errors"
	"github.com/kdeldycke/extra-platforms-sub001/internal/logging"
)

// Check is one diagnostic. Run must not block on I/O beyond the local
// environment.
type Check interface {
	Name() string
	// Category groups results in the report ("config", "detection", "terminal").
	Category() string
	Run() *CheckResult
}

// Runner runs checks in the order they were added.
type Runner struct {
	checks []Check
}

// NewRunner returns a runner over checks.
func NewRunner(checks ...Check) *Runner {
	return new(Runner).Add(checks...)
}

// Add appends checks and returns the runner.
func (r *Runner) Add(checks ...Check) *Runner {
	r.checks = append(r.checks, checks...)
	return r
}

// Run executes every check and tallies the results. A check that panics
// is reported as an error result instead of aborting the run.
func (r *Runner) Run(ctx context.Context) *Report {
	logger := logging.FromContext(ctx)
	report := &Report{
		Timestamp: time.Now().UTC(),
		Results:   make([]*CheckResult, 0, len(r.checks)),
	}
	for _, check := range r.checks {
		result := runCheck(check)
		logger.Debug("check finished", "check", result.Name, "status", result.Status.String())
		report.Results = append(report.Results, result)
		report.Summary.add(result.Status)
	}
	return report
}

func runCheck(check Check) (result *CheckResult) {
	defer func() {
		if v := recover(); v != nil {
			result = &CheckResult{
				Name:     check.Name(),
				Category: check.Category(),
				Status:   SeverityError,
				Message:  fmt.Sprintf("check panicked: %v", v),
			}
		}
	}()
	result = check.Run()
	if result == nil {
		result = &CheckResult{Name: check.Name(), Category: check.Category(), Status: SeverityPass}
	}
	return result
}

// Report is the outcome of a doctor run.
type Report struct {
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp" toml:"timestamp"`
	Results   []*CheckResult `json:"results" yaml:"results" toml:"results"`
	Summary   Summary        `json:"summary" yaml:"summary" toml:"summary"`
}

// Worst returns the highest severity in the report, SeverityPass when empty.
func (r *Report) Worst() Severity {
	switch {
	case r.Summary.Errors > 0:
		return SeverityError
	case r.Summary.Warnings > 0:
		return SeverityWarning
	case r.Summary.Info > 0:
		return SeverityInfo
	}
	return SeverityPass
}

// ExitCode maps the report to the CLI exit code: errors exit with
// ExitSystem, warnings with ExitUser, anything else succeeds.
func (r *Report) ExitCode() int {
	switch r.Worst() {
	case SeverityError:
		return errors.ExitSystem
	case SeverityWarning:
		return errors.ExitUser
	}
	return errors.ExitSuccess
}

package doctor

import (
	"fmt"
	"io"
	"strings"

	"github.com/kdeldycke/extra-platforms-sub001/internal/logging"
	"github.com/kdeldycke/extra-platforms-sub001/pkg/trait"
)

// ConfigCheck reports how the configuration file was loaded.
type ConfigCheck struct {
	// File is the config file in use, empty when defaults apply.
	File string
	// Err is the error returned while loading, if any.
	Err error
}

var _ Check = (*ConfigCheck)(nil)

// Name returns the unique identifier for this check.
func (c *ConfigCheck) Name() string { return "config-file" }

// Category returns the grouping for this check.
func (c *ConfigCheck) Category() string { return "config" }

// Run executes the check.
func (c *ConfigCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}
	switch {
	case c.Err != nil:
		result.Status = SeverityError
		result.Message = c.Err.Error()
		result.FixHint = "fix or remove the config file; run: extra-platforms config path"
	case c.File == "":
		result.Status = SeverityInfo
		result.Message = "no config file found, using defaults"
	default:
		result.Status = SeverityPass
		result.Message = "loaded " + c.File
		result.Details = map[string]any{"file": c.File}
	}
	return result
}

// DetectionCheck evaluates every predicate of a registry. It warns when
// several traits match, since only the first one is reported as current,
// and fails when a predicate panics.
type DetectionCheck struct {
	Registry *trait.Registry
}

var _ Check = (*DetectionCheck)(nil)

// NewDetectionChecks returns one check per registry.
func NewDetectionChecks(regs []*trait.Registry) []Check {
	checks := make([]Check, len(regs))
	for i, reg := range regs {
		checks[i] = &DetectionCheck{Registry: reg}
	}
	return checks
}

// Name returns the unique identifier for this check.
func (c *DetectionCheck) Name() string { return "detect-" + string(c.Registry.Category()) }

// Category returns the grouping for this check.
func (c *DetectionCheck) Category() string { return "detection" }

// Run executes the check.
func (c *DetectionCheck) Run() *CheckResult {
	var matches, panicked []string
	for _, e := range c.Registry.Evaluate() {
		switch {
		case e.Panic != nil:
			panicked = append(panicked, fmt.Sprintf("%s (%v)", e.Trait.ID(), e.Panic))
		case e.Match:
			matches = append(matches, e.Trait.ID())
		}
	}

	current := c.Registry.Current().ID()
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details: map[string]any{
			"current": current,
			"matches": matches,
		},
	}

	switch {
	case len(panicked) > 0:
		result.Status = SeverityError
		result.Message = "detection panicked for " + strings.Join(panicked, ", ")
		result.FixHint = "these traits are treated as not matching; report the environment that triggers the panic"
	case len(matches) > 1:
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("%d traits match, %s wins over %s",
			len(matches), matches[0], strings.Join(matches[1:], ", "))
		result.FixHint = "the first match in declaration order is reported as current"
	case len(matches) == 0:
		result.Status = SeverityInfo
		result.Message = "nothing detected, current is " + current
	default:
		result.Status = SeverityPass
		result.Message = "detected " + current
	}
	return result
}

// ColorCheck reports whether colored output is enabled for a writer.
type ColorCheck struct {
	Writer io.Writer
	Mode   logging.ColorMode
}

var _ Check = (*ColorCheck)(nil)

// Name returns the unique identifier for this check.
func (c *ColorCheck) Name() string { return "color-output" }

// Category returns the grouping for this check.
func (c *ColorCheck) Category() string { return "terminal" }

// Run executes the check.
func (c *ColorCheck) Run() *CheckResult {
	tty := logging.IsTTY(c.Writer)
	enabled := c.Mode.Enabled(c.Writer)

	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityInfo,
		Details: map[string]any{
			"mode":    string(c.Mode),
			"tty":     tty,
			"enabled": enabled,
		},
	}
	if enabled {
		result.Message = fmt.Sprintf("colors enabled (mode %s)", c.Mode)
	} else {
		result.Message = fmt.Sprintf("colors disabled (mode %s, tty %t)", c.Mode, tty)
	}
	return result
}

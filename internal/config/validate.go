package config

import (
	"github.com/kdeldycke/extra-platforms-sub001/internal/errors"
	"github.com/kdeldycke/extra-platforms-sub001/internal/logging"
	"github.com/kdeldycke/extra-platforms-sub001/internal/output"
	"github.com/kdeldycke/extra-platforms-sub001/pkg/trait"
)

// ErrVersionTooLow indicates the version field is below the minimum.
var ErrVersionTooLow = errors.New("version must be >= 1")

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if _, err := output.ParseFormat(cfg.Format); err != nil {
		errs = append(errs, err)
	}

	if _, err := logging.ParseColorMode(cfg.Color); err != nil {
		errs = append(errs, err)
	}

	for _, name := range cfg.Categories {
		if _, err := trait.ParseCategory(name); err != nil {
			errs = append(errs, errors.Newf("invalid category: %s", name))
		}
	}

	return errs
}

// CategoryList resolves the configured categories. An empty list selects
// every category.
func (c *Config) CategoryList() ([]trait.Category, error) {
	if len(c.Categories) == 0 {
		return trait.Categories(), nil
	}
	cats := make([]trait.Category, 0, len(c.Categories))
	for _, name := range c.Categories {
		cat, err := trait.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		cats = append(cats, cat)
	}
	return cats, nil
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kdeldycke/extra-platforms-sub001/internal/errors"
	"github.com/kdeldycke/extra-platforms-sub001/internal/output"
	"github.com/kdeldycke/extra-platforms-sub001/pkg/catalog"
)

func init() {
	rootCmd.AddCommand(isCmd)
}

var isCmd = &cobra.Command{
	Use:   "is <id>",
	Short: "Test whether a trait or group matches the environment",
	Long: `Evaluate the detection of a trait, or for a group, whether the current
trait of its category is a member.

Exits 0 when it matches and 1 when it does not. With --quiet nothing is
printed, which suits shell conditionals.`,
	Example: `  # Inside a GitHub Actions job?
  extra-platforms is github_ci

  # Any Unix-like system
  if extra-platforms is unix --quiet; then echo unix; fi

See Also: extra-platforms current`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPrinter(cmd)
		if err != nil {
			return err
		}
		cat, err := newCatalog(cmd)
		if err != nil {
			return err
		}
		ok, err := runIs(p, cat, args[0], quiet)
		if err != nil {
			return err
		}
		if !ok {
			return errors.NewExitError(nil, errors.ExitUser)
		}
		return nil
	},
}

type isResult struct {
	ID    string `json:"id" yaml:"id" toml:"id"`
	Match bool   `json:"match" yaml:"match" toml:"match"`
}

// evalIs evaluates a trait predicate, or the membership of the current trait
// of the group's category.
func evalIs(cat *catalog.Catalog, id string) (bool, error) {
	ok, err := cat.Is(id)
	if err == nil || !errors.Is(err, errors.ErrNotFound) {
		return ok, err
	}

	g, gerr := cat.Group(id)
	if gerr != nil {
		return false, notFound(errors.Wrapf(errors.ErrNotFound, "no trait or group %q", id), id)
	}
	reg, err := cat.Registry(g.Category())
	if err != nil {
		return false, err
	}
	return g.Contains(reg.Current().ID()), nil
}

func runIs(p *output.Printer, cat *catalog.Catalog, id string, silent bool) (bool, error) {
	ok, err := evalIs(cat, id)
	if err != nil {
		return false, err
	}
	if silent {
		return ok, nil
	}
	if p.Structured() {
		return ok, p.Encode(isResult{ID: id, Match: ok})
	}
	_, err = fmt.Fprintln(p.Writer(), ok)
	return ok, errors.Wrap(err, "writing result")
}

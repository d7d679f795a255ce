package commands

import (
	"github.com/spf13/cobra"

	"github.com/kdeldycke/extra-platforms-sub001/internal/errors"
	"github.com/kdeldycke/extra-platforms-sub001/internal/output"
	"github.com/kdeldycke/extra-platforms-sub001/pkg/catalog"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a trait or a group",
	Long: `Show the details of a trait, including the groups it belongs to, or of a
group, including its members. Unknown sentinels (unknown_shell, ...) can be
shown too.`,
	Example: `  # A trait
  extra-platforms show wsl

  # A group
  extra-platforms show bourne_shells --format json

See Also: extra-platforms list, extra-platforms search`,
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
		return runShow(p, cat, args[0])
	},
}

func runShow(p *output.Printer, cat *catalog.Catalog, id string) error {
	if t, err := cat.Trait(id); err == nil {
		reg, err := cat.Registry(t.Category())
		if err != nil {
			return err
		}
		groups, err := reg.GroupsOf(id)
		if err != nil {
			return err
		}
		return p.Trait(output.TraitDetail{Info: t.Info(), Groups: groupIDs(groups)})
	} else if !errors.Is(err, errors.ErrNotFound) {
		return err
	}

	g, err := cat.Group(id)
	if err != nil {
		return notFound(errors.Wrapf(errors.ErrNotFound, "no trait or group %q", id), id)
	}
	return p.Group(g.Info())
}

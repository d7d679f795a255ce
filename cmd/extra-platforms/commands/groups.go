package commands

import (
	"github.com/spf13/cobra"

	"github.com/kdeldycke/extra-platforms-sub001/internal/output"
	"github.com/kdeldycke/extra-platforms-sub001/pkg/catalog"
	"github.com/kdeldycke/extra-platforms-sub001/pkg/trait"
)

func init() {
	rootCmd.AddCommand(groupsCmd)
}

var groupsCmd = &cobra.Command{
	Use:   "groups [category...]",
	Short: "List groups and their members",
	Long: `List the groups of the given categories. The canonical group of each
category (all_platforms, all_shells, ...) comes first and holds every trait.`,
	Example: `  # All groups
  extra-platforms groups

  # Platform groups as TOML
  extra-platforms groups platform --format toml

See Also: extra-platforms reduce, extra-platforms show`,
	ValidArgs: categoryArgs(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cats, err := parseCategories(args)
		if err != nil {
			return err
		}
		p, err := newPrinter(cmd)
		if err != nil {
			return err
		}
		cat, err := newCatalog(cmd)
		if err != nil {
			return err
		}
		return runGroups(p, cat, cats)
	},
}

func runGroups(p *output.Printer, cat *catalog.Catalog, cats []trait.Category) error {
	var infos []trait.GroupInfo
	for _, c := range cats {
		reg, err := cat.Registry(c)
		if err != nil {
			return err
		}
		for _, g := range reg.Groups() {
			infos = append(infos, g.Info())
		}
	}
	return p.Groups(infos)
}

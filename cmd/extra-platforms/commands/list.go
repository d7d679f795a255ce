package commands

import (
	"github.com/spf13/cobra"

	"github.com/kdeldycke/extra-platforms-sub001/internal/output"
	"github.com/kdeldycke/extra-platforms-sub001/pkg/catalog"
	"github.com/kdeldycke/extra-platforms-sub001/pkg/trait"
)

var listWithGroups bool

func init() {
	listCmd.Flags().BoolVarP(&listWithGroups, "groups", "g", false,
		"include the groups each trait belongs to")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list [category...]",
	Aliases: []string{"ls"},
	Short:   "List traits in declaration order",
	Long: `List every trait of the given categories in declaration order, which is
also detection priority. Unknown sentinels are not listed.`,
	Example: `  # All terminals
  extra-platforms list terminal

  # Shells with their groups, as YAML
  extra-platforms list shells --groups --format yaml

See Also: extra-platforms groups, extra-platforms show`,
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
		return runList(p, cat, cats, listWithGroups)
	},
}

func runList(p *output.Printer, cat *catalog.Catalog, cats []trait.Category, withGroups bool) error {
	var infos []trait.Info
	var details []output.TraitDetail
	for _, c := range cats {
		reg, err := cat.Registry(c)
		if err != nil {
			return err
		}
		for _, t := range reg.All() {
			info := t.Info()
			if !withGroups {
				infos = append(infos, info)
				continue
			}
			groups, err := reg.GroupsOf(t.ID())
			if err != nil {
				return err
			}
			details = append(details, output.TraitDetail{Info: info, Groups: groupIDs(groups)})
		}
	}
	if withGroups {
		return p.Details(details)
	}
	return p.Traits(infos)
}

func groupIDs(groups []*trait.Group) []string {
	ids := make([]string, len(groups))
	for i, g := range groups {
		ids[i] = g.ID()
	}
	return ids
}

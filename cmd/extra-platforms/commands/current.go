package commands

import (
	"github.com/spf13/cobra"

	"github.com/kdeldycke/extra-platforms-sub001/internal/output"
	"github.com/kdeldycke/extra-platforms-sub001/pkg/catalog"
	"github.com/kdeldycke/extra-platforms-sub001/pkg/trait"
)

func init() {
	rootCmd.AddCommand(currentCmd)
}

var currentCmd = &cobra.Command{
	Use:   "current [category...]",
	Short: "Show the current trait of each category",
	Long: `Show the trait detected for each category.

Categories default to the "categories" configuration key, or all of them.
Singular and plural names are accepted (shell, shells).`,
	Example: `  # Everything
  extra-platforms current

  # Only the platform and shell
  extra-platforms current platform shell

See Also: extra-platforms is, extra-platforms list`,
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
		return runCurrent(p, cat, cats)
	},
}

func runCurrent(p *output.Printer, cat *catalog.Catalog, cats []trait.Category) error {
	infos := make([]trait.Info, 0, len(cats))
	for _, c := range cats {
		reg, err := cat.Registry(c)
		if err != nil {
			return err
		}
		infos = append(infos, reg.Current().Info())
	}
	return p.Traits(infos)
}

// categoryArgs lists category names for shell completion.
func categoryArgs() []string {
	var names []string
	for _, c := range trait.Categories() {
		names = append(names, string(c), c.Plural())
	}
	return names
}

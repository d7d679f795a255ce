package commands

import (
	"github.com/spf13/cobra"

	"github.com/kdeldycke/extra-platforms-sub001/internal/output"
	"github.com/kdeldycke/extra-platforms-sub001/pkg/catalog"
)

func init() {
	rootCmd.AddCommand(reduceCmd)
}

var reduceCmd = &cobra.Command{
	Use:   "reduce <id>...",
	Short: "Collapse trait ids into the fewest groups and traits",
	Long: `Replace sets of traits by the groups they fully cover. The output lists
the fewest group and trait ids whose members equal the input. Traits of
different categories are reduced separately.`,
	Example: `  # Prints bourne_shells plus what is left
  extra-platforms reduce bash dash ksh zsh

  # Mixed categories
  extra-platforms reduce linux macos x86_64 i386 --format json

See Also: extra-platforms groups`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPrinter(cmd)
		if err != nil {
			return err
		}
		cat, err := newCatalog(cmd)
		if err != nil {
			return err
		}
		return runReduce(p, cat, args)
	},
}

func runReduce(p *output.Printer, cat *catalog.Catalog, ids []string) error {
	for _, id := range ids {
		if _, err := cat.Trait(id); err != nil {
			return notFound(err, id)
		}
	}
	reduced, err := cat.Reduce(ids)
	if err != nil {
		return err
	}
	return p.IDs(reduced)
}

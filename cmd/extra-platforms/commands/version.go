package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kdeldycke/extra-platforms-sub001/cmd"
	"github.com/kdeldycke/extra-platforms-sub001/internal/errors"
	"github.com/kdeldycke/extra-platforms-sub001/internal/output"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, build date and Go toolchain of extra-platforms.`,
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		p, err := newPrinter(c)
		if err != nil {
			return err
		}
		return runVersion(p, cmd.Info())
	},
}

func runVersion(p *output.Printer, info cmd.BuildInfo) error {
	if p.Structured() {
		return p.Encode(info)
	}
	w := p.Writer()
	fmt.Fprintf(w, "extra-platforms version %s\n", info.Version)
	fmt.Fprintf(w, "  commit: %s\n", info.Commit)
	fmt.Fprintf(w, "  built:  %s\n", info.Date)
	_, err := fmt.Fprintf(w, "  go:     %s (%s)\n", info.GoVersion, info.Platform)
	return errors.Wrap(err, "writing version")
}

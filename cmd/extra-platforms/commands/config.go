package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kdeldycke/extra-platforms-sub001/internal/config"
	"github.com/kdeldycke/extra-platforms-sub001/internal/editor"
	"github.com/kdeldycke/extra-platforms-sub001/internal/errors"
	"github.com/kdeldycke/extra-platforms-sub001/internal/output"
	"github.com/kdeldycke/extra-platforms-sub001/internal/paths"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false,
		"overwrite an existing config file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect extra-platforms configuration",
	Long: `Inspect the configuration loaded from config.yaml in the current directory
or in $XDG_CONFIG_HOME/extra-platforms/. Keys can be overridden with
EXTRA_PLATFORMS_<KEY> environment variables.

Without a subcommand, shows the effective configuration.`,
	Example: `  # Effective configuration
  extra-platforms config

  # Where the file is read from
  extra-platforms config path

  # Create the file, then edit it
  extra-platforms config init
  extra-platforms config edit`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigShowCmd(cmd)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Show the configuration after applying defaults, the file and environment overrides.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigShowCmd(cmd)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Long: `Print the configuration file in use. When none was found, the default
location is printed with a note.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		p, err := newPrinter(cmd)
		if err != nil {
			return err
		}
		return runConfigPath(p, config.FileUsed())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write the default configuration to --config, or to the XDG location when
--config is not given. An existing file is kept unless --force is set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConfigInit(cmd.OutOrStdout(), targetConfigFile(), configInitForce)
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the configuration file in $EDITOR",
	Long: `Open the configuration file in $EDITOR, falling back to $VISUAL, nano or vi.
A default file is written first when none exists.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := targetConfigFile()
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			if err := runConfigInit(cmd.OutOrStdout(), path, false); err != nil {
				return err
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Location: %s\n", path)
		if err := editor.Open(cmd.Context(), path); err != nil {
			return errors.NewSystemError(err, "Set $EDITOR to your preferred editor")
		}
		return nil
	},
}

// targetConfigFile is the file config init and edit act on.
func targetConfigFile() string {
	switch {
	case configFile != "":
		return configFile
	case config.FileUsed() != "":
		return config.FileUsed()
	default:
		return paths.ConfigFile()
	}
}

func runConfigInit(w io.Writer, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.NewUserError(
			errors.Newf("config file already exists: %s", path),
			"Use --force to overwrite it")
	}
	if err := config.Save(path, config.Default()); err != nil {
		return errors.NewSystemError(err, "")
	}
	_, err := fmt.Fprintf(w, "Wrote %s\n", path)
	return errors.Wrap(err, "writing message")
}

func runConfigShowCmd(cmd *cobra.Command) error {
	p, err := newPrinter(cmd)
	if err != nil {
		return err
	}
	return runConfigShow(p, cfg)
}

func runConfigShow(p *output.Printer, c *config.Config) error {
	return p.Encode(c)
}

type configPath struct {
	Path   string `json:"path" yaml:"path" toml:"path"`
	Exists bool   `json:"exists" yaml:"exists" toml:"exists"`
}

func runConfigPath(p *output.Printer, used string) error {
	result := configPath{Path: used, Exists: used != ""}
	if used == "" {
		result.Path = paths.ConfigFile()
	}
	if p.Structured() {
		return p.Encode(result)
	}
	var err error
	if result.Exists {
		_, err = fmt.Fprintln(p.Writer(), result.Path)
	} else {
		_, err = fmt.Fprintf(p.Writer(), "%s (not found, using defaults)\n", result.Path)
	}
	return errors.Wrap(err, "writing path")
}

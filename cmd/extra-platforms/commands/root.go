// Package commands implements the CLI commands for extra-platforms.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kdeldycke/extra-platforms-sub001/cmd"
	"github.com/kdeldycke/extra-platforms-sub001/internal/config"
	"github.com/kdeldycke/extra-platforms-sub001/internal/errors"
	"github.com/kdeldycke/extra-platforms-sub001/internal/logging"
	"github.com/kdeldycke/extra-platforms-sub001/internal/output"
	"github.com/kdeldycke/extra-platforms-sub001/pkg/catalog"
	"github.com/kdeldycke/extra-platforms-sub001/pkg/trait"
)

// debugEnv raises verbosity when no -v flag is given: 1 or true for debug,
// 2 for trace.
const debugEnv = "EXTRA_PLATFORMS_DEBUG"

var (
	verbosity  int
	quiet      bool
	logFormat  string
	logFile    string
	configFile string
	formatFlag string
	colorFlag  string
)

var (
	// cfg is the loaded configuration; defaults when loading failed.
	cfg           = config.Default()
	configLoadErr error

	// catalogEnv overrides the detection environment. Nil reads the process.
	catalogEnv trait.Env
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text",
		"output format: text, json, yaml, toml")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./config.yaml or $XDG_CONFIG_HOME/extra-platforms/config.yaml)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("extra-platforms version {{.Version}}\n")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loaded, err := config.Load(configFile)
	configLoadErr = err
	if err != nil {
		cfg = config.Default()
		return
	}
	cfg = loaded
}

var rootCmd = &cobra.Command{
	Use:   "extra-platforms",
	Short: "Detect the platform, architecture, shell, terminal, CI and AI agent",
	Long: `extra-platforms identifies the environment it runs in.

Every category (architecture, platform, shell, terminal, CI, agent) holds an
ordered list of traits. The current trait of a category is the first one whose
detection matches the process environment, or unknown_<category> when none
does. Traits are gathered into groups like unix, bourne_shells or all_agents.`,
	Example: `  # Show what was detected
  extra-platforms current

  # Only the agent and CI system, as JSON
  extra-platforms current agent ci --format json

  # Check for an agent in a script
  if extra-platforms is claude_code --quiet; then ...; fi

  # Collapse traits into groups
  extra-platforms reduce bash zsh dash ksh

See Also: extra-platforms list, extra-platforms groups`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			if val, ok := os.LookupEnv(debugEnv); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	var format logging.Format
	switch logging.Format(logFormat) {
	case logging.FormatText, logging.FormatJSON:
		format = logging.Format(logFormat)
	default:
		return errors.NewUserError(
			errors.Newf("invalid log format %q", logFormat),
			"Use --log-format text or --log-format json")
	}

	mode, err := colorMode(cmd)
	if err != nil {
		return err
	}

	handlers := []slog.Handler{logging.NewHandlerFor(logging.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Color:  mode,
	})}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		handlers = append(handlers, logging.NewHandlerFor(logging.Config{
			Level:  level,
			Format: logging.FormatJSON,
			Output: f,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig reports a configuration that failed to load. The commands
// that inspect the configuration itself still run.
func checkConfig(cmd *cobra.Command) error {
	switch cmd.Name() {
	case "help", "version", "path", "doctor", "init", "edit":
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

// colorMode resolves --color, falling back to the configured mode.
func colorMode(cmd *cobra.Command) (logging.ColorMode, error) {
	value := cfg.Color
	if cmd.Root().PersistentFlags().Changed("color") {
		value = colorFlag
	}
	mode, err := logging.ParseColorMode(value)
	if err != nil {
		return "", errors.NewUserError(err, "Use --color auto, always or never")
	}
	return mode, nil
}

// newPrinter builds the output printer from --format and --color, falling
// back to the configuration.
func newPrinter(cmd *cobra.Command) (*output.Printer, error) {
	value := cfg.Format
	if cmd.Root().PersistentFlags().Changed("format") {
		value = formatFlag
	}
	format, err := output.ParseFormat(value)
	if err != nil {
		return nil, errors.NewUserError(err, "Use --format text, json, yaml or toml")
	}

	mode, err := colorMode(cmd)
	if err != nil {
		return nil, err
	}

	w := cmd.OutOrStdout()
	return output.NewPrinter(w, format, mode.Enabled(w)), nil
}

// newCatalog builds the catalog against catalogEnv with the command's logger.
func newCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	logger := logging.FromContext(cmd.Context())
	cat, err := catalog.New(catalogEnv, catalog.WithLogger(logger))
	if err != nil {
		return nil, errors.NewSystemError(errors.Wrap(err, "building catalog"), "")
	}
	return cat, nil
}

// parseCategories resolves category arguments. No argument selects the
// configured categories.
func parseCategories(args []string) ([]trait.Category, error) {
	if len(args) == 0 {
		cats, err := cfg.CategoryList()
		if err != nil {
			return nil, errors.NewConfigError(err)
		}
		return cats, nil
	}
	cats := make([]trait.Category, 0, len(args))
	for _, arg := range args {
		cat, err := trait.ParseCategory(arg)
		if err != nil {
			return nil, errors.NewUserError(err, categorySuggestion)
		}
		cats = append(cats, cat)
	}
	return cats, nil
}

const categorySuggestion = "Valid categories: architecture, platform, shell, terminal, ci, agent"

// notFound maps a lookup failure to a user error.
func notFound(err error, id string) error {
	if errors.Is(err, errors.ErrNotFound) {
		return errors.NewUserError(err, "Run: extra-platforms search "+id)
	}
	return err
}

// Execute runs the root command.
func Execute() error {
	return errors.Wrap(rootCmd.Execute(), "executing root command")
}

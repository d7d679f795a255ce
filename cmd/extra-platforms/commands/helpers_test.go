package commands

import (
	"bytes"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/kdeldycke/extra-platforms-sub001/internal/config"
	"github.com/kdeldycke/extra-platforms-sub001/internal/logging"
	"github.com/kdeldycke/extra-platforms-sub001/internal/output"
	"github.com/kdeldycke/extra-platforms-sub001/pkg/catalog"
	"github.com/kdeldycke/extra-platforms-sub001/pkg/trait"
)

// linuxBash is a Linux host running bash inside tmux under Claude Code.
var linuxBash = trait.MapEnv{
	OS:   "linux",
	Arch: "amd64",
	Vars: map[string]string{
		"SHELL":      "/bin/bash",
		"TMUX":       "/tmp/tmux-1000/default,1,0",
		"CLAUDECODE": "1",
	},
}

func newTestCatalog(t *testing.T, env trait.MapEnv) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(env, catalog.WithLogger(logging.ForTest(t)))
	require.NoError(t, err)
	return cat
}

func newTestPrinter(format output.Format) (*output.Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	return output.NewPrinter(&buf, format, false), &buf
}

// resetFlags restores every flag of c and its subcommands to its default.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the root command against env and returns its stdout.
func execute(t *testing.T, env trait.Env, args ...string) (string, error) {
	t.Helper()

	t.Chdir(t.TempDir())
	t.Setenv("EXTRA_PLATFORMS_DEBUG", "")

	// Flags keep their values between Execute calls on the shared rootCmd.
	resetFlags(rootCmd)
	cfg = config.Default()
	configLoadErr = nil

	origEnv := catalogEnv
	catalogEnv = env
	t.Cleanup(func() {
		catalogEnv = origEnv
		cfg = config.Default()
		configLoadErr = nil
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)

	err := rootCmd.Execute()
	return out.String(), err
}

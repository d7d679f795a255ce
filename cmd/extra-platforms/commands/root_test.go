package commands

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdeldycke/extra-platforms-sub001/internal/errors"
	"github.com/kdeldycke/extra-platforms-sub001/internal/logging"
)

func TestSetupLogging_VerbosityFlags(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		verbosity int
		wantLevel slog.Level
	}{
		{"default (0)", 0, slog.LevelWarn},
		{"verbose (1)", 1, slog.LevelInfo},
		{"debug (2)", 2, slog.LevelDebug},
		{"trace (3)", 3, logging.LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(debugEnv, "")
			verbosity = tt.verbosity
			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(t.Context(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
			if tt.wantLevel > logging.LevelTrace {
				shouldBeDisabled := tt.wantLevel - 4
				if logger.Enabled(t.Context(), shouldBeDisabled) {
					t.Errorf("expected level %v to be disabled", shouldBeDisabled)
				}
			}
		})
	}
}

func TestSetupLogging_EnvVar(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		envVal    string
		wantLevel slog.Level
	}{
		{"DEBUG=1", "1", slog.LevelDebug},
		{"DEBUG=true", "true", slog.LevelDebug},
		{"DEBUG=2", "2", logging.LevelTrace},
		{"DEBUG=0", "0", slog.LevelWarn},
		{"DEBUG=unknown", "foo", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = 0
			t.Setenv(debugEnv, tt.envVal)

			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(t.Context(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
			if tt.wantLevel == slog.LevelDebug && logger.Enabled(t.Context(), logging.LevelTrace) {
				t.Errorf("expected Trace level to be disabled when %s=1", debugEnv)
			}
		})
	}
}

func TestSetupLogging_FlagPrecedence(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	t.Setenv(debugEnv, "2")
	verbosity = 1

	if err := setupLogging(rootCmd); err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}

	logger := slog.Default()
	if !logger.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("expected Info level to be enabled")
	}
	if logger.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("expected Debug level to be disabled (flag should override env var)")
	}
}

func TestSetupLogging_Quiet(t *testing.T) {
	origQuiet, origVerbosity := quiet, verbosity
	defer func() {
		quiet = origQuiet
		verbosity = origVerbosity
	}()

	quiet = true
	verbosity = 0
	require.NoError(t, setupLogging(rootCmd))
	assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelError))

	verbosity = 1
	err := setupLogging(rootCmd)
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestSetupLogging_InvalidLogFormat(t *testing.T) {
	orig := logFormat
	defer func() { logFormat = orig }()

	logFormat = "xml"
	err := setupLogging(rootCmd)
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestSetupLogging_LogFile(t *testing.T) {
	orig := logFile
	defer func() { logFile = orig }()

	logFile = filepath.Join(t.TempDir(), "extra-platforms.log")
	require.NoError(t, setupLogging(rootCmd))

	slog.Default().Error("predicate failed", "id", "bash")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"predicate failed"`)
	assert.Contains(t, string(data), `"id":"bash"`)
}

func TestExecute_InvalidFormat(t *testing.T) {
	_, err := execute(t, linuxBash, "current", "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestExecute_FlagsDoNotLeakBetweenRuns(t *testing.T) {
	out, err := execute(t, linuxBash, "current", "shell", "--format", "json", "-v")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{"), "got %q", out)

	out, err = execute(t, linuxBash, "current", "shell")
	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(out, "{"), "got %q", out)
	assert.Contains(t, out, "bash")
	assert.Equal(t, "text", formatFlag)
	assert.Zero(t, verbosity)
}

func TestExecute_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: xml\n"), 0600))

	_, err := execute(t, linuxBash, "current", "--config", path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig), "got %v", err)

	var exitErr *errors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, "Run: extra-platforms config path", exitErr.Suggestion)
}

func TestExecute_ConfigFormatDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\ncategories: [agent]\n"), 0600))

	out, err := execute(t, linuxBash, "current", "--config", path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"traits":[{"id":"claude_code","name":"Claude Code","icon":"✴️","url":"https://claude.com/product/claude-code","category":"agent","current":true}]}`, out)
}

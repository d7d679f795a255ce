package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdeldycke/extra-platforms-sub001/internal/errors"
	"github.com/kdeldycke/extra-platforms-sub001/internal/output"
)

func TestRunIs(t *testing.T) {
	cat := newTestCatalog(t, linuxBash)

	tests := []struct {
		id      string
		want    bool
		wantErr bool
	}{
		{id: "linux", want: true},
		{id: "wsl", want: false},
		{id: "claude_code", want: true},
		{id: "cursor", want: false},
		{id: "unknown_ci", want: true},
		{id: "unknown_shell", want: false},
		{id: "unix", want: true},
		{id: "bourne_shells", want: true},
		{id: "all_windows", want: false},
		{id: "beos", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			p, buf := newTestPrinter(output.FormatText)
			got, err := runIs(p, cat, tt.id, false)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrNotFound))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.want {
				assert.Equal(t, "true\n", buf.String())
			} else {
				assert.Equal(t, "false\n", buf.String())
			}
		})
	}
}

func TestRunIs_Quiet(t *testing.T) {
	cat := newTestCatalog(t, linuxBash)
	p, buf := newTestPrinter(output.FormatJSON)

	ok, err := runIs(p, cat, "tmux", true)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, buf.String())
}

func TestRunIs_JSON(t *testing.T) {
	cat := newTestCatalog(t, linuxBash)
	p, buf := newTestPrinter(output.FormatJSON)

	_, err := runIs(p, cat, "macos", false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"macos","match":false}`, buf.String())
}

func TestIsCommand_ExitCode(t *testing.T) {
	_, err := execute(t, linuxBash, "is", "linux")
	require.NoError(t, err)

	out, err := execute(t, linuxBash, "is", "windows", "--quiet")
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	assert.Empty(t, out)

	var exitErr *errors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.NoError(t, exitErr.Err, "a false predicate is not reported as an error")
}

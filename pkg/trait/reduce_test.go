package trait

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShells(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewBuilder(CategoryShell).
		Add(
			New(CategoryShell, "bash", "Bash", "", "", never),
			New(CategoryShell, "dash", "Dash", "", "", never),
			New(CategoryShell, "zsh", "Zsh", "", "", never),
			New(CategoryShell, "csh", "C shell", "", "", never),
			New(CategoryShell, "tcsh", "TENEX C shell", "", "", never),
			New(CategoryShell, "fish", "Fish", "", "", never),
		).
		Group("c_shells", "C shells", "", "csh", "tcsh").
		Group("bourne_shells", "Bourne shells", "", "bash", "dash", "zsh").
		Build()
	require.NoError(t, err)
	return reg
}

func TestRegistry_Reduce(t *testing.T) {
	reg := newShells(t)

	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{name: "empty", ids: nil, want: nil},
		{name: "single trait", ids: []string{"fish"}, want: []string{"fish"}},
		{
			name: "whole category",
			ids:  []string{"fish", "tcsh", "csh", "zsh", "dash", "bash"},
			want: []string{"all_shells"},
		},
		{
			name: "larger group first",
			ids:  []string{"csh", "tcsh", "bash", "dash", "zsh"},
			want: []string{"bourne_shells", "c_shells"},
		},
		{
			name: "partial group stays expanded in declaration order",
			ids:  []string{"zsh", "fish", "bash", "csh", "tcsh"},
			want: []string{"c_shells", "bash", "zsh", "fish"},
		},
		{
			name: "duplicates ignored",
			ids:  []string{"csh", "tcsh", "csh"},
			want: []string{"c_shells"},
		},
		{
			name: "unknown sentinel kept last",
			ids:  []string{"unknown_shell", "fish"},
			want: []string{"fish", "unknown_shell"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.Reduce(tt.ids)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_ReduceUnknownID(t *testing.T) {
	reg := newShells(t)

	_, err := reg.Reduce([]string{"bash", "nushell"})
	assert.ErrorIs(t, err, ErrNotFound)
}

package catalog

import (
	"testing"

	"github.com/kdeldycke/extra-platforms-sub001/pkg/trait"
)

func TestLoginShell(t *testing.T) {
	tests := []struct {
		name  string
		shell string
		names []string
		want  bool
	}{
		{name: "unix path", shell: "/bin/bash", names: []string{"bash"}, want: true},
		{name: "windows path with exe", shell: `C:\Program Files\Git\bin\BASH.EXE`, names: []string{"bash"}, want: true},
		{name: "alias list", shell: "/usr/bin/mksh", names: []string{"ksh", "mksh"}, want: true},
		{name: "mismatch", shell: "/bin/zsh", names: []string{"bash"}, want: false},
		{name: "unset", shell: "", names: []string{"bash"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := trait.MapEnv{Vars: map[string]string{"SHELL": tt.shell}}
			if got := loginShell(tt.names...)(env); got != tt.want {
				t.Errorf("loginShell(%v)(%q) = %v, want %v", tt.names, tt.shell, got, tt.want)
			}
		})
	}
}

func TestCombinators(t *testing.T) {
	yes := func(trait.Env) bool { return true }
	no := func(trait.Env) bool { return false }
	env := trait.MapEnv{}

	if !allOf(yes, yes)(env) || allOf(yes, no)(env) {
		t.Error("allOf mismatch")
	}
	if !allOf()(env) {
		t.Error("allOf() of nothing should hold")
	}
	if !anyOf(no, yes)(env) || anyOf(no, no)(env) {
		t.Error("anyOf mismatch")
	}
	if not(yes)(env) || !not(no)(env) {
		t.Error("not mismatch")
	}
}

func TestEnvEquals(t *testing.T) {
	env := trait.MapEnv{Vars: map[string]string{"TERM_PROGRAM": "vscode"}}

	if !envEquals("TERM_PROGRAM", "vscode")(env) {
		t.Error("envEquals should match exact value")
	}
	if envEquals("TERM_PROGRAM", "VSCode")(env) {
		t.Error("envEquals should be case-sensitive")
	}
	if envEquals("MISSING", "")(env) {
		t.Error("envEquals should not match an unset variable")
	}
}

package catalog

import (
	"path"
	"slices"
	"strings"

	"github.com/kdeldycke/extra-platforms-sub001/pkg/trait"
)

// envSet matches when any of keys is set to a non-empty value.
func envSet(keys ...string) trait.DetectFunc {
	return func(env trait.Env) bool {
		return trait.AnyEnv(env, keys...)
	}
}

// envEquals matches when key holds exactly value.
func envEquals(key, value string) trait.DetectFunc {
	return func(env trait.Env) bool {
		v, ok := env.LookupEnv(key)
		return ok && v == value
	}
}

// goos matches Go's GOOS against names.
func goos(names ...string) trait.DetectFunc {
	return func(env trait.Env) bool {
		return slices.Contains(names, env.GOOS())
	}
}

// goarch matches Go's GOARCH against names.
func goarch(names ...string) trait.DetectFunc {
	return func(env trait.Env) bool {
		return slices.Contains(names, env.GOARCH())
	}
}

// loginShell matches the base name of $SHELL, without a .exe suffix.
func loginShell(names ...string) trait.DetectFunc {
	return func(env trait.Env) bool {
		shell := trait.Getenv(env, "SHELL")
		if shell == "" {
			return false
		}
		shell = strings.ReplaceAll(shell, `\`, "/")
		base := strings.TrimSuffix(strings.ToLower(path.Base(shell)), ".exe")
		return slices.Contains(names, base)
	}
}

func allOf(preds ...trait.DetectFunc) trait.DetectFunc {
	return func(env trait.Env) bool {
		for _, p := range preds {
			if !p(env) {
				return false
			}
		}
		return true
	}
}

func anyOf(preds ...trait.DetectFunc) trait.DetectFunc {
	return func(env trait.Env) bool {
		for _, p := range preds {
			if p(env) {
				return true
			}
		}
		return false
	}
}

func not(pred trait.DetectFunc) trait.DetectFunc {
	return func(env trait.Env) bool {
		return !pred(env)
	}
}

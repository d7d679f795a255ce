package trait

import (
	"os"
	"runtime"
)

// Env is the process state detection predicates read.
type Env interface {
	// LookupEnv returns the value of an environment variable and whether it is set.
	LookupEnv(key string) (string, bool)

	// GOOS returns the operating system, using Go's naming (linux, darwin, ...).
	GOOS() string

	// GOARCH returns the architecture, using Go's naming (amd64, arm64, ...).
	GOARCH() string
}

// OSEnv reads the running process.
type OSEnv struct{}

// LookupEnv implements Env.
func (OSEnv) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

// GOOS implements Env.
func (OSEnv) GOOS() string { return runtime.GOOS }

// GOARCH implements Env.
func (OSEnv) GOARCH() string { return runtime.GOARCH }

// MapEnv is a fixed environment, used to simulate a host.
type MapEnv struct {
	Vars map[string]string
	OS   string
	Arch string
}

// LookupEnv implements Env.
func (e MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := e.Vars[key]
	return v, ok
}

// GOOS implements Env.
func (e MapEnv) GOOS() string { return e.OS }

// GOARCH implements Env.
func (e MapEnv) GOARCH() string { return e.Arch }

// Getenv returns the value of key, or an empty string when unset.
func Getenv(env Env, key string) string {
	v, _ := env.LookupEnv(key)
	return v
}

// HasEnv reports whether key is set to a non-empty value.
func HasEnv(env Env, key string) bool {
	return Getenv(env, key) != ""
}

// AnyEnv reports whether any of keys is set to a non-empty value.
func AnyEnv(env Env, keys ...string) bool {
	for _, k := range keys {
		if HasEnv(env, k) {
			return true
		}
	}
	return false
}

package catalog

import (
	"sync"

	"github.com/kdeldycke/extra-platforms-sub001/pkg/trait"
)

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return New(trait.OSEnv{})
})

// Default returns the catalog of the running process, built on first use.
// It panics if the built-in declarations are inconsistent.
func Default() *Catalog {
	c, err := defaultCatalog()
	if err != nil {
		panic("catalog: invalid built-in declarations: " + err.Error())
	}
	return c
}

func current(category trait.Category) *trait.Trait {
	return Default().byCategory[category].Current()
}

func is(id string) bool {
	ok, _ := Default().Is(id)
	return ok
}

// CurrentAgent returns the AI coding agent the process runs under.
func CurrentAgent() *trait.Trait { return current(trait.CategoryAgent) }

// CurrentPlatform returns the operating system.
func CurrentPlatform() *trait.Trait { return current(trait.CategoryPlatform) }

// CurrentArchitecture returns the CPU architecture.
func CurrentArchitecture() *trait.Trait { return current(trait.CategoryArchitecture) }

// CurrentShell returns the shell.
func CurrentShell() *trait.Trait { return current(trait.CategoryShell) }

// CurrentTerminal returns the terminal emulator or multiplexer.
func CurrentTerminal() *trait.Trait { return current(trait.CategoryTerminal) }

// CurrentCI returns the CI system.
func CurrentCI() *trait.Trait { return current(trait.CategoryCI) }

// IsClaudeCode reports whether the process runs under Claude Code.
func IsClaudeCode() bool { return is(AgentClaudeCode) }

// IsCline reports whether the process runs under Cline.
func IsCline() bool { return is(AgentCline) }

// IsCursor reports whether the process runs under Cursor.
func IsCursor() bool { return is(AgentCursor) }

// IsLinux reports whether GOOS is linux. True under WSL as well.
func IsLinux() bool { return is(PlatformLinux) }

// IsMacOS reports whether the process runs on macOS.
func IsMacOS() bool { return is(PlatformMacOS) }

// IsWindows reports whether the process runs on Windows.
func IsWindows() bool { return is(PlatformWindows) }

// IsWSL reports whether the process runs under the Windows Subsystem for Linux.
func IsWSL() bool { return is(PlatformWSL) }

// IsGitHubCI reports whether the process runs in a GitHub Actions job.
func IsGitHubCI() bool { return is(CIGitHub) }

// IsGitLabCI reports whether the process runs in a GitLab CI job.
func IsGitLabCI() bool { return is(CIGitLab) }

package catalog

import "github.com/kdeldycke/extra-platforms-sub001/pkg/trait"

// Platform identifiers used by the convenience predicates.
const (
	PlatformLinux   = "linux"
	PlatformMacOS   = "macos"
	PlatformWindows = "windows"
	PlatformWSL     = "wsl"
)

// platforms declares operating systems. WSL reports GOOS=linux, so it is
// declared before linux to win the first-match scan.
func platforms() *trait.Builder {
	const c = trait.CategoryPlatform
	return trait.NewBuilder(c).
		Unknown("Unknown platform", "❓").
		Canonical("All platforms", "⚙️").
		Add(
			trait.New(c, "aix", "IBM AIX", "➿", "https://www.ibm.com/products/aix", goos("aix")),
			trait.New(c, "android", "Android", "🤖", "https://www.android.com", goos("android")),
			trait.New(c, "dragonfly_bsd", "DragonFly BSD", "🪰", "https://www.dragonflybsd.org", goos("dragonfly")),
			trait.New(c, "freebsd", "FreeBSD", "😈", "https://www.freebsd.org", goos("freebsd")),
			trait.New(c, "illumos", "illumos", "🔥", "https://illumos.org", goos("illumos")),
			trait.New(c, "ios", "iOS", "📱", "https://www.apple.com/ios", goos("ios")),
			trait.New(c, PlatformWSL, "Windows Subsystem for Linux", "⊞", "https://learn.microsoft.com/windows/wsl",
				allOf(goos("linux"), envSet("WSL_DISTRO_NAME", "WSL_INTEROP"))),
			trait.New(c, PlatformLinux, "Linux", "🐧", "https://kernel.org", goos("linux")),
			trait.New(c, PlatformMacOS, "macOS", "🍎", "https://www.apple.com/macos", goos("darwin")),
			trait.New(c, "netbsd", "NetBSD", "🚩", "https://www.netbsd.org", goos("netbsd")),
			trait.New(c, "openbsd", "OpenBSD", "🐡", "https://www.openbsd.org", goos("openbsd")),
			trait.New(c, "plan9", "Plan 9", "🐰", "https://9p.io/plan9", goos("plan9")),
			trait.New(c, "solaris", "Solaris", "🌞", "https://www.oracle.com/solaris", goos("solaris")),
			trait.New(c, PlatformWindows, "Windows", "🪟", "https://www.microsoft.com/windows", goos("windows")),
		).
		Group("unix", "Unix-like", "⨷",
			"aix", "android", "dragonfly_bsd", "freebsd", "illumos", "ios",
			PlatformWSL, PlatformLinux, PlatformMacOS, "netbsd", "openbsd", "solaris").
		Group("bsd", "BSD descendants", "🅱️", "dragonfly_bsd", "freebsd", PlatformMacOS, "netbsd", "openbsd").
		Group("linux_like", "Linux kernel based", "🐧", "android", PlatformWSL, PlatformLinux).
		Group("system_v", "System V descendants", "𝐕", "aix", "illumos", "solaris").
		Group("apple", "Apple operating systems", "🍏", "ios", PlatformMacOS).
		Group("all_windows", "Windows", "🪟", PlatformWindows)
}

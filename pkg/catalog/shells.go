package catalog

import "github.com/kdeldycke/extra-platforms-sub001/pkg/trait"

// shells declares interactive shells. Shells exporting a version marker are
// checked before the $SHELL based ones, since $SHELL holds the login shell
// rather than the running one.
func shells() *trait.Builder {
	const c = trait.CategoryShell
	return trait.NewBuilder(c).
		Unknown("Unknown shell", "❓").
		Canonical("All shells", "🐚").
		Add(
			trait.New(c, "nushell", "Nushell", "🐘", "https://www.nushell.sh", envSet("NU_VERSION")),
			trait.New(c, "xonsh", "Xonsh", "🐍", "https://xon.sh", envSet("XONSH_VERSION")),
			trait.New(c, "powershell", "PowerShell", "🔷", "https://learn.microsoft.com/powershell", loginShell("pwsh", "powershell")),
			trait.New(c, "bash", "Bash", "#", "https://www.gnu.org/software/bash", loginShell("bash")),
			trait.New(c, "dash", "Dash", "💨", "https://git.kernel.org/pub/scm/utils/dash/dash.git", loginShell("dash")),
			trait.New(c, "fish", "Fish", "🐟", "https://fishshell.com", loginShell("fish")),
			trait.New(c, "ksh", "Korn shell", "🐚", "https://github.com/ksh93/ksh", loginShell("ksh", "ksh93", "mksh", "oksh")),
			trait.New(c, "zsh", "Zsh", "ℤ", "https://www.zsh.org", loginShell("zsh")),
			trait.New(c, "csh", "C shell", "🅲", "https://en.wikipedia.org/wiki/C_shell", loginShell("csh")),
			trait.New(c, "tcsh", "tcsh", "🅣", "https://www.tcsh.org", loginShell("tcsh")),
			trait.New(c, "cmd", "Command Prompt", "▶", "https://learn.microsoft.com/windows-server/administration/windows-commands/cmd",
				allOf(goos("windows"), envSet("ComSpec"), not(envSet("SHELL")))),
		).
		Group("bourne_shells", "Bourne-compatible shells", "$", "bash", "dash", "ksh", "zsh").
		Group("c_shells", "C shells", "🅲", "csh", "tcsh").
		Group("windows_shells", "Windows shells", "🪟", "powershell", "cmd").
		Group("other_shells", "Other shells", "🐚", "nushell", "xonsh", "fish")
}

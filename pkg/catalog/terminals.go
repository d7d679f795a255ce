package catalog

import "github.com/kdeldycke/extra-platforms-sub001/pkg/trait"

// terminals declares terminal emulators and multiplexers. Multiplexers come
// first: they run inside an emulator and are the closer match.
func terminals() *trait.Builder {
	const c = trait.CategoryTerminal
	return trait.NewBuilder(c).
		Unknown("Unknown terminal", "❓").
		Canonical("All terminals", "💻").
		Add(
			trait.New(c, "tmux", "tmux", "🪟", "https://github.com/tmux/tmux", envSet("TMUX")),
			trait.New(c, "gnu_screen", "GNU Screen", "🖵", "https://www.gnu.org/software/screen", envSet("STY")),
			trait.New(c, "vscode_terminal", "VS Code terminal", "🆚", "https://code.visualstudio.com/docs/terminal/basics",
				envEquals("TERM_PROGRAM", "vscode")),
			trait.New(c, "windows_terminal", "Windows Terminal", "⊞", "https://github.com/microsoft/terminal", envSet("WT_SESSION")),
			trait.New(c, "alacritty", "Alacritty", "🔳", "https://alacritty.org", envSet("ALACRITTY_WINDOW_ID", "ALACRITTY_SOCKET")),
			trait.New(c, "ghostty", "Ghostty", "👻", "https://ghostty.org",
				anyOf(envEquals("TERM_PROGRAM", "ghostty"), envSet("GHOSTTY_RESOURCES_DIR"))),
			trait.New(c, "kitty", "Kitty", "🐱", "https://sw.kovidgoyal.net/kitty", envSet("KITTY_WINDOW_ID")),
			trait.New(c, "wezterm", "WezTerm", "🌊", "https://wezterm.org",
				anyOf(envEquals("TERM_PROGRAM", "WezTerm"), envSet("WEZTERM_EXECUTABLE"))),
			trait.New(c, "iterm2", "iTerm2", "🍏", "https://iterm2.com",
				anyOf(envEquals("TERM_PROGRAM", "iTerm.app"), envSet("ITERM_SESSION_ID"))),
			trait.New(c, "apple_terminal", "Apple Terminal", "🍎", "https://support.apple.com/guide/terminal",
				envEquals("TERM_PROGRAM", "Apple_Terminal")),
			trait.New(c, "konsole", "Konsole", "🔵", "https://konsole.kde.org", envSet("KONSOLE_VERSION")),
			trait.New(c, "gnome_terminal", "GNOME Terminal", "👣", "https://help.gnome.org/users/gnome-terminal",
				envSet("GNOME_TERMINAL_SCREEN", "GNOME_TERMINAL_SERVICE")),
			trait.New(c, "xterm", "XTerm", "𝐗", "https://invisible-island.net/xterm", envSet("XTERM_VERSION")),
		).
		Group("multiplexers", "Terminal multiplexers", "🪟", "tmux", "gnu_screen").
		Group("gpu_terminals", "GPU-accelerated terminals", "🎮", "alacritty", "ghostty", "kitty", "wezterm").
		Group("native_terminals", "Native terminals", "💻",
			"windows_terminal", "iterm2", "apple_terminal", "konsole", "gnome_terminal", "xterm").
		Group("web_terminals", "Web-based terminals", "🌐", "vscode_terminal")
}

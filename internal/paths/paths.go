package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName names the application's directories.
const AppName = "extra-platforms"

// ConfigFileName is the base name of the configuration file.
const ConfigFileName = "config.yaml"

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the application's configuration directory.
// Returns: <ConfigHome>/extra-platforms/
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the default configuration file path.
// Returns: <ConfigHome>/extra-platforms/config.yaml
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// ConfigSearchPaths returns the directories searched for ConfigFileName,
// highest precedence first.
func ConfigSearchPaths() []string {
	return []string{".", ConfigDir()}
}

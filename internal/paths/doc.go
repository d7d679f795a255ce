// Package paths resolves the directories extra-platforms reads its
// configuration from.
//
// It wraps github.com/adrg/xdg so the configuration file lives at
// $XDG_CONFIG_HOME/extra-platforms/config.yaml on Linux and at the
// platform-native location elsewhere.
package paths

// Package config loads the extra-platforms configuration file.
//
// The file is YAML, found as config.yaml in the current directory or in the
// XDG config directory (~/.config/extra-platforms on Linux). Every key can be
// overridden with an EXTRA_PLATFORMS_ prefixed environment variable.
//
//	version: 1
//	format: json       # text, json, yaml or toml
//	color: auto        # auto, always or never
//	categories:        # default categories for current and list
//	  - platform
//	  - agent
//
// Call [Init] once, then [Load]. Loaded configurations are validated; use
// [Validate] to check one built by hand.
package config

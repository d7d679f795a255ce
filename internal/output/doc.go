// Package output renders trait and group descriptors for the CLI as
// aligned text tables or as JSON, YAML or TOML documents.
package output

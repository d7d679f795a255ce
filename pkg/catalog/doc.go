// Package catalog declares the traits and groups extra-platforms knows
// about and resolves which of them describe the running process.
//
// Detection relies on environment variables and Go's GOOS/GOARCH only:
//
//	| Category     | Probe                                       |
//	|--------------|---------------------------------------------|
//	| architecture | GOARCH                                      |
//	| platform     | GOOS, WSL_DISTRO_NAME / WSL_INTEROP         |
//	| shell        | NU_VERSION, XONSH_VERSION, $SHELL base name |
//	| terminal     | TERM_PROGRAM and emulator-specific markers  |
//	| ci           | provider-specific markers (GITHUB_ACTIONS)  |
//	| agent        | CLAUDECODE, CLINE_ACTIVE, CURSOR_AGENT      |
//
// Use [Default] for the running process, or [New] with a [trait.MapEnv]
// to evaluate another host:
//
//	c, err := catalog.New(trait.MapEnv{OS: "linux", Arch: "amd64"})
//	for _, t := range c.Current() {
//		fmt.Println(t.Category(), t.ID())
//	}
package catalog

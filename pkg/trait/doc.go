// Package trait provides the registry behind extra-platforms: immutable
// descriptors of agents, platforms, shells, terminals, CI systems and
// architectures, grouped per category, with environment-based detection.
//
// # Traits and Groups
//
// A [Trait] carries an id, a name, an icon, an optional URL and a
// [DetectFunc]. A [Group] is an ordered set of traits of the same
// [Category]. Every registry has exactly one canonical group, whose id is
// [Category.CanonicalID], holding every trait except the unknown sentinel.
//
// # Building a Registry
//
//	reg, err := trait.NewBuilder(trait.CategoryAgent).
//		Add(
//			trait.New(trait.CategoryAgent, "claude_code", "Claude Code", "✴️", "", isClaudeCode),
//			trait.New(trait.CategoryAgent, "cursor", "Cursor", "⌨️", "", isCursor),
//		).
//		Build()
//
// Build rejects ids that are not lowercase underscore-separated tokens,
// duplicate ids, traits of another category and group members that were
// never added.
//
// # Detection
//
// [Registry.Current] evaluates predicates in declaration order and returns
// the first match, or [Registry.Unknown] when nothing matches. Predicates
// are not required to be mutually exclusive: declaration order is the
// tie-break. Predicates read an [Env]; use [MapEnv] to simulate a host.
//
// # Thread Safety
//
// A built [Registry] and everything it returns are immutable and safe for
// concurrent use. [Builder] is not.
package trait

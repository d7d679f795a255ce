package catalog

import "github.com/kdeldycke/extra-platforms-sub001/pkg/trait"

// Agent identifiers.
const (
	AgentClaudeCode = "claude_code"
	AgentCline      = "cline"
	AgentCursor     = "cursor"
)

// agents declares AI coding agents. Each one exports a marker variable to
// the processes it spawns.
func agents() *trait.Builder {
	const c = trait.CategoryAgent
	return trait.NewBuilder(c).
		Unknown("Unknown agent", "❓").
		Canonical("All agents", "🤖").
		Add(
			trait.New(c, AgentClaudeCode, "Claude Code", "✴️", "https://claude.com/product/claude-code", envSet("CLAUDECODE")),
			trait.New(c, AgentCline, "Cline", "🔷", "https://cline.bot", envSet("CLINE_ACTIVE")),
			trait.New(c, AgentCursor, "Cursor", "⌨️", "https://cursor.com", envSet("CURSOR_AGENT")),
		)
}

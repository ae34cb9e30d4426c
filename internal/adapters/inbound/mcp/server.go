package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewSkillMCPServer creates a new MCP server with the skill validation and
// evaluation tools registered. skillPath is the default skill directory used
// when a tool call does not name one.
func NewSkillMCPServer(skillPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"dot-agents",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, skillPath)
	registerResources(s, skillPath)

	return s
}

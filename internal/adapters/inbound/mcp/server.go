package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewHexaviewMCPServer creates a new MCP server with all hexaview tools and
// resources registered. The projectPath is the root directory of the project
// to analyze.
func NewHexaviewMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"hexaview",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerResources registers all hexaview MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// hexaview://report - current analysis report
	s.AddResource(
		mcplib.NewResource(
			"hexaview://report",
			"Analysis Report",
			mcplib.WithResourceDescription("Current layer classification and violation report for the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleReportResource(projectPath),
	)
}

func handleReportResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := newService().AnalyzeProject(projectPath)
		if err != nil {
			return nil, fmt.Errorf("analysis failed: %w", err)
		}

		payload, err := json.MarshalIndent(data.Report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling report: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(payload),
			},
		}, nil
	}
}

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configAdapter "github.com/hexaview/hexaview/internal/adapters/outbound/config"
	"github.com/hexaview/hexaview/internal/adapters/outbound/content"
	"github.com/hexaview/hexaview/internal/adapters/outbound/diagram"
	"github.com/hexaview/hexaview/internal/adapters/outbound/parser"
	"github.com/hexaview/hexaview/internal/adapters/outbound/scanner"
	"github.com/hexaview/hexaview/internal/application"
	"github.com/hexaview/hexaview/internal/domain"
)

// registerTools registers all hexaview MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. hexaview_analyze
	s.AddTool(
		mcplib.NewTool("hexaview_analyze",
			mcplib.WithDescription("Classify the project's modules into hexagonal layers and return the full analysis report as JSON"),
		),
		handleAnalyze(projectPath),
	)

	// 2. hexaview_validate
	s.AddTool(
		mcplib.NewTool("hexaview_validate",
			mcplib.WithDescription("Evaluate the layering rules and return the violation list with a pass/fail verdict"),
			mcplib.WithBoolean("strict", mcplib.Description("Treat warning-severity violations as failures")),
		),
		handleValidate(projectPath),
	)

	// 3. hexaview_diagram
	s.AddTool(
		mcplib.NewTool("hexaview_diagram",
			mcplib.WithDescription("Render the layer dependency graph as Mermaid diagram text"),
		),
		handleDiagram(projectPath),
	)

	// 4. hexaview_classify
	s.AddTool(
		mcplib.NewTool("hexaview_classify",
			mcplib.WithDescription("Return the layer a single module path classifies into"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Project-relative module path to classify"),
			),
		),
		handleClassify(projectPath),
	)
}

func newService() *application.AnalyzeService {
	return application.NewAnalyzeService(
		scanner.New(),
		parser.New(),
		content.New(),
		configAdapter.New(),
	)
}

func handleAnalyze(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		data, err := newService().AnalyzeProject(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		return jsonResult(data.Report)
	}
}

func handleValidate(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		strict := request.GetBool("strict", false)

		data, err := newService().AnalyzeProject(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}

		failing := 0
		for _, v := range data.Report.Violations {
			if v.Severity == domain.SeverityError || strict {
				failing++
			}
		}

		return jsonResult(map[string]any{
			"ok":         failing == 0,
			"failing":    failing,
			"violations": data.Report.Violations,
			"score":      data.Report.Metrics.ArchitectureScore,
		})
	}
}

func handleDiagram(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		data, err := newService().AnalyzeProject(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}

		taxonomy, err := domain.NewTaxonomy(data.Config)
		if err != nil {
			return errorResult(fmt.Sprintf("building taxonomy: %v", err)), nil
		}

		return textResult(diagram.Mermaid(data.Report, taxonomy)), nil
	}
}

func handleClassify(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		modulePath, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		cfg, err := configAdapter.New().Load(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading configuration: %v", err)), nil
		}
		taxonomy, err := domain.NewTaxonomy(cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("building taxonomy: %v", err)), nil
		}

		classifier := domain.NewClassifier(taxonomy)
		excerpt, _ := content.New().Excerpt(projectPath, modulePath)

		return jsonResult(map[string]any{
			"path":  modulePath,
			"layer": classifier.Classify(modulePath, excerpt),
		})
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}

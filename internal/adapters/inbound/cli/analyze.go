package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/hexaview/hexaview/internal/adapters/outbound/config"
	"github.com/hexaview/hexaview/internal/adapters/outbound/content"
	"github.com/hexaview/hexaview/internal/adapters/outbound/gitinfo"
	"github.com/hexaview/hexaview/internal/adapters/outbound/history"
	"github.com/hexaview/hexaview/internal/adapters/outbound/parser"
	"github.com/hexaview/hexaview/internal/adapters/outbound/scanner"
	"github.com/hexaview/hexaview/internal/adapters/outbound/tui"
	"github.com/hexaview/hexaview/internal/application"
	"github.com/hexaview/hexaview/internal/domain"
	"github.com/spf13/cobra"
)

func newAnalyzeService() *application.AnalyzeService {
	return application.NewAnalyzeService(
		scanner.New(),
		parser.New(),
		content.New(),
		config.New(),
	)
}

func newAnalyzeCmd() *cobra.Command {
	var (
		jsonOutput  bool
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Classify modules into layers and report violations",
		Long:  "Analyze a TypeScript/JavaScript project, classify every module into a hexagonal layer, and report layering violations.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			data, err := newAnalyzeService().AnalyzeProject(absPath)
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}
			report := data.Report

			// Attach git commit hash if available
			gi := gitinfo.New()
			if gi.IsGitRepo(absPath) {
				if hash, err := gi.CommitHash(absPath); err == nil {
					report.CommitHash = hash
				}
			}

			// Save to history
			hist := history.New()
			entry := domain.ReportEntry{
				Timestamp:  time.Now().Format(time.RFC3339),
				CommitHash: report.CommitHash,
				Modules:    report.Metrics.TotalModules,
				Violations: report.Metrics.TotalViolations,
				Score:      report.Metrics.ArchitectureScore,
			}
			_ = hist.Save(absPath, entry) // best-effort

			if showHistory {
				entries, err := hist.Load(absPath)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			if jsonOutput {
				return renderJSON(cmd, report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show report history")

	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

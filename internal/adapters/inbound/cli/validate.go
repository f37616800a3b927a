package cli

import (
	"fmt"
	"path/filepath"

	"github.com/hexaview/hexaview/internal/adapters/outbound/tui"
	"github.com/hexaview/hexaview/internal/domain"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var (
		strict     bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate layering rules, exit non-zero on violations",
		Long:  "Run the analysis and fail when dependency rules are broken. Intended for CI. With --strict, warning-severity violations also fail the run.",
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

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			failing := 0
			for _, v := range report.Violations {
				if v.Severity == domain.SeverityError || strict {
					failing++
				}
			}
			if failing > 0 {
				return fmt.Errorf("%d layering violation(s)", failing)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on warning-severity violations too")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")

	return cmd
}

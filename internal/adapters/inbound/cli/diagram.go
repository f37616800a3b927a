package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hexaview/hexaview/internal/adapters/outbound/diagram"
	"github.com/hexaview/hexaview/internal/domain"
	"github.com/spf13/cobra"
)

func newDiagramCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "diagram [path]",
		Short: "Render the layer dependency graph as a Mermaid diagram",
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

			taxonomy, err := domain.NewTaxonomy(data.Config)
			if err != nil {
				return fmt.Errorf("building taxonomy: %w", err)
			}

			text := diagram.Mermaid(data.Report, taxonomy)

			if output != "" {
				if err := os.WriteFile(output, []byte(text), 0644); err != nil {
					return fmt.Errorf("writing %s: %w", output, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the diagram to a file instead of stdout")

	return cmd
}
